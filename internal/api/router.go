package api

import (
	"net/http"

	"visit-route-service/internal/api/handlers"
	"visit-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(deps services.SuggestRouteDeps) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Deps: deps}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/optimize", routeHandler.Optimize)

	return loggingMiddleware(mux)
}
