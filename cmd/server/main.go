package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"visit-route-service/internal/adapters/cache"
	"visit-route-service/internal/adapters/geocode"
	"visit-route-service/internal/adapters/repositories"
	"visit-route-service/internal/api"
	"visit-route-service/internal/config"
	"visit-route-service/internal/platform/db"
	"visit-route-service/internal/ports"
	"visit-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (postgres, Nominatim, redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	nominatimURL := config.Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	// Reverse geocoding is display enrichment; a redis cache in front of
	// Nominatim is optional and skipped when no address is configured.
	var geocoder ports.ReverseGeocoder = geocode.NewNominatimReverseGeocoder(nominatimURL)
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		geocodeCache, err := cache.NewRedisGeocodeCache(redisAddr, os.Getenv("REDIS_PASSWORD"), config.GetInt("REDIS_DB", 0))
		if err != nil {
			log.Fatal(err)
		}
		defer geocodeCache.Close()
		geocoder = geocode.NewCachedReverseGeocoder(geocoder, geocodeCache)
	}

	deps := services.SuggestRouteDeps{
		Visits:   repositories.NewPostgresVisitRepository(database),
		Shifts:   repositories.NewPostgresShiftRepository(database),
		Tasks:    repositories.NewPostgresTaskRepository(database),
		Staff:    repositories.NewPostgresStaffSettingsRepository(database),
		Geocoder: geocoder,
	}

	router := api.NewRouter(deps)

	// Write timeout allows for the bounded but non-trivial optimizer work
	// on larger visit counts plus best-effort geocoding.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
