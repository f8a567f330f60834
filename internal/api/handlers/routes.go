package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"visit-route-service/internal/api/dto"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/services"
)

type RouteHandler struct {
	Deps services.SuggestRouteDeps
}

// Optimize runs the full optimize-and-pack pipeline for one staff member.
// It coordinates repository access, the algorithm selector, and the
// schedule packer; the heavy lifting lives in the services package.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	staffID := strings.TrimSpace(req.StaffID)
	if staffID == "" {
		writeError(w, r, http.StatusBadRequest, "staff_id is required")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	svcReq := services.SuggestRouteRequest{
		StaffID: staffID,
		Date:    date,
		Settings: domain.OptimizationSettings{
			PrioritizeTimeSavings:     req.PrioritizeTimeSavings,
			ConsiderTrafficPatterns:   req.ConsiderTrafficPatterns,
			RespectAppointmentWindows: req.RespectAppointmentWindows,
			MinimizeFuelCosts:         req.MinimizeFuelCosts,
		},
	}

	suggestion, err := services.SuggestRoute(r.Context(), svcReq, h.Deps)
	if err != nil {
		log.Printf("suggest route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toOptimizeResponse(suggestion))
}

func toOptimizeResponse(s *domain.RouteSuggestion) dto.OptimizeResponse {
	waypoints := make([]dto.WaypointResponse, 0, len(s.Waypoints))
	for _, wp := range s.Waypoints {
		waypoints = append(waypoints, dto.WaypointResponse{
			ID:              wp.ID,
			Name:            wp.Name,
			Latitude:        wp.Coordinates.Lat,
			Longitude:       wp.Coordinates.Lng,
			ScheduledAt:     wp.ScheduledAt,
			DurationMinutes: wp.DurationMinutes,
			Address:         wp.Address,
		})
	}

	schedule := make([]dto.ScheduleSlotResponse, 0, len(s.Slots))
	for _, slot := range s.Slots {
		schedule = append(schedule, dto.ScheduleSlotResponse{
			WaypointID:    slot.WaypointID,
			SuggestedAt:   slot.SuggestedAt,
			TravelMinutes: slot.TravelMinutes,
			VisitMinutes:  slot.VisitMinutes,
			Efficiency:    string(slot.Efficiency),
		})
	}

	return dto.OptimizeResponse{
		StaffID:        s.StaffID,
		CurrentOrder:   s.CurrentOrder,
		OptimizedOrder: s.OptimizedOrder,
		Algorithm:      s.Algorithm,
		Waypoints:      waypoints,
		Schedule:       schedule,
		Savings: dto.SavingsResponse{
			DistanceMiles: s.Savings.DistanceMiles,
			TimeMinutes:   s.Savings.TimeMinutes,
			CostDollars:   s.Savings.CostDollars,
		},
		Utilization: s.Utilization,
		Warnings:    s.Warnings,
	}
}
