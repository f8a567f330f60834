package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/geo"
	"visit-route-service/internal/ports"
)

// VisitLookbackDays is the recency window for optimizable visits.
const VisitLookbackDays = 7

type SuggestRouteRequest struct {
	StaffID  string
	Date     time.Time
	Settings domain.OptimizationSettings
}

// SuggestRouteDeps bundles the external collaborators of one optimization
// call. All data is fetched up front; the optimizers and packer themselves
// perform no I/O.
type SuggestRouteDeps struct {
	Visits   ports.VisitRepository
	Shifts   ports.ShiftRepository
	Tasks    ports.TaskRepository
	Staff    ports.StaffSettingsRepository
	Geocoder ports.ReverseGeocoder
	Rand     *rand.Rand
}

// SuggestRoute runs the full pipeline for one staff member: build waypoints
// from recent visits, pick the best of the three optimizers, pack the order
// into the working-hours window, and report savings.
//
// Each call is a pure function of its fetched inputs plus the injected
// random source, so independent staff members' routes may be computed
// concurrently with no shared state.
func SuggestRoute(ctx context.Context, req SuggestRouteRequest, deps SuggestRouteDeps) (*domain.RouteSuggestion, error) {
	to := req.Date.Add(24 * time.Hour)
	from := req.Date.AddDate(0, 0, -VisitLookbackDays)

	visits, err := deps.Visits.ListRecentVisits(ctx, req.StaffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("suggest route: list visits for staff %s: %w", req.StaffID, err)
	}

	waypoints := BuildWaypoints(visits)
	if skipped := len(visits) - len(waypoints); skipped > 0 {
		log.Printf("waypoint build: staff=%s usable=%d skipped=%d", req.StaffID, len(waypoints), skipped)
	}

	// Fewer than two usable stops means there is nothing to optimize.
	if len(waypoints) < 2 {
		return &domain.RouteSuggestion{
			StaffID:        req.StaffID,
			CurrentOrder:   WaypointIDs(waypoints),
			OptimizedOrder: WaypointIDs(waypoints),
			Waypoints:      waypoints,
			Slots:          []domain.ScheduleSlot{},
			Warnings:       []string{},
		}, nil
	}

	waypoints = EnrichAddresses(ctx, deps.Geocoder, waypoints)

	costPerMile := geo.DefaultCostPerMile
	if deps.Staff != nil {
		if rate, err := deps.Staff.CostPerMile(ctx, req.StaffID); err == nil && rate > 0 {
			costPerMile = rate
		}
	}

	hours, err := deps.Shifts.WorkingHours(ctx, req.StaffID, req.Date)
	if err != nil || !hours.End.After(hours.Start) {
		if err != nil {
			log.Printf("working hours lookup failed: staff=%s date=%s err=%v", req.StaffID, req.Date.Format("2006-01-02"), err)
		}
		hours = DefaultWorkingHours(req.Date)
	}

	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	candidate := Optimize(waypoints, req.Settings, costPerMile, hours.Start, rng)
	optimized := OrderByIDs(waypoints, candidate.Order)

	// A failed task lookup degrades to a fully open schedule.
	var tasks []domain.ExistingTask
	if deps.Tasks != nil {
		tasks, err = deps.Tasks.ListTasks(ctx, req.StaffID, hours.Start, hours.End.Add(24*time.Hour))
		if err != nil {
			log.Printf("task lookup failed, scheduling as open: staff=%s err=%v", req.StaffID, err)
			tasks = nil
		}
	}

	slots, warnings := PackSchedule(optimized, hours, tasks, PackOptions{
		ConsiderTraffic: req.Settings.ConsiderTrafficPatterns,
		NextHours: func(date time.Time) (domain.WorkingHours, error) {
			return deps.Shifts.WorkingHours(ctx, req.StaffID, date)
		},
	})

	return &domain.RouteSuggestion{
		StaffID:        req.StaffID,
		CurrentOrder:   WaypointIDs(waypoints),
		OptimizedOrder: candidate.Order,
		Algorithm:      candidate.Algorithm,
		Waypoints:      waypoints,
		Slots:          slots,
		Savings:        ComputeSavings(waypoints, optimized, req.Settings, costPerMile, hours.Start),
		Utilization:    Utilization(slots, hours),
		Warnings:       warnings,
	}, nil
}
