package services

import (
	"sort"
	"time"

	"visit-route-service/internal/domain"
)

const NearestNeighborName = "nearest-neighbor"

// NearestNeighborOrder builds a route by repeatedly moving to the unvisited
// waypoint with the lowest step score from the current position. It is the
// construction baseline for the two improvement heuristics.
//
// The algorithm minimizes the immediate step score; it does not attempt
// global optimization. Deterministic given input order.
func NearestNeighborOrder(waypoints []domain.Waypoint, settings domain.OptimizationSettings, start time.Time, costPerMile float64) []domain.Waypoint {
	if len(waypoints) < 2 {
		return append([]domain.Waypoint(nil), waypoints...)
	}

	pool := append([]domain.Waypoint(nil), waypoints...)

	// When appointment windows matter, the scheduled-time order both seeds
	// the greedy walk and determines the starting waypoint.
	if settings.RespectAppointmentWindows {
		sort.SliceStable(pool, func(i, j int) bool {
			return scheduledBefore(pool[i], pool[j])
		})
	}

	route := make([]domain.Waypoint, 0, len(pool))
	route = append(route, pool[0])
	remaining := pool[1:]
	clock := start

	for len(remaining) > 0 {
		current := route[len(route)-1]

		bestIdx := 0
		bestScore := stepScore(current, remaining[0], settings, clock, costPerMile)
		// First-seen minimum wins ties, keeping the walk deterministic.
		for i := 1; i < len(remaining); i++ {
			if s := stepScore(current, remaining[i], settings, clock, costPerMile); s < bestScore {
				bestScore = s
				bestIdx = i
			}
		}

		route = append(route, remaining[bestIdx])
		remaining = append(remaining[:bestIdx:bestIdx], remaining[bestIdx+1:]...)

		// Advance the simulated clock by the step score plus the assumed
		// dwell, so later steps see time-of-day effects.
		clock = clock.Add(time.Duration((bestScore + DwellMinutes) * float64(time.Minute)))
	}

	return route
}

func scheduledBefore(a, b domain.Waypoint) bool {
	switch {
	case a.ScheduledAt != nil && b.ScheduledAt != nil:
		return a.ScheduledAt.Before(*b.ScheduledAt)
	case a.ScheduledAt != nil:
		return true
	default:
		return false
	}
}
