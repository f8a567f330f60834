package services

import (
	"math/rand"
	"time"

	"visit-route-service/internal/domain"
)

// Optimize runs all three heuristics on the same waypoint set and picks the
// candidate with the lowest total great-circle distance. Distance is the
// comparison currency even when the internal objective is time or cost, so
// candidates from different objectives stay comparable. Ties go to the
// first-seen minimum in evaluation order: nearest neighbor, 2-opt, then
// simulated annealing.
func Optimize(waypoints []domain.Waypoint, settings domain.OptimizationSettings, costPerMile float64, start time.Time, rng *rand.Rand) domain.RouteCandidate {
	type candidate struct {
		name  string
		order []domain.Waypoint
	}

	candidates := []candidate{
		{NearestNeighborName, NearestNeighborOrder(waypoints, settings, start, costPerMile)},
		{TwoOptName, TwoOptOrder(waypoints, settings, start, costPerMile)},
		{SimulatedAnnealingName, SimulatedAnnealingOrder(waypoints, settings, start, costPerMile, rng)},
	}

	best := candidates[0]
	bestDistance := TotalDistanceMiles(best.order)
	for _, c := range candidates[1:] {
		if d := TotalDistanceMiles(c.order); d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return domain.RouteCandidate{
		Order:         WaypointIDs(best.order),
		Algorithm:     best.name,
		DistanceMiles: bestDistance,
	}
}

// WaypointIDs projects an ordered waypoint list onto its ids.
func WaypointIDs(order []domain.Waypoint) []string {
	ids := make([]string, 0, len(order))
	for _, wp := range order {
		ids = append(ids, wp.ID)
	}
	return ids
}

// OrderByIDs rebuilds an ordered waypoint list from an id permutation.
// Unknown ids are skipped.
func OrderByIDs(waypoints []domain.Waypoint, ids []string) []domain.Waypoint {
	byID := make(map[string]domain.Waypoint, len(waypoints))
	for _, wp := range waypoints {
		byID[wp.ID] = wp
	}

	out := make([]domain.Waypoint, 0, len(ids))
	for _, id := range ids {
		if wp, ok := byID[id]; ok {
			out = append(out, wp)
		}
	}
	return out
}
