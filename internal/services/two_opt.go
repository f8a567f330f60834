package services

import (
	"time"

	"visit-route-service/internal/domain"
)

const TwoOptName = "2-opt"

// MaxTwoOptPasses caps the local search so larger visit counts stay bounded.
const MaxTwoOptPasses = 100

// TwoOptOrder improves the nearest-neighbor route by reversing segments that
// strictly reduce total route cost, removing crossing edges. The search runs
// until a full pass produces no improvement or the pass cap is reached, so
// its cost never exceeds the nearest-neighbor cost.
func TwoOptOrder(waypoints []domain.Waypoint, settings domain.OptimizationSettings, start time.Time, costPerMile float64) []domain.Waypoint {
	best := NearestNeighborOrder(waypoints, settings, start, costPerMile)
	if len(best) < 3 {
		return best
	}

	bestCost := routeCost(best, settings, start, costPerMile)

	for pass := 0; pass < MaxTwoOptPasses; pass++ {
		improved := false

		for i := 1; i < len(best)-1; i++ {
			for j := i + 2; j < len(best); j++ {
				candidate := reverseSegment(best, i, j)
				if cost := routeCost(candidate, settings, start, costPerMile); cost < bestCost {
					best = candidate
					bestCost = cost
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}

// reverseSegment returns a copy of the order with positions [i..j] reversed.
func reverseSegment(order []domain.Waypoint, i, j int) []domain.Waypoint {
	out := append([]domain.Waypoint(nil), order...)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
