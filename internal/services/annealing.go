package services

import (
	"math"
	"math/rand"
	"time"

	"visit-route-service/internal/domain"
)

const SimulatedAnnealingName = "simulated-annealing"

// Cooling schedule: roughly 1,900 iterations from the initial temperature
// down to the floor at this rate.
const (
	InitialTemperature = 1000.0
	CoolingRate        = 0.995
	TemperatureFloor   = 1.0
)

// SimulatedAnnealingOrder searches from the nearest-neighbor route by
// swapping random non-start positions, accepting improvements always and
// worsening moves with the Metropolis probability exp(-delta/T). The
// occasional uphill move lets the search escape local minima that trap the
// 2-opt pass.
//
// Output depends on the injected random source; re-running with a different
// seed can yield different routes, which is expected for this heuristic.
func SimulatedAnnealingOrder(waypoints []domain.Waypoint, settings domain.OptimizationSettings, start time.Time, costPerMile float64, rng *rand.Rand) []domain.Waypoint {
	current := NearestNeighborOrder(waypoints, settings, start, costPerMile)
	if len(current) < 3 {
		return current
	}

	currentCost := routeCost(current, settings, start, costPerMile)

	for temperature := InitialTemperature; temperature >= TemperatureFloor; temperature *= CoolingRate {
		i := 1 + rng.Intn(len(current)-1)
		j := 1 + rng.Intn(len(current)-1)
		if i == j {
			continue
		}

		candidate := swapPositions(current, i, j)
		candidateCost := routeCost(candidate, settings, start, costPerMile)
		delta := candidateCost - currentCost

		if delta < 0 || rng.Float64() < math.Exp(-delta/temperature) {
			current = candidate
			currentCost = candidateCost
		}
	}

	return current
}

// swapPositions returns a copy of the order with positions i and j swapped.
func swapPositions(order []domain.Waypoint, i, j int) []domain.Waypoint {
	out := append([]domain.Waypoint(nil), order...)
	out[i], out[j] = out[j], out[i]
	return out
}
