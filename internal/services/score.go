package services

import (
	"math"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/geo"
)

// DwellMinutes is the assumed on-site time used only for advancing the
// optimizers' simulated clock between stops. The final schedule uses each
// waypoint's explicit clamped duration instead.
const DwellMinutes = 15

// Appointment-window penalty parameters. Arrivals further than the slack
// from a stop's scheduled time are penalized proportionally, keeping greedy
// choices loosely aligned with expected windows without hard-blocking.
const (
	AppointmentSlackMinutes = 30.0
	AppointmentPenaltyRate  = 0.1
)

// stepScore rates moving from a to b under the active objective: dollars,
// minutes or miles. All three optimizers share it.
func stepScore(a, b domain.Waypoint, settings domain.OptimizationSettings, clock time.Time, costPerMile float64) float64 {
	var score float64
	switch settings.ActiveObjective() {
	case domain.ObjectiveCost:
		score = geo.CostDollars(a.Coordinates, b.Coordinates, costPerMile)
	case domain.ObjectiveTime:
		score = float64(geo.TravelTimeMinutes(a.Coordinates, b.Coordinates, settings.ConsiderTrafficPatterns, clock))
	default:
		score = geo.DistanceMiles(a.Coordinates, b.Coordinates)
	}

	if settings.RespectAppointmentWindows && b.ScheduledAt != nil {
		// Simulate arriving score minutes from now and penalize deviation
		// beyond the slack window.
		arrival := clock.Add(time.Duration(score * float64(time.Minute)))
		diffMinutes := math.Abs(arrival.Sub(*b.ScheduledAt).Minutes())
		if diffMinutes > AppointmentSlackMinutes {
			score += AppointmentPenaltyRate * diffMinutes
		}
	}

	return score
}

// routeCost re-simulates a whole route, accumulating stepScore edge by edge.
// Under the time objective it also advances a simulated clock per stop so
// later edges see time-of-day-adjusted speeds.
func routeCost(order []domain.Waypoint, settings domain.OptimizationSettings, start time.Time, costPerMile float64) float64 {
	total := 0.0
	clock := start

	for i := 0; i+1 < len(order); i++ {
		total += stepScore(order[i], order[i+1], settings, clock, costPerMile)

		if settings.ActiveObjective() == domain.ObjectiveTime {
			travel := geo.TravelTimeMinutes(order[i].Coordinates, order[i+1].Coordinates, settings.ConsiderTrafficPatterns, clock)
			clock = clock.Add(time.Duration(travel+DwellMinutes) * time.Minute)
		}
	}

	return total
}

// routeTravelMinutes walks the order summing time-of-day-aware travel time,
// advancing the clock by travel plus dwell per stop.
func routeTravelMinutes(order []domain.Waypoint, considerTraffic bool, start time.Time) int {
	total := 0
	clock := start

	for i := 0; i+1 < len(order); i++ {
		travel := geo.TravelTimeMinutes(order[i].Coordinates, order[i+1].Coordinates, considerTraffic, clock)
		total += travel
		clock = clock.Add(time.Duration(travel+DwellMinutes) * time.Minute)
	}

	return total
}

// TotalDistanceMiles sums consecutive great-circle distances over an order.
// This is the neutral comparison currency used by the algorithm selector
// regardless of the optimization objective.
func TotalDistanceMiles(order []domain.Waypoint) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += geo.DistanceMiles(order[i].Coordinates, order[i+1].Coordinates)
	}
	return total
}
