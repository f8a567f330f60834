package services

import (
	"math"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/geo"
)

// ComputeSavings compares the schedule-sorted current order against the
// optimized order over the same waypoint set.
//
// Distance saved is the plain great-circle delta and cost saved its mileage
// value. Time saved re-runs the time-of-day-aware traversal over both orders
// when time prioritization is active; otherwise it converts the distance
// delta at the baseline speed.
func ComputeSavings(current, optimized []domain.Waypoint, settings domain.OptimizationSettings, costPerMile float64, start time.Time) domain.Savings {
	distanceSaved := TotalDistanceMiles(current) - TotalDistanceMiles(optimized)

	var timeSaved int
	if settings.PrioritizeTimeSavings {
		timeSaved = routeTravelMinutes(current, settings.ConsiderTrafficPatterns, start) -
			routeTravelMinutes(optimized, settings.ConsiderTrafficPatterns, start)
	} else {
		timeSaved = int(math.Round(distanceSaved / geo.BaseSpeedMPH * 60))
	}

	return domain.Savings{
		DistanceMiles: distanceSaved,
		TimeMinutes:   timeSaved,
		CostDollars:   distanceSaved * costPerMile,
	}
}

// Utilization reports the share of the working window committed to the
// packed schedule (visit time plus travel).
func Utilization(slots []domain.ScheduleSlot, hours domain.WorkingHours) float64 {
	window := hours.WindowMinutes()
	if window <= 0 {
		return 0
	}

	scheduled := 0
	for _, s := range slots {
		scheduled += s.VisitMinutes + s.TravelMinutes
	}

	return float64(scheduled) / float64(window)
}
