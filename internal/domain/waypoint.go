package domain

import "time"

// Visit duration bounds. Values outside the sane range are adjusted rather
// than rejected so that one bad record does not drop a stop from the route.
const (
	MinVisitMinutes     = 15
	MaxVisitMinutes     = 240
	ShortVisitDefault   = 30
	LongVisitCapMinutes = 120
)

// A single optimizable stop on a staff member's route. Waypoints are built
// only from in-progress or completed visits whose coordinates came from a
// live, patient-shared GPS report.
type Waypoint struct {
	ID              string
	Name            string
	Coordinates     Coordinates
	ScheduledAt     *time.Time
	DurationMinutes int
	// Address is display enrichment only; it never affects routing.
	Address string
}

// ClampDurationMinutes absorbs bad duration data: values under the minimum
// are raised to the short-visit default, values over the maximum are capped.
func ClampDurationMinutes(minutes int) int {
	if minutes < MinVisitMinutes {
		return ShortVisitDefault
	}
	if minutes > MaxVisitMinutes {
		return LongVisitCapMinutes
	}
	return minutes
}
