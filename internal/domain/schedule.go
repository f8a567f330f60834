package domain

import "time"

// A staff member's shift interval for one date, bounding when visits may
// be scheduled.
type WorkingHours struct {
	Start time.Time
	End   time.Time
}

// WindowMinutes returns the length of the shift in minutes.
func (h WorkingHours) WindowMinutes() int {
	return int(h.End.Sub(h.Start).Minutes())
}

// An opaque pre-committed time interval on the staff member's calendar
// (another appointment, a training session). Immutable input to the
// schedule packer; never created or mutated by this subsystem.
type ExistingTask struct {
	Title           string
	Type            string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
}

// Overlaps reports whether the task occupies any part of [start, end).
func (t ExistingTask) Overlaps(start, end time.Time) bool {
	return start.Before(t.EndAt) && t.StartAt.Before(end)
}

type Efficiency string

const (
	EfficiencyOptimal Efficiency = "Optimal"
	EfficiencyGap     Efficiency = "Gap Detected"
	EfficiencyTight   Efficiency = "Tight Schedule"
)

// One waypoint bound to a concrete suggested start time.
type ScheduleSlot struct {
	WaypointID    string
	SuggestedAt   time.Time
	TravelMinutes int
	VisitMinutes  int
	Efficiency    Efficiency
}

// End returns the moment the visit itself finishes (buffers excluded).
func (s ScheduleSlot) End() time.Time {
	return s.SuggestedAt.Add(time.Duration(s.VisitMinutes) * time.Minute)
}
