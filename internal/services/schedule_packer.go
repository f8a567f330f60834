package services

import (
	"fmt"
	"log"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/geo"
)

// Packer tuning. The prep buffer pads the start of the day and each
// conflict push; the gap/tight thresholds classify slot efficiency.
// Heuristic values carried over from field observation.
const (
	PrepBufferMinutes     = 5
	MaxConflictProbes     = 100
	GapThresholdMinutes   = 30.0
	TightThresholdMinutes = 10.0
)

// Adaptive post-visit buffers: longer drives get more parking and
// transition time.
const (
	LongTravelMinutes   = 30
	MediumTravelMinutes = 10
	LongTravelBuffer    = 15
	MediumTravelBuffer  = 10
	ShortTravelBuffer   = 5
)

// Default shift window applied when working hours cannot be determined.
const (
	DefaultShiftStartHour = 8
	DefaultShiftEndHour   = 17
)

// PackOptions carries the packer's collaborators.
type PackOptions struct {
	ConsiderTraffic bool
	// NextHours supplies working hours when the schedule rolls over to a
	// following day. Nil or failing lookups fall back to the default window.
	NextHours func(date time.Time) (domain.WorkingHours, error)
}

// PackSchedule assigns concrete start times to an ordered waypoint list,
// respecting working hours and avoiding pre-existing commitments.
//
// The cursor starts at the shift start plus a prep buffer and advances per
// waypoint by travel time, the clamped visit duration, and an adaptive
// buffer. Visits that would start after the shift end roll over to the next
// day's shift. Conflicts with existing tasks push the visit past the
// nearest conflicting task's end; the probe loop is bounded so packing
// always terminates, with an exhausted bound surfacing as a diagnostic
// rather than an error. A missing task list means a fully open schedule.
func PackSchedule(order []domain.Waypoint, hours domain.WorkingHours, tasks []domain.ExistingTask, opts PackOptions) ([]domain.ScheduleSlot, []string) {
	slots := make([]domain.ScheduleSlot, 0, len(order))
	warnings := []string{}

	cursor := hours.Start.Add(PrepBufferMinutes * time.Minute)

	for i, wp := range order {
		travel := 0
		if i > 0 {
			travel = geo.TravelTimeMinutes(order[i-1].Coordinates, wp.Coordinates, opts.ConsiderTraffic, cursor)
		}
		cursor = cursor.Add(time.Duration(travel) * time.Minute)

		if cursor.After(hours.End) {
			hours = nextDayHours(hours, opts)
			cursor = hours.Start.Add(PrepBufferMinutes * time.Minute)
		}

		duration := domain.ClampDurationMinutes(wp.DurationMinutes)

		cursor, resolved := resolveConflicts(cursor, duration, tasks)
		if !resolved {
			warnings = append(warnings, fmt.Sprintf("could not fully resolve scheduling conflicts for visit %s", wp.ID))
		}

		slot := domain.ScheduleSlot{
			WaypointID:    wp.ID,
			SuggestedAt:   cursor,
			TravelMinutes: travel,
			VisitMinutes:  duration,
			Efficiency:    domain.EfficiencyOptimal,
		}
		if len(slots) > 0 {
			slot.Efficiency = classifyEfficiency(slots[len(slots)-1], slot)
		}
		slots = append(slots, slot)

		cursor = cursor.Add(time.Duration(duration+adaptiveBuffer(travel)) * time.Minute)
	}

	// Conflict resolution should leave no overlapping slots; surface any
	// residual overlap as a warning.
	for i := 1; i < len(slots); i++ {
		if slots[i].SuggestedAt.Before(slots[i-1].End()) {
			warnings = append(warnings, fmt.Sprintf("slots %s and %s overlap", slots[i-1].WaypointID, slots[i].WaypointID))
		}
	}

	return slots, warnings
}

// resolveConflicts pushes the cursor past existing tasks until the visit
// interval is clear or the probe bound is exhausted.
func resolveConflicts(cursor time.Time, durationMinutes int, tasks []domain.ExistingTask) (time.Time, bool) {
	if len(tasks) == 0 {
		return cursor, true
	}

	for probe := 0; probe < MaxConflictProbes; probe++ {
		end := cursor.Add(time.Duration(durationMinutes) * time.Minute)

		conflict, found := nearestConflict(cursor, end, tasks)
		if !found {
			return cursor, true
		}

		cursor = conflict.EndAt.Add(PrepBufferMinutes * time.Minute)
	}

	return cursor, false
}

// nearestConflict returns the overlapping task ending soonest, so the push
// is the smallest that clears it.
func nearestConflict(start, end time.Time, tasks []domain.ExistingTask) (domain.ExistingTask, bool) {
	var nearest domain.ExistingTask
	found := false

	for _, t := range tasks {
		if !t.Overlaps(start, end) {
			continue
		}
		if !found || t.EndAt.Before(nearest.EndAt) {
			nearest = t
			found = true
		}
	}

	return nearest, found
}

// classifyEfficiency compares the actual gap since the previous slot's end
// to the expected gap for the pair.
func classifyEfficiency(prev, cur domain.ScheduleSlot) domain.Efficiency {
	actualGap := cur.SuggestedAt.Sub(prev.End()).Minutes()
	expectedGap := float64(prev.VisitMinutes + prev.TravelMinutes + cur.TravelMinutes + PrepBufferMinutes)

	switch {
	case actualGap > expectedGap+GapThresholdMinutes:
		return domain.EfficiencyGap
	case actualGap < expectedGap-TightThresholdMinutes:
		return domain.EfficiencyTight
	default:
		return domain.EfficiencyOptimal
	}
}

func adaptiveBuffer(travelMinutes int) int {
	switch {
	case travelMinutes > LongTravelMinutes:
		return LongTravelBuffer
	case travelMinutes > MediumTravelMinutes:
		return MediumTravelBuffer
	default:
		return ShortTravelBuffer
	}
}

// nextDayHours fetches the following day's shift, defaulting when the
// lookup is unavailable or fails.
func nextDayHours(hours domain.WorkingHours, opts PackOptions) domain.WorkingHours {
	nextDay := hours.Start.AddDate(0, 0, 1)

	if opts.NextHours != nil {
		next, err := opts.NextHours(nextDay)
		if err == nil && next.End.After(next.Start) {
			return next
		}
		if err != nil {
			log.Printf("working hours lookup failed for %s, using default window: %v", nextDay.Format("2006-01-02"), err)
		}
	}

	return DefaultWorkingHours(nextDay)
}

// DefaultWorkingHours is the recovery window used when a shift cannot be
// determined for a date.
func DefaultWorkingHours(date time.Time) domain.WorkingHours {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return domain.WorkingHours{
		Start: midnight.Add(DefaultShiftStartHour * time.Hour),
		End:   midnight.Add(DefaultShiftEndHour * time.Hour),
	}
}
