package services

import (
	"testing"
	"time"

	"visit-route-service/internal/domain"
)

func hoursOn(day time.Time, startHour, endHour int) domain.WorkingHours {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return domain.WorkingHours{
		Start: midnight.Add(time.Duration(startHour) * time.Hour),
		End:   midnight.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestPackScheduleSingleWaypoint(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := hoursOn(day, 8, 17)

	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 30},
	}

	slots, warnings := PackSchedule(order, hours, nil, PackOptions{})

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	slot := slots[0]
	want := day.Add(8*time.Hour + 5*time.Minute)
	if !slot.SuggestedAt.Equal(want) {
		t.Errorf("suggested = %v, want %v (shift start plus prep buffer)", slot.SuggestedAt, want)
	}
	if slot.TravelMinutes != 0 {
		t.Errorf("travel = %d, want 0 for the first stop", slot.TravelMinutes)
	}
	if slot.VisitMinutes != 30 {
		t.Errorf("visit = %d, want 30", slot.VisitMinutes)
	}
	if slot.Efficiency != domain.EfficiencyOptimal {
		t.Errorf("efficiency = %s, want Optimal", slot.Efficiency)
	}
}

func TestPackSchedulePushesPastConflictingTask(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// Shift starting 08:55 puts the cursor at 09:00 after the prep buffer.
	hours := domain.WorkingHours{
		Start: day.Add(8*time.Hour + 55*time.Minute),
		End:   day.Add(17 * time.Hour),
	}

	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 60},
	}
	tasks := []domain.ExistingTask{
		{
			Title:   "Wound care training",
			Type:    "training",
			StartAt: day.Add(9*time.Hour + 15*time.Minute),
			EndAt:   day.Add(9*time.Hour + 45*time.Minute),
		},
	}

	slots, _ := PackSchedule(order, hours, tasks, PackOptions{})

	want := day.Add(9*time.Hour + 50*time.Minute) // task end + buffer
	if !slots[0].SuggestedAt.Equal(want) {
		t.Fatalf("suggested = %v, want %v", slots[0].SuggestedAt, want)
	}
}

func TestPackScheduleRespectsWorkingHoursAndTasks(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := hoursOn(day, 8, 17)

	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.00, Lng: -83.00}, DurationMinutes: 45},
		{ID: "v2", Coordinates: domain.Coordinates{Lat: 42.02, Lng: -83.01}, DurationMinutes: 30},
		{ID: "v3", Coordinates: domain.Coordinates{Lat: 42.04, Lng: -83.02}, DurationMinutes: 60},
	}
	tasks := []domain.ExistingTask{
		{Title: "Team huddle", Type: "meeting", StartAt: day.Add(10 * time.Hour), EndAt: day.Add(10*time.Hour + 30*time.Minute)},
	}

	slots, _ := PackSchedule(order, hours, tasks, PackOptions{})

	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}

	for _, slot := range slots {
		if slot.SuggestedAt.Before(hours.Start) || slot.End().After(hours.End) {
			t.Errorf("slot %s at %v falls outside working hours", slot.WaypointID, slot.SuggestedAt)
		}
		for _, task := range tasks {
			if task.Overlaps(slot.SuggestedAt, slot.End()) {
				t.Errorf("slot %s at %v overlaps task %q", slot.WaypointID, slot.SuggestedAt, task.Title)
			}
		}
	}
}

func TestPackScheduleRollsOverToNextDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := hoursOn(day, 8, 9) // one-hour shift

	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 30},
		// Far enough that the drive alone passes the shift end.
		{ID: "v2", Coordinates: domain.Coordinates{Lat: 42.5, Lng: -83.0}, DurationMinutes: 30},
	}

	slots, _ := PackSchedule(order, hours, nil, PackOptions{})

	nextDay := day.AddDate(0, 0, 1)
	want := nextDay.Add(8*time.Hour + 5*time.Minute) // default window + prep
	if !slots[1].SuggestedAt.Equal(want) {
		t.Fatalf("rolled-over slot = %v, want %v", slots[1].SuggestedAt, want)
	}
}

func TestPackScheduleRolloverUsesShiftLookup(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := hoursOn(day, 8, 9)

	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 30},
		{ID: "v2", Coordinates: domain.Coordinates{Lat: 42.5, Lng: -83.0}, DurationMinutes: 30},
	}

	opts := PackOptions{
		NextHours: func(date time.Time) (domain.WorkingHours, error) {
			return hoursOn(date, 10, 18), nil
		},
	}

	slots, _ := PackSchedule(order, hours, nil, opts)

	nextDay := day.AddDate(0, 0, 1)
	want := nextDay.Add(10*time.Hour + 5*time.Minute)
	if !slots[1].SuggestedAt.Equal(want) {
		t.Fatalf("rolled-over slot = %v, want %v", slots[1].SuggestedAt, want)
	}
}

func TestPackScheduleDetectsGap(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := hoursOn(day, 8, 17)

	// Both stops share one building; a long task between them forces a
	// large hole in the schedule.
	order := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 20},
		{ID: "v2", Coordinates: domain.Coordinates{Lat: 42.0001, Lng: -83.0}, DurationMinutes: 30},
	}
	tasks := []domain.ExistingTask{
		{Title: "All-hands", Type: "meeting", StartAt: day.Add(8*time.Hour + 30*time.Minute), EndAt: day.Add(10 * time.Hour)},
	}

	slots, _ := PackSchedule(order, hours, tasks, PackOptions{})

	if slots[1].Efficiency != domain.EfficiencyGap {
		t.Fatalf("efficiency = %s, want %s", slots[1].Efficiency, domain.EfficiencyGap)
	}
}

func TestPackScheduleEmptyOrder(t *testing.T) {
	hours := hoursOn(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 8, 17)

	slots, warnings := PackSchedule(nil, hours, nil, PackOptions{})
	if len(slots) != 0 || len(warnings) != 0 {
		t.Fatalf("expected empty result, got %d slots %d warnings", len(slots), len(warnings))
	}
}
