package services

import (
	"testing"
	"time"

	"visit-route-service/internal/domain"
)

// Three stops around Detroit: a and b are the closest pair (~0.7 mi apart),
// c sits about 1 mi west of a.
func triangleWaypoints() []domain.Waypoint {
	return []domain.Waypoint{
		{ID: "a", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}, DurationMinutes: 30},
		{ID: "b", Coordinates: domain.Coordinates{Lat: 42.01, Lng: -83.0}, DurationMinutes: 30},
		{ID: "c", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.02}, DurationMinutes: 30},
	}
}

func workStart() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func TestNearestNeighborVisitsClosestPairConsecutively(t *testing.T) {
	order := NearestNeighborOrder(triangleWaypoints(), domain.OptimizationSettings{}, workStart(), 0.67)

	if len(order) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(order))
	}
	if order[0].ID != "a" || order[1].ID != "b" || order[2].ID != "c" {
		t.Fatalf("order = %s %s %s, want a b c", order[0].ID, order[1].ID, order[2].ID)
	}
}

func TestNearestNeighborRespectsAppointmentOrderStart(t *testing.T) {
	waypoints := triangleWaypoints()
	waypoints[2].ScheduledAt = ts(8, 0) // c scheduled first
	waypoints[0].ScheduledAt = ts(10, 0)

	settings := domain.OptimizationSettings{RespectAppointmentWindows: true}
	order := NearestNeighborOrder(waypoints, settings, workStart(), 0.67)

	if order[0].ID != "c" {
		t.Fatalf("start = %s, want the earliest scheduled stop c", order[0].ID)
	}
}

func TestNearestNeighborDoesNotMutateInput(t *testing.T) {
	waypoints := triangleWaypoints()
	input := append([]domain.Waypoint(nil), waypoints...)

	NearestNeighborOrder(waypoints, domain.OptimizationSettings{}, workStart(), 0.67)

	for i := range input {
		if waypoints[i].ID != input[i].ID {
			t.Fatalf("input order mutated at %d", i)
		}
	}
}

func TestNearestNeighborFewerThanTwo(t *testing.T) {
	single := triangleWaypoints()[:1]
	order := NearestNeighborOrder(single, domain.OptimizationSettings{}, workStart(), 0.67)
	if len(order) != 1 || order[0].ID != "a" {
		t.Fatalf("unexpected order for single waypoint: %v", order)
	}
}
