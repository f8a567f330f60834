package services

import (
	"context"
	"testing"
	"time"

	"visit-route-service/internal/adapters/geocode"
	"visit-route-service/internal/domain"
)

func ts(hour, min int) *time.Time {
	t := time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	return &t
}

func liveLocation(lat, lng float64) *domain.VisitLocation {
	return &domain.VisitLocation{
		Coordinates: domain.Coordinates{Lat: lat, Lng: lng},
		Source:      domain.LiveLocationSource,
	}
}

func TestBuildWaypointsFiltering(t *testing.T) {
	visits := []domain.Visit{
		{VisitID: "v1", PatientName: "Ada", Status: domain.VisitCompleted, Location: liveLocation(42.0, -83.0), DurationMinutes: 60},
		{VisitID: "v2", PatientName: "Ben", Status: domain.VisitInProgress, Location: &domain.VisitLocation{
			Coordinates: domain.Coordinates{Lat: 42.01, Lng: -83.0},
			Source:      "geocoded",
		}, DurationMinutes: 60},
		{VisitID: "v3", PatientName: "Cal", Status: domain.VisitCompleted, DurationMinutes: 60},
		{VisitID: "v4", PatientName: "Dot", Status: domain.VisitCompleted, Location: liveLocation(0, 0), DurationMinutes: 60},
		{VisitID: "v5", PatientName: "Eve", Status: "scheduled", Location: liveLocation(42.02, -83.0), DurationMinutes: 60},
		{VisitID: "v6", PatientName: "Fay", Status: domain.VisitInProgress, Location: liveLocation(42.03, -83.0), DurationMinutes: 60},
	}

	waypoints := BuildWaypoints(visits)

	if len(waypoints) != 2 {
		t.Fatalf("expected 2 waypoints, got %d", len(waypoints))
	}
	if waypoints[0].ID != "v1" || waypoints[1].ID != "v6" {
		t.Fatalf("unexpected waypoints: %s, %s", waypoints[0].ID, waypoints[1].ID)
	}
}

func TestBuildWaypointsOrdering(t *testing.T) {
	visits := []domain.Visit{
		{VisitID: "late", Status: domain.VisitCompleted, Location: liveLocation(42.0, -83.0), ScheduledAt: ts(14, 0)},
		{VisitID: "unscheduled", Status: domain.VisitCompleted, Location: liveLocation(42.01, -83.0), StartedAt: ts(9, 30)},
		{VisitID: "early", Status: domain.VisitCompleted, Location: liveLocation(42.02, -83.0), ScheduledAt: ts(8, 0)},
	}

	waypoints := BuildWaypoints(visits)

	if len(waypoints) != 3 {
		t.Fatalf("expected 3 waypoints, got %d", len(waypoints))
	}

	want := []string{"early", "late", "unscheduled"}
	for i, id := range want {
		if waypoints[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, waypoints[i].ID, id)
		}
	}
}

func TestBuildWaypointsClampsDuration(t *testing.T) {
	visits := []domain.Visit{
		{VisitID: "short", Status: domain.VisitCompleted, Location: liveLocation(42.0, -83.0), DurationMinutes: 5},
		{VisitID: "long", Status: domain.VisitCompleted, Location: liveLocation(42.01, -83.0), DurationMinutes: 500},
	}

	waypoints := BuildWaypoints(visits)

	if waypoints[0].DurationMinutes != 30 {
		t.Errorf("duration 5 clamped to %d, want 30", waypoints[0].DurationMinutes)
	}
	if waypoints[1].DurationMinutes != 120 {
		t.Errorf("duration 500 clamped to %d, want 120", waypoints[1].DurationMinutes)
	}
}

func TestBuildWaypointsNameFallback(t *testing.T) {
	visits := []domain.Visit{
		{VisitID: "v9", Status: domain.VisitCompleted, Location: liveLocation(42.0, -83.0)},
	}

	waypoints := BuildWaypoints(visits)
	if waypoints[0].Name != "Visit v9" {
		t.Fatalf("name = %q, want fallback", waypoints[0].Name)
	}
}

func TestEnrichAddresses(t *testing.T) {
	waypoints := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}},
		{ID: "v2", Coordinates: domain.Coordinates{Lat: 42.01, Lng: -83.0}},
	}

	geocoder := geocode.NewMockReverseGeocoder()
	geocoder.Add(domain.Coordinates{Lat: 42.0, Lng: -83.0}, "100 Main St")

	enriched := EnrichAddresses(context.Background(), geocoder, waypoints)

	if enriched[0].Address != "100 Main St" {
		t.Errorf("address = %q, want resolved street", enriched[0].Address)
	}
	// Unknown coordinates degrade to the raw coordinate string.
	if enriched[1].Address != "42.0100, -83.0000" {
		t.Errorf("address = %q, want coordinate fallback", enriched[1].Address)
	}

	// The input list is never mutated.
	if waypoints[0].Address != "" {
		t.Errorf("input mutated: %q", waypoints[0].Address)
	}
}

func TestEnrichAddressesNilGeocoder(t *testing.T) {
	waypoints := []domain.Waypoint{
		{ID: "v1", Coordinates: domain.Coordinates{Lat: 42.0, Lng: -83.0}},
	}

	enriched := EnrichAddresses(context.Background(), nil, waypoints)
	if enriched[0].Address != "42.0000, -83.0000" {
		t.Fatalf("address = %q, want coordinate fallback", enriched[0].Address)
	}
}
