package geo

import (
	"math"
	"testing"
	"time"

	"visit-route-service/internal/domain"
)

func TestDistanceMilesSymmetry(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{{Lat: 42.0, Lng: -83.0}, {Lat: 42.01, Lng: -83.0}},
		{{Lat: 42.0, Lng: -83.0}, {Lat: 42.0, Lng: -83.02}},
		{{Lat: 33.45, Lng: -112.07}, {Lat: 40.71, Lng: -74.0}},
		{{Lat: -36.85, Lng: 174.76}, {Lat: 51.5, Lng: -0.12}},
	}

	for _, p := range pairs {
		ab := DistanceMiles(p[0], p[1])
		ba := DistanceMiles(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %v -> %v = %f, reverse = %f", p[0], p[1], ab, ba)
		}
	}
}

func TestDistanceMilesKnownValue(t *testing.T) {
	a := domain.Coordinates{Lat: 42.0, Lng: -83.0}
	b := domain.Coordinates{Lat: 42.01, Lng: -83.0}

	// 0.01 degrees of latitude is about 0.69 miles.
	got := DistanceMiles(a, b)
	if math.Abs(got-0.691) > 0.01 {
		t.Fatalf("distance = %f, want about 0.691", got)
	}

	if d := DistanceMiles(a, a); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestTravelTimeSameLocationOverride(t *testing.T) {
	a := domain.Coordinates{Lat: 42.0, Lng: -83.0}
	b := domain.Coordinates{Lat: 42.0001, Lng: -83.0001} // well under 0.03 mi

	rush := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	if tt := TravelTimeMinutes(a, b, false, time.Time{}); tt != 0 {
		t.Errorf("travel time = %d, want 0 without traffic", tt)
	}
	if tt := TravelTimeMinutes(a, b, true, rush); tt != 0 {
		t.Errorf("travel time = %d, want 0 with traffic", tt)
	}
}

func TestTravelTimeSpeeds(t *testing.T) {
	a := domain.Coordinates{Lat: 42.0, Lng: -83.0}
	b := domain.Coordinates{Lat: 42.01, Lng: -83.0} // about 0.691 mi

	day := func(hour int) time.Time {
		return time.Date(2026, 3, 2, hour, 30, 0, 0, time.UTC)
	}

	cases := []struct {
		name            string
		considerTraffic bool
		at              time.Time
		want            int
	}{
		{"baseline no traffic", false, day(8), 2},      // 0.691/25*60 = 1.66
		{"traffic but zero clock", true, time.Time{}, 2},
		{"morning rush", true, day(8), 3},  // 0.691/15*60 = 2.76
		{"evening rush", true, day(17), 3},
		{"daytime", true, day(12), 1},  // 0.691/30*60 = 1.38
		{"off peak", true, day(22), 1}, // 0.691/35*60 = 1.18
	}

	for _, tc := range cases {
		if got := TravelTimeMinutes(a, b, tc.considerTraffic, tc.at); got != tc.want {
			t.Errorf("%s: travel time = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCostDollars(t *testing.T) {
	a := domain.Coordinates{Lat: 42.0, Lng: -83.0}
	b := domain.Coordinates{Lat: 42.01, Lng: -83.0}

	want := DistanceMiles(a, b) * 0.67
	if got := CostDollars(a, b, 0.67); math.Abs(got-want) > 1e-9 {
		t.Fatalf("cost = %f, want %f", got, want)
	}
}
