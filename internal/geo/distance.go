package geo

import (
	"math"
	"time"

	"visit-route-service/internal/domain"
)

const EarthRadiusMiles = 3959.0

// SameLocationMiles is the threshold (~50 m) under which two waypoints are
// treated as the same physical location, e.g. units in one building.
// Heuristic carried over from field observation; override with care.
const SameLocationMiles = 0.03

// Assumed driving speeds in mph. The traffic adjustment is a deterministic
// time-of-day step function, not live data.
const (
	BaseSpeedMPH = 25.0
	RushHourMPH  = 15.0
	DaytimeMPH   = 30.0
	OffPeakMPH   = 35.0
)

// DefaultCostPerMile is the fallback mileage rate when a staff member has
// no configured value.
const DefaultCostPerMile = 0.67

// DistanceMiles computes the great-circle (haversine) distance between two
// points. Deterministic and pure; road geometry is out of scope.
func DistanceMiles(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// SameLocation reports whether two points fall within the same-location
// threshold.
func SameLocation(a, b domain.Coordinates) bool {
	return DistanceMiles(a, b) <= SameLocationMiles
}

// SpeedMPH returns the assumed driving speed. The hour-of-day adjustment
// applies only when traffic patterns are considered and a clock time is
// supplied.
func SpeedMPH(considerTraffic bool, at time.Time) float64 {
	if !considerTraffic || at.IsZero() {
		return BaseSpeedMPH
	}

	hour := at.Hour()
	switch {
	case (hour >= 7 && hour < 9) || (hour >= 17 && hour < 19):
		return RushHourMPH
	case hour >= 9 && hour < 17:
		return DaytimeMPH
	default:
		return OffPeakMPH
	}
}

// TravelTimeMinutes estimates driving time between two points, rounded to
// whole minutes. Points within the same-location threshold take zero travel
// time regardless of the formula.
func TravelTimeMinutes(a, b domain.Coordinates, considerTraffic bool, at time.Time) int {
	miles := DistanceMiles(a, b)
	if miles <= SameLocationMiles {
		return 0
	}

	speed := SpeedMPH(considerTraffic, at)
	return int(math.Round(miles / speed * 60))
}

// CostDollars estimates the monetary cost of driving between two points.
func CostDollars(a, b domain.Coordinates, costPerMile float64) float64 {
	return DistanceMiles(a, b) * costPerMile
}
