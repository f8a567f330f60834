package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinates are usable for routing.
// Zero-zero pairs are treated as missing data, not a real position.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	if c.Lat == 0 && c.Lng == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// String renders the coordinates as the display fallback used when
// reverse geocoding is unavailable.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}
