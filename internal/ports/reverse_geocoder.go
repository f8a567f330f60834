package ports

import (
	"context"

	"visit-route-service/internal/domain"
)

// Port: best-effort translation of coordinates into a display address.
// Implementations must tolerate timeout and failure; callers degrade to a
// raw coordinate string and never block routing on this lookup.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, c domain.Coordinates) (string, error)
}
