package ports

import (
	"context"
	"time"

	"visit-route-service/internal/domain"
)

// Port: a boundary for reading a staff member's working hours.
type ShiftRepository interface {
	// Return the shift interval for the given date. Implementations look up
	// the weekday pattern and anchor it to the date's midnight.
	WorkingHours(ctx context.Context, staffID string, date time.Time) (domain.WorkingHours, error)
}
