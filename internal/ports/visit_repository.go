package ports

import (
	"context"
	"time"

	"visit-route-service/internal/domain"
)

// Port: a boundary for reading a staff member's visits from the visit store.
type VisitRepository interface {
	// Return visits for the staff member that started or completed within
	// [from, to], with their location provenance tags intact.
	ListRecentVisits(ctx context.Context, staffID string, from, to time.Time) ([]domain.Visit, error)
}
