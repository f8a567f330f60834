package ports

import (
	"context"
	"time"

	"visit-route-service/internal/domain"
)

// Port: a boundary for reading pre-committed calendar intervals (other
// appointments, training sessions) that the schedule packer must not overlap.
type TaskRepository interface {
	ListTasks(ctx context.Context, staffID string, from, to time.Time) ([]domain.ExistingTask, error)
}
