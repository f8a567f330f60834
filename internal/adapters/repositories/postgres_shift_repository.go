package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"visit-route-service/internal/domain"
)

// Postgres-backed implementation of the ShiftRepository port. Shifts are
// stored as weekday patterns in minutes from midnight and anchored to the
// requested date.
type PostgresShiftRepository struct{ DB *sql.DB }

func NewPostgresShiftRepository(db *sql.DB) *PostgresShiftRepository {
	return &PostgresShiftRepository{DB: db}
}

func (r *PostgresShiftRepository) WorkingHours(ctx context.Context, staffID string, date time.Time) (domain.WorkingHours, error) {
	if r.DB == nil {
		return domain.WorkingHours{}, errors.New("shift repository: DB is nil")
	}

	query := `
	SELECT start_minute, end_minute
	FROM shifts
	WHERE staff_id = $1 AND weekday = $2;
	`

	var startMinute, endMinute int
	err := r.DB.QueryRowContext(ctx, query, staffID, int(date.Weekday())).Scan(&startMinute, &endMinute)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("working hours: staff %s weekday %d: %w", staffID, int(date.Weekday()), err)
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return domain.WorkingHours{
		Start: midnight.Add(time.Duration(startMinute) * time.Minute),
		End:   midnight.Add(time.Duration(endMinute) * time.Minute),
	}, nil
}
