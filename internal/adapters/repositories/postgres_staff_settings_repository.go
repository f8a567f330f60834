package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the StaffSettingsRepository port.
type PostgresStaffSettingsRepository struct{ DB *sql.DB }

func NewPostgresStaffSettingsRepository(db *sql.DB) *PostgresStaffSettingsRepository {
	return &PostgresStaffSettingsRepository{DB: db}
}

// Return the staff member's configured mileage rate. Missing rows surface
// as errors; callers fall back to the default rate.
func (r *PostgresStaffSettingsRepository) CostPerMile(ctx context.Context, staffID string) (float64, error) {
	if r.DB == nil {
		return 0, errors.New("staff settings repository: DB is nil")
	}

	var rate float64
	err := r.DB.QueryRowContext(ctx, `SELECT cost_per_mile FROM staff_settings WHERE staff_id = $1;`, staffID).Scan(&rate)
	if err != nil {
		return 0, fmt.Errorf("cost per mile: staff %s: %w", staffID, err)
	}

	return rate, nil
}
