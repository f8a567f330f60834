package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"visit-route-service/internal/domain"
)

// Postgres-backed implementation of the VisitRepository port.
type PostgresVisitRepository struct{ DB *sql.DB }

func NewPostgresVisitRepository(db *sql.DB) *PostgresVisitRepository {
	return &PostgresVisitRepository{DB: db}
}

// Return in-progress and completed visits for the staff member within the
// recency window. Location provenance tags pass through untouched so the
// waypoint builder can enforce its live-location invariant.
func (r *PostgresVisitRepository) ListRecentVisits(ctx context.Context, staffID string, from, to time.Time) ([]domain.Visit, error) {
	if r.DB == nil {
		return nil, errors.New("visit repository: DB is nil")
	}

	query := `
	SELECT
		visit_id,
		patient_name,
		status,
		latitude,
		longitude,
		location_source,
		address,
		scheduled_at,
		started_at,
		duration_minutes
	FROM visits
	WHERE staff_id = $1
		AND status IN ('in_progress', 'completed')
		AND COALESCE(started_at, scheduled_at) >= $2
		AND COALESCE(started_at, scheduled_at) < $3
	ORDER BY scheduled_at NULLS LAST, started_at;
	`
	rows, err := r.DB.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list visits: query visits table: %w", err)
	}
	defer rows.Close()

	visits := make([]domain.Visit, 0, 32)
	for rows.Next() {
		var (
			v           domain.Visit
			lat, lng    sql.NullFloat64
			source      sql.NullString
			address     sql.NullString
			scheduledAt sql.NullTime
			startedAt   sql.NullTime
		)

		err := rows.Scan(
			&v.VisitID,
			&v.PatientName,
			&v.Status,
			&lat,
			&lng,
			&source,
			&address,
			&scheduledAt,
			&startedAt,
			&v.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("list visits: scan row: %w", err)
		}

		if lat.Valid && lng.Valid {
			v.Location = &domain.VisitLocation{
				Coordinates: domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64},
				Source:      source.String,
				Address:     address.String,
			}
		}
		if scheduledAt.Valid {
			t := scheduledAt.Time
			v.ScheduledAt = &t
		}
		if startedAt.Valid {
			t := startedAt.Time
			v.StartedAt = &t
		}

		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list visits: row iteration: %w", err)
	}

	return visits, nil
}
