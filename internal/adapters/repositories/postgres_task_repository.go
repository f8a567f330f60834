package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"visit-route-service/internal/domain"
)

// Postgres-backed implementation of the TaskRepository port.
type PostgresTaskRepository struct{ DB *sql.DB }

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// Return pre-committed calendar intervals overlapping [from, to).
func (r *PostgresTaskRepository) ListTasks(ctx context.Context, staffID string, from, to time.Time) ([]domain.ExistingTask, error) {
	if r.DB == nil {
		return nil, errors.New("task repository: DB is nil")
	}

	query := `
	SELECT title, task_type, start_at, end_at, duration_minutes
	FROM tasks
	WHERE staff_id = $1
		AND start_at < $3
		AND end_at > $2
	ORDER BY start_at;
	`
	rows, err := r.DB.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list tasks: query tasks table: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.ExistingTask, 0, 16)
	for rows.Next() {
		var t domain.ExistingTask
		if err := rows.Scan(&t.Title, &t.Type, &t.StartAt, &t.EndAt, &t.DurationMinutes); err != nil {
			return nil, fmt.Errorf("list tasks: scan row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: row iteration: %w", err)
	}

	return tasks, nil
}
