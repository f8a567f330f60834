package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVisitsQuery := `
	CREATE TABLE IF NOT EXISTS visits (
		visit_id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		patient_name TEXT NOT NULL,
		status TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		location_source TEXT,
		address TEXT,
		scheduled_at TIMESTAMPTZ,
		started_at TIMESTAMPTZ,
		duration_minutes INTEGER NOT NULL DEFAULT 0
	);
	`

	createShiftsQuery := `
	CREATE TABLE IF NOT EXISTS shifts (
		staff_id TEXT NOT NULL,
		weekday INTEGER NOT NULL,
		start_minute INTEGER NOT NULL,
		end_minute INTEGER NOT NULL,
		PRIMARY KEY (staff_id, weekday)
	);
	`

	createTasksQuery := `
	CREATE TABLE IF NOT EXISTS tasks (
		task_id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		title TEXT NOT NULL,
		task_type TEXT NOT NULL,
		start_at TIMESTAMPTZ NOT NULL,
		end_at TIMESTAMPTZ NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0
	);
	`

	createStaffSettingsQuery := `
	CREATE TABLE IF NOT EXISTS staff_settings (
		staff_id TEXT PRIMARY KEY,
		cost_per_mile DOUBLE PRECISION NOT NULL
	);
	`

	createVisitIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_visits_staff_status
	ON visits(staff_id, status);
	`

	createTaskIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_tasks_staff_start
	ON tasks(staff_id, start_at);
	`

	statements := []string{
		createVisitsQuery,
		createShiftsQuery,
		createTasksQuery,
		createStaffSettingsQuery,
		createVisitIndexQuery,
		createTaskIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VisitSeed struct {
	VisitID         string     `json:"visit_id"`
	StaffID         string     `json:"staff_id"`
	PatientName     string     `json:"patient_name"`
	Status          string     `json:"status"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	LocationSource  string     `json:"location_source"`
	Address         string     `json:"address"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	StartedAt       *time.Time `json:"started_at"`
	DurationMinutes int        `json:"duration_minutes"`
}

type ShiftSeed struct {
	StaffID     string `json:"staff_id"`
	Weekday     int    `json:"weekday"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
}

type TaskSeed struct {
	TaskID          string    `json:"task_id"`
	StaffID         string    `json:"staff_id"`
	Title           string    `json:"title"`
	TaskType        string    `json:"task_type"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

type SeedFile struct {
	Visits []VisitSeed `json:"visits"`
	Shifts []ShiftSeed `json:"shifts"`
	Tasks  []TaskSeed  `json:"tasks"`
}

// Populate the database with demo data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	for i, v := range data.Visits {
		if strings.TrimSpace(v.VisitID) == "" || strings.TrimSpace(v.StaffID) == "" {
			return fmt.Errorf("seed data: visit at index %d missing visit_id or staff_id", i)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	visitQuery := `
	INSERT INTO visits (
		visit_id, staff_id, patient_name, status,
		latitude, longitude, location_source, address,
		scheduled_at, started_at, duration_minutes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (visit_id) DO NOTHING;
	`
	for _, v := range data.Visits {
		_, err := tx.Exec(visitQuery,
			v.VisitID, v.StaffID, v.PatientName, v.Status,
			v.Latitude, v.Longitude, v.LocationSource, v.Address,
			v.ScheduledAt, v.StartedAt, v.DurationMinutes,
		)
		if err != nil {
			return fmt.Errorf("seed data: insert visit %s: %w", v.VisitID, err)
		}
	}

	shiftQuery := `
	INSERT INTO shifts (staff_id, weekday, start_minute, end_minute)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (staff_id, weekday) DO UPDATE
		SET start_minute = EXCLUDED.start_minute, end_minute = EXCLUDED.end_minute;
	`
	for _, s := range data.Shifts {
		if _, err := tx.Exec(shiftQuery, s.StaffID, s.Weekday, s.StartMinute, s.EndMinute); err != nil {
			return fmt.Errorf("seed data: insert shift staff=%s weekday=%d: %w", s.StaffID, s.Weekday, err)
		}
	}

	taskQuery := `
	INSERT INTO tasks (task_id, staff_id, title, task_type, start_at, end_at, duration_minutes)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (task_id) DO NOTHING;
	`
	for _, t := range data.Tasks {
		if _, err := tx.Exec(taskQuery, t.TaskID, t.StaffID, t.Title, t.TaskType, t.StartAt, t.EndAt, t.DurationMinutes); err != nil {
			return fmt.Errorf("seed data: insert task %s: %w", t.TaskID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}
