package ports

import "context"

// Port: per-staff configuration values consumed by the routing core.
type StaffSettingsRepository interface {
	// Return the staff member's mileage rate. Implementations return an
	// error when no value is configured; callers fall back to the default.
	CostPerMile(ctx context.Context, staffID string) (float64, error)
}
