package domain

import "time"

type VisitStatus string

const (
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
)

// LiveLocationSource is the only location provenance trusted for routing.
// Geocoded or database-stored addresses are rejected at waypoint building.
const LiveLocationSource = "patient_live_location"

// Location attached to a visit, tagged with its provenance.
type VisitLocation struct {
	Coordinates Coordinates
	Source      string
	Address     string
}

// Represents a single home-health visit as read from the visit store.
// Visits are immutable input to the routing core; only in-progress and
// completed visits with a patient-shared live location become waypoints.
type Visit struct {
	VisitID         string
	PatientName     string
	Status          VisitStatus
	Location        *VisitLocation
	ScheduledAt     *time.Time
	StartedAt       *time.Time
	DurationMinutes int
}

// Optimizable reports whether the visit's status qualifies it for routing.
// Merely scheduled visits are excluded: the route reflects visits that
// have actually started.
func (v Visit) Optimizable() bool {
	return v.Status == VisitInProgress || v.Status == VisitCompleted
}
