package services

import (
	"context"
	"log"
	"sort"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// GeocodeTimeout bounds the best-effort reverse-geocode per waypoint.
const GeocodeTimeout = 2 * time.Second

// BuildWaypoints turns a staff member's visits into an ordered list of
// optimizable stops.
//
// Visits are silently excluded when their status is not in-progress or
// completed, their location provenance is not the patient's live GPS report,
// or their coordinates are missing, zero or out of range. Partial data
// degrades the result set rather than aborting it. Fewer than 2 surviving
// waypoints means there is nothing to optimize, which callers must treat as
// a normal empty result.
//
// The returned order is the "current" baseline: scheduled time ascending,
// unscheduled visits after scheduled ones, start time as the fallback.
func BuildWaypoints(visits []domain.Visit) []domain.Waypoint {
	eligible := make([]domain.Visit, 0, len(visits))
	for _, v := range visits {
		if !v.Optimizable() {
			continue
		}
		if v.Location == nil || v.Location.Source != domain.LiveLocationSource {
			continue
		}
		if !v.Location.Coordinates.Valid() {
			continue
		}
		eligible = append(eligible, v)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return visitBefore(eligible[i], eligible[j])
	})

	waypoints := make([]domain.Waypoint, 0, len(eligible))
	for _, v := range eligible {
		name := v.PatientName
		if name == "" {
			name = "Visit " + v.VisitID
		}

		waypoints = append(waypoints, domain.Waypoint{
			ID:              v.VisitID,
			Name:            name,
			Coordinates:     v.Location.Coordinates,
			ScheduledAt:     v.ScheduledAt,
			DurationMinutes: domain.ClampDurationMinutes(v.DurationMinutes),
		})
	}

	return waypoints
}

// visitBefore orders by scheduled time, pushing unscheduled visits after
// scheduled ones and falling back to start time.
func visitBefore(a, b domain.Visit) bool {
	switch {
	case a.ScheduledAt != nil && b.ScheduledAt != nil:
		return a.ScheduledAt.Before(*b.ScheduledAt)
	case a.ScheduledAt != nil:
		return true
	case b.ScheduledAt != nil:
		return false
	}

	if a.StartedAt != nil && b.StartedAt != nil {
		return a.StartedAt.Before(*b.StartedAt)
	}
	return a.StartedAt != nil
}

// EnrichAddresses attaches a best-effort display address to each waypoint.
// Each lookup races an explicit deadline; failures and timeouts degrade to
// the raw coordinate string and are never propagated. Routing correctness
// does not depend on this step.
func EnrichAddresses(ctx context.Context, geocoder ports.ReverseGeocoder, waypoints []domain.Waypoint) []domain.Waypoint {
	out := make([]domain.Waypoint, len(waypoints))
	copy(out, waypoints)

	for i := range out {
		out[i].Address = out[i].Coordinates.String()

		if geocoder == nil {
			continue
		}

		lookupCtx, cancel := context.WithTimeout(ctx, GeocodeTimeout)
		addr, err := geocoder.ReverseGeocode(lookupCtx, out[i].Coordinates)
		cancel()

		if err != nil {
			log.Printf("reverse geocode failed: waypoint=%s err=%v", out[i].ID, err)
			continue
		}
		if addr != "" {
			out[i].Address = addr
		}
	}

	return out
}
