package dto

import "time"

type OptimizeRequest struct {
	StaffID                   string `json:"staff_id"`
	Date                      string `json:"date"`
	PrioritizeTimeSavings     bool   `json:"prioritize_time_savings"`
	ConsiderTrafficPatterns   bool   `json:"consider_traffic_patterns"`
	RespectAppointmentWindows bool   `json:"respect_appointment_windows"`
	MinimizeFuelCosts         bool   `json:"minimize_fuel_costs"`
}

type WaypointResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Address         string     `json:"address"`
}

type ScheduleSlotResponse struct {
	WaypointID    string    `json:"waypoint_id"`
	SuggestedAt   time.Time `json:"suggested_at"`
	TravelMinutes int       `json:"travel_minutes"`
	VisitMinutes  int       `json:"visit_minutes"`
	Efficiency    string    `json:"efficiency"`
}

type SavingsResponse struct {
	DistanceMiles float64 `json:"distance_miles"`
	TimeMinutes   int     `json:"time_minutes"`
	CostDollars   float64 `json:"cost_dollars"`
}

type OptimizeResponse struct {
	StaffID        string                 `json:"staff_id"`
	CurrentOrder   []string               `json:"current_order"`
	OptimizedOrder []string               `json:"optimized_order"`
	Algorithm      string                 `json:"algorithm"`
	Waypoints      []WaypointResponse     `json:"waypoints"`
	Schedule       []ScheduleSlotResponse `json:"schedule"`
	Savings        SavingsResponse        `json:"savings"`
	Utilization    float64                `json:"utilization"`
	Warnings       []string               `json:"warnings"`
}
