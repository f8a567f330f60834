package domain

// One optimizer's proposed visit order, scored by plain great-circle
// distance so candidates from different objectives stay comparable.
type RouteCandidate struct {
	Order         []string
	Algorithm     string
	DistanceMiles float64
}

// Distance, time and cost deltas between the schedule-sorted route and
// the optimized route.
type Savings struct {
	DistanceMiles float64
	TimeMinutes   int
	CostDollars   float64
}

// The full result of one optimize-and-pack call for a staff member.
// Computed per request and held only in memory; nothing here is persisted
// by the routing core itself.
type RouteSuggestion struct {
	StaffID        string
	CurrentOrder   []string
	OptimizedOrder []string
	Algorithm      string
	Waypoints      []Waypoint
	Slots          []ScheduleSlot
	Savings        Savings
	Utilization    float64
	Warnings       []string
}
