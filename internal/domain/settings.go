package domain

// Flag set controlling optimizer behavior. Exactly one of cost, time or
// distance is the active scoring objective, chosen by precedence
// cost > time > distance.
type OptimizationSettings struct {
	PrioritizeTimeSavings     bool
	ConsiderTrafficPatterns   bool
	RespectAppointmentWindows bool
	MinimizeFuelCosts         bool
}

// The scoring objective for a single waypoint-to-waypoint step.
type Objective int

const (
	ObjectiveDistance Objective = iota
	ObjectiveTime
	ObjectiveCost
)

func (o Objective) String() string {
	switch o {
	case ObjectiveCost:
		return "cost"
	case ObjectiveTime:
		return "time"
	default:
		return "distance"
	}
}

// ActiveObjective derives the objective once so scoring code does not
// re-check flag combinations on every call.
func (s OptimizationSettings) ActiveObjective() Objective {
	if s.MinimizeFuelCosts {
		return ObjectiveCost
	}
	if s.PrioritizeTimeSavings {
		return ObjectiveTime
	}
	return ObjectiveDistance
}
