package domain

import "testing"

func TestActiveObjectivePrecedence(t *testing.T) {
	cases := []struct {
		name     string
		settings OptimizationSettings
		want     Objective
	}{
		{"defaults to distance", OptimizationSettings{}, ObjectiveDistance},
		{"time over distance", OptimizationSettings{PrioritizeTimeSavings: true}, ObjectiveTime},
		{"cost over time", OptimizationSettings{PrioritizeTimeSavings: true, MinimizeFuelCosts: true}, ObjectiveCost},
		{"cost alone", OptimizationSettings{MinimizeFuelCosts: true}, ObjectiveCost},
		{"windows do not change objective", OptimizationSettings{RespectAppointmentWindows: true}, ObjectiveDistance},
	}

	for _, tc := range cases {
		if got := tc.settings.ActiveObjective(); got != tc.want {
			t.Errorf("%s: objective = %s, want %s", tc.name, got, tc.want)
		}
	}
}
