package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateScenarioParams_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name    string
		params  CreateScenarioParams
		wantErr bool
	}{
		{"valid minimal", CreateScenarioParams{Name: "Q3 budget cut"}, false},
		{"valid with expiry", CreateScenarioParams{Name: "x", ExpiresAt: &future}, false},
		{"empty name", CreateScenarioParams{}, true},
		{"expiry in the past", CreateScenarioParams{Name: "x", ExpiresAt: &past}, true},
		{"expiry exactly now", CreateScenarioParams{Name: "x", ExpiresAt: &now}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate(now)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScenario_Expired_StrictBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Scenario{ExpiresAt: now}

	assert.False(t, s.Expired(now), "expiry exactly at now must not count as expired")
	assert.True(t, s.Expired(now.Add(time.Microsecond)))
	assert.False(t, s.Expired(now.Add(-time.Microsecond)))
}

func TestPlanningSnapshot_Normalize(t *testing.T) {
	var s PlanningSnapshot
	s.Normalize()

	assert.NotNil(t, s.People)
	assert.NotNil(t, s.Projects)
	assert.NotNil(t, s.GoalTeamLinks)
	assert.Empty(t, s.Allocations)
	assert.Equal(t, DefaultPlanningConfig(), s.Config)

	// An already-populated config is left alone.
	s.Config.CurrencySymbol = "€"
	s.Normalize()
	assert.Equal(t, "€", s.Config.CurrencySymbol)
}

func TestImpactLevel_Rank(t *testing.T) {
	assert.Greater(t, ImpactHigh.Rank(), ImpactMedium.Rank())
	assert.Greater(t, ImpactMedium.Rank(), ImpactLow.Rank())
}
