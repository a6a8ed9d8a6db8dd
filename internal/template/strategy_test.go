package template

import (
	"testing"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestScaleBudgets(t *testing.T) {
	snap := domain.PlanningSnapshot{
		Projects: []domain.Project{
			{ID: "p1", Budget: 1000},
			{ID: "p2", Budget: 200},
		},
	}

	out, err := scaleBudgets(snap, Params{Now: testNow, Values: map[string]float64{"percentage": 25}})
	require.NoError(t, err)

	assert.Equal(t, 750.0, out.Projects[0].Budget)
	assert.Equal(t, 150.0, out.Projects[1].Budget)
	assert.Equal(t, 1000.0, snap.Projects[0].Budget, "input must not be mutated")
}

func TestScaleBudgets_RejectsOverfullCut(t *testing.T) {
	_, err := scaleBudgets(domain.PlanningSnapshot{}, Params{Values: map[string]float64{"percentage": 150}})
	assert.Error(t, err)
}

func TestScaleCapacity_DefaultParameter(t *testing.T) {
	snap := domain.PlanningSnapshot{Teams: []domain.Team{{ID: "t1", Capacity: 40}}}

	out, err := scaleCapacity(snap, Params{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 40.0, out.Teams[0].Capacity, "missing parameter falls back to zero change")
}

func TestHiringFreeze(t *testing.T) {
	snap := domain.PlanningSnapshot{
		People: []domain.Person{
			{ID: "current", StartDate: testNow.AddDate(-1, 0, 0)},
			{ID: "planned", StartDate: testNow.AddDate(0, 1, 0)},
		},
		Allocations: []domain.Allocation{
			{ID: "a1", PersonID: "current"},
			{ID: "a2", PersonID: "planned"},
		},
		TeamMembers: []domain.TeamMember{
			{TeamID: "t1", PersonID: "planned"},
			{TeamID: "t1", PersonID: "current"},
		},
	}

	out, err := hiringFreeze(snap, Params{Now: testNow})
	require.NoError(t, err)

	require.Len(t, out.People, 1)
	assert.Equal(t, "current", out.People[0].ID)
	require.Len(t, out.Allocations, 1)
	assert.Equal(t, "a1", out.Allocations[0].ID)
	require.Len(t, out.TeamMembers, 1)
	assert.Equal(t, "current", out.TeamMembers[0].PersonID)

	assert.Len(t, snap.People, 2, "input must not be mutated")
}

func TestShiftTimeline(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	snap := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "p1", StartDate: start, EndDate: start.AddDate(0, 3, 0)}},
		Releases: []domain.Release{{ID: "r1", ReleaseDate: start.AddDate(0, 1, 0)}},
		Goals:    []domain.Goal{{ID: "g1", TargetDate: start.AddDate(0, 2, 0)}},
	}

	out, err := shiftTimeline(snap, Params{Now: testNow, Values: map[string]float64{"days": 14}})
	require.NoError(t, err)

	assert.Equal(t, start.AddDate(0, 0, 14), out.Projects[0].StartDate)
	assert.Equal(t, start.AddDate(0, 3, 14), out.Projects[0].EndDate)
	assert.Equal(t, start.AddDate(0, 1, 14), out.Releases[0].ReleaseDate)
	assert.Equal(t, start.AddDate(0, 2, 14), out.Goals[0].TargetDate)
}

func TestResolve_CoversEveryBuiltin(t *testing.T) {
	for _, tmpl := range Builtin() {
		_, ok := Resolve(tmpl.Config.Strategy)
		assert.True(t, ok, "builtin %q references unregistered strategy %q", tmpl.ID, tmpl.Config.Strategy)
	}
}

func TestResolve_UnknownStrategy(t *testing.T) {
	_, ok := Resolve("does-not-exist")
	assert.False(t, ok)
}
