package snapshot

import (
	"testing"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independence(t *testing.T) {
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	live := domain.PlanningSnapshot{
		People: []domain.Person{
			{ID: "p1", Name: "Ada", AnnualSalary: 120000, EndDate: &end},
		},
		Teams: []domain.Team{
			{ID: "t1", Name: "Platform", Capacity: 40},
		},
		Projects: []domain.Project{
			{ID: "pr1", Name: "Migration", Budget: 100},
		},
	}

	snap := Clone(live)

	// Mutating the live side must not affect the clone.
	live.People[0].Name = "Grace"
	*live.People[0].EndDate = end.AddDate(1, 0, 0)
	live.Teams[0].Capacity = 65
	live.Projects = append(live.Projects[:0], domain.Project{ID: "other"})

	require.Len(t, snap.People, 1)
	assert.Equal(t, "Ada", snap.People[0].Name)
	assert.Equal(t, end, *snap.People[0].EndDate)
	assert.Equal(t, 40.0, snap.Teams[0].Capacity)
	assert.Equal(t, "Migration", snap.Projects[0].Name)

	// And the other direction.
	snap.Teams[0].Name = "Renamed"
	assert.Equal(t, "Platform", live.Teams[0].Name)
}

func TestClone_MutatingCloneLeavesLiveUntouched(t *testing.T) {
	live := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "pr1", Budget: 500}},
	}
	snap := Clone(live)

	snap.Projects[0].Budget = 900
	snap.Projects = append(snap.Projects, domain.Project{ID: "pr2"})

	assert.Equal(t, 500.0, live.Projects[0].Budget)
	assert.Len(t, live.Projects, 1)
}

func TestClone_NilCollectionsBecomeEmpty(t *testing.T) {
	snap := Clone(domain.PlanningSnapshot{})

	assert.NotNil(t, snap.People)
	assert.NotNil(t, snap.IterationSnapshots)
	assert.NotNil(t, snap.GoalMilestoneLinks)
	assert.Empty(t, snap.Teams)
	assert.Equal(t, domain.DefaultPlanningConfig(), snap.Config)
}

func TestClone_PreservesConfig(t *testing.T) {
	live := domain.PlanningSnapshot{Config: domain.PlanningConfig{
		WorkingDaysPerWeek: 4,
		WorkingHoursPerDay: 6,
		WorkingDaysPerYear: 200,
		CurrencySymbol:     "£",
	}}
	snap := Clone(live)

	assert.Equal(t, live.Config, snap.Config)
}
