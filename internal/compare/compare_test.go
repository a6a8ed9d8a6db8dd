package compare

import (
	"testing"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compareNow = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func scenarioFrom(live domain.PlanningSnapshot) domain.Scenario {
	return domain.Scenario{
		ID:   "s1",
		Name: "What-if",
		Data: snapshot.Clone(live),
	}
}

func TestCompare_RoundTripYieldsZeroChanges(t *testing.T) {
	live := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "Alpha", Budget: 100}},
		Teams:    []domain.Team{{ID: "T1", Name: "Core", Capacity: 40}},
		People:   []domain.Person{{ID: "p1", Name: "Ada"}},
	}
	scen := scenarioFrom(live)

	cmp := Compare(scen, live, compareNow)

	assert.Equal(t, 0, cmp.Summary.TotalChanges)
	assert.Empty(t, cmp.Changes)
	assert.Equal(t, domain.ImpactLow, cmp.Summary.ImpactLevel)
	assert.Zero(t, cmp.FinancialImpact.TotalCostDifference)
	assert.Equal(t, "s1", cmp.ScenarioID)
	assert.Equal(t, compareNow, cmp.ComparedAt)
}

func TestCompare_BudgetModification(t *testing.T) {
	live := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "Alpha", Budget: 100}},
	}
	scen := scenarioFrom(live)
	live.Projects[0].Budget = 150

	cmp := Compare(scen, live, compareNow)

	require.Len(t, cmp.Changes, 1)
	c := cmp.Changes[0]
	assert.Equal(t, domain.CategoryFinancial, c.Category)
	assert.Equal(t, domain.ChangeModified, c.ChangeType)
	assert.Equal(t, domain.ImpactLow, c.Impact, "delta of 50 is far below the medium threshold")
	require.Len(t, c.Details, 1)
	assert.Equal(t, "budget", c.Details[0].Field)
	assert.Equal(t, "$100", c.Details[0].OldFormatted)
	assert.Equal(t, "$150", c.Details[0].NewFormatted)

	assert.Equal(t, 50.0, cmp.FinancialImpact.TotalCostDifference)
	require.Len(t, cmp.FinancialImpact.ProjectCostChanges, 1)
	assert.Equal(t, 50.0, cmp.FinancialImpact.ProjectCostChanges[0].Delta)
	assert.InDelta(t, 50.0, cmp.FinancialImpact.BudgetVariancePct, 0.001)
}

func TestCompare_AddedAndRemovedProjects(t *testing.T) {
	base := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "Alpha", Budget: 100}},
	}
	scen := scenarioFrom(base)

	// Live gains P2.
	withP2 := snapshot.Clone(base)
	withP2.Projects = append(withP2.Projects, domain.Project{ID: "P2", Name: "Beta", Budget: 300})

	cmp := Compare(scen, withP2, compareNow)
	require.Len(t, cmp.Changes, 1)
	assert.Equal(t, domain.ChangeAdded, cmp.Changes[0].ChangeType)
	assert.Equal(t, "P2", cmp.Changes[0].EntityID)
	assert.Equal(t, domain.ImpactMedium, cmp.Changes[0].Impact)

	// Live loses P1 entirely.
	cmp = Compare(scen, domain.PlanningSnapshot{}, compareNow)
	require.Len(t, cmp.Changes, 1)
	assert.Equal(t, domain.ChangeRemoved, cmp.Changes[0].ChangeType)
	assert.Equal(t, "P1", cmp.Changes[0].EntityID)
	assert.Equal(t, domain.ImpactHigh, cmp.Changes[0].Impact, "removal is higher risk than addition")
	assert.Equal(t, -100.0, cmp.FinancialImpact.TotalCostDifference)
}

func TestCompare_CapacityChange(t *testing.T) {
	live := domain.PlanningSnapshot{
		Teams: []domain.Team{{ID: "T1", Name: "Core", Capacity: 40}},
	}
	scen := scenarioFrom(live)
	live.Teams[0].Capacity = 65

	cmp := Compare(scen, live, compareNow)

	require.Len(t, cmp.Changes, 1)
	c := cmp.Changes[0]
	assert.Equal(t, domain.CategoryResources, c.Category)
	assert.Equal(t, domain.ImpactHigh, c.Impact, "delta of 25 exceeds the high threshold of 20")

	require.Len(t, cmp.ResourceImpact.TeamCapacityChanges, 1)
	assert.Equal(t, 25.0, cmp.ResourceImpact.TeamCapacityChanges[0].Delta)
}

func TestCompare_HeadcountAggregates(t *testing.T) {
	base := domain.PlanningSnapshot{
		People: []domain.Person{
			{ID: "p1", Name: "Ada", TeamID: "T1"},
			{ID: "p2", Name: "Grace", TeamID: "T1"},
		},
	}
	scen := scenarioFrom(base)

	live := snapshot.Clone(base)
	live.People = append(live.People, domain.Person{ID: "p3", Name: "Edsger", TeamID: "T2"})
	live.People[1].TeamID = "T2" // Grace moves teams

	cmp := Compare(scen, live, compareNow)

	assert.Equal(t, 1, cmp.ResourceImpact.PeopleAdded)
	assert.Equal(t, 0, cmp.ResourceImpact.PeopleRemoved)
	assert.Equal(t, 1, cmp.ResourceImpact.PeopleReallocated)
}

func TestCompare_TimelineShift(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	live := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "Alpha", StartDate: start, EndDate: end}},
	}
	scen := scenarioFrom(live)
	live.Projects[0].EndDate = end.AddDate(0, 0, 21)

	cmp := Compare(scen, live, compareNow)

	require.Len(t, cmp.Changes, 1)
	assert.Equal(t, domain.CategoryTimeline, cmp.Changes[0].Category)
	assert.Equal(t, domain.ImpactMedium, cmp.Changes[0].Impact, "21-day shift is above 14-day threshold")

	require.Len(t, cmp.TimelineImpact.ProjectDateChanges, 1)
	dc := cmp.TimelineImpact.ProjectDateChanges[0]
	assert.Equal(t, "endDate", dc.Field)
	assert.Equal(t, 21, dc.DeltaDays)
}

func TestCompare_SummaryAggregation(t *testing.T) {
	scen := scenarioFrom(domain.PlanningSnapshot{})

	live := domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "Alpha", Budget: 10}},
		Teams:    []domain.Team{{ID: "T1", Name: "Core", Capacity: 40}},
		Epics:    []domain.Epic{{ID: "E1", Name: "Login", ProjectID: "P1"}},
	}

	cmp := Compare(scen, live, compareNow)

	assert.Equal(t, 3, cmp.Summary.TotalChanges)
	assert.Equal(t, 1, cmp.Summary.CategorizedChanges[domain.CategoryResources])
	assert.Equal(t, 2, cmp.Summary.CategorizedChanges[domain.CategoryScope])
}

func TestCompare_OverallImpactFromHighCount(t *testing.T) {
	scen := scenarioFrom(domain.PlanningSnapshot{
		Projects: []domain.Project{
			{ID: "P1", Name: "a"}, {ID: "P2", Name: "b"}, {ID: "P3", Name: "c"},
			{ID: "P4", Name: "d"}, {ID: "P5", Name: "e"}, {ID: "P6", Name: "f"},
		},
	})

	// All six projects removed live: six high-impact changes.
	cmp := Compare(scen, domain.PlanningSnapshot{}, compareNow)
	assert.Equal(t, domain.ImpactHigh, cmp.Summary.ImpactLevel)

	// Three high-impact changes: medium overall.
	scen3 := scenarioFrom(domain.PlanningSnapshot{
		Projects: []domain.Project{{ID: "P1", Name: "a"}, {ID: "P2", Name: "b"}, {ID: "P3", Name: "c"}},
	})
	cmp = Compare(scen3, domain.PlanningSnapshot{}, compareNow)
	assert.Equal(t, domain.ImpactMedium, cmp.Summary.ImpactLevel)
}

func TestCompare_Deterministic(t *testing.T) {
	live := domain.PlanningSnapshot{
		Projects: []domain.Project{
			{ID: "P2", Name: "Beta", Budget: 2},
			{ID: "P1", Name: "Alpha", Budget: 1},
		},
		Divisions: []domain.Division{{ID: "D1", Name: "Eng"}},
	}
	scen := scenarioFrom(domain.PlanningSnapshot{})

	first := Compare(scen, live, compareNow)
	second := Compare(scen, live, compareNow)

	assert.Equal(t, first, second)
	require.Len(t, first.Changes, 3)
	assert.Equal(t, "P1", first.Changes[0].EntityID, "changes sorted by entity id within each collection")
	assert.Equal(t, "P2", first.Changes[1].EntityID)
}

func TestCompare_EpicEffortImpact(t *testing.T) {
	live := domain.PlanningSnapshot{
		Epics: []domain.Epic{{ID: "E1", Name: "Login", EstimatedEffort: 100}},
	}
	scen := scenarioFrom(live)
	live.Epics[0].EstimatedEffort = 150

	cmp := Compare(scen, live, compareNow)
	require.Len(t, cmp.Changes, 1)
	assert.Equal(t, domain.CategoryScope, cmp.Changes[0].Category)
	assert.Equal(t, domain.ImpactMedium, cmp.Changes[0].Impact)
}
