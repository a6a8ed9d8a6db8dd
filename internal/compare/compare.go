// Package compare computes the structured delta between a scenario's stored
// snapshot and the current live dataset. Everything in this package is a
// pure function of its inputs: no hidden state, deterministic output
// ordering, safe to call repeatedly and concurrently.
package compare

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Compare produces the full delta report for a scenario against live data.
// The report frames the scenario side as "old" and the live side as "new":
// an entity present live but absent from the scenario snapshot is "added".
func Compare(scenario domain.Scenario, live domain.PlanningSnapshot, now time.Time) domain.ScenarioComparison {
	scen := scenario.Data

	var changes []domain.ScenarioChange
	changes = append(changes, diffProjects(scen.Projects, live.Projects)...)
	changes = append(changes, diffTeams(scen.Teams, live.Teams)...)
	changes = append(changes, diffPeople(scen.People, live.People)...)
	changes = append(changes, diffEpics(scen.Epics, live.Epics)...)
	changes = append(changes, diffAllocations(scen.Allocations, live.Allocations)...)
	changes = append(changes, diffNameOnly("division", domain.CategoryOrganizational, divisionNames(scen.Divisions), divisionNames(live.Divisions))...)
	changes = append(changes, diffNameOnly("role", domain.CategoryOrganizational, roleNames(scen.Roles), roleNames(live.Roles))...)
	changes = append(changes, diffNameOnly("runWorkCategory", domain.CategoryOrganizational, runWorkNames(scen.RunWorkCategories), runWorkNames(live.RunWorkCategories))...)
	changes = append(changes, diffReleases(scen.Releases, live.Releases)...)
	changes = append(changes, diffGoals(scen.Goals, live.Goals)...)

	return domain.ScenarioComparison{
		ScenarioID:      scenario.ID,
		ScenarioName:    scenario.Name,
		ComparedAt:      now,
		Summary:         summarize(changes),
		Changes:         changes,
		FinancialImpact: financialImpact(scen, live),
		ResourceImpact:  resourceImpact(scen, live),
		TimelineImpact:  timelineImpact(scen, live),
	}
}

func summarize(changes []domain.ScenarioChange) domain.ComparisonSummary {
	categorized := make(map[domain.ChangeCategory]int)
	highCount := 0
	for _, c := range changes {
		categorized[c.Category]++
		if c.Impact == domain.ImpactHigh {
			highCount++
		}
	}
	return domain.ComparisonSummary{
		TotalChanges:       len(changes),
		CategorizedChanges: categorized,
		ImpactLevel:        overallImpact(highCount),
	}
}

func financialImpact(scen, live domain.PlanningSnapshot) domain.FinancialImpact {
	scenByID := indexProjects(scen.Projects)
	liveByID := indexProjects(live.Projects)

	var out domain.FinancialImpact
	var scenTotal float64
	for _, p := range scen.Projects {
		scenTotal += p.Budget
	}

	for _, id := range unionIDs(projectIDs(scen.Projects), projectIDs(live.Projects)) {
		s := scenByID[id]
		l, inLive := liveByID[id]
		delta := l.Budget - s.Budget
		if delta == 0 {
			continue
		}
		name := l.Name
		if !inLive {
			name = s.Name
		}
		out.ProjectCostChanges = append(out.ProjectCostChanges, domain.ProjectCostChange{
			ProjectID:      id,
			ProjectName:    name,
			ScenarioBudget: s.Budget,
			LiveBudget:     l.Budget,
			Delta:          delta,
		})
		out.TotalCostDifference += delta
	}

	if scenTotal != 0 {
		out.BudgetVariancePct = out.TotalCostDifference / scenTotal * 100
	}
	return out
}

func resourceImpact(scen, live domain.PlanningSnapshot) domain.ResourceImpact {
	scenByID := indexTeams(scen.Teams)
	liveByID := indexTeams(live.Teams)

	var out domain.ResourceImpact
	for _, id := range unionIDs(teamIDs(scen.Teams), teamIDs(live.Teams)) {
		s := scenByID[id]
		l, inLive := liveByID[id]
		delta := l.Capacity - s.Capacity
		if delta == 0 {
			continue
		}
		name := l.Name
		if !inLive {
			name = s.Name
		}
		out.TeamCapacityChanges = append(out.TeamCapacityChanges, domain.TeamCapacityChange{
			TeamID:           id,
			TeamName:         name,
			ScenarioCapacity: s.Capacity,
			LiveCapacity:     l.Capacity,
			Delta:            delta,
		})
	}

	// Headcount compares raw counts; the added/removed pair is never both
	// non-zero.
	if d := len(live.People) - len(scen.People); d > 0 {
		out.PeopleAdded = d
	} else {
		out.PeopleRemoved = -d
	}

	scenPeople := indexPeople(scen.People)
	for _, p := range live.People {
		if prev, ok := scenPeople[p.ID]; ok && prev.TeamID != p.TeamID {
			out.PeopleReallocated++
		}
	}
	return out
}

func timelineImpact(scen, live domain.PlanningSnapshot) domain.TimelineImpact {
	scenByID := indexProjects(scen.Projects)

	var out domain.TimelineImpact
	for _, l := range sortedProjects(live.Projects) {
		s, ok := scenByID[l.ID]
		if !ok {
			continue
		}
		if !s.StartDate.Equal(l.StartDate) {
			out.ProjectDateChanges = append(out.ProjectDateChanges, dateChange(l, "startDate", s.StartDate, l.StartDate))
		}
		if !s.EndDate.Equal(l.EndDate) {
			out.ProjectDateChanges = append(out.ProjectDateChanges, dateChange(l, "endDate", s.EndDate, l.EndDate))
		}
	}
	return out
}

func dateChange(p domain.Project, field string, scenDate, liveDate time.Time) domain.ProjectDateChange {
	return domain.ProjectDateChange{
		ProjectID:    p.ID,
		ProjectName:  p.Name,
		Field:        field,
		ScenarioDate: scenDate,
		LiveDate:     liveDate,
		DeltaDays:    deltaDays(scenDate, liveDate),
	}
}

func deltaDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// newChange builds a ScenarioChange with a deterministic id, so repeated
// comparisons of the same inputs are byte-identical.
func newChange(entityType, entityID, entityName string, ct domain.ChangeType, cat domain.ChangeCategory, impact domain.ImpactLevel, desc string, details ...domain.FieldChange) domain.ScenarioChange {
	return domain.ScenarioChange{
		ID:          fmt.Sprintf("%s:%s:%s:%s", entityType, entityID, cat, ct),
		Category:    cat,
		EntityType:  entityType,
		EntityID:    entityID,
		EntityName:  entityName,
		ChangeType:  ct,
		Description: desc,
		Impact:      impact,
		Details:     details,
	}
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
