package compare

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Field-level comparison is scoped to business-significant fields per entity
// type. Each differ walks live ids in sorted order for added/modified
// changes, then scenario ids in sorted order for removed changes, which
// keeps the report ordering stable.

func diffProjects(scen, live []domain.Project) []domain.ScenarioChange {
	scenByID := indexProjects(scen)
	liveByID := indexProjects(live)

	var changes []domain.ScenarioChange
	for _, l := range sortedProjects(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("project", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryScope, domain.ImpactMedium,
				fmt.Sprintf("Project %q added with budget %s", l.Name, Currency(l.Budget))))
			continue
		}

		if s.Budget != l.Budget {
			delta := l.Budget - s.Budget
			changes = append(changes, newChange("project", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryFinancial, budgetImpact(delta),
				fmt.Sprintf("Project %q budget changed by %s", l.Name, SignedCurrency(delta)),
				fieldChange("budget", "Budget", s.Budget, l.Budget, Currency(s.Budget), Currency(l.Budget))))
		}

		var dateDetails []domain.FieldChange
		maxShift := 0
		if !s.StartDate.Equal(l.StartDate) {
			dateDetails = append(dateDetails, fieldChange("startDate", "Start Date", s.StartDate, l.StartDate, Date(s.StartDate), Date(l.StartDate)))
			maxShift = absInt(deltaDays(s.StartDate, l.StartDate))
		}
		if !s.EndDate.Equal(l.EndDate) {
			dateDetails = append(dateDetails, fieldChange("endDate", "End Date", s.EndDate, l.EndDate, Date(s.EndDate), Date(l.EndDate)))
			if d := absInt(deltaDays(s.EndDate, l.EndDate)); d > maxShift {
				maxShift = d
			}
		}
		if len(dateDetails) > 0 {
			changes = append(changes, newChange("project", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryTimeline, dateImpact(maxShift),
				fmt.Sprintf("Project %q dates shifted", l.Name), dateDetails...))
		}

		var scopeDetails []domain.FieldChange
		if s.Name != l.Name {
			scopeDetails = append(scopeDetails, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
		}
		if s.Status != l.Status {
			scopeDetails = append(scopeDetails, fieldChange("status", "Status", s.Status, l.Status, string(s.Status), string(l.Status)))
		}
		if len(scopeDetails) > 0 {
			changes = append(changes, newChange("project", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryScope, domain.ImpactLow,
				fmt.Sprintf("Project %q details changed", l.Name), scopeDetails...))
		}
	}

	for _, s := range sortedProjects(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("project", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryScope, domain.ImpactHigh,
				fmt.Sprintf("Project %q removed (budget %s)", s.Name, Currency(s.Budget))))
		}
	}
	return changes
}

func diffTeams(scen, live []domain.Team) []domain.ScenarioChange {
	scenByID := indexTeams(scen)
	liveByID := indexTeams(live)

	var changes []domain.ScenarioChange
	for _, l := range sortedTeams(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("team", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryResources, domain.ImpactMedium,
				fmt.Sprintf("Team %q added with capacity %s", l.Name, Hours(l.Capacity))))
			continue
		}

		if s.Capacity != l.Capacity {
			delta := l.Capacity - s.Capacity
			changes = append(changes, newChange("team", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryResources, capacityImpact(delta),
				fmt.Sprintf("Team %q capacity changed by %s", l.Name, SignedHours(delta)),
				fieldChange("capacity", "Capacity", s.Capacity, l.Capacity, Hours(s.Capacity), Hours(l.Capacity))))
		}

		var orgDetails []domain.FieldChange
		if s.Name != l.Name {
			orgDetails = append(orgDetails, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
		}
		if s.DivisionID != l.DivisionID {
			orgDetails = append(orgDetails, fieldChange("divisionId", "Division", s.DivisionID, l.DivisionID, s.DivisionID, l.DivisionID))
		}
		if len(orgDetails) > 0 {
			changes = append(changes, newChange("team", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryOrganizational, domain.ImpactLow,
				fmt.Sprintf("Team %q reorganized", l.Name), orgDetails...))
		}
	}

	for _, s := range sortedTeams(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("team", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryResources, domain.ImpactHigh,
				fmt.Sprintf("Team %q removed (capacity %s)", s.Name, Hours(s.Capacity))))
		}
	}
	return changes
}

func diffPeople(scen, live []domain.Person) []domain.ScenarioChange {
	scenByID := indexPeople(scen)
	liveByID := indexPeople(live)

	var changes []domain.ScenarioChange
	for _, l := range sortedPeople(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("person", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryResources, domain.ImpactLow,
				fmt.Sprintf("%s joined", l.Name)))
			continue
		}

		if s.AnnualSalary != l.AnnualSalary {
			delta := l.AnnualSalary - s.AnnualSalary
			changes = append(changes, newChange("person", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryFinancial, budgetImpact(delta),
				fmt.Sprintf("%s salary changed by %s", l.Name, SignedCurrency(delta)),
				fieldChange("annualSalary", "Annual Salary", s.AnnualSalary, l.AnnualSalary, Currency(s.AnnualSalary), Currency(l.AnnualSalary))))
		}

		var orgDetails []domain.FieldChange
		if s.Name != l.Name {
			orgDetails = append(orgDetails, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
		}
		if s.RoleID != l.RoleID {
			orgDetails = append(orgDetails, fieldChange("roleId", "Role", s.RoleID, l.RoleID, s.RoleID, l.RoleID))
		}
		if s.TeamID != l.TeamID {
			orgDetails = append(orgDetails, fieldChange("teamId", "Team", s.TeamID, l.TeamID, s.TeamID, l.TeamID))
		}
		if len(orgDetails) > 0 {
			changes = append(changes, newChange("person", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryOrganizational, domain.ImpactLow,
				fmt.Sprintf("%s reassigned", l.Name), orgDetails...))
		}
	}

	for _, s := range sortedPeople(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("person", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryResources, domain.ImpactMedium,
				fmt.Sprintf("%s left", s.Name)))
		}
	}
	return changes
}

func diffEpics(scen, live []domain.Epic) []domain.ScenarioChange {
	scenByID := indexEpics(scen)
	liveByID := indexEpics(live)

	var changes []domain.ScenarioChange
	for _, l := range sortedEpics(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("epic", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryScope, domain.ImpactLow,
				fmt.Sprintf("Epic %q added", l.Name)))
			continue
		}

		var details []domain.FieldChange
		impact := domain.ImpactLow
		if s.EstimatedEffort != l.EstimatedEffort {
			details = append(details, fieldChange("estimatedEffort", "Estimated Effort", s.EstimatedEffort, l.EstimatedEffort, Hours(s.EstimatedEffort), Hours(l.EstimatedEffort)))
			impact = effortImpact(l.EstimatedEffort - s.EstimatedEffort)
		}
		if s.Name != l.Name {
			details = append(details, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
		}
		if s.Status != l.Status {
			details = append(details, fieldChange("status", "Status", s.Status, l.Status, string(s.Status), string(l.Status)))
		}
		if len(details) > 0 {
			changes = append(changes, newChange("epic", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryScope, impact,
				fmt.Sprintf("Epic %q changed", l.Name), details...))
		}
	}

	for _, s := range sortedEpics(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("epic", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryScope, domain.ImpactMedium,
				fmt.Sprintf("Epic %q removed", s.Name)))
		}
	}
	return changes
}

func diffAllocations(scen, live []domain.Allocation) []domain.ScenarioChange {
	scenByID := indexAllocations(scen)
	liveByID := indexAllocations(live)

	var changes []domain.ScenarioChange
	for _, l := range sortedAllocations(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("allocation", l.ID, allocationLabel(l),
				domain.ChangeAdded, domain.CategoryResources, domain.ImpactLow,
				fmt.Sprintf("Allocation %s added at %.0f%%", allocationLabel(l), l.Percentage)))
			continue
		}
		if s.Percentage != l.Percentage {
			changes = append(changes, newChange("allocation", l.ID, allocationLabel(l),
				domain.ChangeModified, domain.CategoryResources, domain.ImpactLow,
				fmt.Sprintf("Allocation %s changed from %.0f%% to %.0f%%", allocationLabel(l), s.Percentage, l.Percentage),
				fieldChange("percentage", "Percentage", s.Percentage, l.Percentage,
					fmt.Sprintf("%.0f%%", s.Percentage), fmt.Sprintf("%.0f%%", l.Percentage))))
		}
	}

	for _, s := range sortedAllocations(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("allocation", s.ID, allocationLabel(s),
				domain.ChangeRemoved, domain.CategoryResources, domain.ImpactLow,
				fmt.Sprintf("Allocation %s removed", allocationLabel(s))))
		}
	}
	return changes
}

func diffReleases(scen, live []domain.Release) []domain.ScenarioChange {
	scenByID := make(map[string]domain.Release, len(scen))
	for _, r := range scen {
		scenByID[r.ID] = r
	}
	liveByID := make(map[string]domain.Release, len(live))
	for _, r := range live {
		liveByID[r.ID] = r
	}

	var changes []domain.ScenarioChange
	for _, l := range sortedReleases(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("release", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryTimeline, domain.ImpactLow,
				fmt.Sprintf("Release %q added for %s", l.Name, Date(l.ReleaseDate))))
			continue
		}

		if !s.ReleaseDate.Equal(l.ReleaseDate) {
			shift := deltaDays(s.ReleaseDate, l.ReleaseDate)
			changes = append(changes, newChange("release", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryTimeline, dateImpact(absInt(shift)),
				fmt.Sprintf("Release %q moved by %d days", l.Name, shift),
				fieldChange("releaseDate", "Release Date", s.ReleaseDate, l.ReleaseDate, Date(s.ReleaseDate), Date(l.ReleaseDate))))
		}

		if s.Name != l.Name || s.Status != l.Status {
			var details []domain.FieldChange
			if s.Name != l.Name {
				details = append(details, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
			}
			if s.Status != l.Status {
				details = append(details, fieldChange("status", "Status", s.Status, l.Status, s.Status, l.Status))
			}
			changes = append(changes, newChange("release", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryScope, domain.ImpactLow,
				fmt.Sprintf("Release %q details changed", l.Name), details...))
		}
	}

	for _, s := range sortedReleases(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("release", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryTimeline, domain.ImpactMedium,
				fmt.Sprintf("Release %q removed", s.Name)))
		}
	}
	return changes
}

func diffGoals(scen, live []domain.Goal) []domain.ScenarioChange {
	scenByID := make(map[string]domain.Goal, len(scen))
	for _, g := range scen {
		scenByID[g.ID] = g
	}
	liveByID := make(map[string]domain.Goal, len(live))
	for _, g := range live {
		liveByID[g.ID] = g
	}

	var changes []domain.ScenarioChange
	for _, l := range sortedGoals(live) {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange("goal", l.ID, l.Name,
				domain.ChangeAdded, domain.CategoryScope, domain.ImpactLow,
				fmt.Sprintf("Goal %q added", l.Name)))
			continue
		}

		if !s.TargetDate.Equal(l.TargetDate) {
			shift := deltaDays(s.TargetDate, l.TargetDate)
			changes = append(changes, newChange("goal", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryTimeline, dateImpact(absInt(shift)),
				fmt.Sprintf("Goal %q target moved by %d days", l.Name, shift),
				fieldChange("targetDate", "Target Date", s.TargetDate, l.TargetDate, Date(s.TargetDate), Date(l.TargetDate))))
		}

		if s.Name != l.Name || s.Status != l.Status {
			var details []domain.FieldChange
			if s.Name != l.Name {
				details = append(details, fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name))
			}
			if s.Status != l.Status {
				details = append(details, fieldChange("status", "Status", s.Status, l.Status, s.Status, l.Status))
			}
			changes = append(changes, newChange("goal", l.ID, l.Name,
				domain.ChangeModified, domain.CategoryScope, domain.ImpactLow,
				fmt.Sprintf("Goal %q changed", l.Name), details...))
		}
	}

	for _, s := range sortedGoals(scen) {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange("goal", s.ID, s.Name,
				domain.ChangeRemoved, domain.CategoryScope, domain.ImpactMedium,
				fmt.Sprintf("Goal %q removed", s.Name)))
		}
	}
	return changes
}

// idName is the reduced view used for entity types where any observable
// field change matters but only the name is observable.
type idName struct {
	ID   string
	Name string
}

func diffNameOnly(entityType string, category domain.ChangeCategory, scen, live []idName) []domain.ScenarioChange {
	scenByID := make(map[string]idName, len(scen))
	for _, e := range scen {
		scenByID[e.ID] = e
	}
	liveByID := make(map[string]idName, len(live))
	for _, e := range live {
		liveByID[e.ID] = e
	}

	sort.Slice(live, func(i, j int) bool { return live[i].ID < live[j].ID })
	sort.Slice(scen, func(i, j int) bool { return scen[i].ID < scen[j].ID })

	var changes []domain.ScenarioChange
	for _, l := range live {
		s, ok := scenByID[l.ID]
		if !ok {
			changes = append(changes, newChange(entityType, l.ID, l.Name,
				domain.ChangeAdded, category, domain.ImpactLow,
				fmt.Sprintf("%s %q added", entityType, l.Name)))
			continue
		}
		if s.Name != l.Name {
			changes = append(changes, newChange(entityType, l.ID, l.Name,
				domain.ChangeModified, category, domain.ImpactLow,
				fmt.Sprintf("%s renamed from %q to %q", entityType, s.Name, l.Name),
				fieldChange("name", "Name", s.Name, l.Name, s.Name, l.Name)))
		}
	}
	for _, s := range scen {
		if _, ok := liveByID[s.ID]; !ok {
			changes = append(changes, newChange(entityType, s.ID, s.Name,
				domain.ChangeRemoved, category, domain.ImpactLow,
				fmt.Sprintf("%s %q removed", entityType, s.Name)))
		}
	}
	return changes
}

func allocationLabel(a domain.Allocation) string {
	target := a.EpicID
	if target == "" {
		target = a.RunWorkCategoryID
	}
	return fmt.Sprintf("%s→%s", a.PersonID, target)
}

func fieldChange(field, display string, oldVal, newVal any, oldFmt, newFmt string) domain.FieldChange {
	return domain.FieldChange{
		Field:        field,
		DisplayName:  display,
		OldValue:     oldVal,
		NewValue:     newVal,
		OldFormatted: oldFmt,
		NewFormatted: newFmt,
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
