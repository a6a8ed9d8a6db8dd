package importer

import (
	"fmt"

	"github.com/alexanderramin/whatif/internal/domain"
)

// ValidatePlan checks a plan file's referential integrity and value ranges
// before it replaces the live dataset. It returns every problem found, not
// just the first, so a bad file can be fixed in one pass.
func ValidatePlan(snap *domain.PlanningSnapshot) []error {
	var errs []error

	teamIDs := make(map[string]bool, len(snap.Teams))
	for i, t := range snap.Teams {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("teams[%d]: id is required", i))
			continue
		}
		if teamIDs[t.ID] {
			errs = append(errs, fmt.Errorf("teams[%d]: duplicate id %q", i, t.ID))
		}
		teamIDs[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("team %q: name is required", t.ID))
		}
		if t.Capacity < 0 {
			errs = append(errs, fmt.Errorf("team %q: capacity %.1f is negative", t.ID, t.Capacity))
		}
	}

	personIDs := make(map[string]bool, len(snap.People))
	for i, p := range snap.People {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("people[%d]: id is required", i))
			continue
		}
		if personIDs[p.ID] {
			errs = append(errs, fmt.Errorf("people[%d]: duplicate id %q", i, p.ID))
		}
		personIDs[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("person %q: name is required", p.ID))
		}
		if p.TeamID != "" && !teamIDs[p.TeamID] {
			errs = append(errs, fmt.Errorf("person %q: unknown team %q", p.ID, p.TeamID))
		}
		if p.AnnualSalary < 0 {
			errs = append(errs, fmt.Errorf("person %q: salary is negative", p.ID))
		}
		if p.EndDate != nil && !p.EndDate.After(p.StartDate) {
			errs = append(errs, fmt.Errorf("person %q: end date is not after start date", p.ID))
		}
	}

	projectIDs := make(map[string]bool, len(snap.Projects))
	for i, pr := range snap.Projects {
		if pr.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
			continue
		}
		if projectIDs[pr.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, pr.ID))
		}
		projectIDs[pr.ID] = true
		if pr.Name == "" {
			errs = append(errs, fmt.Errorf("project %q: name is required", pr.ID))
		}
		if pr.Budget < 0 {
			errs = append(errs, fmt.Errorf("project %q: budget is negative", pr.ID))
		}
		if !pr.EndDate.IsZero() && !pr.StartDate.IsZero() && pr.EndDate.Before(pr.StartDate) {
			errs = append(errs, fmt.Errorf("project %q: end date precedes start date", pr.ID))
		}
	}

	epicIDs := make(map[string]bool, len(snap.Epics))
	for i, e := range snap.Epics {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("epics[%d]: id is required", i))
			continue
		}
		epicIDs[e.ID] = true
		if e.ProjectID != "" && !projectIDs[e.ProjectID] {
			errs = append(errs, fmt.Errorf("epic %q: unknown project %q", e.ID, e.ProjectID))
		}
		if e.EstimatedEffort < 0 {
			errs = append(errs, fmt.Errorf("epic %q: estimated effort is negative", e.ID))
		}
	}

	for i, a := range snap.Allocations {
		label := a.ID
		if label == "" {
			label = fmt.Sprintf("allocations[%d]", i)
		}
		if !personIDs[a.PersonID] {
			errs = append(errs, fmt.Errorf("allocation %s: unknown person %q", label, a.PersonID))
		}
		if a.TeamID != "" && !teamIDs[a.TeamID] {
			errs = append(errs, fmt.Errorf("allocation %s: unknown team %q", label, a.TeamID))
		}
		if a.EpicID != "" && !epicIDs[a.EpicID] {
			errs = append(errs, fmt.Errorf("allocation %s: unknown epic %q", label, a.EpicID))
		}
		if a.EpicID != "" && a.RunWorkCategoryID != "" {
			errs = append(errs, fmt.Errorf("allocation %s: both epic and run-work category set", label))
		}
		if a.Percentage < 0 || a.Percentage > 100 {
			errs = append(errs, fmt.Errorf("allocation %s: percentage %.1f out of range [0,100]", label, a.Percentage))
		}
	}

	for i, m := range snap.TeamMembers {
		if !teamIDs[m.TeamID] {
			errs = append(errs, fmt.Errorf("teamMembers[%d]: unknown team %q", i, m.TeamID))
		}
		if !personIDs[m.PersonID] {
			errs = append(errs, fmt.Errorf("teamMembers[%d]: unknown person %q", i, m.PersonID))
		}
	}

	for i, r := range snap.Releases {
		if r.ProjectID != "" && !projectIDs[r.ProjectID] {
			errs = append(errs, fmt.Errorf("releases[%d]: unknown project %q", i, r.ProjectID))
		}
	}

	return errs
}
