package compare

import (
	"sort"

	"github.com/alexanderramin/whatif/internal/domain"
)

func indexProjects(in []domain.Project) map[string]domain.Project {
	out := make(map[string]domain.Project, len(in))
	for _, p := range in {
		out[p.ID] = p
	}
	return out
}

func indexTeams(in []domain.Team) map[string]domain.Team {
	out := make(map[string]domain.Team, len(in))
	for _, t := range in {
		out[t.ID] = t
	}
	return out
}

func indexPeople(in []domain.Person) map[string]domain.Person {
	out := make(map[string]domain.Person, len(in))
	for _, p := range in {
		out[p.ID] = p
	}
	return out
}

func indexEpics(in []domain.Epic) map[string]domain.Epic {
	out := make(map[string]domain.Epic, len(in))
	for _, e := range in {
		out[e.ID] = e
	}
	return out
}

func indexAllocations(in []domain.Allocation) map[string]domain.Allocation {
	out := make(map[string]domain.Allocation, len(in))
	for _, a := range in {
		out[a.ID] = a
	}
	return out
}

func projectIDs(in []domain.Project) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = p.ID
	}
	return out
}

func teamIDs(in []domain.Team) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = t.ID
	}
	return out
}

func sortedProjects(in []domain.Project) []domain.Project {
	out := make([]domain.Project, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedTeams(in []domain.Team) []domain.Team {
	out := make([]domain.Team, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedPeople(in []domain.Person) []domain.Person {
	out := make([]domain.Person, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedEpics(in []domain.Epic) []domain.Epic {
	out := make([]domain.Epic, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedAllocations(in []domain.Allocation) []domain.Allocation {
	out := make([]domain.Allocation, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedReleases(in []domain.Release) []domain.Release {
	out := make([]domain.Release, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedGoals(in []domain.Goal) []domain.Goal {
	out := make([]domain.Goal, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func divisionNames(in []domain.Division) []idName {
	out := make([]idName, len(in))
	for i, d := range in {
		out[i] = idName{ID: d.ID, Name: d.Name}
	}
	return out
}

func roleNames(in []domain.Role) []idName {
	out := make([]idName, len(in))
	for i, r := range in {
		out[i] = idName{ID: r.ID, Name: r.Name}
	}
	return out
}

func runWorkNames(in []domain.RunWorkCategory) []idName {
	out := make([]idName, len(in))
	for i, c := range in {
		out[i] = idName{ID: c.ID, Name: c.Name}
	}
	return out
}
