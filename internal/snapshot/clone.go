// Package snapshot produces isolated deep copies of the planning dataset.
// The clone walks a known, finite schema rather than reflecting over
// arbitrary values, which keeps the independence guarantee provable.
package snapshot

import (
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Clone returns a PlanningSnapshot that shares no mutable state with the
// input. Every collection is reallocated; pointer fields inside entities
// are re-pointed at fresh values. Nil collections come back empty and a
// zero config comes back as the defaults, so a partially-initialized live
// state never propagates nils into a scenario.
func Clone(live domain.PlanningSnapshot) domain.PlanningSnapshot {
	out := domain.PlanningSnapshot{
		People:                  clonePeople(live.People),
		Teams:                   copySlice(live.Teams),
		Projects:                copySlice(live.Projects),
		Epics:                   copySlice(live.Epics),
		Allocations:             copySlice(live.Allocations),
		Divisions:               copySlice(live.Divisions),
		Roles:                   copySlice(live.Roles),
		Releases:                copySlice(live.Releases),
		ProjectSolutions:        copySlice(live.ProjectSolutions),
		ProjectSkills:           copySlice(live.ProjectSkills),
		RunWorkCategories:       copySlice(live.RunWorkCategories),
		TeamMembers:             copySlice(live.TeamMembers),
		DivisionLeadershipRoles: copySlice(live.DivisionLeadershipRoles),
		UnmappedPeople:          copySlice(live.UnmappedPeople),
		ActualAllocations:       copySlice(live.ActualAllocations),
		IterationSnapshots:      copySlice(live.IterationSnapshots),
		Goals:                   copySlice(live.Goals),
		GoalEpicLinks:           copySlice(live.GoalEpicLinks),
		GoalMilestoneLinks:      copySlice(live.GoalMilestoneLinks),
		GoalTeamLinks:           copySlice(live.GoalTeamLinks),
		Config:                  live.Config,
	}
	out.Normalize()
	return out
}

// copySlice reallocates a slice of plain value structs. Element types used
// with this helper must not contain pointers, maps, or nested slices.
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// clonePeople handles the one entity with a pointer field.
func clonePeople(in []domain.Person) []domain.Person {
	out := make([]domain.Person, len(in))
	for i, p := range in {
		p.EndDate = cloneTimePtr(p.EndDate)
		out[i] = p
	}
	return out
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
