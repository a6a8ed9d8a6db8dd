// Package template defines the declarative modification strategies that
// scenario templates apply to a freshly cloned snapshot. Each strategy is a
// pure function from (snapshot, params) to a new snapshot; the registry maps
// a template's configured strategy name to its implementation, so new
// templates can be added without touching the store or the comparator.
package template

import (
	"fmt"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/snapshot"
)

// Params carries the caller-supplied parameter values plus the reference
// time a strategy may need (e.g. to decide which hires are still planned).
type Params struct {
	Now    time.Time
	Values map[string]float64
}

// Value returns the named parameter or the fallback.
func (p Params) Value(key string, fallback float64) float64 {
	if v, ok := p.Values[key]; ok {
		return v
	}
	return fallback
}

// Strategy transforms a snapshot. Implementations must not mutate the
// input; they clone first and edit the clone.
type Strategy func(snap domain.PlanningSnapshot, params Params) (domain.PlanningSnapshot, error)

var strategies = map[string]Strategy{
	"scale_budgets":  scaleBudgets,
	"scale_capacity": scaleCapacity,
	"hiring_freeze":  hiringFreeze,
	"shift_timeline": shiftTimeline,
}

// Resolve looks up a strategy by its registered name.
func Resolve(name string) (Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// scaleBudgets multiplies every project budget by (100-percentage)/100.
// A negative percentage increases budgets.
func scaleBudgets(snap domain.PlanningSnapshot, params Params) (domain.PlanningSnapshot, error) {
	pct := params.Value("percentage", 0)
	if pct > 100 {
		return domain.PlanningSnapshot{}, fmt.Errorf("budget cut percentage %.1f exceeds 100", pct)
	}
	out := snapshot.Clone(snap)
	factor := (100 - pct) / 100
	for i := range out.Projects {
		out.Projects[i].Budget *= factor
	}
	return out, nil
}

// scaleCapacity multiplies every team capacity by (100+percentage)/100.
func scaleCapacity(snap domain.PlanningSnapshot, params Params) (domain.PlanningSnapshot, error) {
	pct := params.Value("percentage", 0)
	if pct < -100 {
		return domain.PlanningSnapshot{}, fmt.Errorf("capacity change %.1f drops below zero", pct)
	}
	out := snapshot.Clone(snap)
	factor := (100 + pct) / 100
	for i := range out.Teams {
		out.Teams[i].Capacity *= factor
	}
	return out, nil
}

// hiringFreeze removes people whose start date is after the reference time
// (planned hires), along with their allocations and team memberships.
func hiringFreeze(snap domain.PlanningSnapshot, params Params) (domain.PlanningSnapshot, error) {
	out := snapshot.Clone(snap)

	frozen := make(map[string]bool)
	kept := out.People[:0]
	for _, p := range out.People {
		if p.StartDate.After(params.Now) {
			frozen[p.ID] = true
			continue
		}
		kept = append(kept, p)
	}
	out.People = kept

	allocs := out.Allocations[:0]
	for _, a := range out.Allocations {
		if !frozen[a.PersonID] {
			allocs = append(allocs, a)
		}
	}
	out.Allocations = allocs

	members := out.TeamMembers[:0]
	for _, m := range out.TeamMembers {
		if !frozen[m.PersonID] {
			members = append(members, m)
		}
	}
	out.TeamMembers = members

	return out, nil
}

// shiftTimeline moves every project start/end date, release date, and goal
// target date by the given number of days.
func shiftTimeline(snap domain.PlanningSnapshot, params Params) (domain.PlanningSnapshot, error) {
	days := int(params.Value("days", 0))
	out := snapshot.Clone(snap)
	for i := range out.Projects {
		out.Projects[i].StartDate = out.Projects[i].StartDate.AddDate(0, 0, days)
		out.Projects[i].EndDate = out.Projects[i].EndDate.AddDate(0, 0, days)
	}
	for i := range out.Releases {
		out.Releases[i].ReleaseDate = out.Releases[i].ReleaseDate.AddDate(0, 0, days)
	}
	for i := range out.Goals {
		out.Goals[i].TargetDate = out.Goals[i].TargetDate.AddDate(0, 0, days)
	}
	return out, nil
}
