package domain

// PlanningConfig holds the scalar planning configuration shared by the
// financial and scheduling calculators.
type PlanningConfig struct {
	WorkingDaysPerWeek  int    `json:"workingDaysPerWeek"`
	WorkingHoursPerDay  int    `json:"workingHoursPerDay"`
	WorkingDaysPerYear  int    `json:"workingDaysPerYear"`
	CurrencySymbol      string `json:"currencySymbol"`
	IterationLengthDays int    `json:"iterationLengthDays"`
}

// DefaultPlanningConfig returns the configuration used when none has been
// persisted yet.
func DefaultPlanningConfig() PlanningConfig {
	return PlanningConfig{
		WorkingDaysPerWeek:  5,
		WorkingHoursPerDay:  8,
		WorkingDaysPerYear:  260,
		CurrencySymbol:      "$",
		IterationLengthDays: 14,
	}
}

// IsZero reports whether the config has never been populated.
func (c PlanningConfig) IsZero() bool {
	return c == PlanningConfig{}
}

// PlanningSnapshot bundles every mutable planning collection. A snapshot
// never aliases collections owned by another snapshot; see the snapshot
// package for the cloning rules.
type PlanningSnapshot struct {
	People                  []Person                 `json:"people"`
	Teams                   []Team                   `json:"teams"`
	Projects                []Project                `json:"projects"`
	Epics                   []Epic                   `json:"epics"`
	Allocations             []Allocation             `json:"allocations"`
	Divisions               []Division               `json:"divisions"`
	Roles                   []Role                   `json:"roles"`
	Releases                []Release                `json:"releases"`
	ProjectSolutions        []ProjectSolution        `json:"projectSolutions"`
	ProjectSkills           []ProjectSkill           `json:"projectSkills"`
	RunWorkCategories       []RunWorkCategory        `json:"runWorkCategories"`
	TeamMembers             []TeamMember             `json:"teamMembers"`
	DivisionLeadershipRoles []DivisionLeadershipRole `json:"divisionLeadershipRoles"`
	UnmappedPeople          []UnmappedPerson         `json:"unmappedPeople"`
	ActualAllocations       []ActualAllocation       `json:"actualAllocations"`
	IterationSnapshots      []IterationSnapshot      `json:"iterationSnapshots"`
	Goals                   []Goal                   `json:"goals"`
	GoalEpicLinks           []GoalEpicLink           `json:"goalEpicLinks"`
	GoalMilestoneLinks      []GoalMilestoneLink      `json:"goalMilestoneLinks"`
	GoalTeamLinks           []GoalTeamLink           `json:"goalTeamLinks"`
	Config                  PlanningConfig           `json:"config"`
}

// Normalize replaces nil collections with empty ones and a zero config with
// the defaults, so partially-initialized state never propagates nils.
func (s *PlanningSnapshot) Normalize() {
	if s.People == nil {
		s.People = []Person{}
	}
	if s.Teams == nil {
		s.Teams = []Team{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Epics == nil {
		s.Epics = []Epic{}
	}
	if s.Allocations == nil {
		s.Allocations = []Allocation{}
	}
	if s.Divisions == nil {
		s.Divisions = []Division{}
	}
	if s.Roles == nil {
		s.Roles = []Role{}
	}
	if s.Releases == nil {
		s.Releases = []Release{}
	}
	if s.ProjectSolutions == nil {
		s.ProjectSolutions = []ProjectSolution{}
	}
	if s.ProjectSkills == nil {
		s.ProjectSkills = []ProjectSkill{}
	}
	if s.RunWorkCategories == nil {
		s.RunWorkCategories = []RunWorkCategory{}
	}
	if s.TeamMembers == nil {
		s.TeamMembers = []TeamMember{}
	}
	if s.DivisionLeadershipRoles == nil {
		s.DivisionLeadershipRoles = []DivisionLeadershipRole{}
	}
	if s.UnmappedPeople == nil {
		s.UnmappedPeople = []UnmappedPerson{}
	}
	if s.ActualAllocations == nil {
		s.ActualAllocations = []ActualAllocation{}
	}
	if s.IterationSnapshots == nil {
		s.IterationSnapshots = []IterationSnapshot{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.GoalEpicLinks == nil {
		s.GoalEpicLinks = []GoalEpicLink{}
	}
	if s.GoalMilestoneLinks == nil {
		s.GoalMilestoneLinks = []GoalMilestoneLink{}
	}
	if s.GoalTeamLinks == nil {
		s.GoalTeamLinks = []GoalTeamLink{}
	}
	if s.Config.IsZero() {
		s.Config = DefaultPlanningConfig()
	}
}

// EntityCounts summarizes collection sizes for display.
type EntityCounts struct {
	People      int
	Teams       int
	Projects    int
	Epics       int
	Allocations int
	Goals       int
}

// Counts returns the sizes of the headline collections.
func (s *PlanningSnapshot) Counts() EntityCounts {
	return EntityCounts{
		People:      len(s.People),
		Teams:       len(s.Teams),
		Projects:    len(s.Projects),
		Epics:       len(s.Epics),
		Allocations: len(s.Allocations),
		Goals:       len(s.Goals),
	}
}
