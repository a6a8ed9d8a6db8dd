package domain

import "time"

// Person is a member of the planning organization. EndDate is set for
// planned departures; a StartDate in the future marks a planned hire.
type Person struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	RoleID       string     `json:"roleId"`
	TeamID       string     `json:"teamId,omitempty"`
	AnnualSalary float64    `json:"annualSalary"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// Team groups people under a division with a per-iteration capacity in hours.
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DivisionID string  `json:"divisionId,omitempty"`
	Capacity   float64 `json:"capacity"`
}

type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Budget    float64       `json:"budget"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Status    ProjectStatus `json:"status"`
	Priority  int           `json:"priority"`
}

type Epic struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	ProjectID       string     `json:"projectId"`
	EstimatedEffort float64    `json:"estimatedEffort"`
	Status          EpicStatus `json:"status"`
}

// Allocation assigns a percentage of a person's time to either an epic or a
// run-work category for a date range. Exactly one of EpicID and
// RunWorkCategoryID is expected to be set.
type Allocation struct {
	ID                string    `json:"id"`
	PersonID          string    `json:"personId"`
	TeamID            string    `json:"teamId"`
	EpicID            string    `json:"epicId,omitempty"`
	RunWorkCategoryID string    `json:"runWorkCategoryId,omitempty"`
	Percentage        float64   `json:"percentage"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
}

type Division struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Role struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	DefaultAnnualSalary float64 `json:"defaultAnnualSalary"`
}

type Release struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Name        string    `json:"name"`
	ReleaseDate time.Time `json:"releaseDate"`
	Status      string    `json:"status"`
}

type RunWorkCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Goal struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TargetDate time.Time `json:"targetDate"`
	Status     string    `json:"status"`
}

// Link records. These are cloned and persisted wholesale; the comparator
// does not field-diff them.

type ProjectSolution struct {
	ProjectID  string `json:"projectId"`
	SolutionID string `json:"solutionId"`
}

type ProjectSkill struct {
	ProjectID string `json:"projectId"`
	SkillID   string `json:"skillId"`
}

type TeamMember struct {
	TeamID   string `json:"teamId"`
	PersonID string `json:"personId"`
}

type DivisionLeadershipRole struct {
	DivisionID string `json:"divisionId"`
	PersonID   string `json:"personId"`
	Title      string `json:"title"`
}

type GoalEpicLink struct {
	GoalID string `json:"goalId"`
	EpicID string `json:"epicId"`
}

type GoalMilestoneLink struct {
	GoalID      string `json:"goalId"`
	MilestoneID string `json:"milestoneId"`
}

type GoalTeamLink struct {
	GoalID string `json:"goalId"`
	TeamID string `json:"teamId"`
}

// ActualAllocation records effort actually spent in a finished iteration,
// as opposed to the planned Allocation records.
type ActualAllocation struct {
	ID          string  `json:"id"`
	PersonID    string  `json:"personId"`
	EpicID      string  `json:"epicId,omitempty"`
	IterationID string  `json:"iterationId"`
	Percentage  float64 `json:"percentage"`
}

// IterationSnapshot freezes per-iteration progress numbers for trend display.
type IterationSnapshot struct {
	ID          string    `json:"id"`
	IterationID string    `json:"iterationId"`
	TakenAt     time.Time `json:"takenAt"`
	DoneEffort  float64   `json:"doneEffort"`
	TotalEffort float64   `json:"totalEffort"`
}

// UnmappedPerson is someone imported from an external directory who has not
// been linked to a Person record yet.
type UnmappedPerson struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}
