package testutil

import (
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithBudget(b float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(id, name string, opts ...ProjectOption) domain.Project {
	now := time.Now().UTC()
	p := domain.Project{
		ID:        id,
		Name:      name,
		Budget:    100000,
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 5, 0),
		Status:    domain.ProjectActive,
		Priority:  1,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Team options
type TeamOption func(*domain.Team)

func WithCapacity(c float64) TeamOption {
	return func(t *domain.Team) {
		t.Capacity = c
	}
}

func WithDivision(id string) TeamOption {
	return func(t *domain.Team) {
		t.DivisionID = id
	}
}

func NewTestTeam(id, name string, opts ...TeamOption) domain.Team {
	t := domain.Team{
		ID:       id,
		Name:     name,
		Capacity: 40,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Person options
type PersonOption func(*domain.Person)

func WithSalary(s float64) PersonOption {
	return func(p *domain.Person) {
		p.AnnualSalary = s
	}
}

func WithTeam(id string) PersonOption {
	return func(p *domain.Person) {
		p.TeamID = id
	}
}

func WithStartDate(d time.Time) PersonOption {
	return func(p *domain.Person) {
		p.StartDate = d
	}
}

func NewTestPerson(id, name string, opts ...PersonOption) domain.Person {
	p := domain.Person{
		ID:           id,
		Name:         name,
		RoleID:       "role-eng",
		AnnualSalary: 90000,
		StartDate:    time.Now().UTC().AddDate(-1, 0, 0),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func NewTestEpic(id, name, projectID string, effort float64) domain.Epic {
	return domain.Epic{
		ID:              id,
		Name:            name,
		ProjectID:       projectID,
		EstimatedEffort: effort,
		Status:          domain.EpicInProgress,
	}
}

// NewTestSnapshot builds a small but representative planning dataset: two
// projects, two teams, three people, and the supporting links.
func NewTestSnapshot() domain.PlanningSnapshot {
	snap := domain.PlanningSnapshot{
		Projects: []domain.Project{
			NewTestProject("p1", "Atlas"),
			NewTestProject("p2", "Borealis", WithBudget(250000)),
		},
		Teams: []domain.Team{
			NewTestTeam("t1", "Platform", WithDivision("d1")),
			NewTestTeam("t2", "Delivery", WithDivision("d1"), WithCapacity(60)),
		},
		People: []domain.Person{
			NewTestPerson("per1", "Ada", WithTeam("t1")),
			NewTestPerson("per2", "Grace", WithTeam("t1"), WithSalary(120000)),
			NewTestPerson("per3", "Linus", WithTeam("t2")),
		},
		Epics: []domain.Epic{
			NewTestEpic("e1", "Ingest pipeline", "p1", 120),
			NewTestEpic("e2", "Billing revamp", "p2", 80),
		},
		Divisions: []domain.Division{{ID: "d1", Name: "Engineering"}},
		Roles:     []domain.Role{{ID: "role-eng", Name: "Engineer", DefaultAnnualSalary: 90000}},
		TeamMembers: []domain.TeamMember{
			{TeamID: "t1", PersonID: "per1"},
			{TeamID: "t1", PersonID: "per2"},
			{TeamID: "t2", PersonID: "per3"},
		},
	}
	snap.Normalize()
	return snap
}

// Scenario options
type ScenarioOption func(*domain.Scenario)

func WithExpiry(at time.Time) ScenarioOption {
	return func(s *domain.Scenario) {
		s.ExpiresAt = at
	}
}

func WithScenarioData(snap domain.PlanningSnapshot) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Data = snap
	}
}

func NewTestScenario(name string, opts ...ScenarioOption) *domain.Scenario {
	now := time.Now().UTC()
	s := &domain.Scenario{
		ID:           uuid.New().String(),
		Name:         name,
		CreatedDate:  now,
		LastModified: now,
		ExpiresAt:    now.Add(domain.DefaultRetention),
		Data:         NewTestSnapshot(),
		Metadata: domain.ScenarioMetadata{
			CreatedFrom:        "live",
			LiveStateTimestamp: now,
			LastAccessDate:     now,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
