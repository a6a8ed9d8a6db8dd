package domain

import "time"

// FieldChange is one differing field on a modified entity, carrying both
// raw values and pre-formatted renditions for display.
type FieldChange struct {
	Field        string `json:"field"`
	DisplayName  string `json:"displayName"`
	OldValue     any    `json:"oldValue"`
	NewValue     any    `json:"newValue"`
	OldFormatted string `json:"oldFormatted"`
	NewFormatted string `json:"newFormatted"`
}

// ScenarioChange is a single categorized difference between a scenario
// snapshot and the live dataset.
type ScenarioChange struct {
	ID          string         `json:"id"`
	Category    ChangeCategory `json:"category"`
	EntityType  string         `json:"entityType"`
	EntityID    string         `json:"entityId"`
	EntityName  string         `json:"entityName"`
	ChangeType  ChangeType     `json:"changeType"`
	Description string         `json:"description"`
	Impact      ImpactLevel    `json:"impact"`
	Details     []FieldChange  `json:"details,omitempty"`
}

// ComparisonSummary aggregates change counts and the overall impact level.
type ComparisonSummary struct {
	TotalChanges       int                    `json:"totalChanges"`
	CategorizedChanges map[ChangeCategory]int `json:"categorizedChanges"`
	ImpactLevel        ImpactLevel            `json:"impactLevel"`
}

type ProjectCostChange struct {
	ProjectID      string  `json:"projectId"`
	ProjectName    string  `json:"projectName"`
	ScenarioBudget float64 `json:"scenarioBudget"`
	LiveBudget     float64 `json:"liveBudget"`
	Delta          float64 `json:"delta"`
}

// FinancialImpact sums project-level budget deltas (live minus scenario).
type FinancialImpact struct {
	TotalCostDifference float64             `json:"totalCostDifference"`
	BudgetVariancePct   float64             `json:"budgetVariancePct"`
	ProjectCostChanges  []ProjectCostChange `json:"projectCostChanges"`
}

type TeamCapacityChange struct {
	TeamID           string  `json:"teamId"`
	TeamName         string  `json:"teamName"`
	ScenarioCapacity float64 `json:"scenarioCapacity"`
	LiveCapacity     float64 `json:"liveCapacity"`
	Delta            float64 `json:"delta"`
}

// ResourceImpact aggregates headcount and capacity movement.
type ResourceImpact struct {
	TeamCapacityChanges []TeamCapacityChange `json:"teamCapacityChanges"`
	PeopleAdded         int                  `json:"peopleAdded"`
	PeopleRemoved       int                  `json:"peopleRemoved"`
	PeopleReallocated   int                  `json:"peopleReallocated"`
}

type ProjectDateChange struct {
	ProjectID    string    `json:"projectId"`
	ProjectName  string    `json:"projectName"`
	Field        string    `json:"field"`
	ScenarioDate time.Time `json:"scenarioDate"`
	LiveDate     time.Time `json:"liveDate"`
	DeltaDays    int       `json:"deltaDays"`
}

// TimelineImpact lists per-project date movement.
type TimelineImpact struct {
	ProjectDateChanges []ProjectDateChange `json:"projectDateChanges"`
}

// ScenarioComparison is the full delta report between a scenario and the
// live dataset. It is derived, never persisted, and recomputed fresh on
// every request because the live side can change between comparisons.
type ScenarioComparison struct {
	ScenarioID      string            `json:"scenarioId"`
	ScenarioName    string            `json:"scenarioName"`
	ComparedAt      time.Time         `json:"comparedAt"`
	Summary         ComparisonSummary `json:"summary"`
	Changes         []ScenarioChange  `json:"changes"`
	FinancialImpact FinancialImpact   `json:"financialImpact"`
	ResourceImpact  ResourceImpact    `json:"resourceImpact"`
	TimelineImpact  TimelineImpact    `json:"timelineImpact"`
}
