package domain

// ChangeCategory classifies which planning concern a change touches.
type ChangeCategory string

const (
	CategoryFinancial      ChangeCategory = "financial"
	CategoryResources      ChangeCategory = "resources"
	CategoryTimeline       ChangeCategory = "timeline"
	CategoryScope          ChangeCategory = "scope"
	CategoryOrganizational ChangeCategory = "organizational"
)

// ChangeType describes how an entity differs between two snapshots.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// ImpactLevel is a magnitude-derived significance rating.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Rank orders impact levels for comparison (low < medium < high).
func (l ImpactLevel) Rank() int {
	switch l {
	case ImpactHigh:
		return 2
	case ImpactMedium:
		return 1
	default:
		return 0
	}
}

// ContextMode reports which dataset is currently being served.
type ContextMode string

const (
	ModeLive     ContextMode = "live"
	ModeScenario ContextMode = "scenario"
)

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

// EpicStatus enumerates epic lifecycle states.
type EpicStatus string

const (
	EpicBacklog    EpicStatus = "backlog"
	EpicInProgress EpicStatus = "in-progress"
	EpicDone       EpicStatus = "done"
)
