package service

import (
	"context"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
)

// ScenarioService is the durable scenario collection plus the single active
// pointer and the unsaved-changes flag that travels with it.
type ScenarioService interface {
	Create(ctx context.Context, params domain.CreateScenarioParams) (*domain.Scenario, error)
	Get(ctx context.Context, id string) (*domain.Scenario, error)
	List(ctx context.Context) ([]*domain.Scenario, error)
	// Update merges the patch into the matching scenario, always
	// refreshing LastModified and the last-access timestamp. An unknown
	// id is a silent no-op.
	Update(ctx context.Context, id string, patch domain.ScenarioPatch) error
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes every scenario whose expiry is strictly
	// before now and returns the removed ids.
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)

	SwitchTo(ctx context.Context, id string) error
	SwitchToLive(ctx context.Context) error
	Active(ctx context.Context) (*domain.Scenario, error)

	MarkDirty()
	ClearDirty()
	Dirty() bool
}

// TemplateService is the catalog of scenario blueprints.
type TemplateService interface {
	// Seed installs the built-in templates. It is idempotent: templates
	// that already exist keep their usage statistics.
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]domain.ScenarioTemplate, error)
	Get(ctx context.Context, id string) (*domain.ScenarioTemplate, error)
	// Apply runs the template's modification strategy over the snapshot
	// and records the usage. It returns the modified snapshot and the
	// template's display name.
	Apply(ctx context.Context, id string, snap domain.PlanningSnapshot, params map[string]float64, now time.Time) (domain.PlanningSnapshot, string, error)
	// Refresh re-synchronizes the built-in set with user-added templates,
	// preserving usage counters by id.
	Refresh(ctx context.Context) error
}

// ContextService routes consumers to either live data or the active
// scenario's data, transparently.
type ContextService interface {
	Mode(ctx context.Context) (domain.ContextMode, error)
	CurrentData(ctx context.Context) (domain.PlanningSnapshot, error)
	// SaveCurrent re-snapshots the working state into the active
	// scenario and clears the unsaved-changes flag.
	SaveCurrent(ctx context.Context, working domain.PlanningSnapshot) error
	// Discard clears the unsaved-changes flag without persisting; the
	// caller reloads the working copy from the last saved snapshot.
	Discard(ctx context.Context) error
}

// ImportResult holds the outcome of a live plan import.
type ImportResult struct {
	Counts domain.EntityCounts
}

// PlanService owns the live planning dataset at the storage boundary.
type PlanService interface {
	// Live assembles the live snapshot from the per-slice state keys,
	// degrading any corrupt slice to an empty collection.
	Live(ctx context.Context) (domain.PlanningSnapshot, error)
	// Import replaces the live dataset from a JSON plan file, writing
	// every slice atomically.
	Import(ctx context.Context, path string) (*ImportResult, error)
	// Save replaces the live dataset from an in-memory snapshot.
	Save(ctx context.Context, snap domain.PlanningSnapshot) error
	// Summary returns headline collection counts without cloning.
	Summary(ctx context.Context) (domain.EntityCounts, error)
}
