package domain

import (
	"fmt"
	"time"
)

// DefaultRetention is how long a scenario is kept before the lifecycle
// sweeper removes it, unless the creator sets an explicit expiry.
const DefaultRetention = 60 * 24 * time.Hour

// ScenarioMetadata carries bookkeeping about a scenario's origin and usage.
type ScenarioMetadata struct {
	CreatedFrom        string    `json:"createdFrom"`
	LiveStateTimestamp time.Time `json:"liveStateTimestamp"`
	ModificationCount  int       `json:"modificationCount"`
	LastAccessDate     time.Time `json:"lastAccessDate"`
}

// ScenarioModification is one explicit edit applied to a scenario, recorded
// for auditability. The snapshot itself remains the source of truth.
type ScenarioModification struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Field      string    `json:"field"`
	OldValue   any       `json:"oldValue"`
	NewValue   any       `json:"newValue"`
	AppliedAt  time.Time `json:"appliedAt"`
}

// Scenario is a named, independent, time-boxed copy of the live dataset.
type Scenario struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	CreatedDate   time.Time              `json:"createdDate"`
	LastModified  time.Time              `json:"lastModified"`
	ExpiresAt     time.Time              `json:"expiresAt"`
	TemplateID    string                 `json:"templateId,omitempty"`
	TemplateName  string                 `json:"templateName,omitempty"`
	Data          PlanningSnapshot       `json:"data"`
	Modifications []ScenarioModification `json:"modifications"`
	Metadata      ScenarioMetadata       `json:"metadata"`
}

// Expired reports whether the scenario's retention window has passed.
// The boundary is strict: a scenario expiring exactly at now is kept.
func (s *Scenario) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// CreateScenarioParams are the caller-supplied inputs for scenario creation.
type CreateScenarioParams struct {
	Name               string
	Description        string
	TemplateID         string
	TemplateParameters map[string]float64
	ExpiresAt          *time.Time
}

// Validate checks the params against a reference time. The expiry override,
// when present, must be in the future.
func (p CreateScenarioParams) Validate(now time.Time) error {
	if p.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return fmt.Errorf("expiry %s is not after %s", p.ExpiresAt.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	return nil
}

// ScenarioPatch is a partial update applied through the store. Nil fields
// are left untouched.
type ScenarioPatch struct {
	Name          *string
	Description   *string
	ExpiresAt     *time.Time
	Data          *PlanningSnapshot
	Modifications []ScenarioModification
}
