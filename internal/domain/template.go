package domain

import "time"

// TemplateConfig declares which modification strategy a template runs and
// which parameters it accepts. Strategies are registered in the template
// package; adding a template never requires touching the store or the
// comparator.
type TemplateConfig struct {
	Strategy      string             `json:"strategy"`
	ParameterKeys []string           `json:"parameterKeys,omitempty"`
	Defaults      map[string]float64 `json:"defaults,omitempty"`
}

// ScenarioTemplate is a reusable recipe for bulk-modifying a freshly
// created scenario.
type ScenarioTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category"`
	Config      TemplateConfig `json:"config"`
	IsDefault   bool           `json:"isDefault"`
	UsageCount  int            `json:"usageCount"`
	LastUsed    *time.Time     `json:"lastUsed,omitempty"`
}
