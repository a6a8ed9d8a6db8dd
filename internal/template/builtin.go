package template

import "github.com/alexanderramin/whatif/internal/domain"

// Builtin returns the seed catalog of default templates. Seeding is
// idempotent by id; existing entries keep their usage statistics.
func Builtin() []domain.ScenarioTemplate {
	return []domain.ScenarioTemplate{
		{
			ID:          "budget-cut",
			Name:        "Budget Cut",
			Description: "Reduce every project budget by a percentage",
			Category:    "financial",
			IsDefault:   true,
			Config: domain.TemplateConfig{
				Strategy:      "scale_budgets",
				ParameterKeys: []string{"percentage"},
				Defaults:      map[string]float64{"percentage": 10},
			},
		},
		{
			ID:          "capacity-boost",
			Name:        "Capacity Boost",
			Description: "Increase every team capacity by a percentage",
			Category:    "resources",
			IsDefault:   true,
			Config: domain.TemplateConfig{
				Strategy:      "scale_capacity",
				ParameterKeys: []string{"percentage"},
				Defaults:      map[string]float64{"percentage": 10},
			},
		},
		{
			ID:          "hiring-freeze",
			Name:        "Hiring Freeze",
			Description: "Drop planned hires and their allocations",
			Category:    "resources",
			IsDefault:   true,
			Config: domain.TemplateConfig{
				Strategy: "hiring_freeze",
			},
		},
		{
			ID:          "timeline-shift",
			Name:        "Timeline Shift",
			Description: "Shift all project, release, and goal dates by N days",
			Category:    "timeline",
			IsDefault:   true,
			Config: domain.TemplateConfig{
				Strategy:      "shift_timeline",
				ParameterKeys: []string{"days"},
				Defaults:      map[string]float64{"days": 30},
			},
		},
	}
}
