package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/template"
)

const keyTemplates = "scenarioTemplates"

type templateService struct {
	states repository.StateStore
	logger *slog.Logger

	mu        sync.Mutex
	loaded    bool
	templates []domain.ScenarioTemplate
}

// NewTemplateService creates the template catalog backed by the given
// state store. Call Seed once at startup to install the built-ins.
func NewTemplateService(states repository.StateStore, logger *slog.Logger) TemplateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &templateService{states: states, logger: logger}
}

func (s *templateService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	raw, err := s.states.Get(ctx, keyTemplates)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.templates = nil
	case err != nil:
		return fmt.Errorf("loading templates: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.templates); err != nil {
			return fmt.Errorf("decoding templates: %w", err)
		}
	}
	s.loaded = true
	return nil
}

func (s *templateService) persist(ctx context.Context, next []domain.ScenarioTemplate) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	if err := s.states.Set(ctx, keyTemplates, data); err != nil {
		return fmt.Errorf("persisting templates: %w", err)
	}
	s.templates = next
	return nil
}

func (s *templateService) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	merged, changed := mergeBuiltins(s.templates)
	if !changed {
		return nil
	}
	return s.persist(ctx, merged)
}

func (s *templateService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return s.Seed(ctx)
}

func (s *templateService) List(ctx context.Context) ([]domain.ScenarioTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.ScenarioTemplate, len(s.templates))
	copy(out, s.templates)
	return out, nil
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.ScenarioTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	for i := range s.templates {
		if s.templates[i].ID == id {
			t := s.templates[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("template %q: %w", id, ErrTemplateNotFound)
}

func (s *templateService) Apply(ctx context.Context, id string, snap domain.PlanningSnapshot, params map[string]float64, now time.Time) (domain.PlanningSnapshot, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.PlanningSnapshot{}, "", err
	}

	idx := -1
	for i := range s.templates {
		if s.templates[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.PlanningSnapshot{}, "", fmt.Errorf("template %q: %w", id, ErrTemplateNotFound)
	}
	tmpl := s.templates[idx]

	strategy, ok := template.Resolve(tmpl.Config.Strategy)
	if !ok {
		return domain.PlanningSnapshot{}, "", fmt.Errorf("template %q uses unknown strategy %q", tmpl.Name, tmpl.Config.Strategy)
	}

	values := make(map[string]float64, len(tmpl.Config.Defaults)+len(params))
	for k, v := range tmpl.Config.Defaults {
		values[k] = v
	}
	for k, v := range params {
		values[k] = v
	}

	modified, err := strategy(snap, template.Params{Now: now, Values: values})
	if err != nil {
		return domain.PlanningSnapshot{}, "", fmt.Errorf("applying template %q: %w", tmpl.Name, err)
	}

	next := make([]domain.ScenarioTemplate, len(s.templates))
	copy(next, s.templates)
	next[idx].UsageCount++
	used := now
	next[idx].LastUsed = &used
	// Usage stats are best-effort; a failed counter persist must not
	// abort the scenario creation that triggered the apply.
	if err := s.persist(ctx, next); err != nil {
		s.logger.WarnContext(ctx, "skipping template usage stats", "template", tmpl.ID, "error", err)
	}
	return modified, tmpl.Name, nil
}

// mergeBuiltins layers the built-in template set under any stored
// templates, matched by id so usage statistics survive reseeding.
func mergeBuiltins(stored []domain.ScenarioTemplate) ([]domain.ScenarioTemplate, bool) {
	byID := make(map[string]domain.ScenarioTemplate, len(stored))
	for _, t := range stored {
		byID[t.ID] = t
	}

	changed := false
	merged := make([]domain.ScenarioTemplate, 0, len(stored)+4)
	for _, b := range template.Builtin() {
		if existing, ok := byID[b.ID]; ok {
			b.UsageCount = existing.UsageCount
			b.LastUsed = existing.LastUsed
			if existing.Name != b.Name || existing.Description != b.Description ||
				existing.Category != b.Category || existing.Config.Strategy != b.Config.Strategy {
				changed = true
			}
			delete(byID, b.ID)
		} else {
			changed = true
		}
		merged = append(merged, b)
	}
	// User-added templates keep their stored order after the built-ins.
	for _, t := range stored {
		if _, remaining := byID[t.ID]; remaining {
			merged = append(merged, t)
		}
	}
	return merged, changed
}
