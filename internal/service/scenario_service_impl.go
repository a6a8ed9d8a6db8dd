package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/snapshot"
	"github.com/google/uuid"
)

const (
	keyScenarios      = "scenarios"
	keyActiveScenario = "activeScenarioId"
)

type scenarioService struct {
	states    repository.StateStore
	plan      PlanService
	templates TemplateService
	observer  UseCaseObserver
	now       func() time.Time

	// All mutations replace the whole scenario list behind the mutex;
	// readers never observe a half-written collection.
	mu        sync.Mutex
	loaded    bool
	scenarios []*domain.Scenario
	activeID  string
	dirty     bool
}

// NewScenarioService creates the scenario store backed by the given state
// store. The plan service supplies live data at clone time; the template
// service applies blueprint modifications on create.
func NewScenarioService(states repository.StateStore, plan PlanService, templates TemplateService, observers ...UseCaseObserver) ScenarioService {
	return &scenarioService{
		states:    states,
		plan:      plan,
		templates: templates,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *scenarioService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, err := s.states.Get(ctx, keyScenarios)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.scenarios = nil
	case err != nil:
		return fmt.Errorf("loading scenarios: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.scenarios); err != nil {
			return fmt.Errorf("decoding scenarios: %w", err)
		}
	}

	active, err := s.states.Get(ctx, keyActiveScenario)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.activeID = ""
	case err != nil:
		return fmt.Errorf("loading active scenario pointer: %w", err)
	default:
		s.activeID = string(active)
	}

	s.loaded = true
	return nil
}

// persist writes the candidate list and only then swaps it in, so a storage
// failure leaves both memory and disk at the pre-call state.
func (s *scenarioService) persist(ctx context.Context, next []*domain.Scenario) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding scenarios: %w", err)
	}
	if err := s.states.Set(ctx, keyScenarios, data); err != nil {
		return fmt.Errorf("persisting scenarios: %w", err)
	}
	s.scenarios = next
	return nil
}

func (s *scenarioService) persistActive(ctx context.Context, id string) error {
	if id == "" {
		if err := s.states.Delete(ctx, keyActiveScenario); err != nil {
			return fmt.Errorf("clearing active scenario pointer: %w", err)
		}
	} else {
		if err := s.states.Set(ctx, keyActiveScenario, []byte(id)); err != nil {
			return fmt.Errorf("persisting active scenario pointer: %w", err)
		}
	}
	s.activeID = id
	return nil
}

func (s *scenarioService) Create(ctx context.Context, params domain.CreateScenarioParams) (scenario *domain.Scenario, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-scenario",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"name": params.Name, "template": params.TemplateID},
		})
	}()

	now := s.now()
	if vErr := params.Validate(now); vErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, vErr)
	}

	live, err := s.plan.Live(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading live data: %w", err)
	}
	snap := snapshot.Clone(live)

	createdFrom := "live"
	templateName := ""
	if params.TemplateID != "" {
		snap, templateName, err = s.templates.Apply(ctx, params.TemplateID, snap, params.TemplateParameters, now)
		if err != nil {
			return nil, err
		}
		createdFrom = "template"
	}

	expiresAt := now.Add(domain.DefaultRetention)
	if params.ExpiresAt != nil {
		expiresAt = *params.ExpiresAt
	}

	scenario = &domain.Scenario{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Description:  params.Description,
		CreatedDate:  now,
		LastModified: now,
		ExpiresAt:    expiresAt,
		TemplateID:   params.TemplateID,
		TemplateName: templateName,
		Data:         snap,
		Metadata: domain.ScenarioMetadata{
			CreatedFrom:        createdFrom,
			LiveStateTimestamp: now,
			LastAccessDate:     now,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.load(ctx); err != nil {
		return nil, err
	}

	next := append(copyList(s.scenarios), scenario)
	if err = s.persist(ctx, next); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *scenarioService) Get(ctx context.Context, id string) (*domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("scenario %q: %w", id, ErrScenarioNotFound)
}

func (s *scenarioService) List(ctx context.Context) ([]*domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return copyList(s.scenarios), nil
}

func (s *scenarioService) Update(ctx context.Context, id string, patch domain.ScenarioPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}

	idx := -1
	for i, sc := range s.scenarios {
		if sc.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	now := s.now()
	if patch.ExpiresAt != nil && !patch.ExpiresAt.After(now) {
		return fmt.Errorf("%w: expiry %s is not in the future", ErrValidation, patch.ExpiresAt.Format(time.RFC3339))
	}
	next := copyList(s.scenarios)
	updated := *next[idx]
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.ExpiresAt != nil {
		updated.ExpiresAt = *patch.ExpiresAt
	}
	if patch.Data != nil {
		updated.Data = snapshot.Clone(*patch.Data)
		updated.Metadata.ModificationCount++
	}
	if patch.Modifications != nil {
		updated.Modifications = append(updated.Modifications, patch.Modifications...)
	}
	updated.LastModified = now
	updated.Metadata.LastAccessDate = now
	next[idx] = &updated

	return s.persist(ctx, next)
}

func (s *scenarioService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}

	next := make([]*domain.Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		if sc.ID != id {
			next = append(next, sc)
		}
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	if s.activeID == id {
		if err := s.persistActive(ctx, ""); err != nil {
			return err
		}
		s.dirty = false
	}
	return nil
}

func (s *scenarioService) DeleteExpired(ctx context.Context, now time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	var removed []string
	next := make([]*domain.Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		if sc.Expired(now) {
			removed = append(removed, sc.ID)
			continue
		}
		next = append(next, sc)
	}
	if len(removed) == 0 {
		return nil, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	for _, id := range removed {
		if s.activeID == id {
			if err := s.persistActive(ctx, ""); err != nil {
				return removed, err
			}
			s.dirty = false
		}
	}
	return removed, nil
}

func (s *scenarioService) SwitchTo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}

	idx := -1
	for i, sc := range s.scenarios {
		if sc.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("scenario %q: %w", id, ErrScenarioNotFound)
	}

	now := s.now()
	next := copyList(s.scenarios)
	updated := *next[idx]
	updated.Metadata.LastAccessDate = now
	next[idx] = &updated
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	if err := s.persistActive(ctx, id); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *scenarioService) SwitchToLive(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	if err := s.persistActive(ctx, ""); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Active returns the active scenario, or nil when in live mode.
func (s *scenarioService) Active(ctx context.Context) (*domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if s.activeID == "" {
		return nil, nil
	}
	for _, sc := range s.scenarios {
		if sc.ID == s.activeID {
			return sc, nil
		}
	}
	// Dangling pointer, e.g. after external state edits. Treat as live.
	return nil, nil
}

func (s *scenarioService) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

func (s *scenarioService) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func (s *scenarioService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func copyList(in []*domain.Scenario) []*domain.Scenario {
	out := make([]*domain.Scenario, len(in))
	copy(out, in)
	return out
}
