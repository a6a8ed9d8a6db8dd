package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/snapshot"
)

type contextService struct {
	scenarios ScenarioService
	plan      PlanService
}

// NewContextService routes data access through the active scenario when one
// is selected and through the live plan otherwise.
func NewContextService(scenarios ScenarioService, plan PlanService) ContextService {
	return &contextService{scenarios: scenarios, plan: plan}
}

func (s *contextService) Mode(ctx context.Context) (domain.ContextMode, error) {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return domain.ModeLive, err
	}
	if active == nil {
		return domain.ModeLive, nil
	}
	return domain.ModeScenario, nil
}

func (s *contextService) CurrentData(ctx context.Context) (domain.PlanningSnapshot, error) {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return domain.PlanningSnapshot{}, err
	}
	if active != nil {
		return snapshot.Clone(active.Data), nil
	}
	live, err := s.plan.Live(ctx)
	if err != nil {
		return domain.PlanningSnapshot{}, err
	}
	return snapshot.Clone(live), nil
}

func (s *contextService) SaveCurrent(ctx context.Context, working domain.PlanningSnapshot) error {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("saving working copy: %w", ErrNoActiveScenario)
	}
	if err := s.scenarios.Update(ctx, active.ID, domain.ScenarioPatch{Data: &working}); err != nil {
		return err
	}
	s.scenarios.ClearDirty()
	return nil
}

func (s *contextService) Discard(ctx context.Context) error {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("discarding working copy: %w", ErrNoActiveScenario)
	}
	s.scenarios.ClearDirty()
	return nil
}
