package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testClock is a controllable time source shared by a test's services.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// setupServices wires the full service stack over an in-memory state store
// seeded with the standard planning dataset.
func setupServices(t *testing.T) (*repository.MemStateStore, ScenarioService, TemplateService, PlanService, *testClock) {
	t.Helper()
	states := repository.NewMemStateStore()
	clock := newTestClock()
	ctx := context.Background()

	plan := NewPlanService(states, slog.Default())
	require.NoError(t, plan.Save(ctx, testutil.NewTestSnapshot()))

	templates := NewTemplateService(states, slog.Default())
	require.NoError(t, templates.Seed(ctx))

	scenarios := NewScenarioService(states, plan, templates)
	scenarios.(*scenarioService).now = clock.Now

	return states, scenarios, templates, plan, clock
}
