package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlanSaveAndLive_RoundTrip(t *testing.T) {
	states := repository.NewMemStateStore()
	plan := NewPlanService(states, quietLogger())
	ctx := context.Background()

	snap := testutil.NewTestSnapshot()
	require.NoError(t, plan.Save(ctx, snap))

	got, err := plan.Live(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Projects, got.Projects)
	assert.Equal(t, snap.Teams, got.Teams)
	assert.Equal(t, snap.People, got.People)
	assert.Equal(t, snap.Config, got.Config)
}

func TestPlanLive_EmptyStore(t *testing.T) {
	plan := NewPlanService(repository.NewMemStateStore(), quietLogger())

	got, err := plan.Live(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Projects)
	assert.NotNil(t, got.Projects, "collections normalize to empty, not nil")
	assert.False(t, got.Config.IsZero(), "config falls back to defaults")
}

func TestPlanLive_CorruptSliceDegradesToEmpty(t *testing.T) {
	states := repository.NewMemStateStore()
	plan := NewPlanService(states, quietLogger())
	ctx := context.Background()
	require.NoError(t, plan.Save(ctx, testutil.NewTestSnapshot()))

	require.NoError(t, states.Set(ctx, "projects", []byte("{not json")))

	got, err := plan.Live(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Projects, "corrupt slice reads as empty")
	assert.NotEmpty(t, got.Teams, "other slices are unaffected")
}

// A slice that is valid JSON but fails mid-decode on a field type must
// degrade to empty as a whole, not keep the elements decoded before the
// mismatch.
func TestPlanLive_TypeMismatchedSliceDegradesToEmpty(t *testing.T) {
	states := repository.NewMemStateStore()
	plan := NewPlanService(states, quietLogger())
	ctx := context.Background()
	require.NoError(t, plan.Save(ctx, testutil.NewTestSnapshot()))

	corrupt := []byte(`[{"id":"p1","name":"Alpha","budget":"oops"}]`)
	require.NoError(t, states.Set(ctx, "projects", corrupt))

	got, err := plan.Live(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Projects, "partially decodable slice reads as empty")
	assert.NotEmpty(t, got.Teams, "other slices are unaffected")
}

func TestPlanImport_FromFile(t *testing.T) {
	states := repository.NewMemStateStore()
	plan := NewPlanService(states, quietLogger())
	ctx := context.Background()

	snap := testutil.NewTestSnapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := plan.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Counts.Projects)
	assert.Equal(t, 2, result.Counts.Teams)
	assert.Equal(t, 3, result.Counts.People)

	got, err := plan.Live(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Projects, got.Projects)
}

func TestPlanImport_BadFile(t *testing.T) {
	plan := NewPlanService(repository.NewMemStateStore(), quietLogger())
	ctx := context.Background()

	_, err := plan.Import(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("not a plan"), 0o644))
	_, err = plan.Import(ctx, path)
	assert.Error(t, err)
}

// TestPlanImport_RejectsInvalidReferences verifies a plan with broken
// referential integrity never reaches storage.
func TestPlanImport_RejectsInvalidReferences(t *testing.T) {
	states := repository.NewMemStateStore()
	plan := NewPlanService(states, quietLogger())
	ctx := context.Background()

	snap := testutil.NewTestSnapshot()
	snap.People[0].TeamID = "no-such-team"
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = plan.Import(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown team")

	keys, err := states.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
