package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/service"
	"github.com/alexanderramin/whatif/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory SQLite database for CLI
// integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteStateStore(database)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	plan := service.NewPlanService(states, logger)
	templates := service.NewTemplateService(states, logger)
	scenarios := service.NewScenarioService(states, plan, templates)

	ctx := context.Background()
	require.NoError(t, templates.Seed(ctx))
	require.NoError(t, plan.Save(ctx, testutil.NewTestSnapshot()))

	return &App{
		Scenarios: scenarios,
		Templates: templates,
		Contexts:  service.NewContextService(scenarios, plan),
		Plan:      plan,
	}
}

// runCmd executes a command through the Cobra tree, capturing stdout so
// direct fmt.Print calls from handlers are included.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func TestScenarioAddListRemove(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "scenario", "add", "--name", "Q3 replan")
	require.NoError(t, err)
	assert.Contains(t, out, "Created scenario")

	out, err = runCmd(t, app, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Q3 replan")

	out, err = runCmd(t, app, "scenario", "remove", "Q3 replan")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = runCmd(t, app, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios")
}

func TestScenarioAddWithTemplateAndCompare(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "scenario", "add",
		"--name", "Deep cut",
		"--template", "budget-cut",
		"--param", "percentage=30")
	require.NoError(t, err)

	out, err := runCmd(t, app, "scenario", "compare", "Deep cut")
	require.NoError(t, err)
	assert.Contains(t, out, "Deep cut")
	assert.Contains(t, out, "FINANCIAL")
}

func TestScenarioSwitchAndShow(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "scenario", "add", "--name", "Sandbox")
	require.NoError(t, err)

	out, err := runCmd(t, app, "scenario", "switch", "Sandbox")
	require.NoError(t, err)
	assert.Contains(t, out, "Switched to scenario")

	out, err = runCmd(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "Sandbox")

	out, err = runCmd(t, app, "scenario", "live")
	require.NoError(t, err)
	assert.Contains(t, out, "live")
}

func TestScenarioSwitchBlockedByDirtyState(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "scenario", "add", "--name", "A")
	require.NoError(t, err)
	_, err = runCmd(t, app, "scenario", "add", "--name", "B")
	require.NoError(t, err)
	_, err = runCmd(t, app, "scenario", "switch", "A")
	require.NoError(t, err)

	app.Scenarios.MarkDirty()
	_, err = runCmd(t, app, "scenario", "switch", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsaved changes")

	// Discard unblocks the switch.
	_, err = runCmd(t, app, "scenario", "discard")
	require.NoError(t, err)
	_, err = runCmd(t, app, "scenario", "switch", "B")
	assert.NoError(t, err)
}

func TestScenarioResolve_PrefixAndAmbiguity(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := runCmd(t, app, "scenario", "add", "--name", "Only one")
	require.NoError(t, err)
	scenarios, err := app.Scenarios.List(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	// An unambiguous id prefix resolves.
	out, err := runCmd(t, app, "scenario", "inspect", scenarios[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Only one")

	_, err = runCmd(t, app, "scenario", "inspect", "nonexistent")
	assert.Error(t, err)
}

func TestTemplateListAndInspect(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "budget-cut")
	assert.Contains(t, out, "timeline-shift")

	out, err = runCmd(t, app, "template", "inspect", "budget-cut")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget Cut")
	assert.Contains(t, out, "percentage")
}

func TestPlanImport(t *testing.T) {
	app := testApp(t)

	snap := testutil.NewTestSnapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := runCmd(t, app, "plan", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 projects")
}

func TestParseTemplateParams(t *testing.T) {
	values, err := parseTemplateParams([]string{"percentage=25", "days=-14"})
	require.NoError(t, err)
	assert.Equal(t, 25.0, values["percentage"])
	assert.Equal(t, -14.0, values["days"])

	_, err = parseTemplateParams([]string{"nonsense"})
	assert.Error(t, err)
	_, err = parseTemplateParams([]string{"days=soon"})
	assert.Error(t, err)
}
