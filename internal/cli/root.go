package cli

import (
	"github.com/alexanderramin/whatif/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Scenarios service.ScenarioService
	Templates service.TemplateService
	Contexts  service.ContextService
	Plan      service.PlanService

	// Interactive enables huh prompts when flags are omitted. Set from
	// isatty at startup; forced off under tests and pipes.
	Interactive bool
}

// NewRootCmd creates the top-level "whatif" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "whatif",
		Short: "Scenario snapshots and what-if comparison for planning data",
	}

	root.AddCommand(
		newScenarioCmd(app),
		newTemplateCmd(app),
		newPlanCmd(app),
	)

	return root
}
