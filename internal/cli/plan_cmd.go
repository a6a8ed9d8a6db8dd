package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the live planning dataset",
	}

	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the live dataset from a JSON plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Plan.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			c := result.Counts
			fmt.Printf("Imported %d projects, %d teams, %d people, %d epics, %d allocations, %d goals.\n",
				c.Projects, c.Teams, c.People, c.Epics, c.Allocations, c.Goals)
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current working context and its contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			mode, err := app.Contexts.Mode(ctx)
			if err != nil {
				return err
			}

			var c domain.EntityCounts
			if mode == domain.ModeScenario {
				active, err := app.Scenarios.Active(ctx)
				if err != nil {
					return err
				}
				if active != nil {
					fmt.Printf("Context: scenario %s", formatter.Bold(active.Name))
					if app.Scenarios.Dirty() {
						fmt.Printf(" %s", formatter.StyleYellow.Render("(unsaved changes)"))
					}
					fmt.Printf(", expires %s\n", formatter.ExpiryStyled(active.ExpiresAt, time.Now().UTC()))
					c = active.Data.Counts()
				}
			} else {
				fmt.Println("Context: live data")
				c, err = app.Plan.Summary(ctx)
				if err != nil {
					return err
				}
			}

			fmt.Printf("%d projects, %d teams, %d people, %d epics, %d allocations, %d goals\n",
				c.Projects, c.Teams, c.People, c.Epics, c.Allocations, c.Goals)
			return nil
		},
	}
}
