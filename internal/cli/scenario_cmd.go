package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/alexanderramin/whatif/internal/compare"
	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/spf13/cobra"
)

// resolveScenarioID resolves user input to a scenario id: exact name match
// first, then exact id, then unambiguous id prefix.
func resolveScenarioID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("scenario name or ID is required")
	}

	scenarios, err := app.Scenarios.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range scenarios {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}
	for _, s := range scenarios {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range scenarios {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("scenario not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("scenario ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage what-if scenarios",
	}

	cmd.AddCommand(
		newScenarioAddCmd(app),
		newScenarioListCmd(app),
		newScenarioInspectCmd(app),
		newScenarioUpdateCmd(app),
		newScenarioRemoveCmd(app),
		newScenarioSwitchCmd(app),
		newScenarioLiveCmd(app),
		newScenarioSaveCmd(app),
		newScenarioDiscardCmd(app),
		newScenarioCompareCmd(app),
		newScenarioSweepCmd(app),
	)

	return cmd
}

func newScenarioAddCmd(app *App) *cobra.Command {
	var name, description, templateID, expires string
	var paramFlags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a scenario from the current live data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if name == "" && app.Interactive {
				if err := runScenarioForm(ctx, app, &name, &description, &templateID); err != nil {
					return err
				}
			}

			params := domain.CreateScenarioParams{
				Name:        name,
				Description: description,
				TemplateID:  templateID,
			}
			if expires != "" {
				at, err := time.Parse("2006-01-02", expires)
				if err != nil {
					return fmt.Errorf("invalid expiry date %q: %w", expires, err)
				}
				params.ExpiresAt = &at
			}
			if len(paramFlags) > 0 {
				values, err := parseTemplateParams(paramFlags)
				if err != nil {
					return err
				}
				params.TemplateParameters = values
			}

			s, err := app.Scenarios.Create(ctx, params)
			if err != nil {
				return err
			}

			fmt.Printf("Created scenario %s (expires %s)\n", formatter.Bold(s.Name), s.ExpiresAt.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Scenario name")
	cmd.Flags().StringVar(&description, "description", "", "What this scenario explores")
	cmd.Flags().StringVar(&templateID, "template", "", "Template ID to apply (see 'template list')")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiry date (YYYY-MM-DD, default 60 days out)")
	cmd.Flags().StringSliceVar(&paramFlags, "param", nil, "Template parameter as key=value, repeatable")

	return cmd
}

// parseTemplateParams turns repeated key=value flags into strategy values.
func parseTemplateParams(flags []string) (map[string]float64, error) {
	values := make(map[string]float64, len(flags))
	for _, raw := range flags {
		key, val, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", raw)
		}
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value in %q: %w", raw, err)
		}
		values[key] = n
	}
	return values, nil
}

func newScenarioListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scenarios, err := app.Scenarios.List(ctx)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Println("No scenarios. Create one with 'whatif scenario add'.")
				return nil
			}

			activeID := ""
			if active, err := app.Scenarios.Active(ctx); err == nil && active != nil {
				activeID = active.ID
			}
			fmt.Print(formatter.FormatScenarioList(scenarios, activeID, time.Now().UTC()))
			return nil
		},
	}
}

func newScenarioInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show scenario details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Scenarios.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScenarioDetail(s, time.Now().UTC()))
			return nil
		},
	}
}

func newScenarioUpdateCmd(app *App) *cobra.Command {
	var name, description, expires string

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Rename or re-describe a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var patch domain.ScenarioPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if expires != "" {
				at, err := time.Parse("2006-01-02", expires)
				if err != nil {
					return fmt.Errorf("invalid expiry date %q: %w", expires, err)
				}
				patch.ExpiresAt = &at
			}

			if err := app.Scenarios.Update(ctx, id, patch); err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&expires, "expires", "", "New expiry date (YYYY-MM-DD)")

	return cmd
}

func newScenarioRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

func newScenarioSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch NAME",
		Short: "Make a scenario the active working context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.Scenarios.Dirty() {
				return fmt.Errorf("unsaved changes in the active scenario; run 'scenario save' or 'scenario discard' first")
			}

			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.SwitchTo(ctx, id); err != nil {
				return err
			}
			s, err := app.Scenarios.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Switched to scenario %s\n", formatter.Bold(s.Name))
			return nil
		},
	}
}

func newScenarioLiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Switch back to live data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.Scenarios.Dirty() {
				return fmt.Errorf("unsaved changes in the active scenario; run 'scenario save' or 'scenario discard' first")
			}

			if err := app.Scenarios.SwitchToLive(ctx); err != nil {
				return err
			}
			fmt.Println("Switched to live data.")
			return nil
		},
	}
}

func newScenarioSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the working copy into the active scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			working, err := app.Contexts.CurrentData(ctx)
			if err != nil {
				return err
			}
			if err := app.Contexts.SaveCurrent(ctx, working); err != nil {
				return err
			}
			fmt.Println("Saved.")
			return nil
		},
	}
}

func newScenarioDiscardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Discard unsaved changes in the active scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Contexts.Discard(context.Background()); err != nil {
				return err
			}
			fmt.Println("Discarded unsaved changes.")
			return nil
		},
	}
}

func newScenarioCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare NAME",
		Short: "Compare a scenario against current live data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Scenarios.Get(ctx, id)
			if err != nil {
				return err
			}
			live, err := app.Plan.Live(ctx)
			if err != nil {
				return err
			}

			c := compare.Compare(*s, live, time.Now().UTC())
			fmt.Println(formatter.FormatComparison(c))
			return nil
		},
	}
}

func newScenarioSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "expire-sweep",
		Short: "Remove expired scenarios now",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Scenarios.DeleteExpired(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				fmt.Println("Nothing expired.")
				return nil
			}
			fmt.Printf("Removed %d expired scenario(s).\n", len(removed))
			return nil
		},
	}
}
