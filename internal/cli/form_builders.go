package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func whatifHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runScenarioForm collects scenario creation inputs interactively. The
// template select offers "start from live data" plus the catalog.
func runScenarioForm(ctx context.Context, app *App, name, description, templateID *string) error {
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return err
	}

	options := make([]huh.Option[string], 0, len(templates)+1)
	options = append(options, huh.NewOption("None — start from live data", ""))
	for _, t := range templates {
		options = append(options, huh.NewOption(t.Name+" — "+t.Description, t.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario Name").
				Placeholder("Q3 budget cut").
				Value(name).
				Validate(validateScenarioName),
			huh.NewInput().
				Title("Description (optional)").
				Value(description),
			huh.NewSelect[string]().
				Title("Template").
				Options(options...).
				Value(templateID),
		),
	).WithTheme(whatifHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func validateScenarioName(s string) error {
	if s == "" {
		return errors.New("scenario name is required")
	}
	return nil
}
