package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse scenario templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateInspectCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No templates found.")
				return nil
			}
			fmt.Print(formatter.FormatTemplateList(templates))
			return nil
		},
	}
}

func newTemplateInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTemplateDetail(t))
			return nil
		},
	}
}
