package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reports over invoices and expenses",
	}

	cmd.AddCommand(newReportSummaryCmd(app))

	return cmd
}

func newReportSummaryCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show invoiced, outstanding and expense totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reports.Summary(context.Background(), contract.NewSummaryRequest())
			if err != nil {
				return err
			}

			switch format {
			case "table":
				fmt.Print(formatter.FormatSummary(resp))
				return nil
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			case "yaml":
				return yaml.NewEncoder(os.Stdout).Encode(resp)
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json|yaml)")

	return cmd
}
