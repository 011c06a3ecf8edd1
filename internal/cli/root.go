package cli

import (
	"github.com/s9hmzyt46y-beep/Laimis/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients  service.ClientService
	Invoices service.InvoiceService
	Items    service.ItemService
	Expenses service.ExpenseService
	Reports  service.ReportService

	// DefaultVATRate is applied to new invoice lines when no rate is given.
	DefaultVATRate decimal.Decimal

	// IsInteractive reports whether stdin is a terminal; the draft wizard
	// and the browse view refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "laimis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "laimis",
		Short: "Invoice and expense bookkeeping for small businesses",
	}

	root.AddCommand(
		newClientCmd(app),
		newInvoiceCmd(app),
		newItemCmd(app),
		newExpenseCmd(app),
		newReportCmd(app),
	)

	return root
}
