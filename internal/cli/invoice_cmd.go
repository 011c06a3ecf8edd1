package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/pdf"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInvoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices",
	}

	cmd.AddCommand(
		newInvoiceAddCmd(app),
		newInvoiceListCmd(app),
		newInvoiceInspectCmd(app),
		newInvoicePaidCmd(app),
		newInvoiceCancelCmd(app),
		newInvoiceSweepCmd(app),
		newInvoiceRemoveCmd(app),
		newInvoicePDFCmd(app),
		newInvoiceExportCmd(app),
		newInvoiceDraftCmd(app),
		newInvoiceBrowseCmd(app),
	)

	return cmd
}

// parseItemSpec parses an --item flag value of the form
// "description:quantity:unit_price" with an optional ":vat_rate" suffix.
func parseItemSpec(spec string, defaultVAT decimal.Decimal) (domain.InvoiceItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.InvoiceItem{}, fmt.Errorf("item %q: want DESCRIPTION:QTY:PRICE[:VAT]", spec)
	}

	qty, err := decimal.NewFromString(parts[1])
	if err != nil {
		return domain.InvoiceItem{}, fmt.Errorf("item %q: bad quantity: %w", spec, err)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil {
		return domain.InvoiceItem{}, fmt.Errorf("item %q: bad unit price: %w", spec, err)
	}
	rate := defaultVAT
	if len(parts) == 4 {
		rate, err = decimal.NewFromString(parts[3])
		if err != nil {
			return domain.InvoiceItem{}, fmt.Errorf("item %q: bad VAT rate: %w", spec, err)
		}
	}

	return domain.InvoiceItem{
		Description: parts[0],
		Quantity:    qty,
		UnitPrice:   price,
		VATRate:     rate,
	}, nil
}

func newInvoiceAddCmd(app *App) *cobra.Command {
	var number, client, date, due, notes string
	var itemSpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, client)
			if err != nil {
				return err
			}

			inv := &domain.Invoice{
				InvoiceNumber: number,
				ClientID:      clientID,
				Notes:         notes,
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid invoice date %q: %w", date, err)
				}
				inv.InvoiceDate = d
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				inv.DueDate = &d
			}

			items := make([]domain.InvoiceItem, 0, len(itemSpecs))
			for _, spec := range itemSpecs {
				it, err := parseItemSpec(spec, app.DefaultVATRate)
				if err != nil {
					return err
				}
				items = append(items, it)
			}

			if err := app.Invoices.Create(ctx, inv, items); err != nil {
				return err
			}

			totals, err := app.Invoices.Totals(ctx, inv.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Created invoice %s, total %s €\n",
				inv.InvoiceNumber, totals.Rounded().GrandTotal.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Invoice number (unique)")
	cmd.Flags().StringVar(&client, "client", "", "Client name, ID or ID prefix")
	cmd.Flags().StringVar(&date, "date", "", "Invoice date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "Line item DESCRIPTION:QTY:PRICE[:VAT], repeatable")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newInvoiceListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := app.Invoices.List(ctx, domain.InvoiceStatus(status))
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No invoices found.")
				return nil
			}

			rows := make([]formatter.InvoiceListRow, 0, len(list))
			for _, v := range list {
				totals, err := app.Invoices.Totals(ctx, v.Invoice.ID)
				if err != nil {
					return err
				}
				rows = append(rows, formatter.InvoiceListRow{
					Invoice:    v.Invoice,
					ClientName: v.ClientName,
					Total:      totals.Rounded().GrandTotal.StringFixed(2),
				})
			}

			fmt.Print(formatter.FormatInvoiceList(rows, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending|paid|overdue|cancelled)")

	return cmd
}

func newInvoiceInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect INVOICE",
		Short: "Show invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			view, err := app.Invoices.View(ctx, inv.InvoiceNumber)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatInvoiceInspect(view))
			return nil
		},
	}
}

func newInvoicePaidCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "paid INVOICE",
		Short: "Mark an invoice as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Invoices.MarkPaid(ctx, inv.ID); err != nil {
				return err
			}
			fmt.Printf("Invoice %s marked as paid.\n", inv.InvoiceNumber)
			return nil
		},
	}
}

func newInvoiceCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel INVOICE",
		Short: "Cancel an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Invoices.Cancel(ctx, inv.ID); err != nil {
				return err
			}
			fmt.Printf("Invoice %s cancelled.\n", inv.InvoiceNumber)
			return nil
		},
	}
}

func newInvoiceSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Mark past-due pending invoices as overdue",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Invoices.SweepOverdue(context.Background())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println("Nothing to sweep.")
				return nil
			}
			fmt.Printf("%d invoice(s) marked overdue.\n", n)
			return nil
		},
	}
}

func newInvoiceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove INVOICE",
		Short: "Delete an invoice and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Invoices.Delete(ctx, inv.ID); err != nil {
				return err
			}
			fmt.Printf("Invoice %s removed.\n", inv.InvoiceNumber)
			return nil
		},
	}
}

func newInvoicePDFCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf INVOICE",
		Short: "Render an invoice as a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			view, err := app.Invoices.View(ctx, inv.InvoiceNumber)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = inv.InvoiceNumber + ".pdf"
			}
			if err := pdf.WriteInvoiceFile(path, view); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default NUMBER.pdf)")

	return cmd
}

func newInvoiceExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export INVOICE",
		Short: "Export an invoice as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, args[0])
			if err != nil {
				return err
			}
			view, err := app.Invoices.View(ctx, inv.InvoiceNumber)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			case "yaml":
				return yaml.NewEncoder(os.Stdout).Encode(view)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format (json|yaml)")

	return cmd
}
