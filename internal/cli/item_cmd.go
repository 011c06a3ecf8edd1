package cli

import (
	"context"
	"fmt"

	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage invoice line items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var invoice, qty, price, vat string

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Add a line item to an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, invoice)
			if err != nil {
				return err
			}

			spec := fmt.Sprintf("%s:%s:%s", args[0], qty, price)
			if vat != "" {
				spec += ":" + vat
			}
			it, err := parseItemSpec(spec, app.DefaultVATRate)
			if err != nil {
				return err
			}
			it.InvoiceID = inv.ID

			if err := app.Items.Add(ctx, &it); err != nil {
				return err
			}

			totals, err := app.Invoices.Totals(ctx, inv.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Added item to %s, new total %s €\n",
				inv.InvoiceNumber, totals.Rounded().GrandTotal.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&invoice, "invoice", "", "Invoice number, ID or ID prefix")
	cmd.Flags().StringVar(&qty, "qty", "1", "Quantity")
	cmd.Flags().StringVar(&price, "price", "", "Unit price")
	cmd.Flags().StringVar(&vat, "vat", "", "VAT rate percentage (default from config)")
	_ = cmd.MarkFlagRequired("invoice")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var invoice string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an invoice's line items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inv, err := resolveInvoice(ctx, app, invoice)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByInvoice(ctx, inv.ID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for i := range items {
				it := &items[i]
				rows = append(rows, []string{
					formatter.TruncID(it.ID),
					it.Description,
					it.Quantity.String(),
					formatter.Money(it.UnitPrice.RoundBank(2).StringFixed(2)),
					it.VATRate.String() + "%",
					formatter.Money(it.Total().RoundBank(2).StringFixed(2)),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "DESCRIPTION", "QTY", "PRICE", "VAT", "TOTAL"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&invoice, "invoice", "", "Invoice number, ID or ID prefix")
	_ = cmd.MarkFlagRequired("invoice")

	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var desc, qty, price, vat string

	cmd := &cobra.Command{
		Use:   "update ITEM-ID",
		Short: "Update a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			it, err := app.Items.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("description") {
				it.Description = desc
			}
			if cmd.Flags().Changed("qty") {
				q, err := decimal.NewFromString(qty)
				if err != nil {
					return fmt.Errorf("bad quantity %q: %w", qty, err)
				}
				it.Quantity = q
			}
			if cmd.Flags().Changed("price") {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("bad unit price %q: %w", price, err)
				}
				it.UnitPrice = p
			}
			if cmd.Flags().Changed("vat") {
				r, err := decimal.NewFromString(vat)
				if err != nil {
					return fmt.Errorf("bad VAT rate %q: %w", vat, err)
				}
				it.VATRate = r
			}

			if err := app.Items.Update(ctx, it); err != nil {
				return err
			}
			fmt.Println("Item updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "description", "", "Item description")
	cmd.Flags().StringVar(&qty, "qty", "", "Quantity")
	cmd.Flags().StringVar(&price, "price", "", "Unit price")
	cmd.Flags().StringVar(&vat, "vat", "", "VAT rate percentage")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM-ID",
		Short: "Remove a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Item removed.")
			return nil
		},
	}
}
