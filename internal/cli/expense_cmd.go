package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Track business expenses",
	}

	cmd.AddCommand(
		newExpenseAddCmd(app),
		newExpenseListCmd(app),
		newExpenseUpdateCmd(app),
		newExpenseRemoveCmd(app),
	)

	return cmd
}

func newExpenseAddCmd(app *App) *cobra.Command {
	var category, amount, vat, date, description, receipt string

	cmd := &cobra.Command{
		Use:   "add VENDOR",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("bad amount %q: %w", amount, err)
			}

			e := &domain.Expense{
				Vendor:      args[0],
				Category:    domain.ExpenseCategory(category),
				Amount:      amt,
				Description: description,
				ReceiptPath: receipt,
			}
			if vat != "" {
				v, err := decimal.NewFromString(vat)
				if err != nil {
					return fmt.Errorf("bad VAT amount %q: %w", vat, err)
				}
				e.VATAmount = v
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				e.Date = d
			}

			if err := app.Expenses.Create(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Recorded %s expense of %s €\n", e.Category, e.Amount.RoundBank(2).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(domain.CategoryOther),
		fmt.Sprintf("Category (%s)", categoryList()))
	cmd.Flags().StringVar(&amount, "amount", "", "Total amount including VAT")
	cmd.Flags().StringVar(&vat, "vat", "", "VAT portion of the amount")
	cmd.Flags().StringVar(&date, "date", "", "Expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&receipt, "receipt", "", "Path to a receipt file")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func categoryList() string {
	out := ""
	for i, c := range domain.ExpenseCategories {
		if i > 0 {
			out += "|"
		}
		out += string(c)
	}
	return out
}

func newExpenseListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			expenses, err := app.Expenses.List(context.Background(), domain.ExpenseCategory(category))
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				fmt.Println("No expenses recorded.")
				return nil
			}
			fmt.Print(formatter.FormatExpenseList(expenses))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func newExpenseUpdateCmd(app *App) *cobra.Command {
	var vendor, category, amount, vat, date, description string

	cmd := &cobra.Command{
		Use:   "update EXPENSE-ID",
		Short: "Update an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Expenses.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("vendor") {
				e.Vendor = vendor
			}
			if cmd.Flags().Changed("category") {
				e.Category = domain.ExpenseCategory(category)
			}
			if cmd.Flags().Changed("amount") {
				a, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("bad amount %q: %w", amount, err)
				}
				e.Amount = a
			}
			if cmd.Flags().Changed("vat") {
				v, err := decimal.NewFromString(vat)
				if err != nil {
					return fmt.Errorf("bad VAT amount %q: %w", vat, err)
				}
				e.VATAmount = v
			}
			if cmd.Flags().Changed("date") {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				e.Date = d
			}
			if cmd.Flags().Changed("description") {
				e.Description = description
			}

			if err := app.Expenses.Update(ctx, e); err != nil {
				return err
			}
			fmt.Println("Expense updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor name")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&amount, "amount", "", "Total amount including VAT")
	cmd.Flags().StringVar(&vat, "vat", "", "VAT portion of the amount")
	cmd.Flags().StringVar(&date, "date", "", "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")

	return cmd
}

func newExpenseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EXPENSE-ID",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Expenses.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Expense removed.")
			return nil
		},
	}
}
