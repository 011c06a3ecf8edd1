package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// laimisHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func laimisHuhTheme() *huh.Theme {
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

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateDecimal(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// wizardSelectClient creates a huh form to pick a client from the list.
func wizardSelectClient(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no clients yet; add one with `laimis client add`")
	}

	options := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		options = append(options, huh.NewOption(c.DisplayName(), c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which client?").
				Options(options...).
				Value(result),
		),
	).WithTheme(laimisHuhTheme()).WithShowHelp(false), nil
}

func newInvoiceDraftCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "draft",
		Short: "Create an invoice interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("draft needs an interactive terminal; use `laimis invoice add` instead")
			}
			return runInvoiceDraft(context.Background(), app)
		},
	}
}

func runInvoiceDraft(ctx context.Context, app *App) error {
	var clientID string
	form, err := wizardSelectClient(ctx, app, &clientID)
	if err != nil {
		return err
	}
	if err := form.Run(); err != nil {
		return err
	}

	var number, due, notes string
	header := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Invoice number").
				Placeholder("INV-2025-001").
				Value(&number).
				Validate(validateRequired),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Value(&due).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(laimisHuhTheme()).WithShowHelp(false)
	if err := header.Run(); err != nil {
		return err
	}

	var items []domain.InvoiceItem
	for {
		var desc, qty, price, vat string
		qty = "1"
		vat = app.DefaultVATRate.String()
		itemForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Description").Value(&desc).Validate(validateRequired),
				huh.NewInput().Title("Quantity").Value(&qty).Validate(validateDecimal),
				huh.NewInput().Title("Unit price").Value(&price).Validate(validateDecimal),
				huh.NewInput().Title("VAT rate %").Value(&vat).Validate(validateDecimal),
			),
		).WithTheme(laimisHuhTheme()).WithShowHelp(false)
		if err := itemForm.Run(); err != nil {
			return err
		}

		items = append(items, domain.InvoiceItem{
			Description: desc,
			Quantity:    decimal.RequireFromString(qty),
			UnitPrice:   decimal.RequireFromString(price),
			VATRate:     decimal.RequireFromString(vat),
		})

		var more bool
		another := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().Title("Add another item?").Value(&more),
			),
		).WithTheme(laimisHuhTheme()).WithShowHelp(false)
		if err := another.Run(); err != nil {
			return err
		}
		if !more {
			break
		}
	}

	inv := &domain.Invoice{
		InvoiceNumber: number,
		ClientID:      clientID,
		Notes:         notes,
	}
	if due != "" {
		d, _ := time.Parse("2006-01-02", due)
		inv.DueDate = &d
	}

	total := domain.CalculateTotal(items).RoundBank(2)
	var confirmed bool
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Create invoice %s for %s € (%d items)?",
					number, total.StringFixed(2), len(items))).
				Value(&confirmed),
		),
	).WithTheme(laimisHuhTheme()).WithShowHelp(false)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	if err := app.Invoices.Create(ctx, inv, items); err != nil {
		return err
	}
	fmt.Printf("Created invoice %s, total %s €\n", inv.InvoiceNumber, total.StringFixed(2))
	return nil
}
