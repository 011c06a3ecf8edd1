package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// resolveClientID turns user input into a client UUID. Accepts an exact
// name (case-insensitive), a full UUID or a UUID prefix.
func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("client is required")
	}

	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range clients {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range clients {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveInvoice turns user input into an invoice. Accepts an invoice
// number (case-insensitive), a full UUID or a UUID prefix.
func resolveInvoice(ctx context.Context, app *App, input string) (*domain.Invoice, error) {
	if input == "" {
		return nil, fmt.Errorf("invoice is required")
	}

	if inv, err := app.Invoices.GetByNumber(ctx, input); err == nil {
		return inv, nil
	}
	if inv, err := app.Invoices.GetByID(ctx, input); err == nil {
		return inv, nil
	}

	all, err := app.Invoices.List(ctx, "")
	if err != nil {
		return nil, err
	}
	var matches []*domain.Invoice
	for i := range all {
		if strings.HasPrefix(all[i].Invoice.ID, input) {
			matches = append(matches, &all[i].Invoice)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("invoice not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("invoice ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
