package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/spf13/cobra"
)

func newInvoiceBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse invoices interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal; use `laimis invoice list` instead")
			}
			model := newBrowseModel(app)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}
}

// invoicesLoadedMsg signals that the invoice listing has been loaded.
type invoicesLoadedMsg struct {
	rows []formatter.InvoiceListRow
	err  error
}

// invoiceViewMsg carries the detail view for the selected invoice.
type invoiceViewMsg struct {
	view *contract.InvoiceView
	err  error
}

type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

var defaultBrowseKeys = browseKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseModel is an interactive invoice list with a detail pane.
type browseModel struct {
	app     *App
	keys    browseKeys
	rows    []formatter.InvoiceListRow
	cursor  int
	loading bool
	err     error

	filtering bool
	filter    string

	detail *contract.InvoiceView
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{app: app, keys: defaultBrowseKeys, loading: true}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadInvoices()
}

func (m *browseModel) loadInvoices() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		list, err := app.Invoices.List(ctx, "")
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}
		rows := make([]formatter.InvoiceListRow, 0, len(list))
		for _, v := range list {
			totals, err := app.Invoices.Totals(ctx, v.Invoice.ID)
			if err != nil {
				return invoicesLoadedMsg{err: err}
			}
			rows = append(rows, formatter.InvoiceListRow{
				Invoice:    v.Invoice,
				ClientName: v.ClientName,
				Total:      totals.Rounded().GrandTotal.StringFixed(2),
			})
		}
		return invoicesLoadedMsg{rows: rows}
	}
}

func (m *browseModel) loadDetail(number string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		view, err := app.Invoices.View(context.Background(), number)
		return invoiceViewMsg{view: view, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		m.rows, m.err = msg.rows, msg.err
		return m, nil

	case invoiceViewMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail = msg.view
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.detail != nil {
			m.detail = nil
			return m, nil
		}
		return m, tea.Quit
	}

	if m.detail != nil {
		return m, nil
	}

	visible := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(visible) {
			return m, m.loadDetail(visible[m.cursor].Invoice.InvoiceNumber)
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter = ""
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

// visibleRows filters by invoice number or client name, case-insensitively.
func (m *browseModel) visibleRows() []formatter.InvoiceListRow {
	if m.filter == "" {
		return m.rows
	}
	needle := strings.ToLower(m.filter)
	var out []formatter.InvoiceListRow
	for _, r := range m.rows {
		if strings.Contains(strings.ToLower(r.Invoice.InvoiceNumber), needle) ||
			strings.Contains(strings.ToLower(r.ClientName), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m *browseModel) View() string {
	if m.loading {
		return formatter.Dim("Loading invoices...") + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.detail != nil {
		return formatter.FormatInvoiceInspect(m.detail) + "\n" +
			formatter.Dim("esc back · q quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Invoices"))
	b.WriteString("\n")
	if m.filtering || m.filter != "" {
		b.WriteString(formatter.Dim("filter: ") + m.filter + "\n")
	}

	visible := m.visibleRows()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No invoices.") + "\n")
	}
	now := time.Now()
	for i, r := range visible {
		prefix := "  "
		line := fmt.Sprintf("%s  %s  %s  %s",
			r.Invoice.InvoiceNumber,
			r.ClientName,
			formatter.StatusPill(r.Invoice.Status),
			formatter.Money(r.Total))
		if r.Invoice.DueDate != nil {
			line += "  " + formatter.DueDateStyled(r.Invoice.DueDate, now)
		}
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
			line = formatter.Bold(r.Invoice.InvoiceNumber) + line[len(r.Invoice.InvoiceNumber):]
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · enter inspect · / filter · q quit") + "\n")
	return b.String()
}
