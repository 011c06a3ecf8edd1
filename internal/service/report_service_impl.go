package service

import (
	"context"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
	"github.com/shopspring/decimal"
)

type reportService struct {
	invoices repository.InvoiceRepo
	items    repository.InvoiceItemRepo
	expenses repository.ExpenseRepo
	observer UseCaseObserver
}

func NewReportService(
	invoices repository.InvoiceRepo,
	items repository.InvoiceItemRepo,
	expenses repository.ExpenseRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		invoices: invoices,
		items:    items,
		expenses: expenses,
		observer: useCaseObserverOrNoop(observers),
	}
}

// statusOrder fixes the display order of status lines in the summary.
var statusOrder = []domain.InvoiceStatus{
	domain.InvoicePending,
	domain.InvoiceOverdue,
	domain.InvoicePaid,
	domain.InvoiceCancelled,
}

// Summary aggregates all invoices and expenses into the dashboard view.
// Invoice amounts are recomputed from the item sets; nothing is read from
// a stored total. Cancelled invoices are excluded from the invoiced sum.
func (s *reportService) Summary(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report_summary",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	now := time.Now().UTC()
	if req.Today != nil {
		now = *req.Today
	}

	invoices, err := s.invoices.List(ctx, "")
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.InvoiceStatus]int)
	amounts := make(map[domain.InvoiceStatus]decimal.Decimal)
	var invoiced, outstanding, paid decimal.Decimal

	for _, v := range invoices {
		items, err := s.items.ListByInvoice(ctx, v.Invoice.ID)
		if err != nil {
			return nil, err
		}
		total := domain.CalculateTotal(items)

		st := v.Invoice.Status
		counts[st]++
		amounts[st] = amounts[st].Add(total)

		switch st {
		case domain.InvoicePending, domain.InvoiceOverdue:
			invoiced = invoiced.Add(total)
			outstanding = outstanding.Add(total)
		case domain.InvoicePaid:
			invoiced = invoiced.Add(total)
			paid = paid.Add(total)
		}
	}

	expenses, err := s.expenses.List(ctx, "")
	if err != nil {
		return nil, err
	}

	catCounts := make(map[domain.ExpenseCategory]int)
	catAmounts := make(map[domain.ExpenseCategory]decimal.Decimal)
	catVAT := make(map[domain.ExpenseCategory]decimal.Decimal)
	var expenseTotal, expenseVAT decimal.Decimal

	for _, e := range expenses {
		catCounts[e.Category]++
		catAmounts[e.Category] = catAmounts[e.Category].Add(e.Amount)
		catVAT[e.Category] = catVAT[e.Category].Add(e.VATAmount)
		expenseTotal = expenseTotal.Add(e.Amount)
		expenseVAT = expenseVAT.Add(e.VATAmount)
	}

	resp = &contract.SummaryResponse{
		GeneratedAt:  now,
		InvoiceCount: len(invoices),
		Invoiced:     money(invoiced),
		Outstanding:  money(outstanding),
		Paid:         money(paid),
		ExpenseCount: len(expenses),
		ExpenseTotal: money(expenseTotal),
		ExpenseVAT:   money(expenseVAT),
		Net:          money(invoiced.Sub(expenseTotal)),
	}

	for _, st := range statusOrder {
		if counts[st] == 0 {
			continue
		}
		resp.ByStatus = append(resp.ByStatus, contract.StatusLine{
			Status: string(st),
			Count:  counts[st],
			Amount: money(amounts[st]),
		})
	}
	for _, cat := range domain.ExpenseCategories {
		if catCounts[cat] == 0 {
			continue
		}
		resp.ByCategory = append(resp.ByCategory, contract.CategoryLine{
			Category: string(cat),
			Count:    catCounts[cat],
			Amount:   money(catAmounts[cat]),
			VAT:      money(catVAT[cat]),
		})
	}

	return resp, nil
}
