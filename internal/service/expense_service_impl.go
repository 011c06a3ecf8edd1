package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
)

type expenseService struct {
	expenses repository.ExpenseRepo
}

func NewExpenseService(expenses repository.ExpenseRepo) ExpenseService {
	return &expenseService{expenses: expenses}
}

func (s *expenseService) Create(ctx context.Context, e *domain.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}
	return s.expenses.Create(ctx, e)
}

func (s *expenseService) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *expenseService) List(ctx context.Context, category domain.ExpenseCategory) ([]*domain.Expense, error) {
	if category != "" && !domain.ValidExpenseCategories[string(category)] {
		return nil, fmt.Errorf("invalid expense category %q", category)
	}
	return s.expenses.List(ctx, category)
}

func (s *expenseService) Update(ctx context.Context, e *domain.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return s.expenses.Update(ctx, e)
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.expenses.Delete(ctx, id)
}
