package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store, now: time.Now}
}

// CreateBudget creates a new budget and returns its ID.
func (s *BudgetService) CreateBudget(ctx context.Context, b Budget) (uuid.UUID, error) {
	return s.storage.Budgets.Insert(ctx, &budget.BudgetCreate{
		Name:       b.Name,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     budget.Period(b.Period),
		StartDate:  b.StartDate,
	})
}

// ListBudgets returns all budgets ordered by name.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]Budget, error) {
	rows, err := s.storage.Budgets.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Budget, len(rows))
	for i, row := range rows {
		converted[i] = budgetFromStorage(row)
	}
	return converted, nil
}

// BudgetStatuses computes, for every budget, the recurring window containing
// now and the expense total spent inside it.
func (s *BudgetService) BudgetStatuses(ctx context.Context) ([]BudgetStatus, error) {
	rows, err := s.storage.Budgets.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	statuses := make([]BudgetStatus, len(rows))
	for i, row := range rows {
		b := budgetFromStorage(row)
		windowStart, windowEnd := PeriodWindow(b.Period, b.StartDate, now)

		spent, err := s.storage.Transactions.SumByCategory(ctx, b.CategoryID, transaction.DirectionExpense, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}

		statuses[i] = BudgetStatus{
			Budget:      b,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			Spent:       spent,
			Remaining:   b.Amount.Sub(spent),
		}
	}
	return statuses, nil
}
