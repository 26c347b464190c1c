package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Period is how often a budget window recurs.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Budget caps spending for one category over a recurring window anchored at
// StartDate.
type Budget struct {
	ID         uuid.UUID       `db:"id"`
	Name       string          `db:"name"`
	CategoryID uuid.UUID       `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Period     Period          `db:"period"`
	StartDate  time.Time       `db:"start_date"`
	CreatedAt  time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	Name       string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     Period
	StartDate  time.Time
}

// Store defines the interface for budget storage operations.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Budget, error)
}
