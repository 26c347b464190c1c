package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Direction records which way a transaction moves money. Amounts are always
// stored as positive magnitudes; Direction carries the sign.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Transaction represents a transaction record. Transactions are immutable
// facts; the owning account's balance is the running total they feed.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Direction       Direction       `db:"direction"`
	TransactionName string          `db:"transaction_name"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Direction       Direction
	TransactionName string
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions. Nil filter
// returns all rows ordered newest first.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// Store defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SumByCategory(ctx context.Context, categoryID uuid.UUID, direction Direction, from, to time.Time) (decimal.Decimal, error)
}
