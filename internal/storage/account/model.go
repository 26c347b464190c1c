package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account. CreditCards and Loans are
// liability-like: their balance magnitude reduces net worth.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Liability reports whether a positive balance on this account type reduces
// net worth.
func (t AccountType) Liability() bool {
	return t == AccountTypeCreditCards || t == AccountTypeLoans
}

// Account represents an account record. Balance is a mutable running total
// maintained by transaction writes; it is not itself a ledger.
type Account struct {
	ID              uuid.UUID       `db:"id"`
	Name            string          `db:"name"`
	Type            AccountType     `db:"type"`
	SubType         string          `db:"sub_type"`
	Balance         decimal.Decimal `db:"balance"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	CreatedAt       time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name            string
	Type            AccountType
	SubType         string
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
}

// AccountFilter specifies filters for listing accounts. Nil filter or a zero
// Limit returns all rows.
type AccountFilter struct {
	Limit  int
	Offset int
}

// Store defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
