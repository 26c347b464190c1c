package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Direction indicates whether a transaction moves money in or out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Transaction represents a transaction in the service layer. CategoryID is
// uuid.Nil for uncategorized transactions.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Direction       Direction
	TransactionName string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListFilter narrows a listing to one account or category.
type TransactionListFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	categoryID := uuid.Nil
	if row.CategoryID.Valid {
		categoryID = row.CategoryID.UUID
	}
	return Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		CategoryID:      categoryID,
		Amount:          row.Amount,
		Direction:       Direction(row.Direction),
		TransactionName: row.TransactionName,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
