package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

var ErrAccountNotFound = errors.New("account not found")

// CreateTransaction inserts a transaction and applies its effect to the owning
// account's balance in the same database transaction. The generated ID is left
// on the ID field after Perform succeeds.
type CreateTransaction struct {
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Direction       transaction.Direction
	TransactionName string
	TransactionDate time.Time

	ID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Account.FindByIDForUpdate(ctx, t.AccountID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}

	storageCreate := &transaction.TransactionCreate{
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Direction:       t.Direction,
		TransactionName: t.TransactionName,
		TransactionDate: t.TransactionDate,
	}
	id, err := writer.Transaction.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}
	t.ID = id

	newBalance := acct.Balance.Add(balanceEffect(acct.Type, t.Direction, t.Amount))
	return writer.Account.UpdateBalance(ctx, t.AccountID, newBalance)
}
