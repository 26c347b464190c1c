package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// DeleteTransaction removes a transaction and reverses its effect on the
// owning account's balance in the same database transaction, so the running
// total stays consistent with the remaining history.
type DeleteTransaction struct {
	TransactionID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.FindByID(ctx, t.TransactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTransactionNotFound
	}
	if err != nil {
		return err
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, row.AccountID)
	if err != nil {
		return err
	}

	if err := writer.Transaction.Delete(ctx, t.TransactionID); err != nil {
		return err
	}

	newBalance := acct.Balance.Sub(balanceEffect(acct.Type, row.Direction, row.Amount))
	return writer.Account.UpdateBalance(ctx, row.AccountID, newBalance)
}
