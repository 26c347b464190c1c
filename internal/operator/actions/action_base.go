package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// balanceEffect is the signed change a transaction applies to its account's
// balance. Income grows an asset and shrinks a liability (a payment); expense
// is the mirror (a charge grows the liability).
func balanceEffect(accountType account.AccountType, direction transaction.Direction, amount decimal.Decimal) decimal.Decimal {
	if direction == transaction.DirectionExpense {
		amount = amount.Neg()
	}
	if accountType.Liability() {
		amount = amount.Neg()
	}
	return amount
}
