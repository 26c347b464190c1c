package report

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Drift is the result of reconciling one account's stored balance against a
// replay of its transaction history from the starting balance.
type Drift struct {
	AccountID uuid.UUID
	Name      string
	Stored    decimal.Decimal
	Replayed  decimal.Decimal
	Drift     decimal.Decimal
}

// Consistent reports whether the stored balance matches the replayed total.
func (d Drift) Consistent() bool {
	return d.Drift.IsZero()
}

// Reconcile replays an account's transactions forward from its starting
// balance and compares the result to the stored balance. The net-worth
// reconstruction assumes the two agree; any drift here corrupts every
// historical point for the account by the same amount.
func Reconcile(account Account, transactions []Transaction) Drift {
	replayed := account.StartingBalance
	for _, tx := range transactions {
		if tx.AccountID != account.ID {
			continue
		}
		replayed = replayed.Add(tx.Effect(account.Liability))
	}
	return Drift{
		AccountID: account.ID,
		Name:      account.Name,
		Stored:    account.Balance,
		Replayed:  replayed,
		Drift:     account.Balance.Sub(replayed),
	}
}

// ReconcileAll runs Reconcile for every account and returns the results in
// input order.
func ReconcileAll(accounts []Account, transactions []Transaction) []Drift {
	drifts := make([]Drift, len(accounts))
	for i, acct := range accounts {
		drifts[i] = Reconcile(acct, transactions)
	}
	return drifts
}
