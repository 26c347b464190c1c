// Package report computes the report series served by the /v1/reports
// endpoints. All functions are pure: they take already-fetched accounts and
// transactions plus a reference time and perform no I/O.
package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// NetWorthSeries reconstructs a month-by-month series of assets, liabilities,
// and net worth from current account balances and the full transaction
// history.
//
// For each month bucket the reconstruction starts from each account's current
// balance and undoes every transaction dated after the bucket's month-end,
// newest first. Accounts created after the month-end contribute nothing for
// that bucket. Liability balances enter the total as their absolute value, and
// net worth is assets minus liabilities.
//
// The result trusts each account's Balance field as ground truth; use
// Reconcile to detect drift between the stored balance and the replayed
// history before relying on historical points.
func NetWorthSeries(accounts []Account, transactions []Transaction, r TimeRange, now time.Time) []NetWorthPoint {
	byAccount := make(map[uuid.UUID][]Transaction, len(accounts))
	for _, tx := range transactions {
		byAccount[tx.AccountID] = append(byAccount[tx.AccountID], tx)
	}
	for _, txs := range byAccount {
		sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
	}

	start := windowStart(transactions, r, now)
	current := monthStart(now)

	var points []NetWorthPoint
	for month := start; !month.After(current); month = month.AddDate(0, 1, 0) {
		end := monthEnd(month)

		assets := decimal.Zero
		liabilities := decimal.Zero
		for _, acct := range accounts {
			if acct.CreatedAt.After(end) {
				continue
			}

			balance := acct.Balance
			txs := byAccount[acct.ID]
			for i := len(txs) - 1; i >= 0; i-- {
				if !txs[i].Date.After(end) {
					break
				}
				balance = balance.Sub(txs[i].Effect(acct.Liability))
			}

			if acct.Liability {
				liabilities = liabilities.Add(balance.Abs())
			} else {
				assets = assets.Add(balance)
			}
		}

		points = append(points, NetWorthPoint{
			Month:       month,
			Assets:      assets,
			Liabilities: liabilities,
			NetWorth:    assets.Sub(liabilities),
		})
	}

	return points
}
