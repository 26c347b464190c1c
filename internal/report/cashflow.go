package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CashFlowSeries aggregates income and expense totals per calendar month for
// the selected window. Every month bucket from the window start through the
// current month is present, including months with no transactions.
func CashFlowSeries(transactions []Transaction, r TimeRange, now time.Time) []CashFlowPoint {
	start := windowStart(transactions, r, now)
	current := monthStart(now)

	income := make(map[time.Time]decimal.Decimal)
	expenses := make(map[time.Time]decimal.Decimal)
	for _, tx := range transactions {
		month := monthStart(tx.Date)
		if month.Before(start) || month.After(current) {
			continue
		}
		switch tx.Direction {
		case DirectionIncome:
			income[month] = income[month].Add(tx.Amount)
		case DirectionExpense:
			expenses[month] = expenses[month].Add(tx.Amount)
		}
	}

	var points []CashFlowPoint
	for month := start; !month.After(current); month = month.AddDate(0, 1, 0) {
		in := income[month]
		out := expenses[month]
		points = append(points, CashFlowPoint{
			Month:    month,
			Income:   in,
			Expenses: out,
			Net:      in.Sub(out),
		})
	}
	return points
}

// SpendingByCategory totals expense transactions per category within the
// window, largest first. Income transactions are ignored. Transactions without
// a category are grouped under uuid.Nil.
func SpendingByCategory(transactions []Transaction, r TimeRange, now time.Time) []CategorySpend {
	start := windowStart(transactions, r, now)
	end := monthEnd(now)

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Direction != DirectionExpense {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}

	result := make([]CategorySpend, 0, len(totals))
	for id, total := range totals {
		result = append(result, CategorySpend{CategoryID: id, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].CategoryID.String() < result[j].CategoryID.String()
	})
	return result
}
