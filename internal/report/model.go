package report

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moves money in or out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// TimeRange selects how far back a report series starts.
type TimeRange string

const (
	TimeRange3M  TimeRange = "3m"
	TimeRange6M  TimeRange = "6m"
	TimeRange12M TimeRange = "12m"
	TimeRangeAll TimeRange = "all"
)

// ErrInvalidTimeRange is returned when a range string is not one of 3m, 6m, 12m, all.
var ErrInvalidTimeRange = errors.New("report: invalid time range")

// ParseTimeRange validates a range string from the API.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case TimeRange3M, TimeRange6M, TimeRange12M, TimeRangeAll:
		return TimeRange(s), nil
	}
	return "", ErrInvalidTimeRange
}

func (r TimeRange) months() int {
	switch r {
	case TimeRange3M:
		return 3
	case TimeRange6M:
		return 6
	case TimeRange12M:
		return 12
	}
	return 0
}

// Account is the input view of an account for report computations.
// Balance is the authoritative as-of-now running total, not a ledger.
type Account struct {
	ID              uuid.UUID
	Name            string
	Liability       bool
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
}

// Transaction is the input view of a transaction for report computations.
// Amount is always a positive magnitude; Direction carries the sign.
type Transaction struct {
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Direction  Direction
	Date       time.Time
}

// Effect returns the signed change this transaction applied to its account's
// balance when it was recorded. Income increases an asset balance and decreases
// a liability balance (a payment); expense is the mirror (a new charge grows
// the liability).
func (t Transaction) Effect(liability bool) decimal.Decimal {
	amount := t.Amount
	if t.Direction == DirectionExpense {
		amount = amount.Neg()
	}
	if liability {
		amount = amount.Neg()
	}
	return amount
}

// NetWorthPoint is one calendar-month bucket of the net-worth series.
// Month is the first instant of the month in UTC.
type NetWorthPoint struct {
	Month       time.Time
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
}

// CashFlowPoint is one calendar-month bucket of the cash-flow series.
type CashFlowPoint struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategorySpend is the expense total for one category within a window.
// CategoryID is uuid.Nil for uncategorized transactions.
type CategorySpend struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
}

// monthStart truncates t to the first instant of its calendar month in UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthEnd returns the last instant of the calendar month containing t.
func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// windowStart computes the first month bucket for a range. Fixed ranges count
// back from the current month's first day. TimeRangeAll starts at the earliest
// transaction's month, or twelve months back when there are no transactions.
func windowStart(transactions []Transaction, r TimeRange, now time.Time) time.Time {
	current := monthStart(now)
	if n := r.months(); n > 0 {
		return current.AddDate(0, -n, 0)
	}

	earliest := time.Time{}
	for _, tx := range transactions {
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	if earliest.IsZero() {
		return current.AddDate(0, -12, 0)
	}
	start := monthStart(earliest)
	if start.After(current) {
		return current
	}
	return start
}
