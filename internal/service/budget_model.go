package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// BudgetPeriod is how often a budget window recurs.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	CreatedAt  time.Time
}

// BudgetStatus is a budget with its current recurring window and the expense
// total accumulated inside it.
type BudgetStatus struct {
	Budget      Budget
	WindowStart time.Time
	WindowEnd   time.Time
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
}

func budgetFromStorage(row *budget.Budget) Budget {
	return Budget{
		ID:         row.ID,
		Name:       row.Name,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Period:     BudgetPeriod(row.Period),
		StartDate:  row.StartDate,
		CreatedAt:  row.CreatedAt,
	}
}

// PeriodWindow computes the recurring window containing now for a budget
// anchored at startDate. Monthly windows anchor on startDate's day of month,
// clamped to shorter months; yearly windows anchor on its month and day.
// Before the first window begins, the first window is returned.
func PeriodWindow(period BudgetPeriod, startDate, now time.Time) (time.Time, time.Time) {
	start := dayStart(startDate)
	now = now.UTC()

	switch period {
	case BudgetPeriodWeekly:
		if now.Before(start) {
			return start, windowEnd(start.AddDate(0, 0, 7))
		}
		weeks := int(now.Sub(start) / (7 * 24 * time.Hour))
		windowStart := start.AddDate(0, 0, weeks*7)
		return windowStart, windowEnd(windowStart.AddDate(0, 0, 7))

	case BudgetPeriodYearly:
		windowStart := yearAnchor(now.Year(), start)
		if now.Before(windowStart) {
			windowStart = yearAnchor(now.Year()-1, start)
		}
		if windowStart.Before(start) {
			windowStart = start
		}
		return windowStart, windowEnd(yearAnchor(windowStart.Year()+1, start))

	default: // monthly
		windowStart := monthAnchor(now.Year(), now.Month(), start.Day())
		if now.Before(windowStart) {
			windowStart = monthAnchor(now.Year(), now.Month()-1, start.Day())
		}
		if windowStart.Before(start) {
			windowStart = start
		}
		next := monthAnchor(windowStart.Year(), windowStart.Month()+1, start.Day())
		return windowStart, windowEnd(next)
	}
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func windowEnd(nextStart time.Time) time.Time {
	return nextStart.Add(-time.Nanosecond)
}

// monthAnchor returns the anchor day in the given month, clamping to the last
// day of shorter months (a budget anchored on the 31st recurs on the 30th or
// 28th where needed).
func monthAnchor(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func yearAnchor(year int, start time.Time) time.Time {
	return monthAnchor(year, start.Month(), start.Day())
}
