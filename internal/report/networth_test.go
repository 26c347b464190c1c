package report

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newAsset(balance string, createdAt time.Time) Account {
	return Account{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Checking",
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: createdAt,
	}
}

func newLiability(balance string, createdAt time.Time) Account {
	acct := newAsset(balance, createdAt)
	acct.Name = "Credit Card"
	acct.Liability = true
	return acct
}

func yearsAgo(n int) time.Time {
	return testNow.AddDate(-n, 0, 0)
}

func TestNetWorthSeries_NoTransactionsIsFlat(t *testing.T) {
	acct := newAsset("1000.00", yearsAgo(2))

	points := NetWorthSeries([]Account{acct}, nil, TimeRange6M, testNow)

	assert.Len(t, points, 7, spew.Sdump(points))
	for _, p := range points {
		assert.True(t, p.Assets.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, p.Liabilities.IsZero())
		assert.True(t, p.NetWorth.Equal(p.Assets))
	}
}

func TestNetWorthSeries_AccountCreatedMidWindow(t *testing.T) {
	// Created 2025-04-10: the March bucket must exclude it entirely.
	created := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	acct := newAsset("500.00", created)

	points := NetWorthSeries([]Account{acct}, nil, TimeRange3M, testNow)

	assert.Len(t, points, 4)
	assert.True(t, points[0].Assets.IsZero(), "March bucket: %s", points[0].Assets)
	for _, p := range points[1:] {
		assert.True(t, p.Assets.Equal(decimal.RequireFromString("500.00")))
	}
}

func TestNetWorthSeries_UndoesAssetExpense(t *testing.T) {
	// Worked example: balance now 1000, one expense of 200 three weeks ago.
	// Two months back the expense had not happened, so the reconstructed
	// balance is 1000 + 200.
	acct := newAsset("1000.00", yearsAgo(2))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("200.00"),
		Direction: DirectionExpense,
		Date:      testNow.AddDate(0, 0, -21),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRange3M, testNow)

	assert.Len(t, points, 4)
	twoBack := points[1] // April bucket, month-end before the late-May expense
	assert.True(t, twoBack.Assets.Equal(decimal.RequireFromString("1200.00")), spew.Sdump(points))
	current := points[3]
	assert.True(t, current.Assets.Equal(decimal.RequireFromString("1000.00")))
}

func TestNetWorthSeries_UndoesAssetIncome(t *testing.T) {
	acct := newAsset("1000.00", yearsAgo(2))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("300.00"),
		Direction: DirectionIncome,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRange3M, testNow)

	// May month-end precedes the income, so it is subtracted back out.
	may := points[2]
	assert.True(t, may.Assets.Equal(decimal.RequireFromString("700.00")), spew.Sdump(may))
}

func TestNetWorthSeries_UndoesLiabilityCharge(t *testing.T) {
	// A new charge of 200 after the month-end grew the liability; undoing it
	// shrinks the historical magnitude to 400.
	acct := newLiability("600.00", yearsAgo(2))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("200.00"),
		Direction: DirectionExpense,
		Date:      testNow.AddDate(0, 0, -21),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRange3M, testNow)

	april := points[1]
	assert.True(t, april.Liabilities.Equal(decimal.RequireFromString("400.00")), spew.Sdump(points))
	assert.True(t, april.NetWorth.Equal(decimal.RequireFromString("-400.00")))
	current := points[3]
	assert.True(t, current.Liabilities.Equal(decimal.RequireFromString("600.00")))
}

func TestNetWorthSeries_UndoesLiabilityPayment(t *testing.T) {
	// A payment (income) of 150 after the month-end reduced the liability;
	// undoing it restores the historical magnitude to 750.
	acct := newLiability("600.00", yearsAgo(2))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("150.00"),
		Direction: DirectionIncome,
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRange3M, testNow)

	may := points[2]
	assert.True(t, may.Liabilities.Equal(decimal.RequireFromString("750.00")), spew.Sdump(may))
}

func TestNetWorthSeries_MixedAccounts(t *testing.T) {
	asset := newAsset("2500.00", yearsAgo(1))
	card := newLiability("400.00", yearsAgo(1))

	points := NetWorthSeries([]Account{asset, card}, nil, TimeRange3M, testNow)

	for _, p := range points {
		assert.True(t, p.Assets.Equal(decimal.RequireFromString("2500.00")))
		assert.True(t, p.Liabilities.Equal(decimal.RequireFromString("400.00")))
		assert.True(t, p.NetWorth.Equal(decimal.RequireFromString("2100.00")))
	}
}

func TestNetWorthSeries_ChronologicalOrder(t *testing.T) {
	acct := newAsset("100.00", yearsAgo(3))
	var txs []Transaction
	for i := 0; i < 18; i++ {
		txs = append(txs, Transaction{
			AccountID: acct.ID,
			Amount:    decimal.RequireFromString("10.00"),
			Direction: DirectionExpense,
			Date:      testNow.AddDate(0, -i, 0),
		})
	}

	points := NetWorthSeries([]Account{acct}, txs, TimeRangeAll, testNow)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Month.After(points[i-1].Month))
		assert.Equal(t, points[i-1].Month.AddDate(0, 1, 0), points[i].Month)
	}
}

func TestNetWorthSeries_AllRangeStartsAtEarliestTransaction(t *testing.T) {
	acct := newAsset("100.00", yearsAgo(3))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("5.00"),
		Direction: DirectionExpense,
		Date:      time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRangeAll, testNow)

	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), points[0].Month)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), points[len(points)-1].Month)
	assert.Len(t, points, 8)
}

func TestNetWorthSeries_EmptyInputs(t *testing.T) {
	points := NetWorthSeries(nil, nil, TimeRangeAll, testNow)

	// No transactions: all-time falls back to twelve months before now.
	assert.Len(t, points, 13)
	for _, p := range points {
		assert.True(t, p.Assets.IsZero())
		assert.True(t, p.Liabilities.IsZero())
		assert.True(t, p.NetWorth.IsZero())
	}
}

func TestNetWorthSeries_TransactionOnMonthEndBoundary(t *testing.T) {
	// A transaction dated exactly at a bucket's month-end is already included
	// in that bucket and must not be undone.
	acct := newAsset("1000.00", yearsAgo(2))
	tx := Transaction{
		AccountID: acct.ID,
		Amount:    decimal.RequireFromString("100.00"),
		Direction: DirectionExpense,
		Date:      time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
	}

	points := NetWorthSeries([]Account{acct}, []Transaction{tx}, TimeRange3M, testNow)

	march := points[0]
	assert.True(t, march.Assets.Equal(decimal.RequireFromString("1100.00")), spew.Sdump(points))
	april := points[1]
	assert.True(t, april.Assets.Equal(decimal.RequireFromString("1000.00")))
}

func TestParseTimeRange(t *testing.T) {
	for _, valid := range []string{"3m", "6m", "12m", "all"} {
		r, err := ParseTimeRange(valid)
		assert.NoError(t, err)
		assert.Equal(t, TimeRange(valid), r)
	}

	for _, invalid := range []string{"", "1m", "24m", "ALL", "year"} {
		_, err := ParseTimeRange(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	}
}
