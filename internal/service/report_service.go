package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/report"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// ReportService loads accounts and transactions and feeds them to the pure
// report computations.
type ReportService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store, now: time.Now}
}

// NetWorth reconstructs the month-by-month net-worth series for the range.
func (s *ReportService) NetWorth(ctx context.Context, timeRange report.TimeRange) ([]report.NetWorthPoint, error) {
	accounts, transactions, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return report.NetWorthSeries(accounts, transactions, timeRange, s.now()), nil
}

// CashFlow aggregates monthly income and expense totals for the range.
func (s *ReportService) CashFlow(ctx context.Context, timeRange report.TimeRange) ([]report.CashFlowPoint, error) {
	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return report.CashFlowSeries(transactions, timeRange, s.now()), nil
}

// Spending totals expenses per category for the range, largest first.
func (s *ReportService) Spending(ctx context.Context, timeRange report.TimeRange) ([]report.CategorySpend, error) {
	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return report.SpendingByCategory(transactions, timeRange, s.now()), nil
}

// Reconciliation replays every account's history from its starting balance
// and reports drift against the stored balance. The net-worth reconstruction
// trusts the stored balance, so drift here taints every historical point.
func (s *ReportService) Reconciliation(ctx context.Context) ([]report.Drift, error) {
	accounts, transactions, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	drifts := report.ReconcileAll(accounts, transactions)
	for _, drift := range drifts {
		if !drift.Consistent() {
			logrus.WithFields(logrus.Fields{
				"accountID": drift.AccountID.String(),
				"drift":     drift.Drift.String(),
			}).Warn("ReportService.Reconciliation.drift")
		}
	}
	return drifts, nil
}

func (s *ReportService) loadInputs(ctx context.Context) ([]report.Account, []report.Transaction, error) {
	rows, err := s.storage.Accounts.List(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	accounts := make([]report.Account, len(rows))
	for i, row := range rows {
		accounts[i] = reportAccountFromStorage(row)
	}

	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return accounts, transactions, nil
}

func (s *ReportService) loadTransactions(ctx context.Context) ([]report.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	transactions := make([]report.Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = reportTransactionFromStorage(row)
	}
	return transactions, nil
}

func reportAccountFromStorage(row *account.Account) report.Account {
	return report.Account{
		ID:              row.ID,
		Name:            row.Name,
		Liability:       row.Type.Liability(),
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		CreatedAt:       row.CreatedAt,
	}
}

func reportTransactionFromStorage(row *transaction.Transaction) report.Transaction {
	categoryID := uuid.Nil
	if row.CategoryID.Valid {
		categoryID = row.CategoryID.UUID
	}
	return report.Transaction{
		AccountID:  row.AccountID,
		CategoryID: categoryID,
		Amount:     row.Amount,
		Direction:  report.Direction(row.Direction),
		Date:       row.TransactionDate,
	}
}
