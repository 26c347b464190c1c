package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *mockTransactionStore) {
	t.Helper()
	mockStore := new(mockTransactionStore)
	store := &storage.Storage{Transactions: mockStore}
	svc := NewTransactionService(store)
	return svc, mockStore
}

func makeStorageTransactions(n int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			AccountID:       uuid.Must(uuid.NewV4()),
			Amount:          decimal.RequireFromString("12.50"),
			Direction:       transaction.DirectionExpense,
			TransactionName: "Coffee",
			TransactionDate: createdAt,
			CreatedAt:       createdAt,
		}
	}
	return rows
}

func TestListTransactions_EmptyResult(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	mockStore.On("List", mock.Anything, mock.Anything).Return([]*transaction.Transaction{}, nil)

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	mockStore.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.Error(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_FullPageReturnsNextCursor(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(defaultTransactionLimit+1, createdAt)
	mockStore.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, defaultTransactionLimit)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultTransactionLimit, nextCursor.Position)
	// First page locks in the newest row's creation time for later pages.
	assert.True(t, nextCursor.MaxCreationTime.Equal(createdAt))
}

func TestListTransactions_CursorCarriesMaxCreationTime(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	maxCreationTime := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(11, maxCreationTime.Add(-time.Hour))
	mockStore.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 10 && f.Offset == 10 &&
			f.MaxCreationTime != nil && f.MaxCreationTime.Equal(maxCreationTime)
	})).Return(rows, nil)

	_, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{
		Position:        10,
		Limit:           10,
		MaxCreationTime: maxCreationTime,
	}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 20, nextCursor.Position)
	assert.True(t, nextCursor.MaxCreationTime.Equal(maxCreationTime))
	mockStore.AssertExpectations(t)
}

func TestListTransactions_AppliesAccountFilter(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	mockStore.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == accountID && f.CategoryID == nil
	})).Return(makeStorageTransactions(1, time.Now()), nil)

	transactions, _, err := svc.ListTransactions(context.Background(), nil, &TransactionListFilter{AccountID: &accountID})

	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	mockStore.AssertExpectations(t)
}

func TestListTransactions_ConvertsNullCategory(t *testing.T) {
	svc, mockStore := newTransactionTestService(t)

	categoryID := uuid.Must(uuid.NewV4())
	rows := makeStorageTransactions(2, time.Now())
	rows[0].CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}

	mockStore.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	transactions, _, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, categoryID, transactions[0].CategoryID)
	assert.Equal(t, uuid.Nil, transactions[1].CategoryID)
}
