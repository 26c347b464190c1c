package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

// mockAccountLister is a mock for accountLister.
type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, cursor)
	var accounts []service.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]service.Account)
	}
	var next *service.AccountCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.AccountCursor)
	}
	return accounts, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc accountLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, (*service.AccountCursor)(nil)).Return([]service.Account{
		{
			ID:              accountID,
			Name:            "Checking",
			Type:            service.AccountTypeCash,
			SubType:         "checking",
			Balance:         decimal.RequireFromString("100.50"),
			StartingBalance: decimal.RequireFromString("50.00"),
			CreatedAt:       created,
		},
	}, nil, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, accountID.String(), body.Accounts[0].ID)
	assert.Equal(t, "Checking", body.Accounts[0].Name)
	assert.Equal(t, "100.5", body.Accounts[0].Balance)
	assert.Equal(t, "2025-03-01T10:00:00Z", body.Accounts[0].CreatedAt)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ForwardsCursor(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, mock.MatchedBy(func(cursor *service.AccountCursor) bool {
		return cursor != nil && cursor.Position == 20 && cursor.Limit == 10
	})).Return(nil, nil, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts?position=20&limit=10")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ReturnsNextCursor(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, mock.Anything).Return(
		[]service.Account{{ID: uuid.Must(uuid.NewV4()), Name: "A"}},
		&service.AccountCursor{Position: 20, Limit: 20},
		nil,
	)

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 20, body.NextCursor.Position)
	assert.Equal(t, 20, body.NextCursor.Limit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
