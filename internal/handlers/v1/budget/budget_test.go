package budget

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

// mockBudgetService is a mock for budgetCreator, budgetLister, and budgetStatusReporter.
type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, b service.Budget) (uuid.UUID, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBudgetService) ListBudgets(ctx context.Context) ([]service.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Budget), args.Error(1)
}

func (m *mockBudgetService) BudgetStatuses(ctx context.Context) ([]service.BudgetStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BudgetStatus), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateBudgetHandler(svc).Register(api)
	NewListBudgetsHandler(svc).Register(api)
	NewBudgetStatusHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateBudget_Success(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBudget", mock.Anything, mock.MatchedBy(func(b service.Budget) bool {
		return b.Name == "Groceries" &&
			b.CategoryID == categoryID &&
			b.Amount.Equal(decimal.RequireFromString("400.00")) &&
			b.Period == service.BudgetPeriodMonthly &&
			b.StartDate.Equal(startDate)
	})).Return(budgetID, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/budget", CreateBudgetBody{
		Name:       "Groceries",
		CategoryID: categoryID.String(),
		Amount:     "400.00",
		Period:     "monthly",
		StartDate:  startDate.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateBudgetResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, budgetID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudget_InvalidPeriod(t *testing.T) {
	mockSvc := new(mockBudgetService)

	// Huma's enum schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/budget", CreateBudgetBody{
		Name:       "Groceries",
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "400.00",
		Period:     "daily",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBudget")
}

func TestHTTP_CreateBudget_NegativeAmount(t *testing.T) {
	mockSvc := new(mockBudgetService)

	resp := newTestAPI(t, mockSvc).Post("/v1/budget", CreateBudgetBody{
		Name:       "Groceries",
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "-400.00",
		Period:     "monthly",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBudget")
}

func TestHTTP_ListBudgets_Success(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetService)
	mockSvc.On("ListBudgets", mock.Anything).Return([]service.Budget{
		{
			ID:         budgetID,
			Name:       "Groceries",
			CategoryID: uuid.Must(uuid.NewV4()),
			Amount:     decimal.RequireFromString("400.00"),
			Period:     service.BudgetPeriodMonthly,
			StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/budgets")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListBudgetsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Budgets, 1)
	assert.Equal(t, budgetID.String(), body.Budgets[0].ID)
	assert.Equal(t, "monthly", body.Budgets[0].Period)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetStatus_Success(t *testing.T) {
	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC)

	mockSvc := new(mockBudgetService)
	mockSvc.On("BudgetStatuses", mock.Anything).Return([]service.BudgetStatus{
		{
			Budget: service.Budget{
				ID:     uuid.Must(uuid.NewV4()),
				Name:   "Groceries",
				Amount: decimal.RequireFromString("400.00"),
				Period: service.BudgetPeriodMonthly,
			},
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			Spent:       decimal.RequireFromString("250.50"),
			Remaining:   decimal.RequireFromString("149.50"),
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/budgets/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatusResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Statuses, 1)
	assert.Equal(t, "Groceries", body.Statuses[0].Budget.Name)
	assert.Equal(t, "250.5", body.Statuses[0].Spent)
	assert.Equal(t, "149.5", body.Statuses[0].Remaining)
	assert.Equal(t, windowStart.Format(time.RFC3339), body.Statuses[0].WindowStart)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetStatus_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("BudgetStatuses", mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/budgets/status")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
