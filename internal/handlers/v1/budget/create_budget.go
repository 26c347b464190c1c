package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Name       string `json:"name" required:"true" minLength:"1" doc:"Budget name"`
	CategoryID string `json:"categoryID" required:"true" format:"uuid" doc:"Category the budget tracks"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount allowed per period"`
	Period     string `json:"period" required:"true" enum:"weekly,monthly,yearly" doc:"How often the window recurs"`
	StartDate  string `json:"startDate,omitempty" format:"date-time" doc:"RFC3339 anchor date of the first window, defaults to now"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, b service.Budget) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create budget",
		Description: "Creates a recurring budget for one category.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.Budget, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "amount must not be negative", nil)
	}

	startDate := time.Now().UTC()
	if input.Body.StartDate != "" {
		startDate, err = time.Parse(time.RFC3339, input.Body.StartDate)
		if err != nil {
			return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
	}

	return service.Budget{
		Name:       input.Body.Name,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     service.BudgetPeriod(input.Body.Period),
		StartDate:  startDate,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	b, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	id, err := h.BudgetService.CreateBudget(ctx, b)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: id.String()},
	}, nil
}
