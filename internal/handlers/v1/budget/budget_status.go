package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// BudgetStatus is the API response model for one budget's current window.
type BudgetStatus struct {
	Budget      Budget `json:"budget" doc:"The budget"`
	WindowStart string `json:"windowStart" doc:"RFC3339 start of the window containing now"`
	WindowEnd   string `json:"windowEnd" doc:"RFC3339 end of the window containing now"`
	Spent       string `json:"spent" doc:"Decimal expense total inside the window"`
	Remaining   string `json:"remaining" doc:"Decimal amount minus spent, negative when over budget"`
}

// BudgetStatusResponseBody is the response body for the budget status report.
type BudgetStatusResponseBody struct {
	Statuses []BudgetStatus `json:"statuses" doc:"Status of every budget"`
}

// BudgetStatusOutput is the Huma output for the budget status report.
type BudgetStatusOutput struct {
	Body BudgetStatusResponseBody
}

// budgetStatusReporter is the interface for computing budget statuses.
type budgetStatusReporter interface {
	BudgetStatuses(ctx context.Context) ([]service.BudgetStatus, error)
}

// BudgetStatusHandler handles GET /v1/budgets/status.
type BudgetStatusHandler struct {
	BudgetService budgetStatusReporter
}

// NewBudgetStatusHandler creates a new BudgetStatusHandler.
func NewBudgetStatusHandler(svc budgetStatusReporter) *BudgetStatusHandler {
	return &BudgetStatusHandler{BudgetService: svc}
}

// Register registers the budget status endpoint with the Huma API.
func (h *BudgetStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-status",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/status",
		Summary:     "Budget status",
		Description: "Returns each budget's current window and how much of it has been spent.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetStatusHandler) handle(ctx context.Context, _ *struct{}) (*BudgetStatusOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetStatusMs")
	}
	statuses, err := h.BudgetService.BudgetStatuses(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute budget statuses", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(statuses))
	}

	resp := BudgetStatusResponseBody{
		Statuses: make([]BudgetStatus, len(statuses)),
	}
	for i, status := range statuses {
		resp.Statuses[i] = BudgetStatus{
			Budget:      budgetToAPI(status.Budget),
			WindowStart: status.WindowStart.Format(time.RFC3339),
			WindowEnd:   status.WindowEnd.Format(time.RFC3339),
			Spent:       status.Spent.String(),
			Remaining:   status.Remaining.String(),
		}
	}

	return &BudgetStatusOutput{Body: resp}, nil
}
