package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/report"
)

// CategorySpend is one category's expense total in the API spending report.
type CategorySpend struct {
	CategoryID string `json:"categoryID,omitempty" doc:"Category UUID, absent for uncategorized spending"`
	Total      string `json:"total" doc:"Decimal expense total for the window"`
}

// SpendingResponseBody is the response body for the spending report.
type SpendingResponseBody struct {
	Categories []CategorySpend `json:"categories" doc:"Per-category expense totals, largest first"`
}

// SpendingOutput is the Huma output for the spending report.
type SpendingOutput struct {
	Body SpendingResponseBody
}

// spendingReporter is the interface for the spending report.
type spendingReporter interface {
	Spending(ctx context.Context, timeRange report.TimeRange) ([]report.CategorySpend, error)
}

// SpendingHandler handles GET /v1/reports/spending.
type SpendingHandler struct {
	ReportService spendingReporter
}

// NewSpendingHandler creates a new SpendingHandler.
func NewSpendingHandler(svc spendingReporter) *SpendingHandler {
	return &SpendingHandler{ReportService: svc}
}

// Register registers the spending report endpoint with the Huma API.
func (h *SpendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-spending",
		Method:      http.MethodGet,
		Path:        "/v1/reports/spending",
		Summary:     "Spending by category",
		Description: "Totals expenses per category for the requested window, largest first.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SpendingHandler) handle(ctx context.Context, input *RangeInput) (*SpendingOutput, error) {
	logData := logging.GetLogData(ctx)

	timeRange, err := parseRange(input.Range)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("spendingReportMs")
	}
	categories, err := h.ReportService.Spending(ctx, timeRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute spending report", err)
	}

	if logData != nil {
		logData.AddData("range", string(timeRange))
		logData.AddData("categoryCount", len(categories))
	}

	resp := SpendingResponseBody{
		Categories: make([]CategorySpend, len(categories)),
	}
	for i, spend := range categories {
		converted := CategorySpend{
			Total: spend.Total.String(),
		}
		if spend.CategoryID != uuid.Nil {
			converted.CategoryID = spend.CategoryID.String()
		}
		resp.Categories[i] = converted
	}

	return &SpendingOutput{Body: resp}, nil
}
