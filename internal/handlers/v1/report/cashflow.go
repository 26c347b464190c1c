package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/report"
)

// CashFlowPoint is one month bucket in the API cash-flow series.
type CashFlowPoint struct {
	Month    string `json:"month" doc:"Calendar month in YYYY-MM"`
	Income   string `json:"income" doc:"Decimal income total for the month"`
	Expenses string `json:"expenses" doc:"Decimal expense total for the month"`
	Net      string `json:"net" doc:"income minus expenses"`
}

// CashFlowResponseBody is the response body for the cash-flow report.
type CashFlowResponseBody struct {
	Points []CashFlowPoint `json:"points" doc:"One point per month, oldest first"`
}

// CashFlowOutput is the Huma output for the cash-flow report.
type CashFlowOutput struct {
	Body CashFlowResponseBody
}

// cashFlowReporter is the interface for the cash-flow report.
type cashFlowReporter interface {
	CashFlow(ctx context.Context, timeRange report.TimeRange) ([]report.CashFlowPoint, error)
}

// CashFlowHandler handles GET /v1/reports/cashflow.
type CashFlowHandler struct {
	ReportService cashFlowReporter
}

// NewCashFlowHandler creates a new CashFlowHandler.
func NewCashFlowHandler(svc cashFlowReporter) *CashFlowHandler {
	return &CashFlowHandler{ReportService: svc}
}

// Register registers the cash-flow report endpoint with the Huma API.
func (h *CashFlowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-cashflow",
		Method:      http.MethodGet,
		Path:        "/v1/reports/cashflow",
		Summary:     "Cash-flow history",
		Description: "Aggregates monthly income and expense totals for the requested window.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CashFlowHandler) handle(ctx context.Context, input *RangeInput) (*CashFlowOutput, error) {
	logData := logging.GetLogData(ctx)

	timeRange, err := parseRange(input.Range)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("cashFlowReportMs")
	}
	points, err := h.ReportService.CashFlow(ctx, timeRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute cash-flow report", err)
	}

	if logData != nil {
		logData.AddData("range", string(timeRange))
		logData.AddData("pointCount", len(points))
	}

	resp := CashFlowResponseBody{
		Points: make([]CashFlowPoint, len(points)),
	}
	for i, point := range points {
		resp.Points[i] = CashFlowPoint{
			Month:    point.Month.Format(monthKey),
			Income:   point.Income.String(),
			Expenses: point.Expenses.String(),
			Net:      point.Net.String(),
		}
	}

	return &CashFlowOutput{Body: resp}, nil
}
