package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/report"
)

// monthKey is the serialization format for month buckets.
const monthKey = "2006-01"

// NetWorthPoint is one month bucket in the API net-worth series.
type NetWorthPoint struct {
	Month       string `json:"month" doc:"Calendar month in YYYY-MM"`
	Assets      string `json:"assets" doc:"Decimal sum of asset balances at month end"`
	Liabilities string `json:"liabilities" doc:"Decimal sum of liability magnitudes at month end"`
	NetWorth    string `json:"netWorth" doc:"assets minus liabilities"`
}

// NetWorthResponseBody is the response body for the net-worth report.
type NetWorthResponseBody struct {
	Points []NetWorthPoint `json:"points" doc:"One point per month, oldest first"`
}

// NetWorthOutput is the Huma output for the net-worth report.
type NetWorthOutput struct {
	Body NetWorthResponseBody
}

// RangeInput carries the shared range query parameter for report endpoints.
type RangeInput struct {
	Range string `query:"range" enum:"3m,6m,12m,all" doc:"Window size, defaults to 12m"`
}

// netWorthReporter is the interface for the net-worth report.
type netWorthReporter interface {
	NetWorth(ctx context.Context, timeRange report.TimeRange) ([]report.NetWorthPoint, error)
}

// NetWorthHandler handles GET /v1/reports/networth.
type NetWorthHandler struct {
	ReportService netWorthReporter
}

// NewNetWorthHandler creates a new NetWorthHandler.
func NewNetWorthHandler(svc netWorthReporter) *NetWorthHandler {
	return &NetWorthHandler{ReportService: svc}
}

// Register registers the net-worth report endpoint with the Huma API.
func (h *NetWorthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-networth",
		Method:      http.MethodGet,
		Path:        "/v1/reports/networth",
		Summary:     "Net-worth history",
		Description: "Reconstructs month-end net worth for the requested window by rolling current balances backwards through the transaction history.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

// parseRange maps the shared range query parameter onto a TimeRange,
// defaulting to twelve months when absent.
func parseRange(raw string) (report.TimeRange, error) {
	if raw == "" {
		return report.TimeRange12M, nil
	}
	timeRange, err := report.ParseTimeRange(raw)
	if err != nil {
		return "", huma.NewError(http.StatusBadRequest, "invalid range", err)
	}
	return timeRange, nil
}

func (h *NetWorthHandler) handle(ctx context.Context, input *RangeInput) (*NetWorthOutput, error) {
	logData := logging.GetLogData(ctx)

	timeRange, err := parseRange(input.Range)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("netWorthReportMs")
	}
	points, err := h.ReportService.NetWorth(ctx, timeRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute net-worth report", err)
	}

	if logData != nil {
		logData.AddData("range", string(timeRange))
		logData.AddData("pointCount", len(points))
	}

	resp := NetWorthResponseBody{
		Points: make([]NetWorthPoint, len(points)),
	}
	for i, point := range points {
		resp.Points[i] = NetWorthPoint{
			Month:       point.Month.Format(monthKey),
			Assets:      point.Assets.String(),
			Liabilities: point.Liabilities.String(),
			NetWorth:    point.NetWorth.String(),
		}
	}

	return &NetWorthOutput{Body: resp}, nil
}
