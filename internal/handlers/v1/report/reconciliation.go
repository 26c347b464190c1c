package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/report"
)

// AccountDrift is one account's reconciliation result in the API.
type AccountDrift struct {
	AccountID  string `json:"accountID" doc:"Account UUID"`
	Name       string `json:"name" doc:"Account name"`
	Stored     string `json:"stored" doc:"Decimal balance currently stored"`
	Replayed   string `json:"replayed" doc:"Decimal balance replayed from the starting balance through every transaction"`
	Drift      string `json:"drift" doc:"stored minus replayed, zero when consistent"`
	Consistent bool   `json:"consistent" doc:"Whether stored and replayed agree"`
}

// ReconciliationResponseBody is the response body for the reconciliation report.
type ReconciliationResponseBody struct {
	Accounts   []AccountDrift `json:"accounts" doc:"Per-account reconciliation results"`
	Consistent bool           `json:"consistent" doc:"Whether every account is drift-free"`
}

// ReconciliationOutput is the Huma output for the reconciliation report.
type ReconciliationOutput struct {
	Body ReconciliationResponseBody
}

// reconciliationReporter is the interface for the reconciliation report.
type reconciliationReporter interface {
	Reconciliation(ctx context.Context) ([]report.Drift, error)
}

// ReconciliationHandler handles GET /v1/reports/reconciliation.
type ReconciliationHandler struct {
	ReportService reconciliationReporter
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(svc reconciliationReporter) *ReconciliationHandler {
	return &ReconciliationHandler{ReportService: svc}
}

// Register registers the reconciliation report endpoint with the Huma API.
func (h *ReconciliationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-reconciliation",
		Method:      http.MethodGet,
		Path:        "/v1/reports/reconciliation",
		Summary:     "Ledger reconciliation",
		Description: "Replays every account's history from its starting balance and reports drift against the stored balance. Historical reports are only trustworthy when every account is consistent.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ReconciliationHandler) handle(ctx context.Context, _ *struct{}) (*ReconciliationOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("reconciliationReportMs")
	}
	drifts, err := h.ReportService.Reconciliation(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reconcile accounts", err)
	}

	resp := ReconciliationResponseBody{
		Accounts:   make([]AccountDrift, len(drifts)),
		Consistent: true,
	}
	for i, drift := range drifts {
		consistent := drift.Consistent()
		if !consistent {
			resp.Consistent = false
		}
		resp.Accounts[i] = AccountDrift{
			AccountID:  drift.AccountID.String(),
			Name:       drift.Name,
			Stored:     drift.Stored.String(),
			Replayed:   drift.Replayed.String(),
			Drift:      drift.Drift.String(),
			Consistent: consistent,
		}
	}

	if logData != nil {
		logData.AddData("accountCount", len(drifts))
		logData.AddData("consistent", resp.Consistent)
	}

	return &ReconciliationOutput{Body: resp}, nil
}
