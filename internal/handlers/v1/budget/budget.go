package budget

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID         string `json:"id" doc:"Budget UUID"`
	Name       string `json:"name" doc:"Budget name"`
	CategoryID string `json:"categoryID" doc:"Category the budget tracks"`
	Amount     string `json:"amount" doc:"Decimal amount allowed per period"`
	Period     string `json:"period" doc:"weekly, monthly, or yearly"`
	StartDate  string `json:"startDate" doc:"RFC3339 anchor date of the first window"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}

func budgetToAPI(b service.Budget) Budget {
	return Budget{
		ID:         b.ID.String(),
		Name:       b.Name,
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount.String(),
		Period:     string(b.Period),
		StartDate:  b.StartDate.Format(time.RFC3339),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}
