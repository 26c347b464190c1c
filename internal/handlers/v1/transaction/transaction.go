package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Owning account UUID"`
	CategoryID      string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	Amount          string `json:"amount" doc:"Positive decimal amount"`
	Direction       string `json:"direction" doc:"income or expense"`
	TransactionName string `json:"transactionName" doc:"Name of the transaction"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionToAPI(tx service.Transaction) Transaction {
	converted := Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		Amount:          tx.Amount.String(),
		Direction:       string(tx.Direction),
		TransactionName: tx.TransactionName,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != uuid.Nil {
		converted.CategoryID = tx.CategoryID.String()
	}
	return converted
}
