package transaction

import (
	"time"

	"github.com/lighty7/Finances-backend/internal/models"
	"github.com/lighty7/Finances-backend/internal/services"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

type CreateInput struct {
	Type            string  `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount          float64 `json:"amount" binding:"required,gte=0"`
	Category        string  `json:"category" binding:"omitempty,max=100"`
	Description     string  `json:"description" binding:"omitempty,max=500"`
	TransactionDate string  `json:"transactionDate" binding:"required"`
	LoanReference   string  `json:"loanReference" binding:"omitempty,max=150"`
	PaidEmi         bool    `json:"paidEmi"`
}

type UpdateInput struct {
	Type            *string  `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount          *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category        *string  `json:"category" binding:"omitempty,max=100"`
	Description     *string  `json:"description" binding:"omitempty,max=500"`
	TransactionDate *string  `json:"transactionDate"`
	LoanReference   *string  `json:"loanReference" binding:"omitempty,max=150"`
	PaidEmi         *bool    `json:"paidEmi"`
}

type TransactionResponse struct {
	ID              uint      `json:"id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category,omitempty"`
	Description     string    `json:"description,omitempty"`
	TransactionDate string    `json:"transactionDate"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	LoanReference   string    `json:"loanReference,omitempty"`
	PaidEmi         bool      `json:"paidEmi"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ListResponse struct {
	Transactions []TransactionResponse  `json:"transactions"`
	Summary      services.PeriodSummary `json:"summary"`
	Period       PeriodResponse         `json:"period"`
}

type PeriodResponse struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Category:        t.Category,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.UTC().Format(dateLayout),
		Month:           t.Month,
		Year:            t.Year,
		LoanReference:   t.LoanReference,
		PaidEmi:         t.PaidEmi,
		CreatedAt:       t.CreatedAt,
	}
}

func toTransactionResponses(txns []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
