package services

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lighty7/Finances-backend/internal/models"
)

// EnrichedLoan is a stored loan record plus the live projection computed
// from it. Never persisted: it is rebuilt on every loan summary read.
type EnrichedLoan struct {
	ID             string   `json:"id"`
	BankName       string   `json:"bankName,omitempty"`
	LoanType       string   `json:"loanType,omitempty"`
	Principal      *float64 `json:"principal,omitempty"`
	Balance        float64  `json:"balance"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	CurrentBalance *float64 `json:"currentBalance,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	MonthsToPayoff *int     `json:"monthsToPayoff"`
	PayoffDate     *string  `json:"payoffDate"`
}

// EnrichLoans projects a payoff timeline for every stored loan, in input
// order, and returns the enriched list together with the recomputed total
// outstanding balance.
//
// Allocation rule: when the portfolio has both a positive total balance and
// a configured totalEmi, each loan receives an EMI share proportional to its
// balance. Without a configured totalEmi the engine assumes a flat 12-month
// payoff per loan.
func EnrichLoans(loans models.LoanList, totalEmi *float64, now time.Time) ([]EnrichedLoan, float64) {
	enriched := make([]EnrichedLoan, 0, len(loans))

	totalBalance := 0.0
	for _, loan := range loans {
		totalBalance += loanBalance(loan)
	}

	for i, loan := range loans {
		balance := loanBalance(loan)
		monthlyRate := loanMonthlyRate(loan)

		var payment float64
		if totalEmi != nil && *totalEmi > 0 && totalBalance > 0 {
			payment = roundMoney(*totalEmi * balance / totalBalance)
		} else {
			payment = roundMoney(balance / 12)
		}

		months := MonthsToPayoff(balance, monthlyRate, payment)

		id := loan.ID
		if id == "" {
			id = strconv.Itoa(i)
		}

		enriched = append(enriched, EnrichedLoan{
			ID:             id,
			BankName:       loan.BankName,
			LoanType:       loan.LoanType,
			Principal:      loan.Principal,
			Balance:        balance,
			InterestRate:   loan.InterestRate,
			StartDate:      loan.StartDate,
			CurrentBalance: loan.CurrentBalance,
			Notes:          loan.Notes,
			MonthlyPayment: payment,
			MonthsToPayoff: months,
			PayoffDate:     payoffDate(months, now),
		})
	}

	return enriched, totalBalance
}

// loanBalance resolves the working balance: the tracked current balance
// wins, the original principal is the fallback, and a loan with neither is
// treated as already settled.
func loanBalance(loan models.LoanRecord) float64 {
	if loan.CurrentBalance != nil {
		return *loan.CurrentBalance
	}
	if loan.Principal != nil {
		return *loan.Principal
	}
	return 0
}

// loanMonthlyRate converts the stored annual percentage to a monthly
// fraction. Missing or non-positive rates project as interest-free.
func loanMonthlyRate(loan models.LoanRecord) float64 {
	if loan.InterestRate != nil && *loan.InterestRate > 0 {
		return *loan.InterestRate / 100 / 12
	}
	return 0
}

// payoffDate is the first day of the month monthsToPayoff months after the
// current month, in UTC, ignoring day-of-month.
func payoffDate(months *int, now time.Time) *string {
	if months == nil {
		return nil
	}
	date := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, *months, 0).
		Format("2006-01-02")
	return &date
}

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
