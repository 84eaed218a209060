package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionInput is the normalized payload for creating a transaction.
type TransactionInput struct {
	Type            models.TransactionType
	Amount          float64
	Category        string
	Description     string
	TransactionDate time.Time
	LoanReference   string
	PaidEmi         bool
}

// TransactionUpdate is a partial update; nil fields stay untouched.
type TransactionUpdate struct {
	Type            *models.TransactionType
	Amount          *float64
	Category        *string
	Description     *string
	TransactionDate *time.Time
	LoanReference   *string
	PaidEmi         *bool
}

// PeriodSummary aggregates a transaction listing: income and expense
// totals plus whether any transaction in the set satisfied the EMI
// obligation. Totals are summed with decimal arithmetic so long listings
// do not accumulate float drift.
type PeriodSummary struct {
	IncomeTotal          float64 `json:"incomeTotal"`
	ExpenseTotal         float64 `json:"expenseTotal"`
	EmiPaid              bool    `json:"emiPaid"`
	PaidEmiTransactionID *uint   `json:"paidEmiTransactionId"`
}

// CreateTransaction records one financial event. Month and year are
// derived from the transaction date in UTC.
func CreateTransaction(userID uint, input TransactionInput) (*models.Transaction, error) {
	date := input.TransactionDate.UTC()

	txn := &models.Transaction{
		UserID:          userID,
		Type:            input.Type,
		Amount:          input.Amount,
		Category:        input.Category,
		Description:     input.Description,
		TransactionDate: date,
		Month:           int(date.Month()),
		Year:            date.Year(),
		LoanReference:   input.LoanReference,
		PaidEmi:         input.PaidEmi,
	}

	if err := database.DB.Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

// FindTransactions lists a user's transactions, optionally narrowed to a
// month and/or year, newest first, together with the period summary.
func FindTransactions(userID uint, month, year *int) ([]models.Transaction, PeriodSummary, error) {
	query := database.DB.Where("user_id = ?", userID)
	if month != nil {
		query = query.Where("month = ?", *month)
	}
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var transactions []models.Transaction
	err := query.Order("transaction_date desc").Order("created_at desc").Find(&transactions).Error
	if err != nil {
		return nil, PeriodSummary{}, err
	}

	return transactions, buildSummary(transactions), nil
}

func buildSummary(transactions []models.Transaction) PeriodSummary {
	summary := PeriodSummary{}
	income := decimal.Zero
	expense := decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		amount := decimal.NewFromFloat(txn.Amount)
		switch txn.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(amount)
		}

		// Listing is newest-first, so the first hit is the most recent
		// EMI-satisfying transaction.
		if txn.PaidEmi && summary.PaidEmiTransactionID == nil {
			summary.EmiPaid = true
			summary.PaidEmiTransactionID = &txn.ID
		}
	}

	summary.IncomeTotal = income.InexactFloat64()
	summary.ExpenseTotal = expense.InexactFloat64()
	return summary
}

// UpdateTransaction applies a field-level update to one of the user's
// transactions. Month and year are recomputed whenever the date changes.
func UpdateTransaction(userID, transactionID uint, input TransactionUpdate) (*models.Transaction, error) {
	var txn models.Transaction
	err := database.DB.Where("id = ? AND user_id = ?", transactionID, userID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.LoanReference != nil {
		updates["loan_reference"] = *input.LoanReference
	}
	if input.PaidEmi != nil {
		updates["paid_emi"] = *input.PaidEmi
	}
	if input.TransactionDate != nil {
		date := input.TransactionDate.UTC()
		updates["transaction_date"] = date
		updates["month"] = int(date.Month())
		updates["year"] = date.Year()
	}

	if len(updates) == 0 {
		return &txn, nil
	}

	if err := database.DB.Model(&txn).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := database.DB.First(&txn, txn.ID).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}
