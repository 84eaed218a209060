package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lighty7/Finances-backend/internal/models"
)

func TestCreateTransactionDerivesPeriod(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-create@example.com", "secret123")

	txn, err := CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeExpense,
		Amount:          1250.50,
		Category:        "groceries",
		TransactionDate: time.Date(2025, time.November, 30, 18, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, 11, txn.Month)
	assert.Equal(t, 2025, txn.Year)
	assert.Equal(t, 1250.50, txn.Amount)
}

func TestCreateTransactionPeriodUsesUTC(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-utc@example.com", "secret123")

	// local January 1st 02:00 at UTC+5 is still December 31st in UTC
	loc := time.FixedZone("UTC+5", 5*3600)
	txn, err := CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeIncome,
		Amount:          100,
		TransactionDate: time.Date(2026, time.January, 1, 2, 0, 0, 0, loc),
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, txn.Month)
	assert.Equal(t, 2025, txn.Year)
}

func TestFindTransactionsFiltersAndSummarizes(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-list@example.com", "secret123")
	other := createVerifiedUser("txn-other@example.com", "secret123")

	mk := func(userID uint, typ models.TransactionType, amount float64, day int, paidEmi bool) *models.Transaction {
		txn, err := CreateTransaction(userID, TransactionInput{
			Type:            typ,
			Amount:          amount,
			TransactionDate: time.Date(2025, time.July, day, 0, 0, 0, 0, time.UTC),
			PaidEmi:         paidEmi,
		})
		assert.NoError(t, err)
		return txn
	}

	mk(user.ID, models.TransactionTypeIncome, 80000, 1, false)
	mk(user.ID, models.TransactionTypeExpense, 0.1, 5, false)
	mk(user.ID, models.TransactionTypeExpense, 0.2, 8, false)
	emi := mk(user.ID, models.TransactionTypeExpense, 20000, 10, true)
	mk(other.ID, models.TransactionTypeExpense, 999, 12, false)

	// outside the queried month
	_, err := CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeExpense,
		Amount:          5000,
		TransactionDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	month, year := 7, 2025
	list, summary, err := FindTransactions(user.ID, &month, &year)
	assert.NoError(t, err)
	assert.Len(t, list, 4)

	// newest first
	assert.Equal(t, emi.ID, list[0].ID)

	assert.Equal(t, 80000.0, summary.IncomeTotal)
	// 0.1 + 0.2 + 20000 without float drift
	assert.Equal(t, 20000.3, summary.ExpenseTotal)
	assert.True(t, summary.EmiPaid)
	if assert.NotNil(t, summary.PaidEmiTransactionID) {
		assert.Equal(t, emi.ID, *summary.PaidEmiTransactionID)
	}
}

func TestFindTransactionsUnfiltered(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-all@example.com", "secret123")

	for _, day := range []int{1, 15} {
		_, err := CreateTransaction(user.ID, TransactionInput{
			Type:            models.TransactionTypeExpense,
			Amount:          100,
			TransactionDate: time.Date(2025, time.Month(day%12+1), 1, 0, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	}

	list, summary, err := FindTransactions(user.ID, nil, nil)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 200.0, summary.ExpenseTotal)
	assert.False(t, summary.EmiPaid)
	assert.Nil(t, summary.PaidEmiTransactionID)
}

func TestUpdateTransactionRecomputesPeriodOnDateChange(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-update@example.com", "secret123")

	txn, err := CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeExpense,
		Amount:          500,
		TransactionDate: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, txn.Month)

	newDate := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	newAmount := 750.0
	updated, err := UpdateTransaction(user.ID, txn.ID, TransactionUpdate{
		Amount:          &newAmount,
		TransactionDate: &newDate,
	})
	assert.NoError(t, err)
	assert.Equal(t, 750.0, updated.Amount)
	assert.Equal(t, 9, updated.Month)
	assert.Equal(t, 2025, updated.Year)
}

func TestUpdateTransactionScopedToOwner(t *testing.T) {
	setupTestDB()
	owner := createVerifiedUser("txn-owner@example.com", "secret123")
	intruder := createVerifiedUser("txn-intruder@example.com", "secret123")

	txn, err := CreateTransaction(owner.ID, TransactionInput{
		Type:            models.TransactionTypeExpense,
		Amount:          500,
		TransactionDate: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	amount := 1.0
	_, err = UpdateTransaction(intruder.ID, txn.ID, TransactionUpdate{Amount: &amount})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUpdateTransactionEmptyPayloadIsNoop(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("txn-noop@example.com", "secret123")

	txn, err := CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeIncome,
		Amount:          42,
		TransactionDate: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	updated, err := UpdateTransaction(user.ID, txn.ID, TransactionUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, txn.Amount, updated.Amount)
	assert.Equal(t, txn.Month, updated.Month)
}
