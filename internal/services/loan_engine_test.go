package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lighty7/Finances-backend/internal/models"
)

var engineNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestEnrichLoansEmptyPortfolio(t *testing.T) {
	loans, total := EnrichLoans(nil, floatPtr(5000), engineNow)
	assert.Empty(t, loans)
	assert.Zero(t, total)
}

func TestEnrichLoansProportionalAllocation(t *testing.T) {
	portfolio := models.LoanList{
		{ID: "home", CurrentBalance: floatPtr(300000), InterestRate: floatPtr(9)},
		{ID: "car", CurrentBalance: floatPtr(100000), InterestRate: floatPtr(12)},
	}
	totalEmi := 20000.0

	loans, total := EnrichLoans(portfolio, &totalEmi, engineNow)
	assert.Equal(t, 400000.0, total)
	assert.Len(t, loans, 2)

	// shares follow the balance ratio
	assert.InDelta(t, 15000, loans[0].MonthlyPayment, 0.01)
	assert.InDelta(t, 5000, loans[1].MonthlyPayment, 0.01)

	// and sum back to the configured EMI
	sum := loans[0].MonthlyPayment + loans[1].MonthlyPayment
	assert.InDelta(t, totalEmi, sum, 0.05)

	for _, l := range loans {
		assert.NotNil(t, l.MonthsToPayoff)
		assert.NotNil(t, l.PayoffDate)
	}
}

func TestEnrichLoansFallbackTwelveMonthEstimate(t *testing.T) {
	portfolio := models.LoanList{
		{CurrentBalance: floatPtr(120000), InterestRate: floatPtr(12)},
	}

	loans, total := EnrichLoans(portfolio, nil, engineNow)
	assert.Equal(t, 120000.0, total)
	assert.Len(t, loans, 1)

	// no aggregate EMI: flat 12-month estimate at balance/12
	assert.Equal(t, 10000.0, loans[0].MonthlyPayment)
	if assert.NotNil(t, loans[0].MonthsToPayoff) {
		// 1%/month against 10000 stretches past a flat year
		assert.Equal(t, 13, *loans[0].MonthsToPayoff)
	}
	if assert.NotNil(t, loans[0].PayoffDate) {
		assert.Equal(t, "2026-04-01", *loans[0].PayoffDate)
	}
}

func TestEnrichLoansBalanceResolution(t *testing.T) {
	portfolio := models.LoanList{
		{ID: "tracked", Principal: floatPtr(50000), CurrentBalance: floatPtr(20000)},
		{ID: "untracked", Principal: floatPtr(30000)},
		{ID: "empty"},
	}

	loans, total := EnrichLoans(portfolio, nil, engineNow)
	assert.Equal(t, 50000.0, total)
	assert.Equal(t, 20000.0, loans[0].Balance)
	assert.Equal(t, 30000.0, loans[1].Balance)
	assert.Equal(t, 0.0, loans[2].Balance)
}

func TestEnrichLoansZeroBalanceLoan(t *testing.T) {
	portfolio := models.LoanList{
		{ID: "settled", CurrentBalance: floatPtr(0), InterestRate: floatPtr(15)},
	}

	loans, _ := EnrichLoans(portfolio, floatPtr(10000), engineNow)
	assert.Nil(t, loans[0].MonthsToPayoff)
	assert.Nil(t, loans[0].PayoffDate)
}

func TestEnrichLoansIDFallsBackToIndex(t *testing.T) {
	portfolio := models.LoanList{
		{CurrentBalance: floatPtr(1000)},
		{ID: "named", CurrentBalance: floatPtr(2000)},
		{CurrentBalance: floatPtr(3000)},
	}

	loans, _ := EnrichLoans(portfolio, nil, engineNow)
	assert.Equal(t, "0", loans[0].ID)
	assert.Equal(t, "named", loans[1].ID)
	assert.Equal(t, "2", loans[2].ID)
}

func TestEnrichLoansPaymentSumMatchesTotalEmi(t *testing.T) {
	portfolio := models.LoanList{
		{CurrentBalance: floatPtr(33333)},
		{CurrentBalance: floatPtr(77777)},
		{CurrentBalance: floatPtr(123456)},
		{CurrentBalance: floatPtr(999)},
	}
	totalEmi := 17500.0

	loans, _ := EnrichLoans(portfolio, &totalEmi, engineNow)
	sum := 0.0
	for _, l := range loans {
		sum += l.MonthlyPayment
	}
	assert.InDelta(t, totalEmi, sum, 0.05)
}
