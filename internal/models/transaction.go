package models

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is one financial event. Month and Year are derived from
// TransactionDate in UTC at write time and recomputed whenever the date
// changes; they exist so the per-month queries (loan summary, period
// listing) hit the composite index instead of date arithmetic.
type Transaction struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          uint            `gorm:"index;not null;index:idx_transactions_user_period"`
	Type            TransactionType `gorm:"type:varchar(10);not null"`
	Amount          float64         `gorm:"type:decimal(15,2);not null"`
	Category        string          `gorm:"type:varchar(100)"`
	Description     string          `gorm:"type:varchar(500)"`
	TransactionDate time.Time       `gorm:"type:date;not null"`
	Month           int             `gorm:"not null;index:idx_transactions_user_period"`
	Year            int             `gorm:"not null;index:idx_transactions_user_period"`
	LoanReference   string          `gorm:"type:varchar(150)"`
	PaidEmi         bool            `gorm:"not null;default:false;index"`
}
