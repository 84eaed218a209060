package models

import (
	"time"

	"gorm.io/datatypes"
)

// LoanRecord is one entry of the schema-less loans column. Every field
// except the identifier is optional: users enter whatever they know about a
// loan and the projection engine fills the gaps with documented defaults.
type LoanRecord struct {
	ID             string   `json:"id,omitempty"`
	BankName       string   `json:"bankName,omitempty"`
	LoanType       string   `json:"loanType,omitempty"`
	Principal      *float64 `json:"principal,omitempty"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	CurrentBalance *float64 `json:"currentBalance,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// LoanList stores []LoanRecord as a JSONB column.
type LoanList []LoanRecord

// Configuration is the one-to-one financial profile of a user. IsConfigured
// is monotonic: it becomes true the first time income, totalEmi or a
// non-empty loan list is supplied and never reverts, even if those fields
// are later cleared.
type Configuration struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        uint           `gorm:"uniqueIndex;not null"`
	TotalEmi      *float64       `gorm:"type:decimal(15,2)"`
	NumberOfLoans int            `gorm:"not null;default:0"`
	EmiSchedule   datatypes.JSON `gorm:"type:jsonb"`
	Loans         LoanList       `gorm:"type:jsonb"`
	Income        *float64       `gorm:"type:decimal(15,2)"`
	IsConfigured  bool           `gorm:"not null;default:false"`
}
