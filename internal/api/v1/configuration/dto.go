package configuration

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lighty7/Finances-backend/internal/models"
)

// LoanInput mirrors models.LoanRecord at the boundary so binding
// validation stays separate from storage.
type LoanInput struct {
	ID             string   `json:"id"`
	BankName       string   `json:"bankName"`
	LoanType       string   `json:"loanType"`
	Principal      *float64 `json:"principal" binding:"omitempty,gte=0"`
	InterestRate   *float64 `json:"interestRate" binding:"omitempty,gte=0"`
	StartDate      string   `json:"startDate"`
	CurrentBalance *float64 `json:"currentBalance" binding:"omitempty,gte=0"`
	Notes          string   `json:"notes"`
}

// UpsertInput is a partial configuration write: absent fields keep their
// stored values.
type UpsertInput struct {
	TotalEmi      *float64       `json:"totalEmi" binding:"omitempty,gte=0"`
	NumberOfLoans *int           `json:"numberOfLoans" binding:"omitempty,gte=0"`
	EmiSchedule   datatypes.JSON `json:"emiSchedule"`
	Loans         *[]LoanInput   `json:"loans"`
	Income        *float64       `json:"income" binding:"omitempty,gte=0"`
}

type ConfigurationResponse struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"userId"`
	TotalEmi      *float64        `json:"totalEmi"`
	NumberOfLoans int             `json:"numberOfLoans"`
	EmiSchedule   datatypes.JSON  `json:"emiSchedule,omitempty"`
	Loans         models.LoanList `json:"loans"`
	Income        *float64        `json:"income"`
	IsConfigured  bool            `json:"isConfigured"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toConfigurationResponse(c models.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		TotalEmi:      c.TotalEmi,
		NumberOfLoans: c.NumberOfLoans,
		EmiSchedule:   c.EmiSchedule,
		Loans:         c.Loans,
		Income:        c.Income,
		IsConfigured:  c.IsConfigured,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toLoanList(loans []LoanInput) models.LoanList {
	out := make(models.LoanList, 0, len(loans))
	for _, l := range loans {
		out = append(out, models.LoanRecord{
			ID:             l.ID,
			BankName:       l.BankName,
			LoanType:       l.LoanType,
			Principal:      l.Principal,
			InterestRate:   l.InterestRate,
			StartDate:      l.StartDate,
			CurrentBalance: l.CurrentBalance,
			Notes:          l.Notes,
		})
	}
	return out
}
