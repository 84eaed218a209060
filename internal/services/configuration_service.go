package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/models"
)

var ErrConfigurationNotFound = errors.New("configuration not found")

// ConfigurationInput is a partial write: nil fields are left untouched on
// update, so clients only send what changed.
type ConfigurationInput struct {
	TotalEmi      *float64
	NumberOfLoans *int
	EmiSchedule   datatypes.JSON
	Loans         *models.LoanList
	Income        *float64
}

// configures reports whether this input alone satisfies the "has set up
// their finances" bar: a non-zero income or totalEmi, or at least one loan.
func (in ConfigurationInput) configures() bool {
	if in.Income != nil && *in.Income != 0 {
		return true
	}
	if in.TotalEmi != nil && *in.TotalEmi != 0 {
		return true
	}
	return in.Loans != nil && len(*in.Loans) > 0
}

// CreateOrUpdateConfiguration lazily creates the user's configuration row
// on first write and merges subsequent partial updates into it. The
// returned bool reports whether the row was created. IsConfigured is
// monotonic: once true it survives any later update, including ones that
// clear income and loans.
func CreateOrUpdateConfiguration(userID uint, input ConfigurationInput) (*models.Configuration, bool, error) {
	var cfg models.Configuration
	created := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&cfg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cfg = models.Configuration{
				UserID:       userID,
				TotalEmi:     input.TotalEmi,
				EmiSchedule:  input.EmiSchedule,
				Income:       input.Income,
				IsConfigured: input.configures(),
			}
			if input.NumberOfLoans != nil {
				cfg.NumberOfLoans = *input.NumberOfLoans
			}
			if input.Loans != nil {
				cfg.Loans = *input.Loans
			}
			if err := tx.Create(&cfg).Error; err != nil {
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.TotalEmi != nil {
			updates["total_emi"] = *input.TotalEmi
		}
		if input.NumberOfLoans != nil {
			updates["number_of_loans"] = *input.NumberOfLoans
		}
		if input.EmiSchedule != nil {
			updates["emi_schedule"] = input.EmiSchedule
		}
		if input.Loans != nil {
			updates["loans"] = *input.Loans
		}
		if input.Income != nil {
			updates["income"] = *input.Income
		}
		if !cfg.IsConfigured && input.configures() {
			updates["is_configured"] = true
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&cfg).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&cfg).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &cfg, created, nil
}

// GetConfiguration returns the user's configuration, or nil when none has
// been written yet. Absence is a valid state, distinct from an empty
// configuration.
func GetConfiguration(userID uint) (*models.Configuration, error) {
	var cfg models.Configuration
	err := database.DB.Where("user_id = ?", userID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EmiStatus tells whether the current month's EMI obligation has been
// satisfied and by which transaction.
type EmiStatus struct {
	PaidThisMonth bool       `json:"paidThisMonth"`
	TransactionID *uint      `json:"transactionId"`
	PaidOn        *time.Time `json:"paidOn"`
}

// LoanSummary is the computed, never-persisted loan picture: stored
// configuration merged with the current month's transaction state and the
// allocation engine's projections.
type LoanSummary struct {
	Income           *float64       `json:"income"`
	TotalEmi         *float64       `json:"totalEmi"`
	NumberOfLoans    int            `json:"numberOfLoans"`
	TotalLoanBalance float64        `json:"totalLoanBalance"`
	Loans            []EnrichedLoan `json:"loans"`
	EmiStatus        EmiStatus      `json:"emiStatus"`
}

// GetLoanSummary answers "what is my loan picture right now". The total
// balance is recomputed from the live loan data rather than trusted from
// storage, and the per-loan projections come from the allocation engine.
// Fails with ErrConfigurationNotFound when the user has never written a
// configuration.
func GetLoanSummary(userID uint, now time.Time) (*LoanSummary, error) {
	var cfg models.Configuration
	err := database.DB.Where("user_id = ?", userID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigurationNotFound
		}
		return nil, err
	}

	loans, totalBalance := EnrichLoans(cfg.Loans, cfg.TotalEmi, now)

	month := int(now.UTC().Month())
	year := now.UTC().Year()

	status := EmiStatus{}
	var txn models.Transaction
	err = database.DB.
		Where("user_id = ? AND month = ? AND year = ? AND paid_emi = ?", userID, month, year, true).
		Order("transaction_date desc").
		Order("created_at desc").
		First(&txn).Error
	if err == nil {
		status.PaidThisMonth = true
		status.TransactionID = &txn.ID
		paidOn := txn.TransactionDate
		status.PaidOn = &paidOn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &LoanSummary{
		Income:           cfg.Income,
		TotalEmi:         cfg.TotalEmi,
		NumberOfLoans:    cfg.NumberOfLoans,
		TotalLoanBalance: totalBalance,
		Loans:            loans,
		EmiStatus:        status,
	}, nil
}
