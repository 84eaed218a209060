package services

import "math"

// MonthsToPayoff computes how many whole months of paying `payment` it takes
// to clear `balance` at `monthlyRate` (annual percent / 100 / 12), using the
// standard declining-balance amortization closed form. The count rounds up,
// so the final month may be a partial payment.
//
// Returns nil when the debt cannot amortize: non-positive balance or
// payment, a negative rate, or a payment that does not beat the first
// period's interest charge.
func MonthsToPayoff(balance, monthlyRate, payment float64) *int {
	if balance <= 0 || payment <= 0 || monthlyRate < 0 {
		return nil
	}

	var months float64
	if monthlyRate == 0 {
		months = math.Ceil(balance / payment)
	} else {
		if payment <= balance*monthlyRate {
			// The payment only covers interest; the balance never shrinks.
			return nil
		}
		months = math.Ceil((math.Log(payment) - math.Log(payment-balance*monthlyRate)) / math.Log(1+monthlyRate))
	}

	if math.IsNaN(months) || math.IsInf(months, 0) || months < 0 {
		return nil
	}

	n := int(months)
	return &n
}
