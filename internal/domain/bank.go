package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// InterestFrequency represents how often a bank compounds interest
type InterestFrequency string

const (
	InterestFrequencyDaily   InterestFrequency = "daily"
	InterestFrequencyMonthly InterestFrequency = "monthly"
)

var (
	periodsPerYearDaily   = decimal.NewFromInt(365)
	periodsPerYearMonthly = decimal.NewFromInt(12)
	oneHundred            = decimal.NewFromInt(100)
)

// Bank represents a bank account entity in the domain layer
// Balance starts equal to InitialBalance and is mutated only through explicit
// balance updates or interest accrual.
// InterestRate is an annual percentage; nil means no interest is configured.
type Bank struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	InitialBalance    decimal.Decimal   `json:"initialBalance"`
	Balance           decimal.Decimal   `json:"balance"`
	InterestRate      *decimal.Decimal  `json:"interestRate,omitempty"`
	InterestFrequency InterestFrequency `json:"interestFrequency,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// Validate ensures the bank adheres to domain rules
// Returns an error if validation fails
func (b *Bank) Validate() error {
	if b.Name == "" {
		return errors.New("bank name cannot be empty")
	}
	if b.InterestRate != nil {
		if b.InterestRate.IsNegative() {
			return errors.New("bank interest rate cannot be negative")
		}
		if b.InterestFrequency != InterestFrequencyDaily && b.InterestFrequency != InterestFrequencyMonthly {
			return errors.New("bank interest frequency must be daily or monthly")
		}
	}
	return nil
}

// HasInterest reports whether the bank has an interest rate configured
func (b *Bank) HasInterest() bool {
	return b.InterestRate != nil
}

// InterestForPeriod computes the interest earned over one accrual period:
// balance * rate/100 / 365 for daily compounding, / 12 for monthly.
// Returns zero when no interest rate is configured.
func (b *Bank) InterestForPeriod() decimal.Decimal {
	if b.InterestRate == nil {
		return decimal.Zero
	}
	periods := periodsPerYearMonthly
	if b.InterestFrequency == InterestFrequencyDaily {
		periods = periodsPerYearDaily
	}
	rate := b.InterestRate.Div(oneHundred)
	return b.Balance.Mul(rate.Div(periods))
}
