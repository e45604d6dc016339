package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings goal entity in the domain layer
// CurrentAmount may exceed TargetAmount: a goal is completed once
// CurrentAmount >= TargetAmount and no clamping is applied to the stored value.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate ensures the goal adheres to domain rules
// Returns an error if validation fails
func (g *Goal) Validate() error {
	if g.Name == "" {
		return errors.New("goal name cannot be empty")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("goal target amount must be positive")
	}
	if g.CurrentAmount.IsNegative() {
		return errors.New("goal current amount cannot be negative")
	}
	return nil
}

// Completed reports whether the goal has reached its target
func (g *Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// ProgressPercent returns the raw, unclamped completion percentage
func (g *Goal) ProgressPercent() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(oneHundred)
}

// ClampedProgressPercent returns the completion percentage capped at 100,
// suitable for progress-bar rendering
func (g *Goal) ClampedProgressPercent() decimal.Decimal {
	percent := g.ProgressPercent()
	if percent.GreaterThan(oneHundred) {
		return oneHundred
	}
	return percent
}

// DaysRemaining returns the number of whole days from now until the target
// date, rounded up. The result is negative when the goal is overdue.
func (g *Goal) DaysRemaining(now time.Time) int {
	diff := g.TargetDate.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
