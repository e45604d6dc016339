package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
)

// stubReader is a fixed LedgerReader for testing
type stubReader struct {
	transactions []domain.Transaction
	banks        []domain.Bank
	goals        []domain.Goal
}

func (s stubReader) Transactions() []domain.Transaction { return s.transactions }
func (s stubReader) Banks() []domain.Bank               { return s.banks }
func (s stubReader) Goals() []domain.Goal               { return s.goals }

func TestGetSummary(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

	reader := stubReader{
		banks: []domain.Bank{
			{ID: "bank-1", Balance: decimal.NewFromInt(5000)},
			{ID: "bank-2", Balance: decimal.NewFromInt(3000)},
		},
		transactions: []domain.Transaction{
			// Current month
			{ID: "t1", Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(2000),
				Date: domain.NewDate(2025, time.June, 1)},
			{ID: "t2", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(500),
				Date: domain.NewDate(2025, time.June, 10)},
			// Previous month, excluded from monthly figures
			{ID: "t3", Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(9999),
				Date: domain.NewDate(2025, time.May, 20)},
		},
	}

	summary := NewDashboardService(reader).GetSummary(now)

	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(8000)))
	assert.True(t, summary.MonthlyIncome.Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.MonthlyExpenses.Equal(decimal.NewFromInt(500)))
	// (2000 - 500) / 2000 * 100 = 75
	assert.True(t, summary.SavingsRate.Equal(decimal.NewFromInt(75)), "got %s", summary.SavingsRate)

	// Recent transactions are newest first across all months
	assert.Equal(t, "t2", summary.RecentTransactions[0].ID)
	assert.Equal(t, "t1", summary.RecentTransactions[1].ID)
	assert.Equal(t, "t3", summary.RecentTransactions[2].ID)
}

func TestGetSummary_NoIncome(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

	reader := stubReader{
		transactions: []domain.Transaction{
			{ID: "t1", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(100),
				Date: domain.NewDate(2025, time.June, 5)},
		},
	}

	summary := NewDashboardService(reader).GetSummary(now)

	// Division-by-zero guard: savings rate is defined as zero without income
	assert.True(t, summary.SavingsRate.IsZero())
	assert.True(t, summary.TotalBalance.IsZero())
}

func TestGetSummary_RecentLimit(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

	var transactions []domain.Transaction
	for day := 1; day <= 8; day++ {
		transactions = append(transactions, domain.Transaction{
			ID: string(rune('a' + day)), Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(1), Date: domain.NewDate(2025, time.June, day),
		})
	}

	summary := NewDashboardService(stubReader{transactions: transactions}).GetSummary(now)

	assert.Len(t, summary.RecentTransactions, 5)
	assert.Equal(t, "2025-06-08", summary.RecentTransactions[0].Date.String())
}

func TestGoalOverviews(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

	reader := stubReader{
		goals: []domain.Goal{
			{ID: "behind", Name: "Behind", TargetAmount: decimal.NewFromInt(1000),
				CurrentAmount: decimal.NewFromInt(100), TargetDate: domain.NewDate(2025, time.June, 1)},
			{ID: "done", Name: "Done", TargetAmount: decimal.NewFromInt(500),
				CurrentAmount: decimal.NewFromInt(750), TargetDate: domain.NewDate(2025, time.December, 1)},
		},
	}

	overviews := NewDashboardService(reader).GoalOverviews(now)

	// Sorted by completion descending
	assert.Equal(t, "done", overviews[0].Goal.ID)
	assert.True(t, overviews[0].Completed)
	assert.True(t, overviews[0].ProgressPercent.Equal(decimal.NewFromInt(150)))
	assert.True(t, overviews[0].ClampedPercent.Equal(decimal.NewFromInt(100)))
	assert.False(t, overviews[0].Overdue)

	assert.Equal(t, "behind", overviews[1].Goal.ID)
	assert.True(t, overviews[1].Overdue)
	assert.Negative(t, overviews[1].DaysRemaining)
}
