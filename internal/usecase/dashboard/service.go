package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
	"github.com/fintrack-app/fintrack-backend/internal/ledger"
)

// recentLimit is the number of transactions shown in the recent activity list
const recentLimit = 5

// LedgerReader provides read access to the collections the dashboard
// aggregates over
type LedgerReader interface {
	Transactions() []domain.Transaction
	Banks() []domain.Bank
	Goals() []domain.Goal
}

// Summary represents the aggregate figures for the dashboard.
// Everything here is derived state, recomputed from the collections on every
// read and never persisted.
type Summary struct {
	TotalBalance       decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	SavingsRate        decimal.Decimal
	RecentTransactions []domain.Transaction
}

// DashboardService computes derived aggregates over the ledger
type DashboardService struct {
	Ledger LedgerReader
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(reader LedgerReader) *DashboardService {
	return &DashboardService{Ledger: reader}
}

// GetSummary calculates the dashboard summary at the given moment:
//   - Total balance: sum of balance over all banks
//   - Monthly income/expenses: transactions dated within the current calendar
//     month and year (local calendar, not a rolling window)
//   - Savings rate: (income - expenses) / income * 100, zero when income is zero
//   - Recent transactions: the five newest by date
func (s *DashboardService) GetSummary(now time.Time) Summary {
	totalBalance := decimal.Zero
	for _, bank := range s.Ledger.Banks() {
		totalBalance = totalBalance.Add(bank.Balance)
	}

	transactions := s.Ledger.Transactions()

	monthly := ledger.FilterTransactions(transactions, ledger.TransactionFilter{
		StartDate: domain.NewDate(now.Year(), now.Month(), 1),
		EndDate:   domain.DateOf(lastDayOfMonth(now)),
	})
	income, expenses := ledger.SumByType(monthly)

	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
	}

	recent := ledger.SortTransactionsByDateDesc(transactions)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return Summary{
		TotalBalance:       totalBalance,
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		SavingsRate:        savingsRate,
		RecentTransactions: recent,
	}
}

// GoalOverview represents one goal with its derived progress figures
type GoalOverview struct {
	Goal            domain.Goal
	ProgressPercent decimal.Decimal
	ClampedPercent  decimal.Decimal
	DaysRemaining   int
	Overdue         bool
	Completed       bool
}

// GoalOverviews returns every goal with its derived figures, sorted by
// completion percentage descending
func (s *DashboardService) GoalOverviews(now time.Time) []GoalOverview {
	goals := ledger.SortGoalsByCompletionDesc(s.Ledger.Goals())

	overviews := make([]GoalOverview, 0, len(goals))
	for _, g := range goals {
		days := g.DaysRemaining(now)
		overviews = append(overviews, GoalOverview{
			Goal:            g,
			ProgressPercent: g.ProgressPercent(),
			ClampedPercent:  g.ClampedProgressPercent(),
			DaysRemaining:   days,
			Overdue:         days < 0,
			Completed:       g.Completed(),
		})
	}
	return overviews
}

func lastDayOfMonth(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
