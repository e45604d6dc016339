package seeder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
)

// Fixed ids for demo records so reseeding is deterministic
const (
	DemoBankMainSavings = "bank-1"
	DemoBankEmergency   = "bank-2"
	DemoBankHighYield   = "bank-3"
)

// DemoSeeder produces the fixed demo dataset used to seed an empty store on
// first run. Dates are generated relative to the given clock so the dataset
// always lands in the current and previous month.
type DemoSeeder struct{}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder() *DemoSeeder {
	return &DemoSeeder{}
}

// Generate builds the demo dataset: three banks, six transactions and three
// savings goals, in the same record shapes as user-entered data
func (s *DemoSeeder) Generate(now time.Time) domain.Dataset {
	today := domain.DateOf(now)
	lastMonth := domain.DateOf(now.AddDate(0, -1, 0))

	banks := []domain.Bank{
		{
			ID:                DemoBankMainSavings,
			Name:              "Main Savings",
			InitialBalance:    decimal.NewFromInt(5000),
			Balance:           decimal.NewFromInt(5000),
			InterestRate:      rate("2.5"),
			InterestFrequency: domain.InterestFrequencyMonthly,
			CreatedAt:         lastMonth.Time,
		},
		{
			ID:                DemoBankEmergency,
			Name:              "Emergency Fund",
			InitialBalance:    decimal.NewFromInt(3000),
			Balance:           decimal.NewFromInt(3000),
			InterestRate:      rate("1.8"),
			InterestFrequency: domain.InterestFrequencyMonthly,
			CreatedAt:         lastMonth.Time,
		},
		{
			ID:                DemoBankHighYield,
			Name:              "High-Yield Savings",
			InitialBalance:    decimal.NewFromInt(1000),
			Balance:           decimal.NewFromInt(1000),
			InterestRate:      rate("3.2"),
			InterestFrequency: domain.InterestFrequencyDaily,
			CreatedAt:         lastMonth.Time,
		},
	}

	transactions := []domain.Transaction{
		{
			ID: "trans-1", Type: domain.TransactionTypeIncome,
			Amount: decimal.NewFromInt(3500), CategoryID: "salary",
			Description: "Monthly Salary", Date: lastMonth, BankID: DemoBankMainSavings,
		},
		{
			ID: "trans-2", Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(800), CategoryID: "housing",
			Description: "Rent", Date: lastMonth, BankID: DemoBankMainSavings,
		},
		{
			ID: "trans-3", Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(200), CategoryID: "food",
			Description: "Groceries", Date: today, BankID: DemoBankMainSavings,
		},
		{
			ID: "trans-4", Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(50), CategoryID: "entertainment",
			Description: "Movie tickets", Date: today, BankID: DemoBankMainSavings,
		},
		{
			ID: "trans-5", Type: domain.TransactionTypeIncome,
			Amount: decimal.NewFromInt(200), CategoryID: domain.CategoryInvestment,
			Description: "Stock dividends", Date: today, BankID: DemoBankHighYield,
		},
		{
			ID: "trans-6", Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(100), CategoryID: "transportation",
			Description: "Gas", Date: today, BankID: DemoBankMainSavings,
		},
	}

	goals := []domain.Goal{
		{
			ID: "goal-1", Name: "Vacation Fund",
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(500),
			TargetDate:    domain.DateOf(now.AddDate(0, 6, 0)),
			Description:   "Summer vacation to the beach",
			CreatedAt:     lastMonth.Time,
		},
		{
			ID: "goal-2", Name: "New Laptop",
			TargetAmount:  decimal.NewFromInt(1500),
			CurrentAmount: decimal.NewFromInt(300),
			TargetDate:    domain.DateOf(now.AddDate(0, 3, 0)),
			Description:   "Save for a new work laptop",
			CreatedAt:     lastMonth.Time,
		},
		{
			ID: "goal-3", Name: "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(3000),
			TargetDate:    domain.DateOf(now.AddDate(1, 0, 0)),
			Description:   "6 months of living expenses",
			CreatedAt:     lastMonth.Time,
		},
	}

	return domain.Dataset{
		Banks:        banks,
		Transactions: transactions,
		Goals:        goals,
	}
}

func rate(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
