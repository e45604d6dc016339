package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
)

// TransactionFilter is a conjunction of independent predicates; each zero
// field is skipped (always true)
type TransactionFilter struct {
	Type       domain.TransactionType
	StartDate  domain.Date
	EndDate    domain.Date
	CategoryID string
	BankID     string
}

// Matches reports whether the transaction satisfies every set predicate
func (f TransactionFilter) Matches(tx domain.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if !f.StartDate.IsZero() && tx.Date.Before(f.StartDate.Time) {
		return false
	}
	if !f.EndDate.IsZero() && tx.Date.After(f.EndDate.Time) {
		return false
	}
	if f.CategoryID != "" && tx.CategoryID != f.CategoryID {
		return false
	}
	if f.BankID != "" && tx.BankID != f.BankID {
		return false
	}
	return true
}

// FilterTransactions returns the transactions satisfying the filter.
// An empty result is an empty slice, never nil.
func FilterTransactions(transactions []domain.Transaction, f TransactionFilter) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// SumByType returns the total income and expense magnitudes of the given
// transactions
func SumByType(transactions []domain.Transaction) (income, expenses decimal.Decimal) {
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return income, expenses
}

// SortTransactionsByDateDesc returns a copy sorted newest first
func SortTransactionsByDateDesc(transactions []domain.Transaction) []domain.Transaction {
	sorted := append([]domain.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	return sorted
}

// SortBanksByBalanceDesc returns a copy sorted by balance, highest first
func SortBanksByBalanceDesc(banks []domain.Bank) []domain.Bank {
	sorted := append([]domain.Bank(nil), banks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance.GreaterThan(sorted[j].Balance)
	})
	return sorted
}

// SortGoalsByCompletionDesc returns a copy sorted by completion percentage,
// most complete first
func SortGoalsByCompletionDesc(goals []domain.Goal) []domain.Goal {
	sorted := append([]domain.Goal(nil), goals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProgressPercent().GreaterThan(sorted[j].ProgressPercent())
	})
	return sorted
}
