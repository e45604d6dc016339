package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a transaction entity in the domain layer
// Amount is always stored as a positive magnitude; Type determines the sign
// wherever the transaction participates in a sum.
// CategoryID and BankID are soft references: they may point at a category or
// bank that has since been deleted, and no integrity is enforced.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId"`
	BankID      string          `json:"bankId"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *Transaction) Validate() error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return errors.New("transaction type must be income or expense")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction amount must be positive")
	}
	if t.CategoryID == "" {
		return errors.New("transaction must reference a category")
	}
	if t.BankID == "" {
		return errors.New("transaction must reference a bank")
	}
	return nil
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expense
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
