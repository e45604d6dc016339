package domain

// CategoryType represents whether a category applies to income or expenses
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// CategoryInvestment is the category assigned to interest accrual transactions
const CategoryInvestment = "investment"

// Category represents a transaction category in the domain layer
// Categories form a static reference list and are immutable after initialization
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// DefaultCategories returns the built-in category list used when no
// categories have been persisted yet
func DefaultCategories() []Category {
	return []Category{
		{ID: "salary", Name: "Salary", Type: CategoryTypeIncome},
		{ID: CategoryInvestment, Name: "Investment", Type: CategoryTypeIncome},
		{ID: "bonus", Name: "Bonus", Type: CategoryTypeIncome},
		{ID: "other-income", Name: "Other Income", Type: CategoryTypeIncome},
		{ID: "food", Name: "Food & Dining", Type: CategoryTypeExpense},
		{ID: "shopping", Name: "Shopping", Type: CategoryTypeExpense},
		{ID: "housing", Name: "Housing", Type: CategoryTypeExpense},
		{ID: "transportation", Name: "Transportation", Type: CategoryTypeExpense},
		{ID: "entertainment", Name: "Entertainment", Type: CategoryTypeExpense},
		{ID: "utilities", Name: "Utilities", Type: CategoryTypeExpense},
		{ID: "healthcare", Name: "Healthcare", Type: CategoryTypeExpense},
		{ID: "personal", Name: "Personal Care", Type: CategoryTypeExpense},
		{ID: "education", Name: "Education", Type: CategoryTypeExpense},
		{ID: "travel", Name: "Travel", Type: CategoryTypeExpense},
		{ID: "other-expense", Name: "Other Expense", Type: CategoryTypeExpense},
	}
}
