package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		ID:         "trans-1",
		Type:       TransactionTypeExpense,
		Amount:     decimal.NewFromInt(50),
		CategoryID: "food",
		BankID:     "bank-1",
		Date:       NewDate(2025, time.June, 1),
	}

	t.Run("Valid transaction should pass", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("Unknown type should fail", func(t *testing.T) {
		tx := valid
		tx.Type = "transfer"
		assert.EqualError(t, tx.Validate(), "transaction type must be income or expense")
	})

	t.Run("Non-positive amount should fail", func(t *testing.T) {
		tx := valid
		tx.Amount = decimal.Zero
		assert.EqualError(t, tx.Validate(), "transaction amount must be positive")
	})

	t.Run("Missing references should fail", func(t *testing.T) {
		tx := valid
		tx.CategoryID = ""
		assert.EqualError(t, tx.Validate(), "transaction must reference a category")

		tx = valid
		tx.BankID = ""
		assert.EqualError(t, tx.Validate(), "transaction must reference a bank")
	})
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(100)}
	expense := Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(100)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-100)))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.June, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d.String(), decoded.String())
}

func TestDate_UnmarshalToleratesTimestamps(t *testing.T) {
	// Previously persisted records may carry full RFC 3339 timestamps
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-15T10:30:00Z"`), &d))
	assert.Equal(t, "2025-06-15", d.String())

	require.Error(t, json.Unmarshal([]byte(`"15/06/2025"`), &d))
}
