package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSeeder_Generate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)
	data := NewDemoSeeder().Generate(now)

	assert.Len(t, data.Banks, 3)
	assert.Len(t, data.Transactions, 6)
	assert.Len(t, data.Goals, 3)

	// Every record validates and ids are unique
	seen := make(map[string]bool)
	for _, b := range data.Banks {
		require.NoError(t, b.Validate())
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.True(t, b.Balance.Equal(b.InitialBalance))
	}
	for _, tx := range data.Transactions {
		require.NoError(t, tx.Validate())
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
	for _, g := range data.Goals {
		require.NoError(t, g.Validate())
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
	}

	// Transactions reference demo banks only
	for _, tx := range data.Transactions {
		assert.Contains(t, []string{DemoBankMainSavings, DemoBankEmergency, DemoBankHighYield}, tx.BankID)
	}

	// Dates are relative to the clock: salary last month, groceries today
	assert.Equal(t, "2025-05-15", data.Transactions[0].Date.String())
	assert.Equal(t, "2025-06-15", data.Transactions[2].Date.String())
	assert.Equal(t, "2025-12-15", data.Goals[0].TargetDate.String())
}
