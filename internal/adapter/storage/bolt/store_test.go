package bolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	// Absent key
	_, found, err := store.Load("transactions")
	require.NoError(t, err)
	assert.False(t, found)

	// Save and reload
	require.NoError(t, store.Save("transactions", `[{"id":"t1"}]`))

	value, found, err := store.Load("transactions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"t1"}]`, value)

	// Overwrite replaces
	require.NoError(t, store.Save("transactions", `[]`))
	value, _, err = store.Load("transactions")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("firstVisit", "false"))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Load("firstVisit")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", value)
}
