package domain

import "errors"

// Storage keys for the persisted collections and the first-visit sentinel
const (
	StorageKeyTransactions = "transactions"
	StorageKeyGoals        = "goals"
	StorageKeyBanks        = "banks"
	StorageKeyCategories   = "categories"
	StorageKeyFirstVisit   = "firstVisit"
)

// ErrNotFound is returned when a record lookup by id finds no match
var ErrNotFound = errors.New("record not found")

// KeyValue defines the interface for key-value persistence operations
// Values are opaque serialized strings; the ledger encodes each collection
// as a JSON array.
type KeyValue interface {
	// Load retrieves the value stored under key.
	// The boolean result is false when the key is absent.
	Load(key string) (string, bool, error)

	// Save stores value under key, replacing any previous value.
	Save(key, value string) error
}

// Dataset groups the three user-owned collections, in the shape produced by
// the demo data source and consumed by the ledger on first run
type Dataset struct {
	Banks        []Bank
	Transactions []Transaction
	Goals        []Goal
}
