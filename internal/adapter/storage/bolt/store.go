package bolt

import (
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
)

// bucketName is the single bbolt bucket holding all ledger collections
const bucketName = "ledger"

// Store implements domain.KeyValue on top of a bbolt database file
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) the database at dbPath and initializes the bucket
func New(dbPath string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Load retrieves the value stored under key; the boolean result is false when
// the key is absent
func (s *Store) Load(key string) (string, bool, error) {
	var value string
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if data == nil {
			return nil
		}
		value = string(data)
		found = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, found, nil
}

// Save stores value under key, replacing any previous value
func (s *Store) Save(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

var _ domain.KeyValue = (*Store)(nil)
