package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
)

// DemoSource supplies the dataset used to seed an empty store on first run
type DemoSource interface {
	Generate(now time.Time) domain.Dataset
}

// Store owns the four collections and all mutation logic; it is the single
// source of truth for ledger data. Every mutation re-serializes the affected
// collections to the key-value store before returning (write-through).
//
// The mutex guards the collections against concurrent HTTP handlers; the
// store itself never spawns background work.
type Store struct {
	mu  sync.Mutex
	kv  domain.KeyValue
	log zerolog.Logger
	now func() time.Time

	transactions []domain.Transaction
	goals        []domain.Goal
	banks        []domain.Bank
	categories   []domain.Category

	firstVisit bool
}

// NewStore creates a new Store backed by the given key-value storage.
// Call Load before using any other operation.
func NewStore(kv domain.KeyValue, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log,
		now: time.Now,
	}
}

// Load restores the persisted collections, exactly once per store.
// A corrupt or absent collection falls back to empty (default list for
// categories). When the first-visit sentinel is absent the store is seeded
// from the demo source instead and the sentinel is persisted.
func (s *Store) Load(demo DemoSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = loadCollection[domain.Transaction](s, domain.StorageKeyTransactions)
	s.goals = loadCollection[domain.Goal](s, domain.StorageKeyGoals)
	s.banks = loadCollection[domain.Bank](s, domain.StorageKeyBanks)

	s.categories = loadCollection[domain.Category](s, domain.StorageKeyCategories)
	if len(s.categories) == 0 {
		s.categories = domain.DefaultCategories()
	}

	_, visited, err := s.kv.Load(domain.StorageKeyFirstVisit)
	if err != nil {
		return fmt.Errorf("failed to load first-visit sentinel: %w", err)
	}

	if !visited {
		s.firstVisit = true
		if demo != nil {
			data := demo.Generate(s.now())
			s.banks = data.Banks
			s.transactions = data.Transactions
			s.goals = data.Goals
			s.log.Info().
				Int("banks", len(data.Banks)).
				Int("transactions", len(data.Transactions)).
				Int("goals", len(data.Goals)).
				Msg("first run, seeded demo data")
		}
		if err := s.persistLocked(); err != nil {
			return err
		}
		if err := s.kv.Save(domain.StorageKeyFirstVisit, "false"); err != nil {
			return fmt.Errorf("failed to save first-visit sentinel: %w", err)
		}
	}

	return nil
}

// FirstVisit reports whether this session was the store's first-ever run
func (s *Store) FirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstVisit
}

// TransactionInput represents the input for adding a transaction
type TransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	CategoryID  string
	BankID      string
	Description string
	Date        domain.Date // zero value defaults to today
}

// AddTransaction validates the input, assigns a fresh id (and today's date if
// none was given) and appends the transaction to the collection
func (s *Store) AddTransaction(input TransactionInput) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Amount:      input.Amount,
		CategoryID:  input.CategoryID,
		BankID:      input.BankID,
		Description: input.Description,
		Date:        input.Date,
	}
	if tx.Date.IsZero() {
		tx.Date = domain.DateOf(s.now())
	}

	if err := tx.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	s.transactions = append(s.transactions, tx)
	if err := s.persistLocked(); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// GoalInput represents the input for adding a savings goal
type GoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal // defaults to zero
	TargetDate    domain.Date
	Description   string
}

// AddGoal validates the input, assigns an id, stamps CreatedAt and appends
func (s *Store) AddGoal(input GoalInput) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := domain.Goal{
		ID:            uuid.NewString(),
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    input.TargetDate,
		Description:   input.Description,
		CreatedAt:     s.now(),
	}

	if err := goal.Validate(); err != nil {
		return domain.Goal{}, err
	}

	s.goals = append(s.goals, goal)
	if err := s.persistLocked(); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// BankInput represents the input for adding a bank account
type BankInput struct {
	Name              string
	InitialBalance    decimal.Decimal
	InterestRate      *decimal.Decimal
	InterestFrequency domain.InterestFrequency
}

// AddBank validates the input, assigns an id, sets the balance equal to the
// initial balance, stamps CreatedAt and appends
func (s *Store) AddBank(input BankInput) (domain.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bank := domain.Bank{
		ID:                uuid.NewString(),
		Name:              input.Name,
		InitialBalance:    input.InitialBalance,
		Balance:           input.InitialBalance,
		InterestRate:      input.InterestRate,
		InterestFrequency: input.InterestFrequency,
		CreatedAt:         s.now(),
	}

	if err := bank.Validate(); err != nil {
		return domain.Bank{}, err
	}

	s.banks = append(s.banks, bank)
	if err := s.persistLocked(); err != nil {
		return domain.Bank{}, err
	}
	return bank, nil
}

// UpdateBankBalance replaces the matching bank's balance.
// Returns ErrNotFound when no bank has the given id.
func (s *Store) UpdateBankBalance(bankID string, newBalance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bankIndex(bankID)
	if idx < 0 {
		return fmt.Errorf("bank %s: %w", bankID, domain.ErrNotFound)
	}

	s.banks[idx].Balance = newBalance
	return s.persistLocked()
}

// ApplyBankInterest posts one accrual period of interest to the bank:
// balance * (1 + rate/100/365) for daily compounding, /12 for monthly.
// When the accrued interest is strictly positive, an income transaction
// categorized as investment is synthesized and appended; the returned
// transaction is nil otherwise. Calling twice compounds twice.
// A bank with no configured interest rate is left untouched.
func (s *Store) ApplyBankInterest(bankID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bankIndex(bankID)
	if idx < 0 {
		return nil, fmt.Errorf("bank %s: %w", bankID, domain.ErrNotFound)
	}

	bank := &s.banks[idx]
	if !bank.HasInterest() {
		return nil, nil
	}

	interest := bank.InterestForPeriod()
	bank.Balance = bank.Balance.Add(interest)

	var posted *domain.Transaction
	if interest.IsPositive() {
		tx := domain.Transaction{
			ID:          uuid.NewString(),
			Type:        domain.TransactionTypeIncome,
			Amount:      interest,
			CategoryID:  domain.CategoryInvestment,
			BankID:      bank.ID,
			Description: fmt.Sprintf("Interest from %s", bank.Name),
			Date:        domain.DateOf(s.now()),
		}
		s.transactions = append(s.transactions, tx)
		posted = &tx
	}

	if err := s.persistLocked(); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("bank_id", bank.ID).
		Str("interest", interest.String()).
		Str("balance", bank.Balance.String()).
		Msg("applied bank interest")

	return posted, nil
}

// UpdateGoalProgress adds amount to the matching goal's current amount.
// Negative adjustments are permitted but may not drive the current amount
// below zero. Returns ErrNotFound when no goal has the given id.
func (s *Store) UpdateGoalProgress(goalID string, amount decimal.Decimal) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID != goalID {
			continue
		}

		updated := s.goals[i].CurrentAmount.Add(amount)
		if updated.IsNegative() {
			return domain.Goal{}, errors.New("goal progress cannot go below zero")
		}

		s.goals[i].CurrentAmount = updated
		if err := s.persistLocked(); err != nil {
			return domain.Goal{}, err
		}
		return s.goals[i], nil
	}

	return domain.Goal{}, fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
}

// DeleteTransaction removes the matching transaction.
// Deleting an absent id is a silent no-op.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = deleteByID(s.transactions, id, func(tx domain.Transaction) string { return tx.ID })
	return s.persistLocked()
}

// DeleteGoal removes the matching goal.
// Deleting an absent id is a silent no-op.
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = deleteByID(s.goals, id, func(g domain.Goal) string { return g.ID })
	return s.persistLocked()
}

// DeleteBank removes the matching bank. Transactions referencing the bank are
// retained with their dangling id (soft references, no cascade).
// Deleting an absent id is a silent no-op.
func (s *Store) DeleteBank(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banks = deleteByID(s.banks, id, func(b domain.Bank) string { return b.ID })
	return s.persistLocked()
}

// LoadDemoData replaces all current data with a fresh demo dataset
func (s *Store) LoadDemoData(demo DemoSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := demo.Generate(s.now())
	s.banks = data.Banks
	s.transactions = data.Transactions
	s.goals = data.Goals
	return s.persistLocked()
}

// ResetAllData clears every user-owned collection and restores the default
// category list
func (s *Store) ResetAllData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = nil
	s.goals = nil
	s.banks = nil
	s.categories = domain.DefaultCategories()
	return s.persistLocked()
}

// Transactions returns a copy of the transaction collection
func (s *Store) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Transaction(nil), s.transactions...)
}

// Goals returns a copy of the goal collection
func (s *Store) Goals() []domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Goal(nil), s.goals...)
}

// Banks returns a copy of the bank collection
func (s *Store) Banks() []domain.Bank {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Bank(nil), s.banks...)
}

// Categories returns a copy of the category list
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...)
}

// BankName resolves a bank id to its name, falling back to "Unknown Bank"
// for dangling references
func (s *Store) BankName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.bankIndex(id); idx >= 0 {
		return s.banks[idx].Name
	}
	return "Unknown Bank"
}

// CategoryName resolves a category id to its name, falling back to the raw id
// for dangling references
func (s *Store) CategoryName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// persistLocked re-serializes all four collections to the key-value store.
// Callers must hold the mutex.
func (s *Store) persistLocked() error {
	collections := []struct {
		key   string
		value any
	}{
		{domain.StorageKeyTransactions, s.transactions},
		{domain.StorageKeyGoals, s.goals},
		{domain.StorageKeyBanks, s.banks},
		{domain.StorageKeyCategories, s.categories},
	}

	for _, c := range collections {
		data, err := json.Marshal(emptyIfNil(c.value))
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", c.key, err)
		}
		if err := s.kv.Save(c.key, string(data)); err != nil {
			return fmt.Errorf("failed to save %s: %w", c.key, err)
		}
	}
	return nil
}

// loadCollection reads and decodes one collection. A missing key or corrupt
// payload yields an empty collection; corruption is logged, not propagated.
func loadCollection[T any](s *Store, key string) []T {
	raw, ok, err := s.kv.Load(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to load collection, starting empty")
		return nil
	}
	if !ok {
		return nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt collection payload, starting empty")
		return nil
	}
	return records
}

func (s *Store) bankIndex(id string) int {
	for i := range s.banks {
		if s.banks[i].ID == id {
			return i
		}
	}
	return -1
}

func deleteByID[T any](records []T, id string, idOf func(T) string) []T {
	filtered := records[:0]
	for _, r := range records {
		if idOf(r) != id {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// emptyIfNil keeps nil slices serializing as [] rather than null
func emptyIfNil(v any) any {
	switch s := v.(type) {
	case []domain.Transaction:
		if s == nil {
			return []domain.Transaction{}
		}
	case []domain.Goal:
		if s == nil {
			return []domain.Goal{}
		}
	case []domain.Bank:
		if s == nil {
			return []domain.Bank{}
		}
	case []domain.Category:
		if s == nil {
			return []domain.Category{}
		}
	}
	return v
}
