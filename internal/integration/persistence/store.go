// Package persistence implements the in-memory finance store behind the adapter interfaces.
package persistence

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// ReferencePolicy decides what happens when a referenced record is deleted.
type ReferencePolicy string

const (
	// ReferencePolicyKeep lets deletes succeed and leaves dangling references for readers to resolve.
	ReferencePolicyKeep ReferencePolicy = "keep"
	// ReferencePolicyRestrict refuses to delete records that are still referenced.
	ReferencePolicyRestrict ReferencePolicy = "restrict"
)

// Option configures a FinanceStore.
type Option func(*FinanceStore)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(s *FinanceStore) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithLocation sets the time zone used for calendar math.
func WithLocation(loc *time.Location) Option {
	return func(s *FinanceStore) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithReferencePolicy sets the delete policy for referenced records.
func WithReferencePolicy(policy ReferencePolicy) Option {
	return func(s *FinanceStore) {
		if policy == ReferencePolicyKeep || policy == ReferencePolicyRestrict {
			s.policy = policy
		}
	}
}

// FinanceStore holds every collection of the household finances in memory.
// Mutations take the write lock and queries the read lock, so readers never
// observe a partial change. All returned records are copies.
type FinanceStore struct {
	mu sync.RWMutex

	transactions  []entity.Transaction
	goals         []entity.Goal
	creditCards   []entity.CreditCard
	bankAccounts  []entity.BankAccount
	familyMembers []entity.FamilyMember
	categories    []entity.Category
	filters       entity.GlobalFilters

	clock  func() time.Time
	loc    *time.Location
	policy ReferencePolicy
}

var _ adapter.FinanceStore = (*FinanceStore)(nil)

// NewFinanceStore creates an empty store with default filters.
func NewFinanceStore(opts ...Option) *FinanceStore {
	s := &FinanceStore{
		clock:  time.Now,
		loc:    time.UTC,
		policy: ReferencePolicyKeep,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.filters = entity.DefaultFilters(s.Now())
	return s
}

// Now returns the current time in the store location.
func (s *FinanceStore) Now() time.Time {
	return s.clock().In(s.loc)
}

// Location returns the time zone used for calendar math.
func (s *FinanceStore) Location() *time.Location {
	return s.loc
}

// Reset replaces every collection with the snapshot contents and restores default filters.
func (s *FinanceStore) Reset(snapshot entity.Snapshot) {
	snap := snapshot.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = snap.Transactions
	s.goals = snap.Goals
	s.creditCards = snap.CreditCards
	s.bankAccounts = snap.BankAccounts
	s.familyMembers = snap.FamilyMembers
	s.categories = snap.Categories
	s.filters = entity.DefaultFilters(s.Now())
}

// Clear empties every collection.
func (s *FinanceStore) Clear() {
	s.Reset(entity.Snapshot{})
}

// Snapshot returns a deep copy of every collection.
func (s *FinanceStore) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.Snapshot{
		Transactions:  s.transactions,
		Goals:         s.goals,
		CreditCards:   s.creditCards,
		BankAccounts:  s.bankAccounts,
		FamilyMembers: s.familyMembers,
		Categories:    s.categories,
	}.Clone()
}

func indexByID[T any](items []T, id uuid.UUID, idOf func(*T) uuid.UUID) int {
	return slices.IndexFunc(items, func(item T) bool {
		return idOf(&item) == id
	})
}

func transactionID(t *entity.Transaction) uuid.UUID   { return t.ID }
func goalID(g *entity.Goal) uuid.UUID                 { return g.ID }
func creditCardID(c *entity.CreditCard) uuid.UUID     { return c.ID }
func bankAccountID(a *entity.BankAccount) uuid.UUID   { return a.ID }
func familyMemberID(m *entity.FamilyMember) uuid.UUID { return m.ID }
func categoryID(c *entity.Category) uuid.UUID         { return c.ID }
