package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddTransaction stores a new transaction at the head of the ledger.
func (s *FinanceStore) AddTransaction(draft entity.Transaction) entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := draft.Clone()
	t.ID = uuid.New()
	t.CreatedAt = s.clock()
	s.transactions = slices.Insert(s.transactions, 0, t)
	return t.Clone()
}

// UpdateTransaction applies the patch to the transaction with the given id.
func (s *FinanceStore) UpdateTransaction(id uuid.UUID, patch entity.TransactionPatch) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.transactions, id, transactionID)
	if i < 0 {
		return entity.Transaction{}, domainerror.ErrTransactionNotFound
	}
	patch.Apply(&s.transactions[i])
	return s.transactions[i].Clone(), nil
}

// DeleteTransaction removes the transaction with the given id.
func (s *FinanceStore) DeleteTransaction(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.transactions, id, transactionID)
	if i < 0 {
		return domainerror.ErrTransactionNotFound
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return nil
}

// MarkTransactionAsPaid sets the paid flag and completed status together.
func (s *FinanceStore) MarkTransactionAsPaid(id uuid.UUID) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.transactions, id, transactionID)
	if i < 0 {
		return entity.Transaction{}, domainerror.ErrTransactionNotFound
	}
	s.transactions[i].MarkAsPaid()
	return s.transactions[i].Clone(), nil
}

// TransactionByID retrieves a transaction by its ID.
func (s *FinanceStore) TransactionByID(id uuid.UUID) (entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.transactions, id, transactionID)
	if i < 0 {
		return entity.Transaction{}, false
	}
	return s.transactions[i].Clone(), true
}

// Transactions returns every transaction in ledger order, newest additions first.
func (s *FinanceStore) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Transaction, len(s.transactions))
	for i, t := range s.transactions {
		out[i] = t.Clone()
	}
	return out
}
