package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddBankAccount appends a new bank account.
func (s *FinanceStore) AddBankAccount(draft entity.BankAccount) entity.BankAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := draft
	a.ID = uuid.New()
	a.CreatedAt = s.clock()
	s.bankAccounts = append(s.bankAccounts, a)
	return a
}

// UpdateBankAccount applies the patch to the account with the given id.
func (s *FinanceStore) UpdateBankAccount(id uuid.UUID, patch entity.BankAccountPatch) (entity.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.bankAccounts, id, bankAccountID)
	if i < 0 {
		return entity.BankAccount{}, domainerror.ErrBankAccountNotFound
	}
	patch.Apply(&s.bankAccounts[i])
	return s.bankAccounts[i], nil
}

// DeleteBankAccount removes the account with the given id.
func (s *FinanceStore) DeleteBankAccount(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.bankAccounts, id, bankAccountID)
	if i < 0 {
		return domainerror.ErrBankAccountNotFound
	}
	if s.policy == ReferencePolicyRestrict && s.accountReferencedLocked(entity.BankAccountRef(id)) {
		return domainerror.ErrAccountInUse
	}
	s.bankAccounts = slices.Delete(s.bankAccounts, i, i+1)
	return nil
}

// BankAccountByID retrieves a bank account by its ID.
func (s *FinanceStore) BankAccountByID(id uuid.UUID) (entity.BankAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.bankAccounts, id, bankAccountID)
	if i < 0 {
		return entity.BankAccount{}, false
	}
	return s.bankAccounts[i], true
}

// BankAccounts returns every account in insertion order.
func (s *FinanceStore) BankAccounts() []entity.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.bankAccounts)
}
