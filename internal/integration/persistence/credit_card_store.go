package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddCreditCard appends a new credit card.
func (s *FinanceStore) AddCreditCard(draft entity.CreditCard) entity.CreditCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := draft
	c.ID = uuid.New()
	c.CreatedAt = s.clock()
	s.creditCards = append(s.creditCards, c)
	return c
}

// UpdateCreditCard applies the patch to the card with the given id.
func (s *FinanceStore) UpdateCreditCard(id uuid.UUID, patch entity.CreditCardPatch) (entity.CreditCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.creditCards, id, creditCardID)
	if i < 0 {
		return entity.CreditCard{}, domainerror.ErrCreditCardNotFound
	}
	patch.Apply(&s.creditCards[i])
	return s.creditCards[i], nil
}

// DeleteCreditCard removes the card with the given id. Under the restrict
// policy a card still charged by a transaction is kept.
func (s *FinanceStore) DeleteCreditCard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.creditCards, id, creditCardID)
	if i < 0 {
		return domainerror.ErrCreditCardNotFound
	}
	if s.policy == ReferencePolicyRestrict && s.accountReferencedLocked(entity.CreditCardRef(id)) {
		return domainerror.ErrAccountInUse
	}
	s.creditCards = slices.Delete(s.creditCards, i, i+1)
	return nil
}

// CreditCardByID retrieves a credit card by its ID.
func (s *FinanceStore) CreditCardByID(id uuid.UUID) (entity.CreditCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.creditCards, id, creditCardID)
	if i < 0 {
		return entity.CreditCard{}, false
	}
	return s.creditCards[i], true
}

// CreditCards returns every card in insertion order.
func (s *FinanceStore) CreditCards() []entity.CreditCard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.creditCards)
}

func (s *FinanceStore) accountReferencedLocked(ref entity.AccountRef) bool {
	return slices.ContainsFunc(s.transactions, func(t entity.Transaction) bool {
		return t.Account == ref
	})
}
