package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddFamilyMember appends a new family member.
func (s *FinanceStore) AddFamilyMember(draft entity.FamilyMember) entity.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := draft.Clone()
	m.ID = uuid.New()
	m.CreatedAt = s.clock()
	s.familyMembers = append(s.familyMembers, m)
	return m.Clone()
}

// UpdateFamilyMember applies the patch to the member with the given id.
func (s *FinanceStore) UpdateFamilyMember(id uuid.UUID, patch entity.FamilyMemberPatch) (entity.FamilyMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.familyMembers, id, familyMemberID)
	if i < 0 {
		return entity.FamilyMember{}, domainerror.ErrMemberNotFound
	}
	patch.Apply(&s.familyMembers[i])
	return s.familyMembers[i].Clone(), nil
}

// DeleteFamilyMember removes the member with the given id. Under the restrict
// policy a member still attached to a transaction, goal, account or card is kept.
func (s *FinanceStore) DeleteFamilyMember(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.familyMembers, id, familyMemberID)
	if i < 0 {
		return domainerror.ErrMemberNotFound
	}
	if s.policy == ReferencePolicyRestrict && s.memberReferencedLocked(id) {
		return domainerror.ErrMemberInUse
	}
	s.familyMembers = slices.Delete(s.familyMembers, i, i+1)
	return nil
}

// MemberByID retrieves a family member by its ID.
func (s *FinanceStore) MemberByID(id uuid.UUID) (entity.FamilyMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.memberByIDLocked(id)
}

// FamilyMembers returns every member in insertion order.
func (s *FinanceStore) FamilyMembers() []entity.FamilyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.FamilyMember, len(s.familyMembers))
	for i, m := range s.familyMembers {
		out[i] = m.Clone()
	}
	return out
}

func (s *FinanceStore) memberByIDLocked(id uuid.UUID) (entity.FamilyMember, bool) {
	i := indexByID(s.familyMembers, id, familyMemberID)
	if i < 0 {
		return entity.FamilyMember{}, false
	}
	return s.familyMembers[i].Clone(), true
}

func (s *FinanceStore) memberReferencedLocked(id uuid.UUID) bool {
	if slices.ContainsFunc(s.transactions, func(t entity.Transaction) bool { return t.BelongsToMember(id) }) {
		return true
	}
	if slices.ContainsFunc(s.goals, func(g entity.Goal) bool { return g.MemberID != nil && *g.MemberID == id }) {
		return true
	}
	if slices.ContainsFunc(s.bankAccounts, func(a entity.BankAccount) bool { return a.HolderID == id }) {
		return true
	}
	return slices.ContainsFunc(s.creditCards, func(c entity.CreditCard) bool { return c.HolderID == id })
}
