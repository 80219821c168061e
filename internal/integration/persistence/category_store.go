package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddCategory appends a new category. Categories carry no timestamp.
func (s *FinanceStore) AddCategory(draft entity.Category) entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := draft
	c.ID = uuid.New()
	s.categories = append(s.categories, c)
	return c
}

// UpdateCategory applies the patch to the category with the given id.
func (s *FinanceStore) UpdateCategory(id uuid.UUID, patch entity.CategoryPatch) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.categories, id, categoryID)
	if i < 0 {
		return entity.Category{}, domainerror.ErrCategoryNotFound
	}
	patch.Apply(&s.categories[i])
	return s.categories[i], nil
}

// DeleteCategory removes the category with the given id. Transactions keep
// their category id; under the restrict policy the delete is refused instead.
func (s *FinanceStore) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.categories, id, categoryID)
	if i < 0 {
		return domainerror.ErrCategoryNotFound
	}
	if s.policy == ReferencePolicyRestrict &&
		slices.ContainsFunc(s.transactions, func(t entity.Transaction) bool { return t.CategoryID == id }) {
		return domainerror.ErrCategoryInUse
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return nil
}

// CategoryByID retrieves a category by its ID.
func (s *FinanceStore) CategoryByID(id uuid.UUID) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.categories, id, categoryID)
	if i < 0 {
		return entity.Category{}, false
	}
	return s.categories[i], true
}

// Categories returns every category in insertion order.
func (s *FinanceStore) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.categories)
}

func (s *FinanceStore) categoryIndexLocked() map[uuid.UUID]entity.Category {
	idx := make(map[uuid.UUID]entity.Category, len(s.categories))
	for _, c := range s.categories {
		idx[c.ID] = c
	}
	return idx
}
