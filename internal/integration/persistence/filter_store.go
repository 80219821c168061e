package persistence

import "github.com/mycash/backend/internal/domain/entity"

// Filters returns the current filter selection.
func (s *FinanceStore) Filters() entity.GlobalFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filters.Clone()
}

// SetFilters merges the update into the current filters.
func (s *FinanceStore) SetFilters(update entity.FiltersUpdate) entity.GlobalFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	update.Apply(&s.filters)
	return s.filters.Clone()
}

// ResetFilters restores the default filters for the current month.
func (s *FinanceStore) ResetFilters() entity.GlobalFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = entity.DefaultFilters(s.Now())
	return s.filters.Clone()
}
