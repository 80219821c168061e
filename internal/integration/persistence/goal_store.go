package persistence

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// AddGoal appends a new goal.
func (s *FinanceStore) AddGoal(draft entity.Goal) entity.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := draft.Clone()
	g.ID = uuid.New()
	g.CreatedAt = s.clock()
	s.goals = append(s.goals, g)
	return g.Clone()
}

// UpdateGoal applies the patch to the goal with the given id.
func (s *FinanceStore) UpdateGoal(id uuid.UUID, patch entity.GoalPatch) (entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.goals, id, goalID)
	if i < 0 {
		return entity.Goal{}, domainerror.ErrGoalNotFound
	}
	patch.Apply(&s.goals[i])
	return s.goals[i].Clone(), nil
}

// DeleteGoal removes the goal with the given id.
func (s *FinanceStore) DeleteGoal(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.goals, id, goalID)
	if i < 0 {
		return domainerror.ErrGoalNotFound
	}
	s.goals = slices.Delete(s.goals, i, i+1)
	return nil
}

// GoalByID retrieves a goal by its ID.
func (s *FinanceStore) GoalByID(id uuid.UUID) (entity.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.goals, id, goalID)
	if i < 0 {
		return entity.Goal{}, false
	}
	return s.goals[i].Clone(), true
}

// Goals returns every goal in insertion order.
func (s *FinanceStore) Goals() []entity.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}
