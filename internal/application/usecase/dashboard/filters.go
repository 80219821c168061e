package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// GetFiltersUseCase returns the current global filters.
type GetFiltersUseCase struct {
	store adapter.FilterStore
}

// NewGetFiltersUseCase creates a new GetFiltersUseCase instance.
func NewGetFiltersUseCase(store adapter.FilterStore) *GetFiltersUseCase {
	return &GetFiltersUseCase{store: store}
}

// Execute returns a copy of the filters.
func (uc *GetFiltersUseCase) Execute(ctx context.Context) (entity.GlobalFilters, error) {
	return uc.store.Filters(), nil
}

// UpdateFiltersInput carries a partial change to the global filters.
// A missing range end keeps the current one.
type UpdateFiltersInput struct {
	MemberID        *uuid.UUID
	ClearMember     bool
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType *entity.TransactionTypeFilter
	SearchText      *string
}

// UpdateFiltersUseCase validates and applies a filter change.
type UpdateFiltersUseCase struct {
	store adapter.FinanceStore
}

// NewUpdateFiltersUseCase creates a new UpdateFiltersUseCase instance.
func NewUpdateFiltersUseCase(store adapter.FinanceStore) *UpdateFiltersUseCase {
	return &UpdateFiltersUseCase{store: store}
}

// Execute applies the change and returns the resulting filters.
func (uc *UpdateFiltersUseCase) Execute(ctx context.Context, input UpdateFiltersInput) (entity.GlobalFilters, error) {
	update := entity.FiltersUpdate{
		ClearMember:     input.ClearMember,
		TransactionType: input.TransactionType,
		SearchText:      input.SearchText,
	}

	if input.TransactionType != nil && !input.TransactionType.IsValid() {
		return entity.GlobalFilters{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTypeFilter,
			"type must be 'all', 'income' or 'expense'",
			domainerror.ErrInvalidTypeFilter,
		)
	}

	if input.MemberID != nil && !input.ClearMember {
		if _, ok := uc.store.MemberByID(*input.MemberID); !ok {
			return entity.GlobalFilters{}, domainerror.NewDashboardError(
				domainerror.ErrCodeFilterMemberNotFound,
				"selected member not found",
				domainerror.ErrFilterMemberNotFound,
			)
		}
		update.SelectedMemberID = input.MemberID
	}

	if input.StartDate != nil || input.EndDate != nil {
		dateRange := uc.store.Filters().DateRange
		if input.StartDate != nil {
			dateRange.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			dateRange.EndDate = *input.EndDate
		}
		if !dateRange.IsValid() {
			return entity.GlobalFilters{}, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidDateRange,
				"start date must not be after end date",
				domainerror.ErrInvalidDateRange,
			)
		}
		update.DateRange = &dateRange
	}

	filters := uc.store.SetFilters(update)
	slog.DebugContext(ctx, "filters updated",
		"type", filters.TransactionType,
		"start_date", filters.DateRange.StartDate,
		"end_date", filters.DateRange.EndDate,
	)
	return filters, nil
}

// ResetFiltersUseCase restores the default filters.
type ResetFiltersUseCase struct {
	store adapter.FilterStore
}

// NewResetFiltersUseCase creates a new ResetFiltersUseCase instance.
func NewResetFiltersUseCase(store adapter.FilterStore) *ResetFiltersUseCase {
	return &ResetFiltersUseCase{store: store}
}

// Execute resets the filters to the current month with no member or search.
func (uc *ResetFiltersUseCase) Execute(ctx context.Context) (entity.GlobalFilters, error) {
	return uc.store.ResetFilters(), nil
}
