package data

import (
	"context"
	"log/slog"

	"github.com/mycash/backend/internal/application/adapter"
)

// ClearDataUseCase empties every collection and resets the filters.
type ClearDataUseCase struct {
	store adapter.DataStore
}

// NewClearDataUseCase creates a new ClearDataUseCase instance.
func NewClearDataUseCase(store adapter.DataStore) *ClearDataUseCase {
	return &ClearDataUseCase{store: store}
}

// Execute clears the store.
func (uc *ClearDataUseCase) Execute(ctx context.Context) error {
	uc.store.Clear()
	slog.InfoContext(ctx, "all data cleared")
	return nil
}
