package data

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mycash/backend/internal/application/adapter"
)

// ReseedDataOutput reports how many records the new seed holds.
type ReseedDataOutput struct {
	Counts map[string]int
}

// ReseedDataUseCase replaces the store content with freshly generated demo data.
// Calls are serialized because the generator keeps random state.
type ReseedDataUseCase struct {
	mu        sync.Mutex
	store     adapter.FinanceStore
	generator adapter.SeedGenerator
}

// NewReseedDataUseCase creates a new ReseedDataUseCase instance.
func NewReseedDataUseCase(store adapter.FinanceStore, generator adapter.SeedGenerator) *ReseedDataUseCase {
	return &ReseedDataUseCase{
		store:     store,
		generator: generator,
	}
}

// Execute generates a snapshot relative to the store clock and loads it.
func (uc *ReseedDataUseCase) Execute(ctx context.Context) (*ReseedDataOutput, error) {
	uc.mu.Lock()
	snapshot := uc.generator.Generate(uc.store.Now())
	uc.store.Reset(snapshot)
	uc.mu.Unlock()

	counts := snapshot.Counts()
	slog.InfoContext(ctx, "store reseeded", "transactions", counts["transactions"], "goals", counts["goals"])
	return &ReseedDataOutput{Counts: counts}, nil
}
