package data

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/persistence"
	"github.com/mycash/backend/internal/integration/persistence/seed"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type stubExporter struct {
	err      error
	received entity.Snapshot
}

func (e *stubExporter) Write(w io.Writer, snapshot entity.Snapshot) error {
	e.received = snapshot
	if e.err != nil {
		return e.err
	}
	_, err := io.WriteString(w, "ok")
	return err
}

func (e *stubExporter) ContentType() string { return "text/plain" }
func (e *stubExporter) Extension() string   { return "txt" }

func newTestStore() *persistence.FinanceStore {
	return persistence.NewFinanceStore(persistence.WithClock(func() time.Time { return fixedNow }))
}

func TestExportDataUseCase(t *testing.T) {
	store := newTestStore()
	store.AddBankAccount(entity.BankAccount{Name: "Itaú", Balance: decimal.NewFromInt(10)})
	exporter := &stubExporter{}
	uc := NewExportDataUseCase(store, map[ExportFormat]adapter.SnapshotExporter{ExportFormatJSON: exporter})

	out, err := uc.Execute(context.Background(), ExportDataInput{})
	require.NoError(t, err)
	assert.Equal(t, "mycash-2024-03-15.txt", out.FileName)
	assert.Equal(t, "text/plain", out.ContentType)
	assert.Equal(t, []byte("ok"), out.Body)
	assert.Equal(t, 1, out.Counts["bank_accounts"])
	assert.Len(t, exporter.received.BankAccounts, 1)

	_, err = uc.Execute(context.Background(), ExportDataInput{Format: ExportFormatXLSX})
	assert.ErrorIs(t, err, domainerror.ErrInvalidExportFormat)
}

func TestExportDataUseCase_WriterFailure(t *testing.T) {
	store := newTestStore()
	boom := errors.New("disk full")
	uc := NewExportDataUseCase(store, map[ExportFormat]adapter.SnapshotExporter{ExportFormatJSON: &stubExporter{err: boom}})

	_, err := uc.Execute(context.Background(), ExportDataInput{Format: ExportFormatJSON})
	assert.ErrorIs(t, err, domainerror.ErrExportFailed)
	assert.ErrorIs(t, err, boom)
}

func TestClearAndReseed(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	out, err := NewReseedDataUseCase(store, seed.NewGenerator(42)).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 35, out.Counts["transactions"])
	assert.Len(t, store.Transactions(), 35)
	assert.Len(t, store.Categories(), 12)

	require.NoError(t, NewClearDataUseCase(store).Execute(ctx))
	for name, count := range store.Snapshot().Counts() {
		assert.Zero(t, count, name)
	}
	assert.Equal(t, entity.DefaultFilters(fixedNow), store.Filters())
}
