// Package data contains whole-store use cases: export, clear and reseed.
package data

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// ExportFormat names a supported export encoding.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportDataInput represents the input for exporting all data.
type ExportDataInput struct {
	Format ExportFormat
}

// ExportDataOutput carries the encoded document.
type ExportDataOutput struct {
	FileName    string
	ContentType string
	Body        []byte
	Counts      map[string]int
}

// ExportDataUseCase handles exporting every collection of the store.
type ExportDataUseCase struct {
	store     adapter.FinanceStore
	exporters map[ExportFormat]adapter.SnapshotExporter
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(store adapter.FinanceStore, exporters map[ExportFormat]adapter.SnapshotExporter) *ExportDataUseCase {
	return &ExportDataUseCase{
		store:     store,
		exporters: exporters,
	}
}

// Execute encodes a consistent snapshot in the requested format.
func (uc *ExportDataUseCase) Execute(ctx context.Context, input ExportDataInput) (*ExportDataOutput, error) {
	format := input.Format
	if format == "" {
		format = ExportFormatJSON
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, domainerror.NewDataError(
			domainerror.ErrCodeInvalidExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrInvalidExportFormat,
		)
	}

	snapshot := uc.store.Snapshot()
	var buf bytes.Buffer
	if err := exporter.Write(&buf, snapshot); err != nil {
		slog.ErrorContext(ctx, "export failed", "format", format, "error", err)
		return nil, domainerror.NewDataError(
			domainerror.ErrCodeExportFailed,
			"failed to export data",
			fmt.Errorf("%w: %w", domainerror.ErrExportFailed, err),
		)
	}

	now := uc.store.Now()
	return &ExportDataOutput{
		FileName:    fmt.Sprintf("mycash-%s.%s", now.Format("2006-01-02"), exporter.Extension()),
		ContentType: exporter.ContentType(),
		Body:        buf.Bytes(),
		Counts:      snapshot.Counts(),
	}, nil
}
