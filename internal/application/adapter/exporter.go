package adapter

import (
	"io"
	"time"

	"github.com/mycash/backend/internal/domain/entity"
)

// SnapshotExporter encodes a snapshot of the store into a downloadable document.
type SnapshotExporter interface {
	// Write encodes the snapshot and writes the document to w.
	Write(w io.Writer, snapshot entity.Snapshot) error

	// ContentType returns the MIME type of the produced document.
	ContentType() string

	// Extension returns the file extension, without the dot.
	Extension() string
}

// SeedGenerator produces the demo data the store starts with.
type SeedGenerator interface {
	Generate(now time.Time) entity.Snapshot
}
