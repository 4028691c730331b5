package repositories

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// IdentifierMinter mints entity identifiers from the document's named
// counters. Counters are monotonic and persisted at mint time, so an id is
// never reissued even if the entity it was minted for is later deleted.
type IdentifierMinter interface {
	// NextID increments the named counter and returns prefix + counter.
	NextID(ctx context.Context, counterName, prefix string) (string, error)
}

// DocumentReader exposes whole-document views for the endpoints that return
// the full store contents.
type DocumentReader interface {
	// Snapshot returns a copy of the current in-memory document.
	Snapshot(ctx context.Context) (*domain.Document, error)

	// Reload re-reads the document from disk before returning it, giving the
	// caller a fresh view of persisted state.
	Reload(ctx context.Context) (*domain.Document, error)
}
