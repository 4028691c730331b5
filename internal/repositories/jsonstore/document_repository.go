package jsonstore

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// DocumentRepository implements the whole-document ports: identifier
// minting and full-document views.
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository creates a DocumentRepository backed by the store.
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// NextID increments the named counter and returns prefix + counter.
func (r *DocumentRepository) NextID(ctx context.Context, counterName, prefix string) (string, error) {
	return r.store.nextID(counterName, prefix), nil
}

// Snapshot returns a detached copy of the current in-memory document.
func (r *DocumentRepository) Snapshot(ctx context.Context) (*domain.Document, error) {
	return r.store.snapshot()
}

// Reload re-reads the document from disk and returns a detached copy.
func (r *DocumentRepository) Reload(ctx context.Context) (*domain.Document, error) {
	return r.store.reload()
}
