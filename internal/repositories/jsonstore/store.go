package jsonstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StoreFileName is the document file created under the configured data
// directory. The name is kept from the store file this system inherited.
const StoreFileName = "hello_dalat_data_full.json"

func init() {
	// Amounts are persisted as plain JSON numbers so the document stays
	// compatible with files written before this implementation.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store owns the whole persisted document. Every mutation runs under a
// single mutex as load-mutate-save: the last writer wins and there is no
// merge or optimistic-concurrency rejection.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
	doc    *domain.Document
}

// NewStore opens (or creates) the document at dataDir/StoreFileName. A
// missing or unparsable file is replaced by the default seed document,
// which is persisted immediately.
func NewStore(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   filepath.Join(dataDir, StoreFileName),
		logger: logger,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the document file.
func (s *Store) Path() string {
	return s.path
}

// loadLocked reads the document from disk into memory, falling back to the
// seed document when the file is absent or corrupt. Run with s.mu held.
func (s *Store) loadLocked() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read store file %s: %w", s.path, err)
		}
		s.logger.Info("Store file not found, seeding default document", slog.String("path", s.path))
		s.doc = domain.DefaultDocument()
		return s.saveLocked()
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		// Recovery discards the unparsable contents; the default seed is
		// persisted in their place.
		s.logger.Error("Store file unparsable, replacing with default document",
			slog.String("path", s.path), slog.String("error", err.Error()))
		s.doc = domain.DefaultDocument()
		return s.saveLocked()
	}

	s.doc = doc
	if s.doc.EnsureIntegrity() {
		s.logger.Info("Store document repaired on load", slog.String("path", s.path))
		return s.saveLocked()
	}
	return nil
}

// saveLocked rewrites the whole document file. Run with s.mu held.
func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	return nil
}

// update runs fn against the in-memory document and rewrites the file.
// A write failure is logged but not propagated: the in-memory document
// remains the source of truth for the rest of the process lifetime.
func (s *Store) update(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	if err := s.saveLocked(); err != nil {
		s.logger.Error("Failed to persist store document, in-memory state retained",
			slog.String("error", err.Error()))
	}
	return nil
}

// view runs fn against the in-memory document without persisting.
func (s *Store) view(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.doc)
}

// reload re-reads the document from disk and returns a detached copy.
func (s *Store) reload() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	return cloneDocument(s.doc)
}

// snapshot returns a detached copy of the in-memory document so callers
// never alias the live aggregate.
func (s *Store) snapshot() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

// nextID increments the named counter, persists the bump and returns
// prefix + counter. Persisting at mint time keeps counters monotonic even
// when the entity the id was minted for never lands.
func (s *Store) nextID(counterName, prefix string) string {
	var id string
	_ = s.update(func(doc *domain.Document) error {
		doc.Counters[counterName]++
		id = fmt.Sprintf("%s%d", prefix, doc.Counters[counterName])
		return nil
	})
	return id
}

func cloneDocument(doc *domain.Document) (*domain.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to clone store document: %w", err)
	}
	out := &domain.Document{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("failed to clone store document: %w", err)
	}
	return out, nil
}
