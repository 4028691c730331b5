package jsonstore

import (
	"context"
	"fmt"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// CatalogRepository implements read access to the static document parts:
// hostel info, room inventory and service catalog.
type CatalogRepository struct {
	store *Store
}

// NewCatalogRepository creates a CatalogRepository backed by the store.
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// GetHostelInfo returns the hostel metadata block.
func (r *CatalogRepository) GetHostelInfo(ctx context.Context) (domain.HostelInfo, error) {
	var info domain.HostelInfo
	err := r.store.view(func(doc *domain.Document) error {
		info = doc.Info
		return nil
	})
	return info, err
}

// ListRooms returns the room inventory keyed by room id.
func (r *CatalogRepository) ListRooms(ctx context.Context) (map[string]domain.Room, error) {
	rooms := map[string]domain.Room{}
	err := r.store.view(func(doc *domain.Document) error {
		for id, room := range doc.Rooms {
			rooms[id] = room
		}
		return nil
	})
	return rooms, err
}

// FindServiceByID looks up a catalog service, returning
// apperrors.ErrNotFound for unknown ids.
func (r *CatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	var found *domain.CatalogService
	err := r.store.view(func(doc *domain.Document) error {
		svc := doc.ServiceByID(serviceID)
		if svc == nil {
			return fmt.Errorf("service %s: %w", serviceID, apperrors.ErrNotFound)
		}
		cp := *svc
		found = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListServices returns the service catalog in stored order.
func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	var out []domain.CatalogService
	err := r.store.view(func(doc *domain.Document) error {
		out = append([]domain.CatalogService{}, doc.ServiceCatalog...)
		return nil
	})
	return out, err
}
