package repositories

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// CatalogReader defines read access to the static parts of the document:
// hostel metadata, the room inventory and the service catalog.
type CatalogReader interface {
	// GetHostelInfo returns the hostel metadata block.
	GetHostelInfo(ctx context.Context) (domain.HostelInfo, error)

	// ListRooms returns the full room inventory keyed by room id.
	ListRooms(ctx context.Context) (map[string]domain.Room, error)

	// FindServiceByID looks up a catalog service by id.
	// Returns apperrors.ErrNotFound for unknown ids.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error)

	// ListServices returns the service catalog in its stored order.
	ListServices(ctx context.Context) ([]domain.CatalogService, error)
}
