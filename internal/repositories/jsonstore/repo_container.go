package jsonstore

import (
	portsrepo "github.com/hellodalat/hostel_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository port to the shared document
// store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookingRepo: NewBookingRepository(store),
		InvoiceRepo: NewInvoiceRepository(store),
		CatalogRepo: NewCatalogRepository(store),
		Minter:      NewDocumentRepository(store),
		Document:    NewDocumentRepository(store),
	}
}
