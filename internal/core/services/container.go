package services

import (
	portsrepo "github.com/hellodalat/hostel_backend/internal/core/ports/repositories"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The invoice service comes first: checking out a booking issues its
	// invoice, so the booking service depends on it.
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.BookingRepo, repos.CatalogRepo, repos.Minter)
	container.Booking = NewBookingService(repos.BookingRepo, repos.CatalogRepo, repos.Minter, container.Invoice)
	container.Reporting = NewReportingService(repos.BookingRepo, repos.InvoiceRepo, repos.CatalogRepo, repos.Document)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.BookingSvcFacade   = (*bookingService)(nil)
	_ portssvc.InvoiceSvcFacade   = (*invoiceService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
