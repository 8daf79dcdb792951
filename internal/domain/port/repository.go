package port

import (
	"context"

	"github.com/meridianbank/origination/internal/domain/event"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationRepository persists and retrieves loan applications.
//
// Update is the atomic compare-and-swap primitive every transition relies on:
// the write only succeeds when the stored row still carries expectedStatus
// and the aggregate's previous version. A lost race surfaces as
// valueobject.ErrVersionConflict and the caller reloads and retries.
type ApplicationRepository interface {
	Create(ctx context.Context, app model.LoanApplication) error
	Update(ctx context.Context, app model.LoanApplication, expectedStatus valueobject.ApplicationStatus) error
	FindByID(ctx context.Context, id string) (model.LoanApplication, error)
	FindByNumber(ctx context.Context, applicationNumber string) (model.LoanApplication, error)
	FindByCustomerRef(ctx context.Context, customerRef string) ([]model.LoanApplication, error)
}

// ApplicationNumberSequence hands out the next per-year sequence value used
// to build LN-YYYY-NNNN application numbers. Implementations must be safe
// under concurrent submits.
type ApplicationNumberSequence interface {
	Next(ctx context.Context, year int) (int, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CustomerDirectory reads customer financial data owned by another system.
// The engine never writes through this port.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerRef string) (model.CustomerFinancials, error)
}

// DocumentChecker answers whether an application's mandatory documents are
// all present. Transitions out of DOCUMENT_REVIEW are gated on it.
type DocumentChecker interface {
	RequiredDocsSatisfied(ctx context.Context, applicationID string) (bool, error)
}
