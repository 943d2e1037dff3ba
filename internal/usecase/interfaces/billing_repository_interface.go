package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// IBillingRepository abstracts DynamoDB persistence for Billing.
//
// The billing PK is the design id, so CreateIfAbsent can ride on a
// conditional attribute_not_exists write: the second creation attempt for the
// same design is a no-op that returns the existing record.

type IBillingRepository interface {
	CreateIfAbsent(ctx context.Context, b entities.Billing) (billing entities.Billing, created bool, err error)
	GetByDesignID(ctx context.Context, designID string) (entities.Billing, error)
	// AppendNegotiation records one accepted counter-offer: history entry,
	// new final amount and the incremented round counter.
	AppendNegotiation(ctx context.Context, designID string, entry entities.NegotiationEntry) (entities.Billing, error)
	UpdateStatus(ctx context.Context, designID string, status entities.BillingStatus) (entities.Billing, error)
	// AddAddOnCharges adds the approved add-on components on top of the
	// negotiated base. Both components only ever grow.
	AddAddOnCharges(ctx context.Context, designID string, shirtPrice, fee float64) (entities.Billing, error)
}
