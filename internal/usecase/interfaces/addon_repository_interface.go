package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// IAddOnRepository abstracts DynamoDB persistence for AddOnRequest.

type IAddOnRepository interface {
	Create(ctx context.Context, a entities.AddOnRequest) (entities.AddOnRequest, error)
	GetByID(ctx context.Context, id string) (entities.AddOnRequest, error)
	ListByDesignID(ctx context.Context, designID string) ([]entities.AddOnRequest, error)
	// UpdateDecision settles a pending add-on: terminal status plus the
	// one-time fee/price assignment (approval) or decline reason.
	UpdateDecision(ctx context.Context, id string, status entities.AddOnStatus, fee, price float64, declineReason string) (entities.AddOnRequest, error)
}
