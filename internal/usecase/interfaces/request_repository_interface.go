package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// IDesignRequestRepository abstracts DynamoDB persistence for DesignRequest.
//
// Not-found reads return a zero-value entity and a nil error; callers detect
// absence by an empty ID.

type IDesignRequestRepository interface {
	Create(ctx context.Context, r entities.DesignRequest) (entities.DesignRequest, error)
	GetByID(ctx context.Context, id string) (entities.DesignRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.DesignRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.DesignRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.DesignRequest, error)
}
