package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// IDesignRepository abstracts DynamoDB persistence for Design and the
// artifacts it owns (canvas, previews, comments).

type IDesignRepository interface {
	// CreateWithCanvas writes the design and its empty canvas together, so a
	// design never exists without its single mutable canvas record.
	CreateWithCanvas(ctx context.Context, d entities.Design, c entities.Canvas) (entities.Design, error)
	GetByID(ctx context.Context, id string) (entities.Design, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Design, error)
	UpdateStatus(ctx context.Context, id string, status entities.DesignStatus) (entities.Design, error)
	// UpdateRevision sets the new revision count and status in one write.
	UpdateRevision(ctx context.Context, id string, revisionCount int, status entities.DesignStatus) (entities.Design, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Design, error)
	ListByDesignerID(ctx context.Context, designerID string) ([]entities.Design, error)

	AddPreview(ctx context.Context, p entities.Preview) (entities.Preview, error)
	ListPreviews(ctx context.Context, designID string) ([]entities.Preview, error)
	AddComment(ctx context.Context, c entities.DesignComment) (entities.DesignComment, error)
	ListComments(ctx context.Context, designID string) ([]entities.DesignComment, error)
}
