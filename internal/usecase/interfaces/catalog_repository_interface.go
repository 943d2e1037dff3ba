package interfaces

import (
	"context"

	"atelier-service/internal/domain/entities"
)

// ICatalogRepository exposes the read-only reference tables. The pricing
// engine consumes a point-in-time snapshot instead of per-lookup fetches.

type ICatalogRepository interface {
	Snapshot(ctx context.Context) (entities.CatalogSnapshot, error)
	GetTextile(ctx context.Context, id string) (entities.Textile, error)
	ListShirtSizes(ctx context.Context) ([]entities.ShirtSize, error)
	ListShirtTypes(ctx context.Context) ([]entities.ShirtType, error)
	ListPrintTypes(ctx context.Context) ([]entities.PrintType, error)
}
