package output

import (
	"context"

	"legaltext/internal/domain/entities"
)

// CatalogLoader loads the message catalog of a legal code. Loading the same
// legal code twice returns equivalent catalogs.
type CatalogLoader interface {
	Load(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error)
}

// CatalogCache holds loaded catalogs by identity. Callers own invalidation.
type CatalogCache interface {
	Get(ctx context.Context, id entities.DocumentIdentity) (*entities.Catalog, bool)
	Put(ctx context.Context, catalog *entities.Catalog) error
	Invalidate(ctx context.Context, id entities.DocumentIdentity) error
	Clear(ctx context.Context) error
}

// CatalogPublisher hands a catalog over to its consumer (an export directory,
// a hosting service). The default-language catalog of a license is always
// published before its translations.
type CatalogPublisher interface {
	Publish(ctx context.Context, legalCode *entities.LegalCode, catalog *entities.Catalog) error
}
