package input

import (
	"context"

	"legaltext/internal/domain/entities"
)

type CatalogUseCase interface {
	Catalog(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error)
	DefaultCatalog(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error)
	CatalogWithDefaultKeys(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error)
	Reload(ctx context.Context, legalCode *entities.LegalCode) error
}
