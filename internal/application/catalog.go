package application

import (
	"context"
	"fmt"
	"log/slog"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

// CatalogService loads legal code catalogs through an injected cache and
// reconciles them against the default language.
type CatalogService struct {
	loader     output.CatalogLoader
	legalCodes output.LegalCodeRepository
	cache      output.CatalogCache
	logger     *slog.Logger
}

func NewCatalogService(
	loader output.CatalogLoader,
	legalCodes output.LegalCodeRepository,
	cache output.CatalogCache,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		loader:     loader,
		legalCodes: legalCodes,
		cache:      cache,
		logger:     logger,
	}
}

// Catalog returns the catalog of legalCode, loading it on a cache miss.
// The result may be shared with the cache and must not be modified.
func (s *CatalogService) Catalog(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error) {
	id := legalCode.Identity()
	if cat, ok := s.cache.Get(ctx, id); ok {
		return cat, nil
	}
	cat, err := s.loader.Load(ctx, legalCode)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", id, err)
	}
	if err := s.cache.Put(ctx, cat); err != nil {
		s.logger.Warn("catalog cache put failed", "catalog", id.String(), "error", err)
	}
	return cat, nil
}

// DefaultCatalog returns the default-language catalog of legalCode's license.
func (s *CatalogService) DefaultCatalog(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error) {
	if legalCode.IsDefaultLanguage() {
		return s.Catalog(ctx, legalCode)
	}
	def, err := s.legalCodes.FindByLicenseAndLanguage(ctx, legalCode.LicenseID, entities.DefaultLanguageCode)
	if err != nil {
		return nil, fmt.Errorf("find default legal code of %s: %w", legalCode, err)
	}
	return s.Catalog(ctx, def)
}

// CatalogWithDefaultKeys returns legalCode's catalog with every internal
// message key replaced by the corresponding default-language message. For a
// default-language legal code the messages become the keys and the texts are
// blank.
func (s *CatalogService) CatalogWithDefaultKeys(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error) {
	cat, err := s.Catalog(ctx, legalCode)
	if err != nil {
		return nil, err
	}
	if legalCode.IsDefaultLanguage() {
		return domain.ReconcileCatalog(cat, true, nil)
	}
	def, err := s.DefaultCatalog(ctx, legalCode)
	if err != nil {
		return nil, err
	}
	out, err := domain.ReconcileCatalog(cat, false, def)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", legalCode.Identity(), err)
	}
	return out, nil
}

// Reload drops the cached catalog of legalCode; the next read goes to storage.
func (s *CatalogService) Reload(ctx context.Context, legalCode *entities.LegalCode) error {
	if err := s.cache.Invalidate(ctx, legalCode.Identity()); err != nil {
		return fmt.Errorf("invalidate catalog %s: %w", legalCode.Identity(), err)
	}
	return nil
}
