package application

import (
	"context"
	"fmt"
	"log/slog"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/input"
	"legaltext/internal/ports/output"
)

type PublishService struct {
	legalCodes output.LegalCodeRepository
	catalogs   input.CatalogUseCase
	publisher  output.CatalogPublisher
	logger     *slog.Logger
}

func NewPublishService(
	legalCodes output.LegalCodeRepository,
	catalogs input.CatalogUseCase,
	publisher output.CatalogPublisher,
	logger *slog.Logger,
) *PublishService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublishService{
		legalCodes: legalCodes,
		catalogs:   catalogs,
		publisher:  publisher,
		logger:     logger,
	}
}

// PublishLicense publishes the reconciled catalogs of every legal code of the
// license. The default language goes first: it carries the source messages
// the translations are checked against.
func (s *PublishService) PublishLicense(ctx context.Context, licenseID uint) error {
	def, err := s.legalCodes.FindByLicenseAndLanguage(ctx, licenseID, entities.DefaultLanguageCode)
	if err != nil {
		return fmt.Errorf("find default legal code: %w", err)
	}
	if err := s.publish(ctx, def); err != nil {
		return err
	}

	all, err := s.legalCodes.FindByLicenseID(ctx, licenseID)
	if err != nil {
		return fmt.Errorf("find legal codes: %w", err)
	}
	for i := range all {
		if all[i].IsDefaultLanguage() {
			continue
		}
		if err := s.publish(ctx, &all[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *PublishService) publish(ctx context.Context, legalCode *entities.LegalCode) error {
	cat, err := s.catalogs.CatalogWithDefaultKeys(ctx, legalCode)
	if err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, legalCode, cat); err != nil {
		return fmt.Errorf("publish %s: %w", legalCode.Identity(), err)
	}
	s.logger.Info("catalog published", "catalog", legalCode.Identity().String(), "entries", cat.Len())
	return nil
}
