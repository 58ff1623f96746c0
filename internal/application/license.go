package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/input"
	"legaltext/internal/ports/output"
)

// TitleMsgID is the catalog message holding a license's translated title.
const TitleMsgID = "license_medium"

type LicenseService struct {
	licenses        output.LicenseRepository
	legalCodes      output.LegalCodeRepository
	names           output.TranslatedLicenseNameRepository
	catalogs        input.CatalogUseCase
	translators     output.TranslatorFactory
	defaultLanguage string
}

func NewLicenseService(
	licenses output.LicenseRepository,
	legalCodes output.LegalCodeRepository,
	names output.TranslatedLicenseNameRepository,
	catalogs input.CatalogUseCase,
	translators output.TranslatorFactory,
	defaultLanguage string,
) *LicenseService {
	if defaultLanguage == "" {
		defaultLanguage = entities.DefaultLanguageCode
	}
	return &LicenseService{
		licenses:        licenses,
		legalCodes:      legalCodes,
		names:           names,
		catalogs:        catalogs,
		translators:     translators,
		defaultLanguage: defaultLanguage,
	}
}

func (s *LicenseService) GetLicense(ctx context.Context, id uint) (*entities.License, error) {
	return s.licenses.FindByID(ctx, id)
}

func (s *LicenseService) GetLicenseByAbout(ctx context.Context, about string) (*entities.License, error) {
	return s.licenses.FindByAbout(ctx, about)
}

// LegalCodeForLanguage returns the legal code of the license in languageCode.
// A region-qualified code such as "en-us" that has no legal code of its own
// falls back to its base language. An empty code means the default language.
func (s *LicenseService) LegalCodeForLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.LegalCode, error) {
	if languageCode == "" {
		languageCode = s.defaultLanguage
	}
	lc, err := s.legalCodes.FindByLicenseAndLanguage(ctx, licenseID, languageCode)
	if err == nil {
		return lc, nil
	}
	if !errors.Is(err, domain.ErrLegalCodeNotFound) {
		return nil, err
	}
	base, _, found := strings.Cut(languageCode, "-")
	if !found {
		return nil, err
	}
	return s.legalCodes.FindByLicenseAndLanguage(ctx, licenseID, base)
}

// TranslatedTitle returns the title of the license as written in its legal
// code for languageCode. A catalog without text for the title gives
// ErrMessageNotFound.
func (s *LicenseService) TranslatedTitle(ctx context.Context, licenseID uint, languageCode string) (string, error) {
	lc, err := s.LegalCodeForLanguage(ctx, licenseID, languageCode)
	if err != nil {
		return "", err
	}
	cat, err := s.catalogs.Catalog(ctx, lc)
	if err != nil {
		return "", err
	}
	if text, ok := cat.Lookup(TitleMsgID); !ok || text == "" {
		return "", fmt.Errorf("%w: %s in %s", domain.ErrMessageNotFound, TitleMsgID, cat.Identity)
	}
	tr, err := s.translators.ForCatalog(cat)
	if err != nil {
		return "", fmt.Errorf("translator for %s: %w", cat.Identity, err)
	}
	return tr.Translate(TitleMsgID), nil
}

// TranslatedName returns the stored translated name of the license.
func (s *LicenseService) TranslatedName(ctx context.Context, licenseID uint, languageCode string) (string, error) {
	name, err := s.names.FindByLicenseAndLanguage(ctx, licenseID, languageCode)
	if err != nil {
		return "", err
	}
	return name.Name, nil
}
