package application

import (
	"context"
	"fmt"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/input"
	"legaltext/internal/ports/output"
)

// LegalCodeService fills the section items of a legal code with the
// translations from its catalog, for rendering.
type LegalCodeService struct {
	catalogs    input.CatalogUseCase
	translators output.TranslatorFactory
}

func NewLegalCodeService(catalogs input.CatalogUseCase, translators output.TranslatorFactory) *LegalCodeService {
	return &LegalCodeService{catalogs: catalogs, translators: translators}
}

func (s *LegalCodeService) translator(ctx context.Context, legalCode *entities.LegalCode) (output.Translator, error) {
	cat, err := s.catalogs.Catalog(ctx, legalCode)
	if err != nil {
		return nil, err
	}
	tr, err := s.translators.ForCatalog(cat)
	if err != nil {
		return nil, fmt.Errorf("translator for %s: %w", cat.Identity, err)
	}
	return tr, nil
}

func (s *LegalCodeService) Definitions(ctx context.Context, legalCode *entities.LegalCode) ([]entities.Definition, error) {
	tr, err := s.translator(ctx, legalCode)
	if err != nil {
		return nil, err
	}
	defs := legalCode.Definitions()
	for i := range defs {
		defs[i].Translation = tr.Translate(defs[i].MsgID)
	}
	return defs, nil
}

func (s *LegalCodeService) Downstreams(ctx context.Context, legalCode *entities.LegalCode) ([]entities.Downstream, error) {
	tr, err := s.translator(ctx, legalCode)
	if err != nil {
		return nil, err
	}
	items := legalCode.Downstreams()
	for i := range items {
		items[i].NameTranslation = tr.Translate(items[i].MsgIDName)
		items[i].TextTranslation = tr.Translate(items[i].MsgIDText)
	}
	return items, nil
}
