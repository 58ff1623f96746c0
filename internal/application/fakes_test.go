package application

import (
	"context"
	"errors"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

type fakeLegalCodes struct {
	byID map[uint]*entities.LegalCode
}

func newFakeLegalCodes(lcs ...*entities.LegalCode) *fakeLegalCodes {
	f := &fakeLegalCodes{byID: map[uint]*entities.LegalCode{}}
	for _, lc := range lcs {
		f.byID[lc.ID] = lc
	}
	return f
}

func (f *fakeLegalCodes) Create(_ context.Context, lc *entities.LegalCode) error {
	lc.ID = uint(len(f.byID) + 1)
	f.byID[lc.ID] = lc
	return nil
}

func (f *fakeLegalCodes) FindByID(_ context.Context, id uint) (*entities.LegalCode, error) {
	if lc, ok := f.byID[id]; ok {
		return lc, nil
	}
	return nil, domain.ErrLegalCodeNotFound
}

func (f *fakeLegalCodes) FindByLicenseAndLanguage(_ context.Context, licenseID uint, lang string) (*entities.LegalCode, error) {
	for _, lc := range f.byID {
		if lc.LicenseID == licenseID && lc.LanguageCode == lang {
			return lc, nil
		}
	}
	return nil, domain.ErrLegalCodeNotFound
}

func (f *fakeLegalCodes) FindByLicenseID(_ context.Context, licenseID uint) ([]entities.LegalCode, error) {
	var out []entities.LegalCode
	for id := uint(1); id <= uint(len(f.byID)); id++ {
		if lc, ok := f.byID[id]; ok && lc.LicenseID == licenseID {
			out = append(out, *lc)
		}
	}
	return out, nil
}

func (f *fakeLegalCodes) Update(context.Context, *entities.LegalCode) error { return nil }
func (f *fakeLegalCodes) Delete(context.Context, uint) error                { return nil }

type fakeLoader struct {
	catalogs map[entities.DocumentIdentity]*entities.Catalog
	loads    int
}

func (f *fakeLoader) Load(_ context.Context, lc *entities.LegalCode) (*entities.Catalog, error) {
	f.loads++
	cat, ok := f.catalogs[lc.Identity()]
	if !ok {
		return nil, domain.ErrCatalogNotFound
	}
	return cat.Clone(), nil
}

type mapCache struct {
	m      map[entities.DocumentIdentity]*entities.Catalog
	putErr error
}

func newMapCache() *mapCache {
	return &mapCache{m: map[entities.DocumentIdentity]*entities.Catalog{}}
}

func (c *mapCache) Get(_ context.Context, id entities.DocumentIdentity) (*entities.Catalog, bool) {
	cat, ok := c.m[id]
	return cat, ok
}

func (c *mapCache) Put(_ context.Context, cat *entities.Catalog) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.m[cat.Identity] = cat
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, id entities.DocumentIdentity) error {
	delete(c.m, id)
	return nil
}

func (c *mapCache) Clear(context.Context) error {
	c.m = map[entities.DocumentIdentity]*entities.Catalog{}
	return nil
}

type indexTranslator map[string]string

func (t indexTranslator) Translate(msgID string) string {
	if s, ok := t[msgID]; ok {
		return s
	}
	return msgID
}

type indexTranslatorFactory struct{}

func (indexTranslatorFactory) ForCatalog(cat *entities.Catalog) (output.Translator, error) {
	return indexTranslator(cat.Index()), nil
}

type published struct {
	legalCode *entities.LegalCode
	catalog   *entities.Catalog
}

type recordingPublisher struct {
	calls []published
	err   error
}

func (p *recordingPublisher) Publish(_ context.Context, lc *entities.LegalCode, cat *entities.Catalog) error {
	if p.err != nil {
		return p.err
	}
	p.calls = append(p.calls, published{lc, cat})
	return nil
}

type fakeBranches struct {
	byID    map[uint]*entities.TranslationBranch
	created int
}

func newFakeBranches() *fakeBranches {
	return &fakeBranches{byID: map[uint]*entities.TranslationBranch{}}
}

func (f *fakeBranches) Create(_ context.Context, b *entities.TranslationBranch) error {
	f.created++
	b.ID = uint(len(f.byID) + 1)
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBranches) FindByID(_ context.Context, id uint) (*entities.TranslationBranch, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBranchNotFound
}

func (f *fakeBranches) FindIncompleteByName(_ context.Context, name string) (*entities.TranslationBranch, error) {
	for _, b := range f.byID {
		if b.BranchName == name && !b.Complete {
			return b, nil
		}
	}
	return nil, domain.ErrBranchNotFound
}

func (f *fakeBranches) AddLegalCode(_ context.Context, branchID, legalCodeID uint) error {
	if _, ok := f.byID[branchID]; !ok {
		return errors.New("no such branch")
	}
	return nil
}

func (f *fakeBranches) Update(_ context.Context, b *entities.TranslationBranch) error {
	f.byID[b.ID] = b
	return nil
}

type fakeNames struct {
	names []entities.TranslatedLicenseName
}

func (f *fakeNames) Upsert(_ context.Context, n *entities.TranslatedLicenseName) error {
	f.names = append(f.names, *n)
	return nil
}

func (f *fakeNames) FindByLicenseAndLanguage(_ context.Context, licenseID uint, lang string) (*entities.TranslatedLicenseName, error) {
	for i := range f.names {
		if f.names[i].LicenseID == licenseID && f.names[i].LanguageCode == lang {
			return &f.names[i], nil
		}
	}
	return nil, domain.ErrTranslatedNameNotFound
}

func (f *fakeNames) FindByLicenseID(_ context.Context, licenseID uint) ([]entities.TranslatedLicenseName, error) {
	var out []entities.TranslatedLicenseName
	for _, n := range f.names {
		if n.LicenseID == licenseID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fixture: BY-SA 4.0 in English (1), French (2) and Portuguese (3).
var bySA = &entities.License{ID: 1, About: "http://creativecommons.org/licenses/by-sa/4.0/", LicenseCode: "by-sa", Version: "4.0"}

func fixtureLegalCodes() (en, fr, pt *entities.LegalCode) {
	en = &entities.LegalCode{ID: 1, LicenseID: 1, License: bySA, LanguageCode: "en"}
	fr = &entities.LegalCode{ID: 2, LicenseID: 1, License: bySA, LanguageCode: "fr"}
	pt = &entities.LegalCode{ID: 3, LicenseID: 1, License: bySA, LanguageCode: "pt"}
	return en, fr, pt
}

func fixtureLoader() *fakeLoader {
	variant := bySA.ResourceSlug()
	return &fakeLoader{catalogs: map[entities.DocumentIdentity]*entities.Catalog{
		{Variant: variant, Language: "en"}: {
			Identity: entities.DocumentIdentity{Variant: variant, Language: "en"},
			Entries: []entities.CatalogEntry{
				{Key: "license_medium", Text: "Attribution-ShareAlike 4.0 International"},
				{Key: "s1_definitions_adapted_material", Text: "Adapted Material"},
				{Key: "s2a5_license_grant_downstream_offer_name", Text: "Offer from the Licensor"},
			},
		},
		{Variant: variant, Language: "fr"}: {
			Identity: entities.DocumentIdentity{Variant: variant, Language: "fr"},
			Entries: []entities.CatalogEntry{
				{Key: "license_medium", Text: "Attribution - Partage dans les Mêmes Conditions 4.0 International"},
				{Key: "s1_definitions_adapted_material", Text: "Matériel Adapté"},
			},
		},
		{Variant: variant, Language: "pt"}: {
			Identity: entities.DocumentIdentity{Variant: variant, Language: "pt"},
			Entries: []entities.CatalogEntry{
				{Key: "s1_definitions_unknown", Text: "?"},
			},
		},
	}}
}
