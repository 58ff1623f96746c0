package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
)

func newCatalogService() (*CatalogService, *fakeLoader, *mapCache) {
	en, fr, pt := fixtureLegalCodes()
	loader := fixtureLoader()
	cache := newMapCache()
	return NewCatalogService(loader, newFakeLegalCodes(en, fr, pt), cache, nil), loader, cache
}

func TestCatalogService_CatalogUsesCache(t *testing.T) {
	svc, loader, cache := newCatalogService()
	_, fr, _ := fixtureLegalCodes()
	ctx := context.Background()

	first, err := svc.Catalog(ctx, fr)
	require.NoError(t, err)
	second, err := svc.Catalog(ctx, fr)
	require.NoError(t, err)

	assert.Equal(t, 1, loader.loads)
	assert.Same(t, first, second)

	require.NoError(t, svc.Reload(ctx, fr))
	_, ok := cache.Get(ctx, fr.Identity())
	assert.False(t, ok)

	_, err = svc.Catalog(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.loads)
}

func TestCatalogService_CachePutFailureIsNotFatal(t *testing.T) {
	svc, _, cache := newCatalogService()
	cache.putErr = errors.New("cache down")
	_, fr, _ := fixtureLegalCodes()

	cat, err := svc.Catalog(context.Background(), fr)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestCatalogService_CatalogLoadError(t *testing.T) {
	svc, _, _ := newCatalogService()
	other := &entities.LegalCode{ID: 9, LicenseID: 1, License: bySA, LanguageCode: "de"}

	_, err := svc.Catalog(context.Background(), other)
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestCatalogService_DefaultCatalog(t *testing.T) {
	svc, _, _ := newCatalogService()
	en, fr, _ := fixtureLegalCodes()
	ctx := context.Background()

	fromFr, err := svc.DefaultCatalog(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, "en", fromFr.Identity.Language)

	fromEn, err := svc.DefaultCatalog(ctx, en)
	require.NoError(t, err)
	assert.Same(t, fromFr, fromEn)
}

func TestCatalogService_DefaultCatalogMissingLegalCode(t *testing.T) {
	_, fr, _ := fixtureLegalCodes()
	svc := NewCatalogService(fixtureLoader(), newFakeLegalCodes(fr), newMapCache(), nil)

	_, err := svc.DefaultCatalog(context.Background(), fr)
	assert.ErrorIs(t, err, domain.ErrLegalCodeNotFound)
}

func TestCatalogService_CatalogWithDefaultKeys(t *testing.T) {
	svc, _, _ := newCatalogService()
	en, fr, _ := fixtureLegalCodes()
	ctx := context.Background()

	got, err := svc.CatalogWithDefaultKeys(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, []entities.CatalogEntry{
		{Key: "Attribution-ShareAlike 4.0 International", Text: "Attribution - Partage dans les Mêmes Conditions 4.0 International"},
		{Key: "Adapted Material", Text: "Matériel Adapté"},
	}, got.Entries)

	got, err = svc.CatalogWithDefaultKeys(ctx, en)
	require.NoError(t, err)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, entities.CatalogEntry{Key: "Adapted Material"}, got.Entries[1])
}

func TestCatalogService_CatalogWithDefaultKeysLeavesCacheIntact(t *testing.T) {
	svc, _, cache := newCatalogService()
	_, fr, _ := fixtureLegalCodes()
	ctx := context.Background()

	_, err := svc.CatalogWithDefaultKeys(ctx, fr)
	require.NoError(t, err)

	cached, ok := cache.Get(ctx, fr.Identity())
	require.True(t, ok)
	assert.Equal(t, "license_medium", cached.Entries[0].Key)
}

func TestCatalogService_CatalogWithDefaultKeysOutOfSync(t *testing.T) {
	svc, _, _ := newCatalogService()
	_, _, pt := fixtureLegalCodes()

	got, err := svc.CatalogWithDefaultKeys(context.Background(), pt)
	assert.Nil(t, got)
	var missing *domain.MissingDefaultTranslationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "s1_definitions_unknown", missing.Key)
}
