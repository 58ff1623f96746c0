package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legaltext/internal/application"
	"legaltext/internal/domain/entities"
	"legaltext/internal/infrastructure/catalog"
	"legaltext/internal/ports/output"
)

type listedLicenses struct {
	output.LicenseRepository
	licenses []entities.License
}

func (r listedLicenses) List(context.Context) ([]entities.License, error) {
	return r.licenses, nil
}

type listedLegalCodes struct {
	output.LegalCodeRepository
	legalCodes []entities.LegalCode
}

func (r listedLegalCodes) FindByLicenseID(_ context.Context, licenseID uint) ([]entities.LegalCode, error) {
	var out []entities.LegalCode
	for _, lc := range r.legalCodes {
		if lc.LicenseID == licenseID {
			out = append(out, lc)
		}
	}
	return out, nil
}

func TestWarmCache_TracksCatalogsAlreadyInRedis(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	root := app.Config.TranslationRepository

	fr := entities.LegalCode{ID: 11, LicenseID: byLicense.ID, License: byLicense, LanguageCode: "fr"}
	de := entities.LegalCode{ID: 12, LicenseID: byLicense.ID, License: byLicense, LanguageCode: "de"}
	writeFile(t, fr.TranslationFilename(root), frenchPO)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// an earlier run left the French catalog in Redis
	cat, err := catalog.NewFileLoader(root, app.Codecs).Load(ctx, &fr)
	require.NoError(t, err)
	require.NoError(t, catalog.NewRedisCache(client, time.Hour, nil).Put(ctx, cat))

	legalCodes := listedLegalCodes{legalCodes: []entities.LegalCode{fr, de}}
	app.LicenseRepo = listedLicenses{licenses: []entities.License{*byLicense}}
	app.LegalCodeRepo = legalCodes
	app.Cache = catalog.NewRedisCache(client, time.Hour, nil)
	app.Loader = catalog.NewFileLoader(root, app.Codecs)
	app.Catalogs = application.NewCatalogService(app.Loader, legalCodes, app.Cache, app.Logger)

	tracked, err := app.warmCache(ctx)
	require.NoError(t, err)
	assert.Len(t, tracked, 2)

	for _, lc := range []entities.LegalCode{fr, de} {
		id, ok := app.Loader.IdentityForPath(lc.TranslationFilename(root))
		require.True(t, ok, lc.LanguageCode)
		assert.Equal(t, lc.Identity(), id)
	}
}
