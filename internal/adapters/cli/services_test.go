package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
)

const byAbout = "http://creativecommons.org/licenses/by/4.0/"

var byLicense = &entities.License{ID: 1, About: byAbout, LicenseCode: "by", Version: "4.0"}

type fakeLicenses struct{}

func (fakeLicenses) GetLicense(_ context.Context, id uint) (*entities.License, error) {
	if id != byLicense.ID {
		return nil, domain.ErrLicenseNotFound
	}
	return byLicense, nil
}

func (fakeLicenses) GetLicenseByAbout(_ context.Context, about string) (*entities.License, error) {
	if about != byAbout {
		return nil, domain.ErrLicenseNotFound
	}
	return byLicense, nil
}

func (fakeLicenses) LegalCodeForLanguage(_ context.Context, _ uint, lang string) (*entities.LegalCode, error) {
	if lang == "" {
		lang = entities.DefaultLanguageCode
	}
	return &entities.LegalCode{ID: 10, LicenseID: 1, License: byLicense, LanguageCode: lang}, nil
}

func (fakeLicenses) TranslatedTitle(_ context.Context, _ uint, lang string) (string, error) {
	return "title-" + lang, nil
}

func (fakeLicenses) TranslatedName(_ context.Context, _ uint, lang string) (string, error) {
	return "name-" + lang, nil
}

type fakeLegalCodes struct{}

func (fakeLegalCodes) Definitions(_ context.Context, lc *entities.LegalCode) ([]entities.Definition, error) {
	defs := lc.Definitions()
	for i := range defs {
		defs[i].Translation = lc.LanguageCode + ":" + defs[i].MsgID
	}
	return defs, nil
}

func (fakeLegalCodes) Downstreams(_ context.Context, lc *entities.LegalCode) ([]entities.Downstream, error) {
	return lc.Downstreams(), nil
}

type recordingPublish struct {
	licenseIDs []uint
}

func (p *recordingPublish) PublishLicense(_ context.Context, licenseID uint) error {
	p.licenseIDs = append(p.licenseIDs, licenseID)
	return nil
}

type fakeBranches struct {
	completed []uint
}

func (b *fakeBranches) OpenBranch(_ context.Context, lc *entities.LegalCode) (*entities.TranslationBranch, error) {
	return &entities.TranslationBranch{ID: 3, BranchName: lc.BranchName(), LegalCodeIDs: []uint{lc.ID}}, nil
}

func (b *fakeBranches) CompleteBranch(_ context.Context, id uint) error {
	if id != 3 {
		return domain.ErrBranchNotFound
	}
	b.completed = append(b.completed, id)
	return nil
}

func connectedApp(t *testing.T) (*App, *recordingPublish, *fakeBranches) {
	app := newTestApp(t)
	pub := &recordingPublish{}
	branches := &fakeBranches{}
	app.Licenses = fakeLicenses{}
	app.LegalCodes = fakeLegalCodes{}
	app.Publish = pub
	app.Branches = branches
	return app, pub, branches
}

func TestDefinitionsCommand(t *testing.T) {
	app, _, _ := connectedApp(t)

	out, err := run(t, app, "definitions", "--about", byAbout, "--language", "fr")
	require.NoError(t, err)
	assert.Contains(t, out, "fr:s1_definitions_adapted_material")
	assert.Contains(t, out, "fr:s1_definitions_adapters_license")
	assert.Contains(t, out, "s2a5A_offer")
	assert.Contains(t, out, "s2a5B_no_restrictions")
}

func TestDefinitionsUnknownLicense(t *testing.T) {
	app, _, _ := connectedApp(t)
	_, err := run(t, app, "definitions", "--about", "http://example.com/nope/")
	assert.ErrorIs(t, err, domain.ErrLicenseNotFound)
}

func TestTitleCommandDefaultsLanguage(t *testing.T) {
	app, _, _ := connectedApp(t)
	out, err := run(t, app, "title", "--about", byAbout)
	require.NoError(t, err)
	assert.Equal(t, "title-en\nname-en\n", out)
}

func TestPublishCommand(t *testing.T) {
	app, pub, _ := connectedApp(t)
	out, err := run(t, app, "publish", "--about", byAbout)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, pub.licenseIDs)
	assert.Contains(t, out, "CC BY 4.0")
}

func TestBranchCommands(t *testing.T) {
	app, _, branches := connectedApp(t)

	out, err := run(t, app, "branch", "open", "--about", byAbout, "--language", "nl")
	require.NoError(t, err)
	assert.Equal(t, "3\tcc4-nl\t1 legal code(s)\n", out)

	_, err = run(t, app, "branch", "complete", "3")
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, branches.completed)

	_, err = run(t, app, "branch", "complete", "4")
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	_, err = run(t, app, "branch", "complete", "abc")
	assert.Error(t, err)
}
