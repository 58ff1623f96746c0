package input

import (
	"context"

	"legaltext/internal/domain/entities"
)

type LicenseUseCase interface {
	GetLicense(ctx context.Context, id uint) (*entities.License, error)
	GetLicenseByAbout(ctx context.Context, about string) (*entities.License, error)
	LegalCodeForLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.LegalCode, error)
	TranslatedTitle(ctx context.Context, licenseID uint, languageCode string) (string, error)
	TranslatedName(ctx context.Context, licenseID uint, languageCode string) (string, error)
}

type LegalCodeUseCase interface {
	Definitions(ctx context.Context, legalCode *entities.LegalCode) ([]entities.Definition, error)
	Downstreams(ctx context.Context, legalCode *entities.LegalCode) ([]entities.Downstream, error)
}

type PublishUseCase interface {
	PublishLicense(ctx context.Context, licenseID uint) error
}

type BranchUseCase interface {
	OpenBranch(ctx context.Context, legalCode *entities.LegalCode) (*entities.TranslationBranch, error)
	CompleteBranch(ctx context.Context, branchID uint) error
}
