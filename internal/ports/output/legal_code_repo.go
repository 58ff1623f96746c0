package output

import (
	"context"

	"legaltext/internal/domain/entities"
)

// LegalCodeRepository returns legal codes with their License loaded.
type LegalCodeRepository interface {
	Create(ctx context.Context, legalCode *entities.LegalCode) error
	FindByID(ctx context.Context, id uint) (*entities.LegalCode, error)
	FindByLicenseAndLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.LegalCode, error)
	FindByLicenseID(ctx context.Context, licenseID uint) ([]entities.LegalCode, error)
	Update(ctx context.Context, legalCode *entities.LegalCode) error
	Delete(ctx context.Context, id uint) error
}

type TranslationBranchRepository interface {
	Create(ctx context.Context, branch *entities.TranslationBranch) error
	FindByID(ctx context.Context, id uint) (*entities.TranslationBranch, error)
	FindIncompleteByName(ctx context.Context, branchName string) (*entities.TranslationBranch, error)
	AddLegalCode(ctx context.Context, branchID, legalCodeID uint) error
	Update(ctx context.Context, branch *entities.TranslationBranch) error
}
