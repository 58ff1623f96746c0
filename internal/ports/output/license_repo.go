package output

import (
	"context"

	"legaltext/internal/domain/entities"
)

type LicenseRepository interface {
	Create(ctx context.Context, license *entities.License) error
	FindByID(ctx context.Context, id uint) (*entities.License, error)
	FindByAbout(ctx context.Context, about string) (*entities.License, error)
	List(ctx context.Context) ([]entities.License, error)
	Update(ctx context.Context, license *entities.License) error
	Delete(ctx context.Context, id uint) error
}

type TranslatedLicenseNameRepository interface {
	Upsert(ctx context.Context, name *entities.TranslatedLicenseName) error
	FindByLicenseAndLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.TranslatedLicenseName, error)
	FindByLicenseID(ctx context.Context, licenseID uint) ([]entities.TranslatedLicenseName, error)
}
