package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

var _ output.LicenseRepository = (*LicenseRepository)(nil)

type LicenseRepository struct {
	db DBTX
}

func NewLicenseRepository(db DBTX) *LicenseRepository {
	return &LicenseRepository{db: db}
}

const insertLicense = `INSERT INTO licenses (
	about, license_code, version, jurisdiction_code, creator_url, license_class_url,
	source_id, is_replaced_by_id, is_based_on_id, deprecated_on,
	permits_derivative_works, permits_reproduction, permits_distribution, permits_sharing,
	requires_share_alike, requires_notice, requires_attribution, requires_source_code,
	prohibits_commercial_use, prohibits_high_income_nation_use
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING id`

func (r *LicenseRepository) Create(ctx context.Context, license *entities.License) error {
	var id int64
	if err := r.db.QueryRow(ctx, insertLicense, licenseArgs(license)...).Scan(&id); err != nil {
		return fmt.Errorf("create license: %w", err)
	}
	license.ID = uint(id)
	return nil
}

func (r *LicenseRepository) FindByID(ctx context.Context, id uint) (*entities.License, error) {
	return r.findOne(ctx, "get license by id", "l.id = $1", int64(id))
}

func (r *LicenseRepository) FindByAbout(ctx context.Context, about string) (*entities.License, error) {
	return r.findOne(ctx, "get license by about", "l.about = $1", about)
}

func (r *LicenseRepository) findOne(ctx context.Context, what, where string, arg any) (*entities.License, error) {
	var row licenseRow
	query := "SELECT " + licenseColumns + " FROM licenses l WHERE " + where
	if err := r.db.QueryRow(ctx, query, arg).Scan(row.dest()...); err != nil {
		return nil, notFound(err, domain.ErrLicenseNotFound, what)
	}
	l := licenseToDomain(row)
	return &l, nil
}

func (r *LicenseRepository) List(ctx context.Context) ([]entities.License, error) {
	rows, err := r.db.Query(ctx, "SELECT "+licenseColumns+" FROM licenses l ORDER BY l.about")
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	licenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.License, error) {
		var r licenseRow
		if err := row.Scan(r.dest()...); err != nil {
			return entities.License{}, err
		}
		return licenseToDomain(r), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	return licenses, nil
}

const updateLicense = `UPDATE licenses SET
	about = $1, license_code = $2, version = $3, jurisdiction_code = $4,
	creator_url = $5, license_class_url = $6, source_id = $7, is_replaced_by_id = $8,
	is_based_on_id = $9, deprecated_on = $10,
	permits_derivative_works = $11, permits_reproduction = $12, permits_distribution = $13,
	permits_sharing = $14, requires_share_alike = $15, requires_notice = $16,
	requires_attribution = $17, requires_source_code = $18,
	prohibits_commercial_use = $19, prohibits_high_income_nation_use = $20,
	updated_at = now()
WHERE id = $21`

func (r *LicenseRepository) Update(ctx context.Context, license *entities.License) error {
	args := append(licenseArgs(license), int64(license.ID))
	tag, err := r.db.Exec(ctx, updateLicense, args...)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update license: %w", domain.ErrLicenseNotFound)
	}
	return nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM licenses WHERE id = $1", int64(id)); err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}

var _ output.TranslatedLicenseNameRepository = (*TranslatedLicenseNameRepository)(nil)

type TranslatedLicenseNameRepository struct {
	db DBTX
}

func NewTranslatedLicenseNameRepository(db DBTX) *TranslatedLicenseNameRepository {
	return &TranslatedLicenseNameRepository{db: db}
}

const upsertTranslatedName = `INSERT INTO translated_license_names (license_id, language_code, name)
VALUES ($1, $2, $3)
ON CONFLICT (license_id, language_code) DO UPDATE SET name = EXCLUDED.name
RETURNING id`

// Upsert keeps one name per (license, language).
func (r *TranslatedLicenseNameRepository) Upsert(ctx context.Context, name *entities.TranslatedLicenseName) error {
	var id int64
	err := r.db.QueryRow(ctx, upsertTranslatedName, int64(name.LicenseID), name.LanguageCode, name.Name).Scan(&id)
	if err != nil {
		return fmt.Errorf("upsert translated license name: %w", err)
	}
	name.ID = uint(id)
	return nil
}

func (r *TranslatedLicenseNameRepository) FindByLicenseAndLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.TranslatedLicenseName, error) {
	n := entities.TranslatedLicenseName{LicenseID: licenseID, LanguageCode: languageCode}
	var id int64
	err := r.db.QueryRow(ctx,
		"SELECT id, name FROM translated_license_names WHERE license_id = $1 AND language_code = $2",
		int64(licenseID), languageCode,
	).Scan(&id, &n.Name)
	if err != nil {
		return nil, notFound(err, domain.ErrTranslatedNameNotFound, "get translated license name")
	}
	n.ID = uint(id)
	return &n, nil
}

func (r *TranslatedLicenseNameRepository) FindByLicenseID(ctx context.Context, licenseID uint) ([]entities.TranslatedLicenseName, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, license_id, language_code, name FROM translated_license_names WHERE license_id = $1 ORDER BY language_code",
		int64(licenseID),
	)
	if err != nil {
		return nil, fmt.Errorf("list translated license names: %w", err)
	}
	names, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.TranslatedLicenseName, error) {
		var (
			n             entities.TranslatedLicenseName
			id, licenseID int64
		)
		err := row.Scan(&id, &licenseID, &n.LanguageCode, &n.Name)
		n.ID, n.LicenseID = uint(id), uint(licenseID)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("list translated license names: %w", err)
	}
	return names, nil
}
