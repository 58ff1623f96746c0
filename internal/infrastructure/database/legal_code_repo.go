package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

var _ output.LegalCodeRepository = (*LegalCodeRepository)(nil)

type LegalCodeRepository struct {
	db DBTX
}

func NewLegalCodeRepository(db DBTX) *LegalCodeRepository {
	return &LegalCodeRepository{db: db}
}

const selectLegalCode = "SELECT " + legalCodeColumns + ", " + licenseColumns + `
FROM legal_codes lc
JOIN licenses l ON l.id = lc.license_id`

func checkLanguageCode(code string) error {
	if code == "" || len(code) > entities.MaxLanguageCodeLength {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLanguageCode, code)
	}
	return nil
}

func (r *LegalCodeRepository) Create(ctx context.Context, legalCode *entities.LegalCode) error {
	if err := checkLanguageCode(legalCode.LanguageCode); err != nil {
		return fmt.Errorf("create legal code: %w", err)
	}
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO legal_codes (license_id, language_code, html_file, translation_last_update)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		int64(legalCode.LicenseID), legalCode.LanguageCode, legalCode.HTMLFile,
		timeToPgtypeTimestamptz(legalCode.TranslationLastUpdate),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create legal code: %w", err)
	}
	legalCode.ID = uint(id)
	return nil
}

func (r *LegalCodeRepository) FindByID(ctx context.Context, id uint) (*entities.LegalCode, error) {
	var row legalCodeRow
	err := r.db.QueryRow(ctx, selectLegalCode+" WHERE lc.id = $1", int64(id)).Scan(row.dest()...)
	if err != nil {
		return nil, notFound(err, domain.ErrLegalCodeNotFound, "get legal code by id")
	}
	lc := legalCodeToDomain(row)
	return &lc, nil
}

func (r *LegalCodeRepository) FindByLicenseAndLanguage(ctx context.Context, licenseID uint, languageCode string) (*entities.LegalCode, error) {
	var row legalCodeRow
	err := r.db.QueryRow(ctx,
		selectLegalCode+" WHERE lc.license_id = $1 AND lc.language_code = $2",
		int64(licenseID), languageCode,
	).Scan(row.dest()...)
	if err != nil {
		return nil, notFound(err, domain.ErrLegalCodeNotFound, "get legal code by license and language")
	}
	lc := legalCodeToDomain(row)
	return &lc, nil
}

func (r *LegalCodeRepository) FindByLicenseID(ctx context.Context, licenseID uint) ([]entities.LegalCode, error) {
	rows, err := r.db.Query(ctx,
		selectLegalCode+" WHERE lc.license_id = $1 ORDER BY lc.language_code",
		int64(licenseID),
	)
	if err != nil {
		return nil, fmt.Errorf("list legal codes: %w", err)
	}
	legalCodes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.LegalCode, error) {
		var r legalCodeRow
		if err := row.Scan(r.dest()...); err != nil {
			return entities.LegalCode{}, err
		}
		return legalCodeToDomain(r), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list legal codes: %w", err)
	}
	return legalCodes, nil
}

func (r *LegalCodeRepository) Update(ctx context.Context, legalCode *entities.LegalCode) error {
	if err := checkLanguageCode(legalCode.LanguageCode); err != nil {
		return fmt.Errorf("update legal code: %w", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE legal_codes SET language_code = $1, html_file = $2, translation_last_update = $3
		WHERE id = $4`,
		legalCode.LanguageCode, legalCode.HTMLFile,
		timeToPgtypeTimestamptz(legalCode.TranslationLastUpdate), int64(legalCode.ID),
	)
	if err != nil {
		return fmt.Errorf("update legal code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update legal code: %w", domain.ErrLegalCodeNotFound)
	}
	return nil
}

func (r *LegalCodeRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM legal_codes WHERE id = $1", int64(id)); err != nil {
		return fmt.Errorf("delete legal code: %w", err)
	}
	return nil
}
