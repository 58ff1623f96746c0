package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"legaltext/internal/domain/entities"
)

const uniqueViolation = "23505"

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func pgtypeDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func timeToPgtypeDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}

func pgtypeInt8ToID(i pgtype.Int8) *uint {
	if !i.Valid {
		return nil
	}
	id := uint(i.Int64)
	return &id
}

func idToPgtypeInt8(id *uint) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: int64(*id), Valid: true}
}

// notFound maps pgx.ErrNoRows to the domain sentinel.
func notFound(err error, sentinel error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, sentinel)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const licenseColumns = `l.id, l.about, l.license_code, l.version, l.jurisdiction_code,
	l.creator_url, l.license_class_url, l.source_id, l.is_replaced_by_id, l.is_based_on_id,
	l.deprecated_on, l.permits_derivative_works, l.permits_reproduction,
	l.permits_distribution, l.permits_sharing, l.requires_share_alike, l.requires_notice,
	l.requires_attribution, l.requires_source_code, l.prohibits_commercial_use,
	l.prohibits_high_income_nation_use`

// licenseRow mirrors licenseColumns.
type licenseRow struct {
	ID                           int64
	About                        string
	LicenseCode                  string
	Version                      string
	JurisdictionCode             string
	CreatorURL                   string
	LicenseClassURL              string
	SourceID                     pgtype.Int8
	IsReplacedByID               pgtype.Int8
	IsBasedOnID                  pgtype.Int8
	DeprecatedOn                 pgtype.Date
	PermitsDerivativeWorks       bool
	PermitsReproduction          bool
	PermitsDistribution          bool
	PermitsSharing               bool
	RequiresShareAlike           bool
	RequiresNotice               bool
	RequiresAttribution          bool
	RequiresSourceCode           bool
	ProhibitsCommercialUse       bool
	ProhibitsHighIncomeNationUse bool
}

func (r *licenseRow) dest() []any {
	return []any{
		&r.ID, &r.About, &r.LicenseCode, &r.Version, &r.JurisdictionCode,
		&r.CreatorURL, &r.LicenseClassURL, &r.SourceID, &r.IsReplacedByID, &r.IsBasedOnID,
		&r.DeprecatedOn, &r.PermitsDerivativeWorks, &r.PermitsReproduction,
		&r.PermitsDistribution, &r.PermitsSharing, &r.RequiresShareAlike, &r.RequiresNotice,
		&r.RequiresAttribution, &r.RequiresSourceCode, &r.ProhibitsCommercialUse,
		&r.ProhibitsHighIncomeNationUse,
	}
}

func licenseToDomain(r licenseRow) entities.License {
	return entities.License{
		ID:                           uint(r.ID),
		About:                        r.About,
		LicenseCode:                  r.LicenseCode,
		Version:                      r.Version,
		JurisdictionCode:             r.JurisdictionCode,
		CreatorURL:                   r.CreatorURL,
		LicenseClassURL:              r.LicenseClassURL,
		SourceID:                     pgtypeInt8ToID(r.SourceID),
		IsReplacedByID:               pgtypeInt8ToID(r.IsReplacedByID),
		IsBasedOnID:                  pgtypeInt8ToID(r.IsBasedOnID),
		DeprecatedOn:                 pgtypeDateToTime(r.DeprecatedOn),
		PermitsDerivativeWorks:       r.PermitsDerivativeWorks,
		PermitsReproduction:          r.PermitsReproduction,
		PermitsDistribution:          r.PermitsDistribution,
		PermitsSharing:               r.PermitsSharing,
		RequiresShareAlike:           r.RequiresShareAlike,
		RequiresNotice:               r.RequiresNotice,
		RequiresAttribution:          r.RequiresAttribution,
		RequiresSourceCode:           r.RequiresSourceCode,
		ProhibitsCommercialUse:       r.ProhibitsCommercialUse,
		ProhibitsHighIncomeNationUse: r.ProhibitsHighIncomeNationUse,
	}
}

// licenseArgs returns the column values $1..$20 of an insert or update,
// in licenseColumns order without the id.
func licenseArgs(l *entities.License) []any {
	return []any{
		l.About, l.LicenseCode, l.Version, l.JurisdictionCode,
		l.CreatorURL, l.LicenseClassURL, idToPgtypeInt8(l.SourceID), idToPgtypeInt8(l.IsReplacedByID),
		idToPgtypeInt8(l.IsBasedOnID), timeToPgtypeDate(l.DeprecatedOn),
		l.PermitsDerivativeWorks, l.PermitsReproduction, l.PermitsDistribution, l.PermitsSharing,
		l.RequiresShareAlike, l.RequiresNotice, l.RequiresAttribution, l.RequiresSourceCode,
		l.ProhibitsCommercialUse, l.ProhibitsHighIncomeNationUse,
	}
}

const legalCodeColumns = `lc.id, lc.license_id, lc.language_code, lc.html_file, lc.translation_last_update`

type legalCodeRow struct {
	ID                    int64
	LicenseID             int64
	LanguageCode          string
	HTMLFile              string
	TranslationLastUpdate pgtype.Timestamptz
	License               licenseRow
}

func (r *legalCodeRow) dest() []any {
	return append([]any{
		&r.ID, &r.LicenseID, &r.LanguageCode, &r.HTMLFile, &r.TranslationLastUpdate,
	}, r.License.dest()...)
}

func legalCodeToDomain(r legalCodeRow) entities.LegalCode {
	license := licenseToDomain(r.License)
	return entities.LegalCode{
		ID:                    uint(r.ID),
		LicenseID:             uint(r.LicenseID),
		License:               &license,
		LanguageCode:          r.LanguageCode,
		HTMLFile:              r.HTMLFile,
		TranslationLastUpdate: pgtypeTimestamptzToTime(r.TranslationLastUpdate),
	}
}
