package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrLicenseNotFound           = errors.New("license not found")
	ErrLegalCodeNotFound         = errors.New("legal code not found")
	ErrTranslatedNameNotFound    = errors.New("translated license name not found")
	ErrBranchNotFound            = errors.New("translation branch not found")
	ErrCatalogNotFound           = errors.New("catalog not found")
	ErrMessageNotFound           = errors.New("message not found in catalog")
	ErrMissingDefaultTranslation = errors.New("missing default-language translation")
	ErrDuplicateIncompleteBranch = errors.New("an incomplete branch with this name already exists")
	ErrBranchComplete            = errors.New("translation branch already complete")
	ErrInvalidLanguageCode       = errors.New("invalid language code")
	ErrBranchNameTooLong         = errors.New("branch name is too long")
)

// MissingDefaultTranslationError reports a catalog key with no counterpart
// in the default-language catalog of the same document. The translation
// files are out of sync and must be fixed upstream.
type MissingDefaultTranslationError struct {
	Key string
}

func (e *MissingDefaultTranslationError) Error() string {
	return fmt.Sprintf("default-language catalog has no message for the key %q, the translation files are out of sync", e.Key)
}

func (e *MissingDefaultTranslationError) Is(target error) bool {
	return target == ErrMissingDefaultTranslation
}

var codes = []struct {
	err  error
	code string
}{
	{ErrLicenseNotFound, "license_not_found"},
	{ErrLegalCodeNotFound, "legal_code_not_found"},
	{ErrTranslatedNameNotFound, "translated_name_not_found"},
	{ErrBranchNotFound, "branch_not_found"},
	{ErrCatalogNotFound, "catalog_not_found"},
	{ErrMessageNotFound, "message_not_found"},
	{ErrMissingDefaultTranslation, "missing_default_translation"},
	{ErrDuplicateIncompleteBranch, "duplicate_incomplete_branch"},
	{ErrBranchComplete, "branch_complete"},
	{ErrInvalidLanguageCode, "invalid_language_code"},
	{ErrBranchNameTooLong, "branch_name_too_long"},
}

// Code returns the stable code of the domain error wrapped in err, or "" if
// err is not a domain error.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
