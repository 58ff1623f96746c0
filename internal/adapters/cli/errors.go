package cli

import "legaltext/internal/domain"

// TranslateDomainError maps a domain error code to a user-facing message.
func TranslateDomainError(code string) string {
	switch code {
	case "license_not_found":
		return "License not found."
	case "legal_code_not_found":
		return "No legal code for this license in that language."
	case "translated_name_not_found":
		return "No translated name for this license in that language."
	case "branch_not_found":
		return "Translation branch not found."
	case "catalog_not_found":
		return "Translation file not found in the translation repository."
	case "message_not_found":
		return "The translation file has no text for this message."
	case "missing_default_translation":
		return "A message has no English source text; update the English catalog first."
	case "duplicate_incomplete_branch":
		return "An unfinished branch with this name already exists."
	case "branch_complete":
		return "This translation branch is already complete."
	case "invalid_language_code":
		return "Invalid language code."
	case "branch_name_too_long":
		return "The branch name would be too long."
	default:
		return "Something went wrong."
	}
}

// DomainErrorMessage extracts the domain error code of err and resolves it
// to a user-facing message. Errors outside the domain give "".
func DomainErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return TranslateDomainError(code)
	}
	return ""
}
