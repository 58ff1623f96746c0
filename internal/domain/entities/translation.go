package entities

import (
	"fmt"
	"time"
)

// TranslatedLicenseName is the name of a license in one language.
// There is at most one per (license, language).
type TranslatedLicenseName struct {
	ID           uint
	LicenseID    uint
	LanguageCode string
	Name         string
}

func (n *TranslatedLicenseName) String() string {
	return fmt.Sprintf("TranslatedLicenseName<%s, %d>", n.LanguageCode, n.LicenseID)
}

// MaxBranchNameLength bounds TranslationBranch.BranchName.
const MaxBranchNameLength = 40

// TranslationBranch tracks a git branch holding translation changes for one
// or more legal codes. There is at most one record with Complete == false per
// branch name; there may be many completed ones.
type TranslationBranch struct {
	ID           uint
	BranchName   string
	LegalCodeIDs []uint
	Version      string
	LanguageCode string
	// LastTransifexUpdate is the latest update seen on the hosting service for
	// the translations of this branch. A newer update there means the branch
	// must be refreshed from the latest translation files.
	LastTransifexUpdate time.Time
	Complete            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasLegalCode reports whether the legal code is tracked by this branch.
func (b *TranslationBranch) HasLegalCode(id uint) bool {
	for _, lcID := range b.LegalCodeIDs {
		if lcID == id {
			return true
		}
	}
	return false
}
