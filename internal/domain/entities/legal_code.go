package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLanguageCode is the base language: its catalogs hold the
// authoritative human-readable text for every message key.
const DefaultLanguageCode = "en"

// MaxLanguageCodeLength bounds language codes such as "en", "sr-Latn" or "x-i18n".
const MaxLanguageCodeLength = 8

// LegalCode is the legal text of one license in one language.
type LegalCode struct {
	ID                    uint
	LicenseID             uint
	License               *License
	LanguageCode          string
	HTMLFile              string    // HTML file the text was imported from
	TranslationLastUpdate time.Time // zero = never synced from the hosting service
}

func (lc *LegalCode) String() string {
	about := ""
	if lc.License != nil {
		about = lc.License.About
	}
	return fmt.Sprintf("LegalCode<%s, %s>", lc.LanguageCode, about)
}

func (lc *LegalCode) IsDefaultLanguage() bool {
	return lc.LanguageCode == DefaultLanguageCode
}

// Identity returns the identity of the catalog holding this legal code's messages.
func (lc *LegalCode) Identity() DocumentIdentity {
	return DocumentIdentity{Variant: lc.License.ResourceSlug(), Language: lc.LanguageCode}
}

// DefaultIdentity is the identity of the default-language catalog for the
// same license.
func (lc *LegalCode) DefaultIdentity() DocumentIdentity {
	return DocumentIdentity{Variant: lc.License.ResourceSlug(), Language: DefaultLanguageCode}
}

// BranchName is the name of the git branch holding modifications to this
// translation: "{license code}-{version}-{language}[-{jurisdiction}]", except
// that every "by*" 4.0 license uses "cc4" for the code and version. The
// result must be a valid DNS label, so "_" becomes "-" and "." is dropped.
func (lc *LegalCode) BranchName() string {
	l := lc.License
	var parts []string
	if strings.HasPrefix(l.LicenseCode, "by") && l.Version == "4.0" {
		parts = append(parts, "cc4")
	} else {
		parts = append(parts, l.LicenseCode, l.Version)
	}
	parts = append(parts, lc.LanguageCode)
	if l.JurisdictionCode != "" {
		parts = append(parts, l.JurisdictionCode)
	}
	name := strings.Join(parts, "-")
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "")
	return strings.ToLower(name)
}

// TranslationFilename returns the path of the .po file for this translation
// inside the translation repository rooted at root:
//
//	{root}/translations/{code}/{version or "None"}/{code}_{version}_{jurisdiction}_{language}.po
//
// Parts that do not apply are left out together with their "_" separator,
// e.g. "translations/by-nc/4.0/by-nc_4.0_fr.po".
func (lc *LegalCode) TranslationFilename(root string) string {
	l := lc.License
	code := strings.ToLower(l.LicenseCode)

	var parts []string
	for _, p := range []string{code, l.Version, l.JurisdictionCode, lc.LanguageCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	filename := strings.Join(parts, "_") + ".po"

	version := l.Version
	if version == "" {
		version = "None"
	}
	return filepath.Join(root, "translations", code, version, filename)
}

func (lc *LegalCode) FatCode() string {
	return lc.License.FatCode()
}
