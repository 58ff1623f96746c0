package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Levels of freedom, from most to least permissive.
const (
	FreedomLevelMax = 1
	FreedomLevelMid = 2
	FreedomLevelMin = 3
)

// License is one license, identified by its canonical URL (About), e.g.
// "http://creativecommons.org/licenses/by-nc-sa/4.0/".
//
// A license whose SourceID is set is a translation of that license.
type License struct {
	ID               uint
	About            string
	LicenseCode      string // e.g. "by-nc-sa", "MIT", "nc-sampling+", "devnations"
	Version          string // e.g. "4.0", may be empty
	JurisdictionCode string
	CreatorURL       string
	LicenseClassURL  string

	SourceID       *uint // license this one is a translation of
	IsReplacedByID *uint
	IsBasedOnID    *uint

	DeprecatedOn time.Time // zero = not deprecated

	PermitsDerivativeWorks bool
	PermitsReproduction    bool
	PermitsDistribution    bool
	PermitsSharing         bool

	RequiresShareAlike  bool
	RequiresNotice      bool
	RequiresAttribution bool
	RequiresSourceCode  bool

	ProhibitsCommercialUse       bool
	ProhibitsHighIncomeNationUse bool

	LegalCodes []LegalCode
	Names      []TranslatedLicenseName
}

func (l *License) String() string {
	return fmt.Sprintf("License<%s>", l.About)
}

// FatCode returns e.g. "CC BY-SA 4.0": upper case, no language.
func (l *License) FatCode() string {
	s := l.LicenseCode + " " + l.Version
	if strings.HasPrefix(l.LicenseCode, "by") {
		s = "CC " + s
	}
	if l.JurisdictionCode != "" {
		s = s + " " + l.JurisdictionCode
	}
	return strings.ToUpper(s)
}

// ResourceName is the human-readable name of the translation resource.
func (l *License) ResourceName() string {
	return l.FatCode()
}

// ResourceSlug is the translation resource slug: letters, numbers,
// underscores or hyphens only.
func (l *License) ResourceSlug() string {
	slug := l.LicenseCode + "_" + l.Version
	if l.JurisdictionCode != "" {
		slug += "_" + l.JurisdictionCode
	}
	return strings.ReplaceAll(slug, ".", "")
}

func (l *License) LevelOfFreedom() int {
	switch {
	case l.LicenseCode == "devnations" || l.LicenseCode == "sampling":
		return FreedomLevelMin
	case strings.Contains(l.LicenseCode, "sampling"),
		strings.Contains(l.LicenseCode, "nc"),
		strings.Contains(l.LicenseCode, "nd"):
		return FreedomLevelMid
	default:
		return FreedomLevelMax
	}
}

func (l *License) Superseded() bool {
	return l.IsReplacedByID != nil
}

func (l *License) IsDeprecated() bool {
	return !l.DeprecatedOn.IsZero()
}

func (l *License) SamplingPlus() bool {
	return l.LicenseCode == "nc-sampling+" || l.LicenseCode == "sampling+"
}

func (l *License) IncludeShareAdaptedMaterialClause() bool {
	return slices.Contains([]string{"by", "by-nc"}, l.LicenseCode)
}

// RDF is a placeholder; RDF output has never been generated from these records.
func (l *License) RDF() string {
	return "RDF Generation Not Implemented"
}
