package entities

import (
	"fmt"
	"slices"
)

// Definition is one item of section 1 (definitions) of a legal code.
type Definition struct {
	ID          string // e.g. "s1c"
	MsgID       string // e.g. "s1_definitions_effective_technological_measures"
	Translation string
}

// Downstream is one item of the downstream recipients clause (s2a5).
type Downstream struct {
	ID              string // e.g. "s2a5B_adapted_material"
	MsgIDName       string
	MsgIDText       string
	NameTranslation string
	TextTranslation string
}

var baseDefinitions = []string{
	"adapted_material",
	"copyright_and_similar_rights",
	"effective_technological_measures",
	"exceptions_and_limitations",
	"licensed_material",
	"licensed_rights",
	"licensor",
	"share",
	"sui_generis_database_rights",
	"you",
}

// definitionInsert places item right after the existing item after.
type definitionInsert struct {
	after, item string
}

// Inserts are applied in order, so later entries may refer to earlier ones.
var variantDefinitions = map[string][]definitionInsert{
	"by-sa": {
		{"adapted_material", "adapters_license"},
		{"adapters_license", "by_sa_compatible_license"},
		{"exceptions_and_limitations", "license_elements_sa"},
	},
	"by": {
		{"adapted_material", "adapters_license"},
	},
	"by-nc": {
		{"adapted_material", "adapters_license"},
		{"licensor", "noncommercial"},
	},
	"by-nd": nil,
	"by-nc-nd": {
		{"licensor", "noncommercial"},
	},
	"by-nc-sa": {
		{"adapted_material", "adapters_license"},
		{"exceptions_and_limitations", "license_elements_nc_sa"},
		{"adapters_license", "by_nc_sa_compatible_license"},
		{"licensor", "noncommercial"},
	},
}

// Definitions returns the definitions of this legal code's license variant in
// document order. Translations are left empty.
func (lc *LegalCode) Definitions() []Definition {
	items := slices.Clone(baseDefinitions)
	for _, ins := range variantDefinitions[lc.License.LicenseCode] {
		i := slices.Index(items, ins.after)
		items = slices.Insert(items, i+1, ins.item)
	}

	out := make([]Definition, len(items))
	for i, item := range items {
		out[i] = Definition{
			ID:    fmt.Sprintf("s1%c", 'a'+rune(i)),
			MsgID: "s1_definitions_" + item,
		}
	}
	return out
}

// Downstreams returns the downstream recipient items of this legal code's
// license variant in document order. Translations are left empty.
func (lc *LegalCode) Downstreams() []Downstream {
	items := []string{"offer", "no_restrictions"}
	switch lc.License.LicenseCode {
	case "by-sa", "by-nc-sa":
		items = slices.Insert(items, 1, "adapted_material")
	}

	out := make([]Downstream, len(items))
	for i, item := range items {
		out[i] = Downstream{
			ID:        fmt.Sprintf("s2a5%c_%s", 'A'+rune(i), item),
			MsgIDName: "s2a5_license_grant_downstream_" + item + "_name",
			MsgIDText: "s2a5_license_grant_downstream_" + item + "_text",
		}
	}
	return out
}

