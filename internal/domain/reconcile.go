package domain

import "legaltext/internal/domain/entities"

// ReconcileCatalog returns a copy of target in which every message key is
// replaced by the default-language text for that key, so translations can be
// compared against readable English anchors instead of internal keys.
//
// When target is itself the default-language catalog there is nothing to
// substitute: each entry's text becomes its key and the text is blanked,
// which is the shape of a catalog started from scratch. defaultCatalog is
// ignored in that case.
//
// Otherwise every key of target must exist in defaultCatalog. The first
// missing key aborts with a *MissingDefaultTranslationError and no catalog
// is returned. Entry order is preserved and neither input is modified.
func ReconcileCatalog(target *entities.Catalog, isDefaultLanguage bool, defaultCatalog *entities.Catalog) (*entities.Catalog, error) {
	out := target.Clone()

	if isDefaultLanguage {
		for i := range out.Entries {
			out.Entries[i].Key = out.Entries[i].Text
			out.Entries[i].Text = ""
		}
		return out, nil
	}

	if defaultCatalog == nil {
		defaultCatalog = &entities.Catalog{}
	}
	keyToDefaultText := defaultCatalog.Index()
	for i := range out.Entries {
		text, ok := keyToDefaultText[out.Entries[i].Key]
		if !ok {
			return nil, &MissingDefaultTranslationError{Key: out.Entries[i].Key}
		}
		out.Entries[i].Key = text
	}
	return out, nil
}
