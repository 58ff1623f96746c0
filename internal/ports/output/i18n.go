package output

import "legaltext/internal/domain/entities"

// Translator resolves message keys against one catalog.
type Translator interface {
	// Translate returns the text for msgID, or msgID itself when the catalog
	// has no such message.
	Translate(msgID string) string
}

// TranslatorFactory builds a Translator over a loaded catalog.
type TranslatorFactory interface {
	ForCatalog(catalog *entities.Catalog) (Translator, error)
}
