package i18n

import (
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"golang.org/x/text/language"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

// Ensure the adapters implement the output ports.
var (
	_ output.TranslatorFactory = (*Factory)(nil)
	_ output.Translator        = (*Translator)(nil)
)

// Factory builds go-i18n backed translators over loaded catalogs.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Translator is a thin wrapper around a go-i18n Bundle/Localizer holding the
// messages of one catalog.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
	logger    *slog.Logger
}

// ForCatalog registers the catalog's messages in a bundle whose language is
// the catalog language.
func (f *Factory) ForCatalog(cat *entities.Catalog) (output.Translator, error) {
	tag := bundleLanguage(cat.Identity.Language)
	bundle := i18n.NewBundle(tag)

	messages := make([]*i18n.Message, 0, len(cat.Entries))
	for _, e := range cat.Entries {
		if e.Text == "" {
			continue
		}
		messages = append(messages, &i18n.Message{ID: e.Key, Other: e.Text})
	}
	if err := bundle.AddMessages(tag, messages...); err != nil {
		return nil, fmt.Errorf("i18n: add messages of %s: %w", cat.Identity, err)
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
		logger:    f.logger,
	}, nil
}

// bundleLanguage parses code for go-i18n. Bundles need a plural rule, so
// codes without a known base language (private use tags such as "x-i18n",
// or unparseable ones) fall back to English.
func bundleLanguage(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	if base, _ := tag.Base(); base.String() == "und" {
		return language.English
	}
	return tag
}

// Translate returns the text of the message identified by msgID verbatim,
// falling back to msgID itself when the catalog has no text for it. Catalog
// text is never executed as a template.
func (t *Translator) Translate(msgID string) string {
	if msgID == "" {
		return ""
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      msgID,
		TemplateParser: &template.IdentityParser{},
	})
	if err != nil || msg == "" {
		t.logger.Debug("i18n: untranslated message", "key", msgID, "language", t.tag.String(), "error", err)
		return msgID
	}
	return msg
}
