package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chai2010/gettext-go/po"

	"legaltext/internal/domain/entities"
)

// contextSeparator joins msgctxt and msgid into one key, as gettext does.
const contextSeparator = "\x04"

// UnmarshalPO reads a gettext catalog in file order. The header (empty
// msgid) is skipped. Obsolete "#~" entries are kept like live ones, and for
// plural entries the singular msgid and msgstr[0] are kept.
func UnmarshalPO(data []byte) ([]entities.CatalogEntry, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	file, err := po.Load(restoreObsolete(data))
	if err != nil {
		return nil, fmt.Errorf("po: %w", err)
	}

	out := make([]entities.CatalogEntry, 0, len(file.Messages))
	for _, msg := range file.Messages {
		if msg.MsgId == "" && msg.MsgContext == "" {
			continue
		}
		key := msg.MsgId
		if msg.MsgContext != "" {
			key = msg.MsgContext + contextSeparator + msg.MsgId
		}
		text := msg.MsgStr
		if msg.MsgIdPlural != "" && len(msg.MsgStrPlural) > 0 {
			text = msg.MsgStrPlural[0]
		}
		out = append(out, entities.CatalogEntry{Key: key, Text: text})
	}
	return out, nil
}

// restoreObsolete uncomments the "#~ msgid ..." lines of obsolete entries so
// they parse as ordinary entries. "#~|" previous-msgid comments stay.
func restoreObsolete(data []byte) []byte {
	if !bytes.Contains(data, []byte("#~")) {
		return data
	}
	lines := strings.SplitAfter(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "#~") || strings.HasPrefix(trimmed, "#~|") {
			continue
		}
		rest := strings.TrimLeft(strings.TrimPrefix(trimmed, "#~"), " \t")
		if strings.HasPrefix(rest, "msg") || strings.HasPrefix(rest, `"`) {
			lines[i] = rest
		}
	}
	return []byte(strings.Join(lines, ""))
}

// MarshalPO writes a gettext catalog with a minimal header naming the
// catalog language.
func MarshalPO(cat *entities.Catalog) ([]byte, error) {
	file := &po.File{
		MimeHeader: po.Header{
			Language:                cat.Identity.Language,
			MimeVersion:             "1.0",
			ContentType:             "text/plain; charset=UTF-8",
			ContentTransferEncoding: "8bit",
		},
		Messages: make([]po.Message, 0, len(cat.Entries)),
	}
	for _, e := range cat.Entries {
		msg := po.Message{MsgId: e.Key, MsgStr: e.Text}
		if ctxt, id, ok := strings.Cut(e.Key, contextSeparator); ok {
			msg.MsgContext, msg.MsgId = ctxt, id
		}
		file.Messages = append(file.Messages, msg)
	}
	return file.Data(), nil
}
