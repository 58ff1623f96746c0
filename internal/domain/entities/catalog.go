package entities

import "fmt"

// DocumentIdentity identifies exactly one catalog: a license variant (its
// translation resource slug) in one language.
type DocumentIdentity struct {
	Variant  string
	Language string
}

func (id DocumentIdentity) String() string {
	return fmt.Sprintf("%s/%s", id.Variant, id.Language)
}

func (id DocumentIdentity) IsDefaultLanguage() bool {
	return id.Language == DefaultLanguageCode
}

// CatalogEntry is one message of a catalog. Key is the stable message
// identifier; Text is the human-readable content and may be empty.
type CatalogEntry struct {
	Key  string
	Text string
}

// Catalog is the ordered list of messages of one document in one language.
type Catalog struct {
	Identity DocumentIdentity
	Entries  []CatalogEntry
}

func (c *Catalog) Len() int {
	return len(c.Entries)
}

// Clone returns a copy sharing no mutable state with c.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Identity: c.Identity}
	if c.Entries != nil {
		out.Entries = make([]CatalogEntry, len(c.Entries))
		copy(out.Entries, c.Entries)
	}
	return out
}

// Index maps each key to its text. When a key appears more than once the
// last entry wins.
func (c *Catalog) Index() map[string]string {
	m := make(map[string]string, len(c.Entries))
	for _, e := range c.Entries {
		m[e.Key] = e.Text
	}
	return m
}

// Lookup returns the text for key, agreeing with Index on duplicates.
func (c *Catalog) Lookup(key string) (string, bool) {
	for i := len(c.Entries) - 1; i >= 0; i-- {
		if c.Entries[i].Key == key {
			return c.Entries[i].Text, true
		}
	}
	return "", false
}
