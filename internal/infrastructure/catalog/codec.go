package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"legaltext/internal/domain/entities"
)

// UnmarshalFunc decodes catalog entries in file order.
type UnmarshalFunc func(data []byte) ([]entities.CatalogEntry, error)

// MarshalFunc encodes a catalog.
type MarshalFunc func(cat *entities.Catalog) ([]byte, error)

type codec struct {
	unmarshal UnmarshalFunc
	marshal   MarshalFunc
}

// Codecs maps file extensions to catalog formats.
type Codecs struct {
	byExt map[string]codec
}

// NewCodecs returns the registry with the built-in formats: gettext .po,
// and .toml, .yaml/.yml, .json holding an "entries" array of key/text pairs.
func NewCodecs() *Codecs {
	c := &Codecs{byExt: map[string]codec{}}
	c.Register("po", UnmarshalPO, MarshalPO)
	c.Register("toml", structuredUnmarshal(toml.Unmarshal), structuredMarshal(toml.Marshal))
	c.Register("yaml", structuredUnmarshal(yaml.Unmarshal), structuredMarshal(yaml.Marshal))
	c.Register("yml", structuredUnmarshal(yaml.Unmarshal), structuredMarshal(yaml.Marshal))
	c.Register("json", structuredUnmarshal(json.Unmarshal), structuredMarshal(func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	}))
	return c
}

// Register adds or replaces the format for a file extension (without dot).
func (c *Codecs) Register(ext string, unmarshal UnmarshalFunc, marshal MarshalFunc) {
	c.byExt[strings.ToLower(ext)] = codec{unmarshal: unmarshal, marshal: marshal}
}

func (c *Codecs) lookup(path string) (codec, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	cd, ok := c.byExt[ext]
	if !ok {
		return codec{}, fmt.Errorf("no catalog format registered for %q", path)
	}
	return cd, nil
}

// Unmarshal decodes data according to the extension of path.
func (c *Codecs) Unmarshal(path string, data []byte) ([]entities.CatalogEntry, error) {
	cd, err := c.lookup(path)
	if err != nil {
		return nil, err
	}
	return cd.unmarshal(data)
}

// Marshal encodes cat according to the extension of path.
func (c *Codecs) Marshal(path string, cat *entities.Catalog) ([]byte, error) {
	cd, err := c.lookup(path)
	if err != nil {
		return nil, err
	}
	return cd.marshal(cat)
}

// Extensions lists the registered extensions.
func (c *Codecs) Extensions() []string {
	out := make([]string, 0, len(c.byExt))
	for ext := range c.byExt {
		out = append(out, ext)
	}
	return out
}

type fileEntry struct {
	Key  string `toml:"key" yaml:"key" json:"key"`
	Text string `toml:"text" yaml:"text" json:"text"`
}

type fileCatalog struct {
	Language string      `toml:"language,omitempty" yaml:"language,omitempty" json:"language,omitempty"`
	Entries  []fileEntry `toml:"entries" yaml:"entries" json:"entries"`
}

func structuredUnmarshal(unmarshal func([]byte, any) error) UnmarshalFunc {
	return func(data []byte) ([]entities.CatalogEntry, error) {
		var fc fileCatalog
		if err := unmarshal(data, &fc); err != nil {
			return nil, err
		}
		out := make([]entities.CatalogEntry, len(fc.Entries))
		for i, e := range fc.Entries {
			out[i] = entities.CatalogEntry{Key: e.Key, Text: e.Text}
		}
		return out, nil
	}
}

func structuredMarshal(marshal func(any) ([]byte, error)) MarshalFunc {
	return func(cat *entities.Catalog) ([]byte, error) {
		fc := fileCatalog{
			Language: cat.Identity.Language,
			Entries:  make([]fileEntry, len(cat.Entries)),
		}
		for i, e := range cat.Entries {
			fc.Entries[i] = fileEntry{Key: e.Key, Text: e.Text}
		}
		return marshal(fc)
	}
}
