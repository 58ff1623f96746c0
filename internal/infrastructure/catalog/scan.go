package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scan lists the catalog files of every registered format under
// root/translations, relative to root and sorted.
func Scan(root string, codecs *Codecs) ([]string, error) {
	if codecs == nil {
		codecs = NewCodecs()
	}
	exts := codecs.Extensions()
	slices.Sort(exts)
	pattern := "translations/**/*.{" + strings.Join(exts, ",") + "}"

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	slices.Sort(matches)
	return matches, nil
}
