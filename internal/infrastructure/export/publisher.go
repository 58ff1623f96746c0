package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"legaltext/internal/domain/entities"
	"legaltext/internal/infrastructure/catalog"
	"legaltext/internal/ports/output"
)

var _ output.CatalogPublisher = (*DirPublisher)(nil)

// DirPublisher writes published catalogs under a directory laid out like the
// translation repository, so the result can be handed to a hosting service
// as is.
type DirPublisher struct {
	dir    string
	codecs *catalog.Codecs
	logger *slog.Logger
}

func NewDirPublisher(dir string, codecs *catalog.Codecs, logger *slog.Logger) *DirPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirPublisher{dir: dir, codecs: codecs, logger: logger}
}

// Path returns where the catalog of legalCode is written.
func (p *DirPublisher) Path(legalCode *entities.LegalCode) string {
	return legalCode.TranslationFilename(p.dir)
}

// Publish replaces the file atomically: readers never see a partial catalog.
func (p *DirPublisher) Publish(ctx context.Context, legalCode *entities.LegalCode, cat *entities.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := p.Path(legalCode)
	data, err := p.codecs.Marshal(path, cat)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".publish-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}

	p.logger.Debug("catalog exported", "path", path, "entries", cat.Len())
	return nil
}
