package site

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// Generate builds the whole site for a loaded comic: index, about and
// archive views, then every volume and page in order, then the static
// assets. The first failure aborts the build; files written before the
// failure are left in place.
func Generate(ctx context.Context, logger *log.Logger, c *comic.Comic, w *Writer) error {
	if c.Location == "" {
		return ErrVirtualComic
	}

	start := time.Now()
	logger.Debug("starting build", "build_id", uuid.NewString(), "comic", c.Name)
	logger.Info("Building comic", "name", c.Name)

	if err := w.WriteIndexPage(ctx, c); err != nil {
		return err
	}
	if err := w.WriteAboutPage(ctx, c); err != nil {
		return err
	}
	if err := w.WriteArchivePage(ctx, c); err != nil {
		return err
	}

	for v := range c.Volumes() {
		logger.Info("Building volume", "title", v.Title)
		if err := w.WriteVolume(ctx, v, c); err != nil {
			return err
		}
		for p := range v.Pages() {
			logger.Debug("Building page", "title", p.Title)
			if err := w.WritePage(ctx, p, c); err != nil {
				return err
			}
		}
	}

	logger.Info("Copying assets")
	if err := w.CopyAssets(filepath.Join(c.Location, "assets")); err != nil {
		return err
	}

	written, skipped := w.Stats()
	logger.Info("Build complete",
		"written", written,
		"skipped", skipped,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
