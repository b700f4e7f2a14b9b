package site

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gutterpress/gutterpress/pkg/cache"
	"github.com/gutterpress/gutterpress/pkg/comic"
)

// Writer renders views through a template set and writes them into
// the output directory, consulting the build cache to skip files whose
// content is unchanged.
type Writer struct {
	dir       string
	templates *Templates
	cache     cache.Cache

	written int
	skipped int
}

// NewWriter creates a writer for the given output directory. A nil
// build cache disables skipping.
func NewWriter(dir string, templates *Templates, buildCache cache.Cache) *Writer {
	if buildCache == nil {
		buildCache = cache.NewNullCache()
	}
	return &Writer{dir: dir, templates: templates, cache: buildCache}
}

// Stats reports how many files were written and how many were skipped
// as unchanged since the writer was created.
func (w *Writer) Stats() (written, skipped int) {
	return w.written, w.skipped
}

// WriteIndexPage renders and writes index.html.
func (w *Writer) WriteIndexPage(ctx context.Context, c *comic.Comic) error {
	content, err := w.templates.RenderIndex(c)
	if err != nil {
		return err
	}
	return w.writeContent(ctx, "index.html", content)
}

// WriteAboutPage renders and writes about.html.
func (w *Writer) WriteAboutPage(ctx context.Context, c *comic.Comic) error {
	content, err := w.templates.RenderAbout(c)
	if err != nil {
		return err
	}
	return w.writeContent(ctx, "about.html", content)
}

// WriteArchivePage renders and writes archive.html.
func (w *Writer) WriteArchivePage(ctx context.Context, c *comic.Comic) error {
	content, err := w.templates.RenderArchive(c)
	if err != nil {
		return err
	}
	return w.writeContent(ctx, "archive.html", content)
}

// WriteVolume renders and writes volumes/<slug>.html.
func (w *Writer) WriteVolume(ctx context.Context, v *comic.Volume, c *comic.Comic) error {
	content, err := w.templates.RenderVolume(v, c)
	if err != nil {
		return err
	}
	return w.writeContent(ctx, strings.TrimPrefix(v.URL(), "/"), content)
}

// WritePage renders and writes volumes/<volume>/pages/<slug>.html. A
// page that has not been attached to a volume cannot be placed in the
// output tree and fails with a RenderError wrapping comic.ErrNotLinked.
func (w *Writer) WritePage(ctx context.Context, p *comic.Page, c *comic.Comic) error {
	url, err := p.URL()
	if err != nil {
		return &RenderError{View: "page", Name: p.Title, Err: err}
	}
	content, err := w.templates.RenderPage(p, c)
	if err != nil {
		return err
	}
	return w.writeContent(ctx, strings.TrimPrefix(url, "/"), content)
}

// CopyAssets copies the comic's assets directory into the output root,
// overwriting existing files.
func (w *Writer) CopyAssets(assetsDir string) error {
	src := os.DirFS(assetsDir)
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(w.dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		return copyFile(filepath.Join(assetsDir, filepath.FromSlash(p)), dest)
	})
}

// writeContent writes content at the slash-separated path relPath
// under the output root, creating parent directories. Content whose
// hash matches the cached hash is skipped if the file is still there.
func (w *Writer) writeContent(ctx context.Context, relPath, content string) error {
	key := cache.PageKey(path.Clean(relPath))
	hash := cache.Hash([]byte(content))
	dest := filepath.Join(w.dir, filepath.FromSlash(relPath))

	if cached, hit, err := w.cache.Get(ctx, key); err == nil && hit && string(cached) == hash {
		if _, err := os.Stat(dest); err == nil {
			w.skipped++
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return err
	}
	w.written++

	// A failed cache write only costs a rewrite next build.
	_ = w.cache.Set(ctx, key, []byte(hash), 0)
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
