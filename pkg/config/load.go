package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// Load reads the directory tree rooted at root into a fully-linked
// resource graph. Any missing document, malformed document, bad asset
// path, or order-list slug without a directory aborts the whole load;
// there is no partial result.
//
// The directory name of each volume and page is its canonical slug;
// titles are not re-slugged at load time, so a directory whose name
// disagrees with its title keeps the directory name.
func Load(store Store, root string) (*comic.Comic, error) {
	var doc comicDoc
	docPath := filepath.Join(root, comicDocName)
	if err := store.ReadDocument(docPath, &doc); err != nil {
		return nil, &ConfigError{ResourceComic, docPath, "failed to read document", err}
	}
	if reason := checkAsset(store, root, "placeholder", doc.Placeholder); reason != "" {
		return nil, &ConfigError{ResourceComic, docPath, reason, nil}
	}

	c := comic.RestoreComic(root, doc.Name, doc.Placeholder, doc.Volumes)

	volumeNames, err := store.ListDirs(filepath.Join(root, "volumes"))
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}
	for _, slug := range volumeNames {
		v, err := loadVolume(store, root, slug)
		if err != nil {
			return nil, err
		}
		if err := c.AddVolume(v); err != nil {
			return nil, err
		}
	}

	if missing := c.MissingVolumes(); len(missing) > 0 {
		return nil, &IntegrityError{ResourceComic, c.Name, missing}
	}
	return c, nil
}

// loadVolume reads one volume directory and all of its pages.
func loadVolume(store Store, root, slug string) (*comic.Volume, error) {
	dir := filepath.Join(root, "volumes", slug)
	docPath := filepath.Join(dir, volumeDocName)

	var doc volumeDoc
	if err := store.ReadDocument(docPath, &doc); err != nil {
		return nil, &ConfigError{ResourceVolume, docPath, "failed to read document", err}
	}
	if reason := checkAsset(store, root, "image", doc.Image); reason != "" {
		return nil, &ConfigError{ResourceVolume, docPath, reason, nil}
	}

	v := comic.RestoreVolume(slug, doc.Title, doc.Image, dir, doc.Pages)

	pageNames, err := store.ListDirs(filepath.Join(dir, "pages"))
	if err != nil {
		return nil, fmt.Errorf("list pages of %s: %w", slug, err)
	}
	for _, pageSlug := range pageNames {
		p, err := loadPage(store, root, dir, pageSlug)
		if err != nil {
			return nil, err
		}
		if err := v.AddPage(p); err != nil {
			return nil, err
		}
	}

	if missing := v.MissingPages(); len(missing) > 0 {
		return nil, &IntegrityError{ResourceVolume, v.Title, missing}
	}
	return v, nil
}

// loadPage reads one page directory.
func loadPage(store Store, root, volumeDir, slug string) (*comic.Page, error) {
	dir := filepath.Join(volumeDir, "pages", slug)
	docPath := filepath.Join(dir, pageDocName)

	var doc pageDoc
	if err := store.ReadDocument(docPath, &doc); err != nil {
		return nil, &ConfigError{ResourcePage, docPath, "failed to read document", err}
	}
	if reason := checkAsset(store, root, "image", doc.Image); reason != "" {
		return nil, &ConfigError{ResourcePage, docPath, reason, nil}
	}

	return comic.RestorePage(slug, doc.Title, doc.Image, dir), nil
}

// checkAsset validates that an assets-rooted path names an existing
// regular file under <root>/assets. It returns an empty string when the
// path is fine, otherwise the reason naming the offending field.
func checkAsset(store Store, root, field, asset string) string {
	full := AssetPath(root, asset)
	if !store.Exists(full) {
		return fmt.Sprintf("%s: asset does not exist: %s", field, asset)
	}
	if !store.IsFile(full) {
		return fmt.Sprintf("%s: asset is not a regular file: %s", field, asset)
	}
	return ""
}

// AssetPath resolves an assets-rooted path (a leading slash is
// tolerated) against the comic root.
func AssetPath(root, asset string) string {
	trimmed := strings.Trim(asset, "/")
	return filepath.Join(root, "assets", filepath.FromSlash(trimmed))
}
