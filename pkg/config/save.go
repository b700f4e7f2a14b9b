package config

import (
	"path/filepath"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// Save writes the resource graph back to a directory tree. Exactly one
// of the comic's own location and target must be set: a loaded comic is
// saved in place (target must be empty), a virtual comic needs target
// and adopts it as its location. Volumes and pages without a location
// are placed under the comic root by slug.
//
// Save is not transactional. A failure partway through leaves the
// documents written so far on disk; the failure modes are contract
// violations, not I/O races, so no rollback is attempted.
func Save(store Store, c *comic.Comic, target string) error {
	root, err := resolveTarget(c, target)
	if err != nil {
		return err
	}

	doc := comicDoc{
		Name:        c.Name,
		Placeholder: c.Placeholder,
		Volumes:     c.VolumeOrder(),
	}
	if err := store.WriteDocument(filepath.Join(root, comicDocName), doc); err != nil {
		return &ConfigError{ResourceComic, filepath.Join(root, comicDocName), "failed to write document", err}
	}

	for v := range c.Volumes() {
		if err := saveVolume(store, root, v); err != nil {
			return err
		}
	}
	return nil
}

// resolveTarget enforces the exactly-one rule for the save target and
// pins a virtual comic to its new location.
func resolveTarget(c *comic.Comic, target string) (string, error) {
	switch {
	case c.Location != "" && target == "":
		return c.Location, nil
	case c.Location == "" && target != "":
		c.Location = target
		return target, nil
	case c.Location == "":
		return "", ErrNoTarget
	default:
		return "", ErrTargetConflict
	}
}

func saveVolume(store Store, root string, v *comic.Volume) error {
	if v.Location == "" {
		v.Location = filepath.Join(root, "volumes", v.Slug())
	}

	doc := volumeDoc{
		Title: v.Title,
		Image: v.Image,
		Pages: v.PageOrder(),
	}
	docPath := filepath.Join(v.Location, volumeDocName)
	if err := store.WriteDocument(docPath, doc); err != nil {
		return &ConfigError{ResourceVolume, docPath, "failed to write document", err}
	}

	for p := range v.Pages() {
		if err := SavePage(store, p); err != nil {
			return err
		}
	}
	return nil
}

// SavePage writes a single page document. The page must already be
// linked to a volume with a resolved location; a virtual page or a
// page inside an unsaved volume cannot be placed on disk.
func SavePage(store Store, p *comic.Page) error {
	v := p.Volume()
	if v == nil || v.Location == "" {
		return &ConfigError{ResourcePage, p.Slug(), "page has no volume or volume has no location", comic.ErrNotLinked}
	}
	if p.Location == "" {
		p.Location = filepath.Join(v.Location, "pages", p.Slug())
	}

	doc := pageDoc{
		Title: p.Title,
		Image: p.Image,
	}
	docPath := filepath.Join(p.Location, pageDocName)
	if err := store.WriteDocument(docPath, doc); err != nil {
		return &ConfigError{ResourcePage, docPath, "failed to write document", err}
	}
	return nil
}
