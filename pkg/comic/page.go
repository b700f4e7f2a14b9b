package comic

import "fmt"

// Page is a single page of a comic. A page belongs to exactly one
// volume; the back-reference is established once by [Volume.AddPage]
// and exists only so the page can compute its URL.
type Page struct {
	// Location is the page's backing directory. Empty while the page
	// is virtual; set by the config codec on load and save.
	Location string

	// Title is the display title. The slug is derived from it once at
	// construction (or taken verbatim from disk) and never changes.
	Title string

	// Image is the page image path, rooted at the comic's assets
	// directory.
	Image string

	slug   string
	volume *Volume
}

// NewPage creates a virtual page. The slug is derived from the title.
func NewPage(title, image string) *Page {
	return &Page{
		Title: title,
		Image: image,
		slug:  Slugify(title),
	}
}

// RestorePage rebuilds a page from persisted state. The slug is taken
// verbatim (the on-disk directory name is canonical) rather than
// re-derived from the title.
func RestorePage(slug, title, image, location string) *Page {
	return &Page{
		Location: location,
		Title:    title,
		Image:    image,
		slug:     slug,
	}
}

// Slug returns the page's identity within its volume.
func (p *Page) Slug() string { return p.slug }

// Volume returns the volume the page belongs to, or nil if the page
// has not been added to one yet.
func (p *Page) Volume() *Volume { return p.volume }

// URL returns the site-relative URL of the rendered page,
// "/volumes/<volume>/pages/<page>.html". It fails with [ErrNotLinked]
// until the page has been attached to a volume.
func (p *Page) URL() (string, error) {
	if p.volume == nil {
		return "", fmt.Errorf("page %q: %w", p.slug, ErrNotLinked)
	}
	return fmt.Sprintf("/volumes/%s/pages/%s.html", p.volume.Slug(), p.slug), nil
}

func (p *Page) String() string { return p.Title }
