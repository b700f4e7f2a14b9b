package comic

import (
	"fmt"
	"iter"
	"slices"
)

// Volume is an ordered collection of pages within a comic.
type Volume struct {
	// Location is the volume's backing directory. Empty while virtual.
	Location string

	// Title is the display title; the slug is derived from it once.
	Title string

	// Image is a representative image path, rooted at the comic's
	// assets directory.
	Image string

	slug  string
	order []string
	pages map[string]*Page
}

// NewVolume creates a virtual volume with an empty page list.
func NewVolume(title, image string) *Volume {
	return &Volume{
		Title: title,
		Image: image,
		slug:  Slugify(title),
		pages: make(map[string]*Page),
	}
}

// RestoreVolume rebuilds a volume from persisted state. The slug is
// taken verbatim from the directory name, and pageOrder is the declared
// page order from the volume document. Until the corresponding pages
// are added the order list may reference pages that are not present;
// [Volume.MissingPages] reports the difference.
func RestoreVolume(slug, title, image, location string, pageOrder []string) *Volume {
	return &Volume{
		Location: location,
		Title:    title,
		Image:    image,
		slug:     slug,
		order:    slices.Clone(pageOrder),
		pages:    make(map[string]*Page),
	}
}

// Slug returns the volume's identity within its comic.
func (v *Volume) Slug() string { return v.slug }

// URL returns the site-relative URL of the rendered volume index,
// "/volumes/<slug>.html". It is a pure function of the slug.
func (v *Volume) URL() string {
	return fmt.Sprintf("/volumes/%s.html", v.slug)
}

// AddPage attaches a page to the volume and records it under its slug.
// If the slug is already declared in the page order (a prior load
// listed it) the order is left alone; otherwise the slug is appended.
// Adding a slug that is already bound to a page, or a page that already
// belongs to a volume, fails with [ErrDuplicateResource]; an empty slug
// fails with [ErrEmptySlug]. Failed additions leave the volume
// unchanged.
func (v *Volume) AddPage(p *Page) error {
	if p.slug == "" {
		return fmt.Errorf("page %q in volume %q: %w", p.Title, v.slug, ErrEmptySlug)
	}
	if _, exists := v.pages[p.slug]; exists {
		return fmt.Errorf("page %q in volume %q: %w", p.slug, v.slug, ErrDuplicateResource)
	}
	if p.volume != nil {
		return fmt.Errorf("page %q already belongs to volume %q: %w", p.slug, p.volume.slug, ErrDuplicateResource)
	}

	p.volume = v
	if !slices.Contains(v.order, p.slug) {
		v.order = append(v.order, p.slug)
	}
	if v.pages == nil {
		v.pages = make(map[string]*Page)
	}
	v.pages[p.slug] = p
	return nil
}

// Page looks up a page by slug.
func (v *Volume) Page(slug string) (*Page, bool) {
	p, ok := v.pages[slug]
	return p, ok
}

// PageOrder returns a copy of the declared page order.
func (v *Volume) PageOrder() []string { return slices.Clone(v.order) }

// Pages iterates over the volume's pages in page-order. The sequence
// is restartable and skips slugs that have no page yet (use
// MissingPages to detect that state before rendering or saving).
func (v *Volume) Pages() iter.Seq[*Page] {
	return func(yield func(*Page) bool) {
		for _, slug := range v.order {
			p, ok := v.pages[slug]
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// LatestPage returns the last page in page-order. ok is false when the
// volume has no pages.
func (v *Volume) LatestPage() (*Page, bool) {
	if len(v.order) == 0 {
		return nil, false
	}
	p, ok := v.pages[v.order[len(v.order)-1]]
	return p, ok
}

// MissingPages returns the slugs declared in the page order that have
// no corresponding page. A fully-loaded volume must return an empty
// slice; anything else is a referential-integrity error on load.
func (v *Volume) MissingPages() []string {
	var missing []string
	for _, slug := range v.order {
		if _, ok := v.pages[slug]; !ok {
			missing = append(missing, slug)
		}
	}
	return missing
}

func (v *Volume) String() string { return v.Title }
