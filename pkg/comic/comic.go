package comic

import (
	"fmt"
	"iter"
	"slices"
)

// Comic is the root of the resource graph: an ordered collection of
// volumes plus comic-wide display metadata.
type Comic struct {
	// Location is the comic's backing directory. Empty while virtual.
	Location string

	// Name is the comic's display name.
	Name string

	// Placeholder is the default page image, rooted at the comic's
	// assets directory. Pages created without an explicit image use it.
	Placeholder string

	order   []string
	volumes map[string]*Volume
}

// NewComic creates a virtual comic with no volumes.
func NewComic(name, placeholder string) *Comic {
	return &Comic{
		Name:        name,
		Placeholder: placeholder,
		volumes:     make(map[string]*Volume),
	}
}

// RestoreComic rebuilds a comic from persisted state. volumeOrder is
// the declared volume order from the comic document; volumes restored
// from disk are attached afterwards with [Comic.AddVolume].
func RestoreComic(location, name, placeholder string, volumeOrder []string) *Comic {
	return &Comic{
		Location:    location,
		Name:        name,
		Placeholder: placeholder,
		order:       slices.Clone(volumeOrder),
		volumes:     make(map[string]*Volume),
	}
}

// AddVolume records a volume under its slug. Slugs already declared in
// the volume order keep their position; undeclared slugs are appended,
// so volumes discovered on disk but absent from the comic document
// still join the graph. Adding a slug that is already bound fails with
// [ErrDuplicateResource], and an empty slug (a title with no usable
// characters) fails with [ErrEmptySlug]; either way the comic is left
// unchanged.
func (c *Comic) AddVolume(v *Volume) error {
	if v.slug == "" {
		return fmt.Errorf("volume %q in comic %q: %w", v.Title, c.Name, ErrEmptySlug)
	}
	if _, exists := c.volumes[v.slug]; exists {
		return fmt.Errorf("volume %q in comic %q: %w", v.slug, c.Name, ErrDuplicateResource)
	}

	if !slices.Contains(c.order, v.slug) {
		c.order = append(c.order, v.slug)
	}
	if c.volumes == nil {
		c.volumes = make(map[string]*Volume)
	}
	c.volumes[v.slug] = v
	return nil
}

// CreateVolume constructs a virtual volume, derives its slug from the
// title, and adds it to the comic.
func (c *Comic) CreateVolume(title, image string) (*Volume, error) {
	v := NewVolume(title, image)
	if err := c.AddVolume(v); err != nil {
		return nil, err
	}
	return v, nil
}

// CreatePage constructs a virtual page and adds it to the given
// volume. An empty image falls back to the comic's placeholder.
func (c *Comic) CreatePage(title, image string, v *Volume) (*Page, error) {
	if image == "" {
		image = c.Placeholder
	}
	p := NewPage(title, image)
	if err := v.AddPage(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Volume looks up a volume by slug.
func (c *Comic) Volume(slug string) (*Volume, bool) {
	v, ok := c.volumes[slug]
	return v, ok
}

// VolumeOrder returns a copy of the declared volume order.
func (c *Comic) VolumeOrder() []string { return slices.Clone(c.order) }

// Volumes iterates over the comic's volumes in volume-order. The
// sequence is restartable and skips slugs that have no volume yet.
func (c *Comic) Volumes() iter.Seq[*Volume] {
	return func(yield func(*Volume) bool) {
		for _, slug := range c.order {
			v, ok := c.volumes[slug]
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// LatestVolume returns the last volume in volume-order. ok is false
// when the comic has no volumes.
func (c *Comic) LatestVolume() (*Volume, bool) {
	if len(c.order) == 0 {
		return nil, false
	}
	v, ok := c.volumes[c.order[len(c.order)-1]]
	return v, ok
}

// MissingVolumes returns the slugs declared in the volume order that
// have no corresponding volume. Must be empty once loading completes.
func (c *Comic) MissingVolumes() []string {
	var missing []string
	for _, slug := range c.order {
		if _, ok := c.volumes[slug]; !ok {
			missing = append(missing, slug)
		}
	}
	return missing
}

func (c *Comic) String() string { return c.Name }
