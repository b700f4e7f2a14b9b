package config

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// buildVirtual constructs an unsaved comic with two volumes and two
// pages in the first volume.
func buildVirtual(t *testing.T) *comic.Comic {
	t.Helper()
	c := comic.NewComic("Test Comic", "/placeholder.png")

	intro, err := c.CreateVolume("Intro", "/intro.png")
	if err != nil {
		t.Fatalf("CreateVolume() error = %v", err)
	}
	if _, err := c.CreateVolume("Part Two", "/part-two.png"); err != nil {
		t.Fatalf("CreateVolume() error = %v", err)
	}
	if _, err := c.CreatePage("Cover", "/cover.png", intro); err != nil {
		t.Fatalf("CreatePage() error = %v", err)
	}
	if _, err := c.CreatePage("P1", "", intro); err != nil {
		t.Fatalf("CreatePage() error = %v", err)
	}
	return c
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewMemStore()
	c := buildVirtual(t)

	if err := Save(s, c, "comic"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if c.Location != "comic" {
		t.Errorf("Location = %q after Save, want comic", c.Location)
	}

	// The loader validates asset paths, so register them.
	for _, asset := range []string{"placeholder.png", "intro.png", "part-two.png", "cover.png"} {
		s.Touch(AssetPath("comic", asset))
	}

	loaded, err := Load(s, "comic")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Name != c.Name || loaded.Placeholder != c.Placeholder {
		t.Errorf("loaded comic = (%q, %q), want (%q, %q)",
			loaded.Name, loaded.Placeholder, c.Name, c.Placeholder)
	}
	if got, want := loaded.VolumeOrder(), c.VolumeOrder(); !slices.Equal(got, want) {
		t.Errorf("VolumeOrder() = %v, want %v", got, want)
	}

	for v := range c.Volumes() {
		lv, ok := loaded.Volume(v.Slug())
		if !ok {
			t.Fatalf("volume %q missing after round trip", v.Slug())
		}
		if lv.Title != v.Title || lv.Image != v.Image {
			t.Errorf("volume %q = (%q, %q), want (%q, %q)",
				v.Slug(), lv.Title, lv.Image, v.Title, v.Image)
		}
		if got, want := lv.PageOrder(), v.PageOrder(); !slices.Equal(got, want) {
			t.Errorf("volume %q PageOrder() = %v, want %v", v.Slug(), got, want)
		}
		for p := range v.Pages() {
			lp, ok := lv.Page(p.Slug())
			if !ok {
				t.Fatalf("page %q missing after round trip", p.Slug())
			}
			if lp.Title != p.Title || lp.Image != p.Image {
				t.Errorf("page %q = (%q, %q), want (%q, %q)",
					p.Slug(), lp.Title, lp.Image, p.Title, p.Image)
			}
		}
	}

	// The defaulted page image round-trips as the placeholder path.
	intro, _ := loaded.Volume("intro")
	p1, _ := intro.Page("p1")
	if p1.Image != "/placeholder.png" {
		t.Errorf("p1 image = %q, want placeholder", p1.Image)
	}
}

func TestSave_TargetRules(t *testing.T) {
	s := NewMemStore()

	// Virtual comic, no target.
	if err := Save(s, comic.NewComic("X", "/p.png"), ""); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Save(virtual, no target) error = %v, want ErrNoTarget", err)
	}

	// Located comic plus explicit target.
	c := comic.RestoreComic("comic", "X", "/p.png", nil)
	if err := Save(s, c, "elsewhere"); !errors.Is(err, ErrTargetConflict) {
		t.Errorf("Save(located, target) error = %v, want ErrTargetConflict", err)
	}

	// Located comic, no target: saves in place.
	if err := Save(s, c, ""); err != nil {
		t.Errorf("Save(located) error = %v", err)
	}
	var doc comicDoc
	if err := s.ReadDocument(filepath.Join("comic", comicDocName), &doc); err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if doc.Name != "X" {
		t.Errorf("saved name = %q, want X", doc.Name)
	}
}

func TestSavePage_RequiresLinkedVolume(t *testing.T) {
	s := NewMemStore()

	// A page that was never added to a volume.
	err := SavePage(s, comic.NewPage("Orphan", "/o.png"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("SavePage() error = %v, want *ConfigError", err)
	}
	if !errors.Is(err, comic.ErrNotLinked) {
		t.Errorf("error does not wrap ErrNotLinked: %v", err)
	}

	// A page in a volume that has no resolved location.
	v := comic.NewVolume("Intro", "/i.png")
	p := comic.NewPage("Cover", "/c.png")
	if err := v.AddPage(p); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}
	if err := SavePage(s, p); !errors.Is(err, comic.ErrNotLinked) {
		t.Errorf("SavePage() error = %v, want wrapped ErrNotLinked", err)
	}
}
