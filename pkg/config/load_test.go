package config

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

// seedComic populates a mem store with a two-volume comic rooted at
// "comic": intro has pages cover and p1, part-two is empty.
func seedComic(t *testing.T) *MemStore {
	t.Helper()
	s := NewMemStore()

	mustWrite(t, s, "comic/comic.toml", comicDoc{
		Name:        "Test Comic",
		Placeholder: "/placeholder.png",
		Volumes:     []string{"intro", "part-two"},
	})
	mustWrite(t, s, "comic/volumes/intro/volume.toml", volumeDoc{
		Title: "Intro",
		Image: "/intro.png",
		Pages: []string{"cover", "p1"},
	})
	mustWrite(t, s, "comic/volumes/part-two/volume.toml", volumeDoc{
		Title: "Part Two",
		Image: "/part-two.png",
	})
	mustWrite(t, s, "comic/volumes/intro/pages/cover/page.toml", pageDoc{
		Title: "Cover",
		Image: "/cover.png",
	})
	mustWrite(t, s, "comic/volumes/intro/pages/p1/page.toml", pageDoc{
		Title: "P1",
		Image: "/p1.png",
	})

	for _, asset := range []string{"placeholder.png", "intro.png", "part-two.png", "cover.png", "p1.png"} {
		s.Touch(filepath.Join("comic", "assets", asset))
	}
	return s
}

func mustWrite(t *testing.T, s *MemStore, path string, doc any) {
	t.Helper()
	if err := s.WriteDocument(filepath.FromSlash(path), doc); err != nil {
		t.Fatalf("WriteDocument(%s) error = %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	s := seedComic(t)

	c, err := Load(s, "comic")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Name != "Test Comic" {
		t.Errorf("Name = %q, want %q", c.Name, "Test Comic")
	}
	if c.Placeholder != "/placeholder.png" {
		t.Errorf("Placeholder = %q, want %q", c.Placeholder, "/placeholder.png")
	}
	if c.Location != "comic" {
		t.Errorf("Location = %q, want %q", c.Location, "comic")
	}
	if got := c.VolumeOrder(); !slices.Equal(got, []string{"intro", "part-two"}) {
		t.Errorf("VolumeOrder() = %v, want [intro part-two]", got)
	}

	intro, ok := c.Volume("intro")
	if !ok {
		t.Fatal("Volume(intro) not found")
	}
	if got := intro.PageOrder(); !slices.Equal(got, []string{"cover", "p1"}) {
		t.Errorf("PageOrder() = %v, want [cover p1]", got)
	}

	p1, ok := intro.Page("p1")
	if !ok {
		t.Fatal("Page(p1) not found")
	}
	url, err := p1.URL()
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if want := "/volumes/intro/pages/p1.html"; url != want {
		t.Errorf("URL() = %q, want %q", url, want)
	}
}

func TestLoad_MissingComicDocument(t *testing.T) {
	s := NewMemStore()

	_, err := Load(s, "comic")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want *ConfigError", err)
	}
	if cfgErr.Resource != ResourceComic {
		t.Errorf("Resource = %q, want comic", cfgErr.Resource)
	}
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("error does not wrap ErrDocumentNotFound: %v", err)
	}
}

func TestLoad_MissingPlaceholderAsset(t *testing.T) {
	s := seedComic(t)
	mustWrite(t, s, "comic/comic.toml", comicDoc{
		Name:        "Test Comic",
		Placeholder: "/nope.png",
		Volumes:     []string{"intro", "part-two"},
	})

	_, err := Load(s, "comic")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want *ConfigError", err)
	}
	if cfgErr.Resource != ResourceComic {
		t.Errorf("Resource = %q, want comic", cfgErr.Resource)
	}
}

func TestLoad_MissingPageImage(t *testing.T) {
	s := seedComic(t)
	mustWrite(t, s, "comic/volumes/intro/pages/p1/page.toml", pageDoc{
		Title: "P1",
		Image: "/gone.png",
	})

	_, err := Load(s, "comic")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want *ConfigError", err)
	}
	if cfgErr.Resource != ResourcePage {
		t.Errorf("Resource = %q, want page", cfgErr.Resource)
	}
}

func TestLoad_DeclaredPageWithoutDirectory(t *testing.T) {
	s := seedComic(t)
	mustWrite(t, s, "comic/volumes/intro/volume.toml", volumeDoc{
		Title: "Intro",
		Image: "/intro.png",
		Pages: []string{"cover", "p1", "phantom"},
	})

	_, err := Load(s, "comic")
	var intErr *IntegrityError
	if !errors.As(err, &intErr) {
		t.Fatalf("Load() error = %v, want *IntegrityError", err)
	}
	if intErr.Name != "Intro" {
		t.Errorf("Name = %q, want Intro", intErr.Name)
	}
	if !slices.Equal(intErr.Missing, []string{"phantom"}) {
		t.Errorf("Missing = %v, want [phantom]", intErr.Missing)
	}
}

func TestLoad_DeclaredVolumeWithoutDirectory(t *testing.T) {
	s := seedComic(t)
	mustWrite(t, s, "comic/comic.toml", comicDoc{
		Name:        "Test Comic",
		Placeholder: "/placeholder.png",
		Volumes:     []string{"intro", "part-two", "ghost"},
	})

	_, err := Load(s, "comic")
	var intErr *IntegrityError
	if !errors.As(err, &intErr) {
		t.Fatalf("Load() error = %v, want *IntegrityError", err)
	}
	if !slices.Equal(intErr.Missing, []string{"ghost"}) {
		t.Errorf("Missing = %v, want [ghost]", intErr.Missing)
	}
}

func TestLoad_UndeclaredDirectoryIsAppended(t *testing.T) {
	s := seedComic(t)
	// A volume on disk that the comic document does not list.
	mustWrite(t, s, "comic/volumes/bonus/volume.toml", volumeDoc{
		Title: "Bonus",
		Image: "/intro.png",
	})

	c, err := Load(s, "comic")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := c.VolumeOrder()
	if !slices.Contains(got, "bonus") {
		t.Errorf("VolumeOrder() = %v, bonus volume was dropped", got)
	}
	// Declared entries keep their positions.
	if got[0] != "intro" || got[1] != "part-two" {
		t.Errorf("VolumeOrder() = %v, declared prefix disturbed", got)
	}
}

func TestLoad_DirectoryNameIsCanonicalSlug(t *testing.T) {
	s := seedComic(t)
	// Title disagrees with the directory name; the directory wins.
	mustWrite(t, s, "comic/volumes/part-two/volume.toml", volumeDoc{
		Title: "Part Two Renamed Entirely",
		Image: "/part-two.png",
	})

	c, err := Load(s, "comic")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	v, ok := c.Volume("part-two")
	if !ok {
		t.Fatal("Volume(part-two) not found")
	}
	if v.Slug() != "part-two" {
		t.Errorf("Slug() = %q, want directory name part-two", v.Slug())
	}
	if v.Title != "Part Two Renamed Entirely" {
		t.Errorf("Title = %q, want document title preserved", v.Title)
	}
}
