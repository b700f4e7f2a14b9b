package site

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// View template names. The comic's templates directory must define one
// template file per view.
const (
	viewIndex   = "index.html"
	viewAbout   = "about.html"
	viewArchive = "archive.html"
	viewVolume  = "volume.html"
	viewPage    = "page.html"
)

var viewNames = []string{viewIndex, viewAbout, viewArchive, viewVolume, viewPage}

// ComicData is the payload for the index, about, and archive views.
type ComicData struct {
	Comic *comic.Comic
}

// LatestVolume returns the comic's latest volume, or nil when the
// comic is empty. Templates cannot use the two-value form.
func (d ComicData) LatestVolume() *comic.Volume {
	v, ok := d.Comic.LatestVolume()
	if !ok {
		return nil
	}
	return v
}

// LatestPage returns the last page of the latest volume, or nil.
func (d ComicData) LatestPage() *comic.Page {
	v := d.LatestVolume()
	if v == nil {
		return nil
	}
	p, ok := v.LatestPage()
	if !ok {
		return nil
	}
	return p
}

// VolumeData is the payload for the volume view.
type VolumeData struct {
	Comic  *comic.Comic
	Volume *comic.Volume
}

// PageData is the payload for the page view.
type PageData struct {
	Comic  *comic.Comic
	Volume *comic.Volume
	Page   *comic.Page
}

// Templates holds the parsed view templates for one comic.
type Templates struct {
	tpl *template.Template
}

// LoadTemplates parses every *.html file under <root>/templates into
// one template set and verifies that all five views are defined.
// Extra files (partials) are allowed and available to the views.
func LoadTemplates(root string) (*Templates, error) {
	pattern := filepath.Join(root, "templates", "*.html")
	tpl, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, &RenderError{View: "templates", Err: err}
	}

	var missing []string
	for _, name := range viewNames {
		if tpl.Lookup(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &RenderError{
			View: "templates",
			Err:  fmt.Errorf("missing view templates: %s", strings.Join(missing, ", ")),
		}
	}

	return &Templates{tpl: tpl}, nil
}

// RenderIndex renders the index view.
func (t *Templates) RenderIndex(c *comic.Comic) (string, error) {
	return t.render("index", viewIndex, c.Name, ComicData{Comic: c})
}

// RenderAbout renders the about view.
func (t *Templates) RenderAbout(c *comic.Comic) (string, error) {
	return t.render("about", viewAbout, c.Name, ComicData{Comic: c})
}

// RenderArchive renders the archive view.
func (t *Templates) RenderArchive(c *comic.Comic) (string, error) {
	return t.render("archive", viewArchive, c.Name, ComicData{Comic: c})
}

// RenderVolume renders the volume view for v.
func (t *Templates) RenderVolume(v *comic.Volume, c *comic.Comic) (string, error) {
	return t.render("volume", viewVolume, v.Title, VolumeData{Comic: c, Volume: v})
}

// RenderPage renders the page view for p.
func (t *Templates) RenderPage(p *comic.Page, c *comic.Comic) (string, error) {
	return t.render("page", viewPage, p.Title, PageData{Comic: c, Volume: p.Volume(), Page: p})
}

func (t *Templates) render(view, name, resource string, data any) (string, error) {
	var b strings.Builder
	if err := t.tpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", &RenderError{View: view, Name: resource, Err: err}
	}
	return b.String(), nil
}
