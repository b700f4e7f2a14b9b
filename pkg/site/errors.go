package site

import (
	"errors"
	"fmt"
)

// ErrVirtualComic is returned by [Generate] when the comic has no
// backing directory; templates and assets live under the comic root,
// so an unsaved comic cannot be built.
var ErrVirtualComic = errors.New("comic has no location")

// RenderError reports a template failure for a named view and the
// resource being rendered when it happened.
type RenderError struct {
	View string // index, about, archive, volume, page, or templates
	Name string // display name of the resource at fault
	Err  error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("render %s: %v", e.View, e.Err)
	}
	return fmt.Sprintf("render %s for %q: %v", e.View, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error { return e.Err }
