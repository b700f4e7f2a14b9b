package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDocumentNotFound is returned by [Store.ReadDocument] when the
	// document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoTarget is returned by [Save] when the comic is virtual and
	// no target path was supplied.
	ErrNoTarget = errors.New("comic has no location and no target path was given")

	// ErrTargetConflict is returned by [Save] when the comic already
	// has a location and a target path was supplied anyway.
	ErrTargetConflict = errors.New("comic already has a location, target path must not be given")
)

// Resource names the kind of document an error refers to.
type Resource string

// Document kinds.
const (
	ResourceComic  Resource = "comic"
	ResourceVolume Resource = "volume"
	ResourcePage   Resource = "page"
)

// ConfigError reports a missing or malformed document, or a document
// field that failed validation. Path identifies the document and Reason
// the field or parse failure.
type ConfigError struct {
	Resource Resource // which document kind
	Path     string   // document path
	Reason   string   // what is wrong with it
	Err      error    // underlying error, if any
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s config %s: %s", e.Resource, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ConfigError) Unwrap() error { return e.Err }

// IntegrityError reports a declared order list naming slugs that have
// no corresponding directory on disk.
type IntegrityError struct {
	Resource Resource // the parent kind: comic or volume
	Name     string   // the parent's display name
	Missing  []string // declared slugs with no directory
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	child := "volumes"
	if e.Resource == ResourceVolume {
		child = "pages"
	}
	return fmt.Sprintf("%s %q lists %s that do not exist: %s",
		e.Resource, e.Name, child, strings.Join(e.Missing, ", "))
}
