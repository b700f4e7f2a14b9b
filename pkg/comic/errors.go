package comic

import "errors"

var (
	// ErrDuplicateResource is returned by [Comic.AddVolume] and
	// [Volume.AddPage] when a resource with the same slug already
	// exists in the target parent. Failed additions leave the parent
	// unchanged.
	ErrDuplicateResource = errors.New("duplicate resource slug")

	// ErrNotLinked is returned by [Page.URL] when the page has not yet
	// been attached to a volume, so the URL cannot be computed.
	ErrNotLinked = errors.New("resource not linked to a parent")

	// ErrEmptySlug is returned by [Comic.AddVolume] and [Volume.AddPage]
	// when the resource's slug is empty. Slugs become directory names
	// and URL segments, so a title with no usable characters cannot be
	// admitted into the graph.
	ErrEmptySlug = errors.New("empty resource slug")
)
