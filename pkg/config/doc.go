// Package config converts between the in-memory resource graph and its
// on-disk representation: a directory tree of flat TOML documents, one
// per resource.
//
// # Layout
//
//	<root>/comic.toml                                  name, placeholder, volumes=[slug,...]
//	<root>/volumes/<slug>/volume.toml                  title, image, pages=[slug,...]
//	<root>/volumes/<slug>/pages/<slug>/page.toml       title, image
//	<root>/assets/...                                  referenced images
//	<root>/templates/...                               site templates
//
// Loading is directory-driven: every directory under volumes/ (and each
// volume's pages/) is read, whether or not the parent document lists
// it. The declared order lists are order hints, not filters —
// undeclared directories are appended, while declared slugs without a
// directory are a hard [IntegrityError].
//
// Documents are read and written through the [Store] capability so that
// tests can substitute an in-memory backend ([NewMemStore]) for the
// filesystem one ([NewFSStore]).
package config
