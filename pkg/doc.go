// Package pkg provides the core libraries for the gutterpress static-site
// generator.
//
// # Overview
//
// Gutterpress turns a directory of TOML documents and image assets into a
// static webcomic site. The pkg directory is organized into four areas:
//
//  1. [comic] - Domain model (Comic, Volume, Page, slugs)
//  2. [config] - Directory-backed persistence (load, validate, save)
//  3. [site] - HTML rendering and site generation
//  4. [cache] - Content-hash build cache
//
// # Architecture
//
// The typical data flow through gutterpress:
//
//	comic directory (comic.toml, volumes/, assets/, templates/)
//	         ↓
//	    [config] package (decode documents, restore the resource graph)
//	         ↓
//	    [comic] package (Comic → Volume → Page, slug-addressed)
//	         ↓
//	    [site] package (templates + writer + generate)
//	         ↓
//	    static HTML output
//
// # Quick Start
//
// Load a comic and render it:
//
//	import (
//	    "context"
//	    "github.com/gutterpress/gutterpress/pkg/config"
//	    "github.com/gutterpress/gutterpress/pkg/site"
//	)
//
//	c, _ := config.Load(config.NewFSStore(), "comic")
//	tmpl, _ := site.LoadTemplates("comic")
//	w := site.NewWriter("site", tmpl, nil)
//	_ = site.Generate(context.Background(), logger, c, w)
//
// [comic]: https://pkg.go.dev/github.com/gutterpress/gutterpress/pkg/comic
// [config]: https://pkg.go.dev/github.com/gutterpress/gutterpress/pkg/config
// [site]: https://pkg.go.dev/github.com/gutterpress/gutterpress/pkg/site
// [cache]: https://pkg.go.dev/github.com/gutterpress/gutterpress/pkg/cache
package pkg
