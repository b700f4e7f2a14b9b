// Package site renders a loaded comic into a static HTML tree.
//
// Rendering is template-driven: the comic directory supplies the
// templates (templates/*.html) and the package only wires resource
// data into them. The output tree mirrors the resource URLs:
//
//	<out>/index.html
//	<out>/about.html
//	<out>/archive.html
//	<out>/volumes/<slug>.html
//	<out>/volumes/<slug>/pages/<slug>.html
//	<out>/...                     copied from <comic>/assets
//
// A build cache (see package cache) lets repeated builds skip files
// whose rendered content is unchanged. Template failures surface as
// [*RenderError] naming the view and the resource at fault.
package site
