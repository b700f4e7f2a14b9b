// Package comic defines the in-memory resource graph for a webcomic:
// a Comic owns Volumes, a Volume owns Pages, and every resource is
// identified by a slug derived from its title.
//
// # Ordering
//
// Each parent keeps an explicit order list of child slugs alongside a
// slug-keyed map. The order list determines build and display order and
// survives a save/load round trip; map iteration order is never relied
// on. [Comic.Volumes] and [Volume.Pages] iterate in order-list order.
//
// # Virtual resources
//
// A resource created in memory has no backing directory yet (its
// Location is empty) and is called virtual. The config codec assigns
// locations when the comic is saved; [RestoreComic], [RestoreVolume]
// and [RestorePage] rebuild resources from persisted state.
//
// # Identity
//
// Slugs are unique within their parent. Titles are not required to be
// unique, but two titles that slugify identically collide: adding the
// second resource fails with [ErrDuplicateResource]. A title with no
// usable characters has no slug at all and is rejected with
// [ErrEmptySlug], since slugs become directory names on save.
package comic
