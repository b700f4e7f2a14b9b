package config

// Document filenames within each resource directory.
const (
	comicDocName  = "comic.toml"
	volumeDocName = "volume.toml"
	pageDocName   = "page.toml"
)

// comicDoc is the flat record persisted as comic.toml. Path-valued
// fields are plain strings in the document format.
type comicDoc struct {
	Name        string   `toml:"name"`
	Placeholder string   `toml:"placeholder"`
	Volumes     []string `toml:"volumes"`
}

// volumeDoc is the flat record persisted as volume.toml.
type volumeDoc struct {
	Title string   `toml:"title"`
	Image string   `toml:"image"`
	Pages []string `toml:"pages"`
}

// pageDoc is the flat record persisted as page.toml.
type pageDoc struct {
	Title string `toml:"title"`
	Image string `toml:"image"`
}
