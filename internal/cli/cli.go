// Package cli implements the gutterpress command-line interface.
//
// The main commands are:
//   - build: render the comic into a static site
//   - new volume / new page: interactively create comic resources
//   - cache: manage the build cache
//
// All commands support --verbose (-v) for debug-level logging and the
// persistent --comic/--output directory flags.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gutterpress/gutterpress/pkg/buildinfo"
	"github.com/gutterpress/gutterpress/pkg/cache"
	"github.com/gutterpress/gutterpress/pkg/config"
)

const (
	// appName is the application name used for directories and display.
	appName = "gutterpress"

	// defaultComicPath is where the comic directory is expected.
	defaultComicPath = "comic"

	// defaultOutputPath is where the generated site is written.
	defaultOutputPath = "site"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	comicPath  string
	outputPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gutterpress builds static sites for webcomics",
		Long:         `Gutterpress is a static-site generator for webcomics: it reads a comic directory (comic.toml, volumes, pages, assets, templates) and renders it into a plain HTML site.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.comicPath, "comic", "c", defaultComicPath, "comic directory")
	root.PersistentFlags().StringVarP(&c.outputPath, "output", "o", defaultOutputPath, "output directory")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// store is the document store every command reads and writes through.
func (c *CLI) store() config.Store {
	return config.NewFSStore()
}

// newBuildCache creates the build cache, or a null cache when caching
// is disabled.
func newBuildCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the per-user build cache directory.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
