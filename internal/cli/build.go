package cli

import (
	"github.com/spf13/cobra"

	"github.com/gutterpress/gutterpress/pkg/config"
	"github.com/gutterpress/gutterpress/pkg/site"
)

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the comic into a static site",
		Long: `Build loads the comic directory, validates it, and renders the whole
site into the output directory: index, about and archive pages, one
page per volume, one page per comic page, plus the copied assets.

Unchanged pages are skipped on rebuilds via the build cache; use
--no-cache to force a full rewrite.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comic, err := config.Load(c.store(), c.comicPath)
			if err != nil {
				return err
			}

			templates, err := site.LoadTemplates(c.comicPath)
			if err != nil {
				return err
			}

			buildCache, err := newBuildCache(noCache)
			if err != nil {
				return err
			}
			defer buildCache.Close()

			writer := site.NewWriter(c.outputPath, templates, buildCache)
			if err := site.Generate(cmd.Context(), c.Logger, comic, writer); err != nil {
				return err
			}

			printSuccess("Site built into %s", c.outputPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the build cache")
	return cmd
}
