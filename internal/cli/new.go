package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gutterpress/gutterpress/pkg/comic"
	"github.com/gutterpress/gutterpress/pkg/config"
)

// errAborted is returned when the user declines a confirmation or
// cancels a selection.
var errAborted = errors.New("aborted")

// newCommand creates the "new" command group for making comic
// resources.
func (c *CLI) newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create new comic resources",
	}

	cmd.AddCommand(c.newVolumeCommand())
	cmd.AddCommand(c.newPageCommand())
	return cmd
}

// newVolumeCommand creates the "new volume" subcommand.
func (c *CLI) newVolumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "volume",
		Short: "Create a new volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(c.store(), c.comicPath)
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			title, err := promptLine(in, "Title for the new volume")
			if err != nil {
				return err
			}
			image, err := c.promptImage(in, loaded, "volume")
			if err != nil {
				return err
			}

			fmt.Println()
			printKeyValue("Title", title)
			printKeyValue("Image", image)
			if err := confirm(in, "Create this volume?"); err != nil {
				if errors.Is(err, errAborted) {
					printWarning("Aborted, nothing created")
					return nil
				}
				return err
			}

			if _, err := loaded.CreateVolume(title, image); err != nil {
				return err
			}
			if err := config.Save(c.store(), loaded, ""); err != nil {
				return err
			}
			printSuccess("Volume created")
			return nil
		},
	}
}

// newPageCommand creates the "new page" subcommand.
func (c *CLI) newPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page",
		Short: "Create a new page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(c.store(), c.comicPath)
			if err != nil {
				return err
			}

			var volumes []*comic.Volume
			for v := range loaded.Volumes() {
				volumes = append(volumes, v)
			}
			if len(volumes) == 0 {
				return fmt.Errorf("no volumes in comic, run %q first", appName+" new volume")
			}

			volume := volumes[0]
			if len(volumes) > 1 {
				volume, err = pickVolume(volumes)
				if errors.Is(err, errAborted) {
					printWarning("Aborted, nothing created")
					return nil
				}
				if err != nil {
					return err
				}
			}
			printInfo("Using volume: %s", volume.Title)

			in := bufio.NewReader(cmd.InOrStdin())
			title, err := promptLine(in, "Title for the new page")
			if err != nil {
				return err
			}
			image, err := c.promptImage(in, loaded, "page")
			if err != nil {
				return err
			}

			fmt.Println()
			printKeyValue("Volume", volume.Title)
			printKeyValue("Title", title)
			printKeyValue("Image", image)
			if err := confirm(in, "Create this page?"); err != nil {
				if errors.Is(err, errAborted) {
					printWarning("Aborted, nothing created")
					return nil
				}
				return err
			}

			if _, err := loaded.CreatePage(title, image, volume); err != nil {
				return err
			}
			if err := config.Save(c.store(), loaded, ""); err != nil {
				return err
			}
			printSuccess("Page created")
			return nil
		},
	}
}

// promptImage asks for an image path for the named resource kind. An
// empty answer falls back to the comic's placeholder image.
func (c *CLI) promptImage(in *bufio.Reader, loaded *comic.Comic, kind string) (string, error) {
	printDetail("Leave the image blank to use the placeholder; you can also drag an image onto the prompt.")
	raw, err := promptLine(in, "Image for the "+kind+" (blank for placeholder)")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return loaded.Placeholder, nil
	}
	return sanitizeImagePath(raw, c.comicPath)
}

// promptLine shows a styled prompt and reads one line of input.
func promptLine(in *bufio.Reader, label string) (string, error) {
	fmt.Print(stylePrompt.Render(label+":") + " ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question, defaulting to yes.
func confirm(in *bufio.Reader, question string) error {
	answer, err := promptLine(in, question+" [Y/n]")
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return nil
	default:
		return errAborted
	}
}

// sanitizeImagePath turns a user-supplied image path into the
// assets-rooted form stored in documents ("/dir/file.png"). The path
// may be absolute or relative to the working directory, may carry
// quotes from a terminal drag-and-drop, and must resolve inside the
// comic's assets directory.
func sanitizeImagePath(raw, comicPath string) (string, error) {
	cleaned := strings.Trim(strings.TrimSpace(raw), `"'`)
	if cleaned == "" {
		return "", fmt.Errorf("image path is empty")
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", err
	}
	assets, err := filepath.Abs(filepath.Join(comicPath, "assets"))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(assets, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside the assets directory %s", cleaned, assets)
	}

	// The assets directory is the root of all stored image paths.
	return "/" + filepath.ToSlash(rel), nil
}
