package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/core"
)

var showCmd = &cobra.Command{
	Use:   "show <bundle>",
	Short: "Render a bundle's manifest",
	Long: `Render the named bundle's SKILL.md as formatted markdown.

Examples:
  loadout show code-reviewer
  loadout show data-scientist --catalog ./my-bundles`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, err := catalogFS(cmd)
		if err != nil {
			return err
		}
		bundles, err := core.LoadCatalog(fsys, os.Stderr)
		if err != nil {
			return err
		}

		b, ok := core.FindBundle(bundles, args[0])
		if !ok {
			return fmt.Errorf("bundle %q not found; run `loadout list` to see what is available", args[0])
		}

		raw, err := fs.ReadFile(fsys, path.Join(b.Dir, core.ManifestName))
		if err != nil {
			return fmt.Errorf("reading manifest: %w", err)
		}

		fmt.Print(renderMarkdown(string(raw)))
		return nil
	},
}

// renderMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up.
func renderMarkdown(raw string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return raw
	}
	out, err := r.Render(raw)
	if err != nil {
		return raw
	}
	return out
}

func init() {
	addCatalogFlag(showCmd)
	rootCmd.AddCommand(showCmd)
}
