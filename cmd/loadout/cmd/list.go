package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available bundles and MCP servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, err := catalogFS(cmd)
		if err != nil {
			return err
		}
		bundles, err := core.LoadCatalog(fsys, os.Stderr)
		if err != nil {
			return err
		}

		core.NewReporter(os.Stdout).Catalogue(bundles, core.Services)
		return nil
	},
}

func init() {
	addCatalogFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
