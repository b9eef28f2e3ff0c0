package cmd

import (
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/bundled"
	"github.com/barysiuk/loadout/internal/core"
)

// addTargetFlags registers the flags that select the install target root.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("project", false, "target ./.claude in the current project instead of ~/.claude")
	cmd.Flags().String("dir", "", "project directory to target (implies --project semantics for that dir)")
}

// addCatalogFlag registers the flag that selects an on-disk catalogue.
func addCatalogFlag(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "load bundles from a directory instead of the built-in catalogue")
}

// targetOptions reads the flags registered by addTargetFlags.
func targetOptions(cmd *cobra.Command) core.PlanOptions {
	project, _ := cmd.Flags().GetBool("project")
	dir, _ := cmd.Flags().GetString("dir")
	return core.PlanOptions{Project: project || dir != "", Dir: dir}
}

// planFromFlags builds the install plan for commands that only select a
// target root. The install command layers its phase flags on top.
func planFromFlags(cmd *cobra.Command) (*core.InstallPlan, error) {
	return core.NewPlan(targetOptions(cmd))
}

// catalogFS returns the bundle catalogue filesystem: the embedded catalogue
// by default, or an on-disk directory when --catalog is set.
func catalogFS(cmd *cobra.Command) (fs.FS, error) {
	if dir, _ := cmd.Flags().GetString("catalog"); dir != "" {
		return os.DirFS(dir), nil
	}
	return bundled.Catalog()
}
