package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/core"
	"github.com/barysiuk/loadout/internal/tui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [name]",
	Short: "Remove installed bundle(s)",
	Long: `Remove a named bundle from the target skills directory, or every
installed bundle with --all.

The MCP config file is never touched; use 'loadout mcp remove' for that.

Examples:
  loadout uninstall code-reviewer
  loadout uninstall --all --project`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		if all == (len(args) == 1) {
			return errors.New("specify either a bundle name or --all")
		}

		plan, err := planFromFlags(cmd)
		if err != nil {
			return err
		}
		rem := core.NewRemover()

		if !all {
			if err := rem.Remove(args[0], plan); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Removed %q from %s\n", args[0], plan.SkillsDir())
			return nil
		}

		installed, err := core.InstalledBundles(plan)
		if err != nil {
			return err
		}
		if len(installed) == 0 {
			fmt.Fprintf(os.Stdout, "Nothing installed in %s\n", plan.SkillsDir())
			return nil
		}

		if !yes {
			ok, err := tui.Confirm(fmt.Sprintf("Remove all %d bundles from %s?", len(installed), plan.SkillsDir()))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stdout, "Aborted.")
				return nil
			}
		}

		removed, err := rem.RemoveAll(plan)
		for _, name := range removed {
			fmt.Fprintf(os.Stdout, "Removed %q\n", name)
		}
		return err
	},
}

func init() {
	uninstallCmd.Flags().Bool("all", false, "remove every installed bundle")
	uninstallCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	addTargetFlags(uninstallCmd)

	rootCmd.AddCommand(uninstallCmd)
}
