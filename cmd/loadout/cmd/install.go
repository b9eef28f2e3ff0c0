package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/bundled"
	"github.com/barysiuk/loadout/internal/core"
	"github.com/barysiuk/loadout/internal/pm"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the bundle catalogue and register MCP servers",
	Long: `Install every bundle from the catalogue into the target skills directory
and register the built-in MCP servers.

By default both phases run against ~/.claude. Use --project (or --dir) for a
project-local ./.claude, and --skills-only or --mcps-only to run a single
phase. Re-running is safe: bundles are overwritten in place and an existing
MCP config file is never modified.

Examples:
  loadout install
  loadout install --project --skills-only
  loadout install --list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := targetOptions(cmd)
		opts.SkillsOnly, _ = cmd.Flags().GetBool("skills-only")
		opts.ServicesOnly, _ = cmd.Flags().GetBool("mcps-only")
		opts.List, _ = cmd.Flags().GetBool("list")

		plan, err := core.NewPlan(opts)
		if err != nil {
			return err
		}

		fsys, err := catalogFS(cmd)
		if err != nil {
			return err
		}
		bundles, err := core.LoadCatalog(fsys, os.Stderr)
		if err != nil {
			return err
		}

		rep := core.NewReporter(os.Stdout)

		// --list inspects without touching the filesystem.
		if plan.ListOnly {
			rep.Catalogue(bundles, core.Services)
			return nil
		}

		failed := false

		if plan.IncludeBundles {
			report := core.NewInstaller(fsys).InstallBundles(bundles, plan)
			rep.Phase(report)
			if report.Failed() {
				failed = true
			}
		}

		if plan.IncludeServices {
			reg, err := core.NewRegistrar(pm.Detect(), bundled.ConfigTemplate())
			if err != nil {
				return err
			}
			report := reg.RegisterServices(plan)
			rep.Phase(report)
			if report.Failed() {
				failed = true
			}
		}

		if failed {
			return errors.New("install finished with errors")
		}

		rep.NextSteps(plan)
		return nil
	},
}

func init() {
	installCmd.Flags().Bool("skills-only", false, "install bundles only, skip MCP server registration")
	installCmd.Flags().Bool("mcps-only", false, "register MCP servers only, skip bundles")
	installCmd.Flags().Bool("list", false, "list available bundles and servers without installing")
	installCmd.MarkFlagsMutuallyExclusive("skills-only", "mcps-only")
	addTargetFlags(installCmd)
	addCatalogFlag(installCmd)

	rootCmd.AddCommand(installCmd)
}
