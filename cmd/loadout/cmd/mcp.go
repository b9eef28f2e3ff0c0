package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/bundled"
	"github.com/barysiuk/loadout/internal/core"
	"github.com/barysiuk/loadout/internal/pm"
	"github.com/barysiuk/loadout/internal/tui"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP server entries in the config file",
	Long:  `List, add, and remove individual MCP server entries in the target config file.`,
}

// ---------------------------------------------------------------------------
// mcp list
// ---------------------------------------------------------------------------

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configured and available MCP servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planFromFlags(cmd)
		if err != nil {
			return err
		}

		configured, err := core.ConfiguredServices(plan.ConfigPath())
		if err != nil {
			return err
		}
		inConfig := make(map[string]bool, len(configured))
		for _, name := range configured {
			inConfig[name] = true
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, svc := range core.Services {
			mark := " "
			if inConfig[svc.Name] {
				mark = "+"
			}
			fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, svc.Name, svc.Runtime, svc.Description)
		}
		// Entries added by hand, outside the built-in catalogue.
		for _, name := range configured {
			if _, ok := core.ServiceByName(name); !ok {
				fmt.Fprintf(w, "+ %s\t\t(custom entry)\n", name)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "\n%d of %d built-in servers configured in %s\n",
			countBuiltinConfigured(configured), len(core.Services), plan.ConfigPath())
		return nil
	},
}

func countBuiltinConfigured(configured []string) int {
	n := 0
	for _, name := range configured {
		if _, ok := core.ServiceByName(name); ok {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// mcp add
// ---------------------------------------------------------------------------

var mcpAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add one MCP server entry to the config file",
	Long: `Add a built-in MCP server entry to the config file, creating the file
if needed. Comments in a hand-edited config are preserved.

Examples:
  loadout mcp add memory
  loadout mcp add filesystem --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planFromFlags(cmd)
		if err != nil {
			return err
		}
		svc, ok := core.ServiceByName(args[0])
		if !ok {
			return fmt.Errorf("unknown server %q; known servers: %v", args[0], core.ServiceNames())
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		err = core.AddServiceEntry(plan.ConfigPath(), svc, home, force)
		if errors.Is(err, core.ErrAlreadyExists) {
			fmt.Fprintf(os.Stdout, "%q is already configured in %s (use --force to replace)\n", svc.Name, plan.ConfigPath())
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Added %q to %s\n", svc.Name, plan.ConfigPath())
		return nil
	},
}

// ---------------------------------------------------------------------------
// mcp remove
// ---------------------------------------------------------------------------

var mcpRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove one MCP server entry from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planFromFlags(cmd)
		if err != nil {
			return err
		}

		removed, err := core.RemoveServiceEntry(plan.ConfigPath(), args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(os.Stdout, "%q is not configured in %s\n", args[0], plan.ConfigPath())
			return nil
		}

		fmt.Fprintf(os.Stdout, "Removed %q from %s\n", args[0], plan.ConfigPath())
		return nil
	},
}

// ---------------------------------------------------------------------------
// mcp init
// ---------------------------------------------------------------------------

var mcpInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh MCP config file from the built-in template",
	Long: `Write the config file with every built-in server, substituting the
home-directory placeholder. An existing file is left alone unless --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planFromFlags(cmd)
		if err != nil {
			return err
		}
		reg, err := core.NewRegistrar(pm.Detect(), bundled.ConfigTemplate())
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")

		if force && !yes && fileAlreadyThere(plan.ConfigPath()) {
			ok, err := tui.Confirm(fmt.Sprintf("Overwrite %s with the built-in template?", plan.ConfigPath()))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stdout, "Aborted.")
				return nil
			}
		}

		err = reg.InitConfig(plan.ConfigPath(), force)
		if errors.Is(err, core.ErrConfigExists) {
			fmt.Fprintf(os.Stdout, "%s already exists; use --force to overwrite or `loadout mcp add <name>` to merge\n", plan.ConfigPath())
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Wrote %s\n", plan.ConfigPath())
		return nil
	},
}

func fileAlreadyThere(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func init() {
	mcpAddCmd.Flags().Bool("force", false, "replace the entry if already configured")
	mcpInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	mcpInitCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	for _, c := range []*cobra.Command{mcpListCmd, mcpAddCmd, mcpRemoveCmd, mcpInitCmd} {
		addTargetFlags(c)
		mcpCmd.AddCommand(c)
	}

	rootCmd.AddCommand(mcpCmd)
}
