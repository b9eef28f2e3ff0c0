package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Load out your AI coding agent with skills and MCP servers",
	Long: `Loadout installs a curated catalogue of capability bundles (SKILL.md
prompt bundles) and registers MCP server definitions for an AI coding agent.

Bundles are copied into the agent's skills directory and MCP servers are
written to its config file, either user-globally (~/.claude) or per project
(./.claude).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loadout %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
