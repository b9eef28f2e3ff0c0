package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barysiuk/loadout/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the external runtimes MCP servers depend on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := doctor.New().Run()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, r := range results {
			mark := "+"
			detail := r.Path
			if !r.Found {
				mark = "x"
				detail = "not found: " + r.Note
				if !r.Required {
					mark = "!"
					detail = "not found (optional): " + r.Note
				}
			}
			fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, r.Name, r.Binary, detail)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if missing := doctor.MissingRequired(results); len(missing) > 0 {
			return fmt.Errorf("%d required runtime(s) missing", len(missing))
		}
		fmt.Fprintln(os.Stdout, "\nAll required runtimes found.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
