package main

import (
	"fmt"
	"os"

	"github.com/barysiuk/loadout/cmd/loadout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'loadout --help' for usage.")
		os.Exit(1)
	}
}
