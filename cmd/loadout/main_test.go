package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/barysiuk/loadout/cmd/loadout/cmd"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"loadout": func() {
			if err := cmd.Execute(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintln(os.Stderr, "Run 'loadout --help' for usage.")
				os.Exit(1)
			}
		},
	})
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		RequireExplicitExec: true,
		Setup: func(e *testscript.Env) error {
			// Set HOME to WORK so ~/.claude/ is created inside the temp dir
			e.Vars = append(e.Vars, "HOME="+e.WorkDir)
			// testscript.Main serves the registered `loadout` command from a
			// shim directory it prepends to PATH; expose it so scripts that
			// rewrite PATH can keep `exec loadout` working.
			shimDir, _, _ := strings.Cut(os.Getenv("PATH"), string(filepath.ListSeparator))
			e.Vars = append(e.Vars, "SHIMDIR="+shimDir)
			return nil
		},
	})
}
