// Package pm abstracts the external package-runtime operations behind a
// small interface so the service phase can be tested without npm installed.
package pm

import (
	"fmt"
	"os/exec"
	"time"
)

const installTimeout = 120 * time.Second

// Runner installs service packages through an external package manager.
type Runner interface {
	// Name returns the runtime binary name, e.g. "npm".
	Name() string
	// Available reports whether the runtime binary is on PATH.
	Available() bool
	// Install ensures a package is present. Returns the combined command
	// output. A non-zero exit is returned as an error; callers treat it as
	// best-effort and downgrade it to a warning.
	Install(pkg string) (string, error)
}

// Detect returns the runner for the current environment. npm is the only
// runtime the service catalogue installs through today.
func Detect() Runner {
	return &NpmRunner{}
}

// HasBinary reports whether a binary is resolvable on PATH.
func HasBinary(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runWithTimeout runs a command with a timeout, returning combined output.
func runWithTimeout(cmd *exec.Cmd, timeout time.Duration) (string, error) {
	done := make(chan struct{})
	var output []byte
	var cmdErr error

	go func() {
		output, cmdErr = cmd.CombinedOutput()
		close(done)
	}()

	select {
	case <-done:
		return string(output), cmdErr
	case <-time.After(timeout):
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		return "", fmt.Errorf("command timed out after %s", timeout)
	}
}
