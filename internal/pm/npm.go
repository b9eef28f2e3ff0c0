package pm

import (
	"os/exec"
)

// NpmRunner implements Runner using a global npm install.
type NpmRunner struct{}

func (n *NpmRunner) Name() string { return "npm" }

func (n *NpmRunner) Available() bool {
	return HasBinary("npm")
}

// Install runs `npm install -g <pkg>`. npm exits zero when the package is
// already present, so a failure here usually means a network or permission
// problem.
func (n *NpmRunner) Install(pkg string) (string, error) {
	cmd := exec.Command("npm", "install", "-g", pkg)
	return runWithTimeout(cmd, installTimeout)
}
