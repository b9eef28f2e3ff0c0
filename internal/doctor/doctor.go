// Package doctor verifies the external runtimes the service phase depends
// on. Checks run through an executor interface so they are mockable.
package doctor

import (
	"os/exec"
)

// Executor resolves binaries. The real implementation consults PATH.
type Executor interface {
	LookPath(name string) (string, error)
}

// realExecutor is the PATH-backed Executor used outside tests.
type realExecutor struct{}

func (realExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CheckResult is the outcome of a single runtime check.
type CheckResult struct {
	Name     string // human-readable check name
	Binary   string // binary looked up on PATH
	Required bool   // required for service registration
	Found    bool
	Path     string // resolved path when found
	Note     string // what breaks when missing
}

// Doctor runs runtime checks.
type Doctor struct {
	exec Executor
}

// New creates a Doctor using the real PATH lookup.
func New() *Doctor {
	return &Doctor{exec: realExecutor{}}
}

// NewWithExecutor creates a Doctor with a custom executor, for testing.
func NewWithExecutor(e Executor) *Doctor {
	return &Doctor{exec: e}
}

// checks is the fixed list of runtime checks, in display order.
var checks = []CheckResult{
	{Name: "Node.js", Binary: "node", Required: false, Note: "runtime for npx-launched servers"},
	{Name: "npm", Binary: "npm", Required: true, Note: "installs npx-launched server packages"},
	{Name: "npx", Binary: "npx", Required: true, Note: "launches most MCP servers"},
	{Name: "uv", Binary: "uv", Required: false, Note: "launches uvx-based servers (dynamodb)"},
	{Name: "git", Binary: "git", Required: false, Note: "used by skills that operate on repositories"},
}

// Run executes every check and returns the results in display order.
func (d *Doctor) Run() []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, c := range checks {
		path, err := d.exec.LookPath(c.Binary)
		c.Found = err == nil
		c.Path = path
		results[i] = c
	}
	return results
}

// MissingRequired returns the required checks that did not pass.
func MissingRequired(results []CheckResult) []CheckResult {
	var missing []CheckResult
	for _, c := range results {
		if c.Required && !c.Found {
			missing = append(missing, c)
		}
	}
	return missing
}
