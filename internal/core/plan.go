package core

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	targetDirName  = ".claude"
	skillsDirName  = "skills"
	configFileName = "mcp.json"
)

// PlanOptions carries the raw CLI selections used to build an InstallPlan.
type PlanOptions struct {
	SkillsOnly   bool
	ServicesOnly bool
	Project      bool   // install into ./.claude instead of ~/.claude
	List         bool   // print the catalogue and exit without installing
	Dir          string // project directory override; defaults to cwd
}

// NewPlan resolves CLI selections into an immutable InstallPlan.
// The target root is ~/.claude by default, or <dir>/.claude with Project.
func NewPlan(opts PlanOptions) (*InstallPlan, error) {
	var base string
	if opts.Project {
		base = opts.Dir
		if base == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("getting current directory: %w", err)
			}
			base = cwd
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		base = home
	}

	return &InstallPlan{
		TargetRoot:      filepath.Join(base, targetDirName),
		IncludeBundles:  !opts.ServicesOnly,
		IncludeServices: !opts.SkillsOnly,
		ListOnly:        opts.List,
	}, nil
}

// SkillsDir returns the directory bundles are materialized into.
func (p *InstallPlan) SkillsDir() string {
	return filepath.Join(p.TargetRoot, skillsDirName)
}

// BundleDir returns the install directory for a named bundle. The name is
// sanitized, so the result is always directly under SkillsDir.
func (p *InstallPlan) BundleDir(name string) string {
	return filepath.Join(p.SkillsDir(), sanitizeName(name))
}

// ConfigPath returns the path of the MCP configuration file.
func (p *InstallPlan) ConfigPath() string {
	return filepath.Join(p.TargetRoot, configFileName)
}
