package core

import (
	"fmt"
	"os"
)

// Remover removes installed bundles from a target root.
type Remover struct{}

// NewRemover creates a Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes a single installed bundle by name.
func (rem *Remover) Remove(name string, plan *InstallPlan) error {
	dir := plan.BundleDir(name)
	if !dirExists(dir) {
		return fmt.Errorf("bundle %q is not installed in %s", name, plan.SkillsDir())
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %q: %w", name, err)
	}

	// Clean up the skills directory, then the target root, if now empty.
	cleanupEmptyDir(plan.SkillsDir())
	cleanupEmptyDir(plan.TargetRoot)
	return nil
}

// RemoveAll deletes every installed bundle and returns the removed names.
func (rem *Remover) RemoveAll(plan *InstallPlan) ([]string, error) {
	installed, err := InstalledBundles(plan)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, b := range installed {
		if err := rem.Remove(b.Name, plan); err != nil {
			return removed, err
		}
		removed = append(removed, b.Name)
	}
	return removed, nil
}

// InstalledBundles scans the plan's skills directory for installed bundles.
// A missing skills directory means nothing is installed.
func InstalledBundles(plan *InstallPlan) ([]Bundle, error) {
	dir := plan.SkillsDir()
	if !dirExists(dir) {
		return nil, nil
	}
	return LoadCatalog(os.DirFS(dir), nil)
}
