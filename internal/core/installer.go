package core

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Installer materializes catalogue bundles into a target root.
type Installer struct {
	fsys fs.FS // catalogue filesystem the bundles were loaded from
}

// NewInstaller creates an Installer reading bundle payloads from fsys.
func NewInstaller(fsys fs.FS) *Installer {
	return &Installer{fsys: fsys}
}

// InstallBundles copies each bundle into the plan's skills directory.
// Destination files are always overwritten: bundles are declarative
// payloads and re-copying is safe. A failing bundle is recorded and the
// loop continues with the rest.
func (inst *Installer) InstallBundles(bundles []Bundle, plan *InstallPlan) *PhaseReport {
	report := NewPhaseReport("skills")

	for _, b := range bundles {
		dest := plan.BundleDir(b.Name)
		if err := inst.installBundle(b, dest); err != nil {
			report.Add(Outcome{Status: StatusFatal, Subject: b.Name, Detail: err.Error()})
			continue
		}
		report.Add(Outcome{Status: StatusOK, Subject: b.Name, Detail: dest})
	}

	return report
}

// installBundle copies a single bundle directory to dest.
func (inst *Installer) installBundle(b Bundle, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating bundle dir: %w", err)
	}
	if err := copyBundleDir(inst.fsys, b.Dir, dest); err != nil {
		return fmt.Errorf("copying bundle files: %w", err)
	}
	return nil
}

// copyBundleDir copies the contents of src (within fsys) to dst on disk.
func copyBundleDir(fsys fs.FS, src, dst string) error {
	return fs.WalkDir(fsys, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}

		// Skip hidden files/dirs; payloads are plain markdown and assets.
		baseName := path.Base(p)
		if baseName != "." && baseName[0] == '.' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		dstPath := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return os.WriteFile(dstPath, data, 0o644)
	})
}
