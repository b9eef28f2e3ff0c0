package core

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest file expected in every bundle directory.
const ManifestName = "SKILL.md"

// LoadCatalog scans the root of fsys for bundle subdirectories and returns
// their definitions sorted by name. A subdirectory without a readable
// manifest is skipped with a warning on warn; it is not an error, so a
// partially populated catalogue still loads.
func LoadCatalog(fsys fs.FS, warn io.Writer) ([]Bundle, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}

	var bundles []Bundle
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		manifestPath := path.Join(entry.Name(), ManifestName)
		meta, err := ParseManifest(fsys, manifestPath)
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "Warning: skipping %s: %v\n", entry.Name(), err)
			}
			continue
		}

		bundles = append(bundles, Bundle{
			Name:        meta.Name,
			Description: meta.Description,
			Dir:         entry.Name(),
			Author:      meta.Metadata.Author,
			Version:     meta.Metadata.Version,
		})
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Name < bundles[j].Name
	})

	return bundles, nil
}

// FindBundle looks up a bundle by name in a loaded catalogue.
func FindBundle(bundles []Bundle, name string) (Bundle, bool) {
	for _, b := range bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}

// ParseManifest reads and parses the YAML frontmatter from a manifest file.
func ParseManifest(fsys fs.FS, manifestPath string) (*BundleMetadata, error) {
	f, err := fsys.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", manifestPath, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)

	// Look for opening ---
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file: %s", manifestPath)
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil, fmt.Errorf("no frontmatter in %s", manifestPath)
	}

	// Collect frontmatter lines until closing ---
	var frontmatter strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		frontmatter.WriteString(line)
		frontmatter.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var meta BundleMetadata
	if err := yaml.Unmarshal([]byte(frontmatter.String()), &meta); err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", manifestPath, err)
	}

	if meta.Name == "" {
		return nil, fmt.Errorf("manifest missing name field: %s", manifestPath)
	}

	return &meta, nil
}
