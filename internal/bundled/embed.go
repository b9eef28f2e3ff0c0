// Package bundled carries the built-in bundle catalogue and the MCP config
// template compiled into the binary.
package bundled

import (
	"embed"
	"io/fs"
)

//go:embed skills
var skillsFS embed.FS

//go:embed templates/mcp.json
var configTemplate []byte

// Catalog returns the embedded bundle catalogue, rooted so that each
// immediate subdirectory is one bundle.
func Catalog() (fs.FS, error) {
	return fs.Sub(skillsFS, "skills")
}

// ConfigTemplate returns the fresh MCP config template. String values may
// contain the home-directory placeholder; substitution happens at write time.
func ConfigTemplate() []byte {
	out := make([]byte, len(configTemplate))
	copy(out, configTemplate)
	return out
}
