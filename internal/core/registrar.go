package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/barysiuk/loadout/internal/pm"
)

// HomePlaceholder is the literal token inside service config values that is
// replaced with the resolved home directory at write time. It is never
// substituted anywhere else.
const HomePlaceholder = "$HOME"

// ErrConfigExists is returned when the MCP config file already exists and
// would not be overwritten.
var ErrConfigExists = errors.New("config file already exists")

// Services is the built-in MCP service catalogue. The list is fixed: services
// are registered by name, not discovered from the filesystem.
var Services = []ServiceDef{
	{
		Name:        "filesystem",
		Description: "File access rooted at the home directory",
		Runtime:     "npx",
		Package:     "@modelcontextprotocol/server-filesystem",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-filesystem", HomePlaceholder},
	},
	{
		Name:        "memory",
		Description: "Persistent knowledge-graph memory",
		Runtime:     "npx",
		Package:     "@modelcontextprotocol/server-memory",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-memory"},
	},
	{
		Name:        "context7",
		Description: "Up-to-date library documentation lookup",
		Runtime:     "npx",
		Package:     "@upstash/context7-mcp",
		Command:     "npx",
		Args:        []string{"-y", "@upstash/context7-mcp@latest"},
	},
	{
		Name:        "sequential-thinking",
		Description: "Structured step-by-step reasoning",
		Runtime:     "npx",
		Package:     "@modelcontextprotocol/server-sequential-thinking",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-sequential-thinking"},
	},
	{
		Name:        "puppeteer",
		Description: "Browser automation via Puppeteer",
		Runtime:     "npx",
		Package:     "@modelcontextprotocol/server-puppeteer",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-puppeteer"},
	},
	{
		Name:        "playwright",
		Description: "Browser automation via Playwright",
		Runtime:     "npx",
		Package:     "@playwright/mcp",
		Command:     "npx",
		Args:        []string{"-y", "@playwright/mcp"},
	},
	{
		Name:        "dynamodb",
		Description: "DynamoDB table operations",
		Runtime:     "uvx",
		Package:     "awslabs.dynamodb-mcp-server",
		Command:     "uvx",
		Args:        []string{"awslabs.dynamodb-mcp-server@latest"},
		Env: map[string]string{
			"AWS_REGION":       "ap-southeast-2",
			"AWS_PROFILE":      "default",
			"DDB-MCP-READONLY": "false",
		},
	},
	{
		Name:        "aws-kb",
		Description: "AWS knowledge base retrieval",
		Runtime:     "npx",
		Package:     "@modelcontextprotocol/server-aws-kb-retrieval",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-aws-kb-retrieval"},
		Env: map[string]string{
			"AWS_PROFILE": "default",
		},
	},
}

// ServiceByName looks up a built-in service definition.
func ServiceByName(name string) (ServiceDef, bool) {
	for _, svc := range Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceDef{}, false
}

// ServiceNames returns the names of all built-in services, in catalogue order.
func ServiceNames() []string {
	names := make([]string, len(Services))
	for i, svc := range Services {
		names[i] = svc.Name
	}
	return names
}

// Registrar ensures service packages are present and materializes the MCP
// configuration file.
type Registrar struct {
	runner   pm.Runner
	template []byte // fresh-config template with HomePlaceholder tokens
	home     string
}

// NewRegistrar creates a Registrar that installs packages through runner and
// writes fresh config files from template.
func NewRegistrar(runner pm.Runner, template []byte) (*Registrar, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &Registrar{runner: runner, template: template, home: home}, nil
}

// RegisterServices runs the whole service phase: runtime check, best-effort
// package installs, then the config file step. A missing npm runtime aborts
// the phase with a fatal outcome; individual install failures are warnings
// and never stop the loop.
func (r *Registrar) RegisterServices(plan *InstallPlan) *PhaseReport {
	report := NewPhaseReport("services")

	if !r.runner.Available() {
		report.Add(Outcome{
			Status:  StatusFatal,
			Subject: r.runner.Name(),
			Detail:  fmt.Sprintf("%s not found in PATH; service registration skipped", r.runner.Name()),
		})
		return report
	}

	for _, svc := range Services {
		report.Add(r.ensureService(svc))
	}

	report.Add(r.configOutcome(plan))
	return report
}

// ensureService makes a best-effort attempt to have the service's package
// present. A non-zero install exit usually means "already installed" or a
// transient network problem, so it is a warning, not an error.
func (r *Registrar) ensureService(svc ServiceDef) Outcome {
	if svc.Runtime == "uvx" {
		// uvx fetches the package at launch; only the runtime needs to exist.
		if !pm.HasBinary("uvx") && !pm.HasBinary("uv") {
			return Outcome{
				Status:  StatusWarning,
				Subject: svc.Name,
				Detail:  "uv not found in PATH; service will not start until uv is installed",
			}
		}
		return Outcome{Status: StatusOK, Subject: svc.Name, Detail: "launched via uvx"}
	}

	if _, err := r.runner.Install(svc.Package); err != nil {
		return Outcome{
			Status:  StatusWarning,
			Subject: svc.Name,
			Detail:  fmt.Sprintf("install of %s failed (may already be present): %v", svc.Package, err),
		}
	}
	return Outcome{Status: StatusOK, Subject: svc.Name, Detail: svc.Package}
}

// configOutcome runs the config file step for the phase. An existing file is
// never touched; the user merges entries with `loadout mcp add` instead.
func (r *Registrar) configOutcome(plan *InstallPlan) Outcome {
	path := plan.ConfigPath()
	err := r.InitConfig(path, false)
	if errors.Is(err, ErrConfigExists) {
		return Outcome{
			Status:  StatusOK,
			Subject: configFileName,
			Detail:  fmt.Sprintf("%s already exists; left untouched (merge entries with `loadout mcp add <name>`)", path),
		}
	}
	if err != nil {
		return Outcome{Status: StatusFatal, Subject: configFileName, Detail: err.Error()}
	}
	return Outcome{Status: StatusOK, Subject: configFileName, Detail: path}
}

// InitConfig writes a fresh MCP config from the template, substituting the
// home-directory placeholder. Returns ErrConfigExists when the file is
// already present and force is false, so existing user edits are preserved.
func (r *Registrar) InitConfig(path string, force bool) error {
	if fileExists(path) && !force {
		return ErrConfigExists
	}

	content := strings.ReplaceAll(string(r.template), HomePlaceholder, r.home)
	if !json.Valid([]byte(content)) {
		return fmt.Errorf("rendered config is not valid JSON")
	}

	return writeConfigFile(path, content)
}
