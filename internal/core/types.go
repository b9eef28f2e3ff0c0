// Package core provides the business logic for Loadout.
// It has zero UI dependencies and is independently testable.
package core

// Bundle is a capability bundle discovered in a catalogue.
type Bundle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dir         string `json:"dir"` // bundle directory relative to the catalogue root
	Author      string `json:"author,omitempty"`
	Version     string `json:"version,omitempty"`
}

// BundleMetadata is the YAML frontmatter parsed from a bundle's SKILL.md.
type BundleMetadata struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Metadata    BundleMetadataDetails `yaml:"metadata,omitempty"`
}

// BundleMetadataDetails holds optional metadata fields from SKILL.md frontmatter.
type BundleMetadataDetails struct {
	Author  string `yaml:"author,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// ServiceDef describes an MCP server: the runtime that launches it, the
// package that provides it, and the config entry written for it.
type ServiceDef struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Runtime     string            `json:"runtime"` // "npx" or "uvx"
	Package     string            `json:"package"`
	Command     string            `json:"command"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env,omitempty"`
}

// InstallPlan is the resolved install request. Built once from CLI flags
// and never mutated afterwards.
type InstallPlan struct {
	TargetRoot      string
	IncludeBundles  bool
	IncludeServices bool
	ListOnly        bool
}

// Status classifies the outcome of a single operation within a phase.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusFatal
)

// Outcome is the result of one operation (one bundle copied, one package
// installed, one config file written).
type Outcome struct {
	Status  Status
	Subject string
	Detail  string
}

// PhaseReport aggregates the outcomes of one install phase.
type PhaseReport struct {
	Name     string
	Outcomes []Outcome
}

// NewPhaseReport creates an empty report for the named phase.
func NewPhaseReport(name string) *PhaseReport {
	return &PhaseReport{Name: name}
}

// Add appends an outcome to the report.
func (r *PhaseReport) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failed reports whether any outcome in the phase was fatal.
func (r *PhaseReport) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusFatal {
			return true
		}
	}
	return false
}

// Count returns the number of outcomes with the given status.
func (r *PhaseReport) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}
