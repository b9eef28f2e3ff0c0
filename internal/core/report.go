package core

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for CLI output. Degrades to plain text on dumb terminals.
var (
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	phaseHeaderStyle = lipgloss.NewStyle().Bold(true)
	okMarkStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	warnMarkStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	failMarkStyle    = lipgloss.NewStyle().Foreground(colorDanger)
	detailStyle      = lipgloss.NewStyle().Foreground(colorMuted)
)

// Reporter renders phase reports, catalogue listings, and usage guidance.
// Purely presentational; it produces no state.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Phase prints one line per outcome and a closing count line.
func (r *Reporter) Phase(report *PhaseReport) {
	fmt.Fprintf(r.w, "%s\n", phaseHeaderStyle.Render(report.Name))

	for _, o := range report.Outcomes {
		switch o.Status {
		case StatusOK:
			fmt.Fprintf(r.w, "  %s %s  %s\n", okMarkStyle.Render("+"), o.Subject, detailStyle.Render(o.Detail))
		case StatusWarning:
			fmt.Fprintf(r.w, "  %s %s  %s\n", warnMarkStyle.Render("!"), o.Subject, o.Detail)
		case StatusFatal:
			fmt.Fprintf(r.w, "  %s %s  %s\n", failMarkStyle.Render("x"), o.Subject, o.Detail)
		}
	}

	fmt.Fprintf(r.w, "  %d ok, %d warnings, %d failed\n\n",
		report.Count(StatusOK), report.Count(StatusWarning), report.Count(StatusFatal))
}

// Catalogue prints the available bundles and services as aligned tables.
func (r *Reporter) Catalogue(bundles []Bundle, services []ServiceDef) {
	fmt.Fprintf(r.w, "%s\n", phaseHeaderStyle.Render("Bundles"))
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, b := range bundles {
		fmt.Fprintf(w, "  %s\t%s\n", b.Name, b.Description)
	}
	_ = w.Flush()

	fmt.Fprintf(r.w, "\n%s\n", phaseHeaderStyle.Render("Services"))
	w = tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, svc := range services {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", svc.Name, svc.Runtime, svc.Description)
	}
	_ = w.Flush()
}

// NextSteps prints the closing usage-guidance block after an install.
func (r *Reporter) NextSteps(plan *InstallPlan) {
	fmt.Fprintf(r.w, "%s\n", phaseHeaderStyle.Render("Next steps"))
	if plan.IncludeBundles {
		fmt.Fprintf(r.w, "  Skills are in %s; reference them by name in your agent.\n", plan.SkillsDir())
	}
	if plan.IncludeServices {
		fmt.Fprintf(r.w, "  MCP servers are configured in %s.\n", plan.ConfigPath())
		fmt.Fprintf(r.w, "  Add or remove individual servers with `loadout mcp add <name>` and `loadout mcp remove <name>`.\n")
	}
	fmt.Fprintf(r.w, "  Run `loadout list` to see everything available.\n")
}
