package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterPhase(t *testing.T) {
	report := NewPhaseReport("skills")
	report.Add(Outcome{Status: StatusOK, Subject: "alpha", Detail: "/tmp/x"})
	report.Add(Outcome{Status: StatusWarning, Subject: "beta", Detail: "slow network"})
	report.Add(Outcome{Status: StatusFatal, Subject: "gamma", Detail: "permission denied"})

	var buf bytes.Buffer
	NewReporter(&buf).Phase(report)
	out := buf.String()

	for _, want := range []string{"skills", "alpha", "beta", "gamma", "1 ok, 1 warnings, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReporterCatalogue(t *testing.T) {
	bundles := []Bundle{
		{Name: "alpha", Description: "First bundle"},
		{Name: "beta", Description: "Second bundle"},
	}

	var buf bytes.Buffer
	NewReporter(&buf).Catalogue(bundles, Services)
	out := buf.String()

	for _, want := range []string{"Bundles", "Services", "alpha", "First bundle", "filesystem", "uvx"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReporterNextSteps(t *testing.T) {
	plan := testPlan(t)

	var buf bytes.Buffer
	NewReporter(&buf).NextSteps(plan)
	out := buf.String()

	if !strings.Contains(out, plan.SkillsDir()) {
		t.Errorf("output missing skills dir:\n%s", out)
	}
	if !strings.Contains(out, plan.ConfigPath()) {
		t.Errorf("output missing config path:\n%s", out)
	}

	plan.IncludeServices = false
	buf.Reset()
	NewReporter(&buf).NextSteps(plan)
	if strings.Contains(buf.String(), "mcp add") {
		t.Error("service guidance should be skipped for a skills-only run")
	}
}
