package core

import (
	"path/filepath"
	"testing"
)

func TestNewPlan_ProjectLocal(t *testing.T) {
	dir := t.TempDir()

	plan, err := NewPlan(PlanOptions{Project: true, Dir: dir})
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}

	want := filepath.Join(dir, ".claude")
	if plan.TargetRoot != want {
		t.Errorf("TargetRoot = %q, want %q", plan.TargetRoot, want)
	}
	if !plan.IncludeBundles || !plan.IncludeServices {
		t.Error("default plan should include both bundles and services")
	}
}

func TestNewPlan_UserGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	plan, err := NewPlan(PlanOptions{})
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}

	want := filepath.Join(home, ".claude")
	if plan.TargetRoot != want {
		t.Errorf("TargetRoot = %q, want %q", plan.TargetRoot, want)
	}
}

func TestNewPlan_Toggles(t *testing.T) {
	dir := t.TempDir()

	plan, err := NewPlan(PlanOptions{Project: true, Dir: dir, SkillsOnly: true})
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}
	if !plan.IncludeBundles || plan.IncludeServices {
		t.Error("--skills-only should exclude services")
	}

	plan, err = NewPlan(PlanOptions{Project: true, Dir: dir, ServicesOnly: true})
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}
	if plan.IncludeBundles || !plan.IncludeServices {
		t.Error("--mcps-only should exclude bundles")
	}
}

func TestPlanPaths(t *testing.T) {
	plan := &InstallPlan{TargetRoot: "/tmp/x/.claude"}

	if got := plan.SkillsDir(); got != filepath.Join("/tmp/x/.claude", "skills") {
		t.Errorf("SkillsDir() = %q", got)
	}
	if got := plan.BundleDir("alpha"); got != filepath.Join("/tmp/x/.claude", "skills", "alpha") {
		t.Errorf("BundleDir() = %q", got)
	}
	if got := plan.ConfigPath(); got != filepath.Join("/tmp/x/.claude", "mcp.json") {
		t.Errorf("ConfigPath() = %q", got)
	}
}
