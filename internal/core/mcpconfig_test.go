package core

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mcp.json")
}

func mustService(t *testing.T, name string) ServiceDef {
	t.Helper()
	svc, ok := ServiceByName(name)
	if !ok {
		t.Fatalf("unknown service %q", name)
	}
	return svc
}

func TestAddServiceEntry_CreatesFile(t *testing.T) {
	path := testConfigPath(t)
	svc := mustService(t, "filesystem")

	if err := AddServiceEntry(path, svc, "/home/tester", false); err != nil {
		t.Fatalf("AddServiceEntry() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("written config is not valid JSON:\n%s", data)
	}

	entry := gjson.GetBytes(data, "mcpServers.filesystem")
	if !entry.Exists() {
		t.Fatal("filesystem entry missing")
	}
	if got := entry.Get("command").String(); got != "npx" {
		t.Errorf("command = %q, want npx", got)
	}
	if !strings.Contains(entry.Get("args").Raw, "/home/tester") {
		t.Errorf("home placeholder not substituted: %s", entry.Get("args").Raw)
	}
}

func TestAddServiceEntry_AlreadyExists(t *testing.T) {
	path := testConfigPath(t)
	svc := mustService(t, "memory")

	if err := AddServiceEntry(path, svc, "/home/tester", false); err != nil {
		t.Fatal(err)
	}
	err := AddServiceEntry(path, svc, "/home/tester", false)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second add error = %v, want ErrAlreadyExists", err)
	}

	// Force replaces the entry instead.
	if err := AddServiceEntry(path, svc, "/home/tester", true); err != nil {
		t.Errorf("forced add error: %v", err)
	}
}

func TestAddServiceEntry_PreservesComments(t *testing.T) {
	path := testConfigPath(t)
	existing := `{
  // keep me
  "mcpServers": {
    "custom": {"command": "my-server"}
  }
}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AddServiceEntry(path, mustService(t, "memory"), "/home/tester", false); err != nil {
		t.Fatalf("AddServiceEntry() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "// keep me") {
		t.Errorf("comment was lost:\n%s", data)
	}
	if !strings.Contains(string(data), `"custom"`) {
		t.Errorf("existing entry was lost:\n%s", data)
	}
}

func TestAddServiceEntry_WritesEnv(t *testing.T) {
	path := testConfigPath(t)

	if err := AddServiceEntry(path, mustService(t, "dynamodb"), "/home/tester", false); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if got := gjson.GetBytes(data, "mcpServers.dynamodb.env.AWS_REGION").String(); got != "ap-southeast-2" {
		t.Errorf("env AWS_REGION = %q", got)
	}
}

func TestRemoveServiceEntry(t *testing.T) {
	path := testConfigPath(t)

	if err := AddServiceEntry(path, mustService(t, "memory"), "/home/tester", false); err != nil {
		t.Fatal(err)
	}
	if err := AddServiceEntry(path, mustService(t, "playwright"), "/home/tester", false); err != nil {
		t.Fatal(err)
	}

	removed, err := RemoveServiceEntry(path, "memory")
	if err != nil {
		t.Fatalf("RemoveServiceEntry() error: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}

	data, _ := os.ReadFile(path)
	if gjson.GetBytes(data, "mcpServers.memory").Exists() {
		t.Error("memory entry still present")
	}
	if !gjson.GetBytes(data, "mcpServers.playwright").Exists() {
		t.Error("playwright entry should survive")
	}

	removed, err = RemoveServiceEntry(path, "memory")
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Error("removing a missing entry should report false")
	}
}

func TestRemoveServiceEntry_NoFile(t *testing.T) {
	removed, err := RemoveServiceEntry(testConfigPath(t), "memory")
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Error("expected removed=false for a missing file")
	}
}

func TestConfiguredServices(t *testing.T) {
	path := testConfigPath(t)

	names, err := ConfiguredServices(path)
	if err != nil {
		t.Fatal(err)
	}
	if names != nil {
		t.Errorf("expected nil for a missing file, got %v", names)
	}

	for _, n := range []string{"playwright", "memory", "filesystem"} {
		if err := AddServiceEntry(path, mustService(t, n), "/home/tester", false); err != nil {
			t.Fatal(err)
		}
	}

	names, err = ConfiguredServices(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"filesystem", "memory", "playwright"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestConfiguredServices_WithComments(t *testing.T) {
	path := testConfigPath(t)
	content := `{
  // annotated by hand
  "mcpServers": {
    "custom": {"command": "my-server"},
  }
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := ConfiguredServices(path)
	if err != nil {
		t.Fatalf("ConfiguredServices() error: %v", err)
	}
	if len(names) != 1 || names[0] != "custom" {
		t.Errorf("got %v, want [custom]", names)
	}
}
