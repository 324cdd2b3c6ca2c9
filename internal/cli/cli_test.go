package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/ManifestView/internal/config"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/render"
	"github.com/yildizm/ManifestView/internal/table"
)

const peopleManifest = `{
  // people directory
  "tabs": [
    {"title": "People", "body": {"type": "screen",
      "results": {"id": "r1",
        "columns": [{"header": "Name", "field": "name"}, {"header": "Age", "field": "age"}],
        "rows": [{"name": "Zed", "age": "10"}, {"name": "amy", "age": "2"}, {"name": "Bob", "age": "1"}],
        "sortableColumns": ["name", "age"]}}},
    {"title": "Later"},
  ]
}`

const clashingManifest = `{"tabs": [{"title": "Cases", "body": {"type": "screen",
  "accordion": {"items": [{"title": "General"}, {"title": "general"}]}}}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// execute runs the root command with an isolated config file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		glyph.SetASCII(false)
		globalConfig = nil
	})

	cfgPath := writeFile(t, "config.yaml", config.MinimalSampleConfig())
	cmd := NewRootCommand("dev", "none", "unknown")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func parseManifest(t *testing.T, src string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse([]byte(src), manifest.FormatJSON)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	return m
}

func TestResolveTab(t *testing.T) {
	m := parseManifest(t, peopleManifest)

	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"1", 1, false},
		{"0", 0, false},
		{"later", 1, false},
		{"People", 0, false},
		{"2", 0, true},
		{"-1", 0, true},
		{"Nowhere", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := resolveTab(m, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveTab(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveTab(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseSortFlag(t *testing.T) {
	tests := []struct {
		spec    string
		id      string
		want    *table.Sort
		wantErr bool
	}{
		{"r1=name", "r1", &table.Sort{Col: "name", Dir: table.Asc}, false},
		{"r1=name:desc", "r1", &table.Sort{Col: "name", Dir: table.Desc}, false},
		{"=name", "", &table.Sort{Col: "name", Dir: table.Asc}, false},
		{"name", "", nil, true},
		{"r1=", "", nil, true},
		{"r1=name:sideways", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			id, srt, err := parseSortFlag(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSortFlag(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if id != tt.id {
				t.Errorf("Expected table id %q, got %q", tt.id, id)
			}
			if !srt.Equal(tt.want) {
				t.Errorf("Expected sort %v, got %v", tt.want, srt)
			}
		})
	}
}

func TestBuildState(t *testing.T) {
	m := parseManifest(t, peopleManifest)

	state, err := buildState(m, &renderOptions{
		tab:    "Later",
		sorts:  []string{"r1=age:desc"},
		open:   []string{"siu"},
		closed: []string{"general"},
		search: "zed",
		filter: "Closed",
	})
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}

	if state.ActiveTab != 1 {
		t.Errorf("Expected active tab 1, got %d", state.ActiveTab)
	}
	if got := state.SortFor("r1"); got.String() != "age desc" {
		t.Errorf("Expected r1 sorted by age desc, got %s", got)
	}
	if !state.IsOpen("siu") || state.IsOpen("general") {
		t.Errorf("Expected siu open and general closed, got %v", state.Open)
	}
	if state.SearchText != "zed" {
		t.Errorf("Expected search text zed, got %q", state.SearchText)
	}
	if state.Filter != "Closed" {
		t.Errorf("Expected filter Closed, got %q", state.Filter)
	}
}

func TestBuildStateDefaults(t *testing.T) {
	state, err := buildState(parseManifest(t, peopleManifest), &renderOptions{})
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}
	if state.Filter != render.DefaultFilter {
		t.Errorf("Expected default filter, got %q", state.Filter)
	}
	if !state.IsOpen("general") {
		t.Error("Expected general open by default")
	}
	if len(state.Sorts) != 0 {
		t.Errorf("Expected no sorts, got %v", state.Sorts)
	}
}

func TestBuildStateErrors(t *testing.T) {
	m := parseManifest(t, peopleManifest)

	tests := []struct {
		name string
		opts renderOptions
	}{
		{"bad filter", renderOptions{filter: "Sometimes"}},
		{"bad sort", renderOptions{sorts: []string{"r1"}}},
		{"bad tab", renderOptions{tab: "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildState(m, &tt.opts); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestResolveSource(t *testing.T) {
	cfg := config.DefaultConfig()

	if src := resolveSource(nil, cfg); src.Path != "" || src.String() != "demo" {
		t.Errorf("Expected demo source, got %q", src.Path)
	}

	cfg.Manifest.Path = "cases.json"
	if src := resolveSource(nil, cfg); src.Path != "cases.json" || !src.IsFile() {
		t.Errorf("Expected config manifest path, got %q", src.Path)
	}
	if src := resolveSource([]string{"-"}, cfg); src.String() != "stdin" || src.IsFile() {
		t.Errorf("Expected stdin source, got %q", src.Path)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadManifest(manifestSource{Path: dir}, nil); err == nil {
		t.Error("Expected error for a directory")
	}
	if _, err := loadManifest(manifestSource{Path: filepath.Join(dir, "missing.json")}, nil); err == nil {
		t.Error("Expected error for a missing file")
	}
	if _, err := loadManifest(manifestSource{Path: writeFile(t, "cases.txt", "{}")}, nil); !errors.Is(err, manifest.ErrUnsupportedFormat) {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}

func TestRenderCommandCSV(t *testing.T) {
	path := writeFile(t, "people.jsonc", peopleManifest)

	out, err := execute(t, "render", "--format", "csv", "--sort", "r1=age", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"Name,Age", "Bob,1", "amy,2", "Zed,10"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestRenderCommandDemo(t *testing.T) {
	out, err := execute(t, "--ascii", "render", "--format", "text", "--open", "siu")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"Case Explorer", "[Cases]", "v SIU", "v General"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "view.json")

	out, err := execute(t, "render", "--format", "json", "--tab", "Reports", "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("Expected nothing on stdout, got %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		ActiveTab string `json:"active_tab"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.ActiveTab != "Reports" {
		t.Errorf("Expected active tab Reports, got %q", doc.ActiveTab)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"render", "--format", "yaml"}},
		{"unknown filter", []string{"render", "--filter", "Sometimes"}},
		{"unknown theme", []string{"--theme", "neon", "render"}},
		{"missing manifest", []string{"render", "missing.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", writeFile(t, "people.json", peopleManifest))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if strings.Contains(out, "error ") {
		t.Errorf("Expected no errors:\n%s", out)
	}
	if !strings.Contains(out, "warning tabs[1].body") {
		t.Errorf("Expected a warning for the tab without a body:\n%s", out)
	}
}

func TestCheckCommandReportsErrors(t *testing.T) {
	out, err := execute(t, "check", "--format", "json", writeFile(t, "clash.json", clashingManifest))
	if !errors.Is(err, errManifestInvalid) {
		t.Fatalf("Expected errManifestInvalid, got %v", err)
	}

	var report checkReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if report.Valid {
		t.Error("Expected report to be invalid")
	}
	if !manifest.HasErrors(report.Findings) {
		t.Errorf("Expected an error finding, got %v", report.Findings)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "ManifestView development (local-build)") {
		t.Errorf("Unexpected version output: %s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := execute(t, "config", "init", "--minimal", "--output", target); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != config.MinimalSampleConfig() {
		t.Errorf("Expected minimal sample config, got:\n%s", data)
	}

	if _, err := execute(t, "config", "init", "--output", target); err == nil {
		t.Error("Expected error when the config file exists")
	}
}

func TestConfigCommandSkipsBrokenConfig(t *testing.T) {
	broken := writeFile(t, "broken.yaml", "ui: [\n")
	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", broken, "config", "validate"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(out.String(), "Configuration validation failed") {
		t.Errorf("Expected validate to report the failure, got:\n%s", out.String())
	}
}
