package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/render"
)

const peopleManifest = `{"tabs": [
  {"title": "People", "body": {"type": "screen",
    "results": {"id": "r1", "columns": [{"header": "Name", "field": "name"}],
      "rows": [{"name": "Zed"}, {"name": "amy"}], "sortableColumns": ["name"]}}},
  {"title": "Second", "body": {"type": "placeholder"}},
  {"title": "Third", "body": {"type": "placeholder"}}
]}`

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, src string) *Model {
	t.Helper()
	mf, err := manifest.Parse([]byte(src), manifest.FormatJSON)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	m := NewModel(render.NewSession(mf), Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func resultsNames(m *Model) []string {
	var names []string
	for _, row := range m.Session().View().FindAll(render.KindRow) {
		names = append(names, row.Children[0].Text)
	}
	return names
}

func TestInitialFocus(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	if m.Focus() != render.TabKey(0) {
		t.Errorf("Expected focus on first tab, got %q", m.Focus())
	}
	if m.Typing() {
		t.Error("Expected not typing")
	}
}

func TestFocusRingOrder(t *testing.T) {
	m := newTestModel(t, peopleManifest)

	want := []string{
		render.TabKey(1),
		render.TabKey(2),
		render.KeySearchInput,
		render.KeySearchButton,
		render.KeyFilterSelect,
		render.ResultsColumnKey(0),
		render.TabKey(0),
	}
	for i, w := range want {
		press(m, keyTab)
		if m.Focus() != w {
			t.Fatalf("step %d: expected focus %q, got %q", i, w, m.Focus())
		}
	}
}

func TestEnterOnHeaderCyclesSort(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, keyTab, keyTab, keyTab, keyTab, keyTab, keyTab)
	if m.Focus() != render.ResultsColumnKey(0) {
		t.Fatalf("Expected focus on header, got %q", m.Focus())
	}

	steps := []struct {
		rows  string
		glyph string
	}{
		{"amy,Zed", glyph.Get(glyph.SortAsc)},
		{"Zed,amy", glyph.Get(glyph.SortDesc)},
		{"Zed,amy", ""},
	}
	for i, step := range steps {
		press(m, keyEnter)
		if got := strings.Join(resultsNames(m), ","); got != step.rows {
			t.Errorf("click %d: expected rows %s, got %s", i+1, step.rows, got)
		}
		if got := m.Session().View().Find(m.Focus()).Glyph; got != step.glyph {
			t.Errorf("click %d: expected glyph %q, got %q", i+1, step.glyph, got)
		}
	}
}

func TestTypingUpdatesSearchOnly(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, keyTab, keyTab, keyTab)
	if !m.Typing() {
		t.Fatal("Expected typing after focusing the search input")
	}

	press(m, runes("a"), runes("q"))
	if got := m.Session().State().SearchText; got != "aq" {
		t.Errorf("Expected search text %q, got %q", "aq", got)
	}
	if got := strings.Join(resultsNames(m), ","); got != "Zed,amy" {
		t.Errorf("Expected rows unchanged, got %s", got)
	}

	press(m, keyEsc)
	if m.Typing() {
		t.Error("Expected esc to leave the input")
	}
	if cmd := press(m, runes("q")); cmd == nil {
		t.Error("Expected q to quit once not typing")
	}
}

func TestTabLeavesInput(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, keyTab, keyTab, keyTab, keyTab)
	if m.Typing() || m.Focus() != render.KeySearchButton {
		t.Errorf("Expected focus on button without typing, got %q typing=%v", m.Focus(), m.Typing())
	}
}

func TestFilterSelectCycles(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, keyTab, keyTab, keyTab, keyTab, keyTab)
	if m.Focus() != render.KeyFilterSelect {
		t.Fatalf("Expected focus on select, got %q", m.Focus())
	}

	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{keyRight, "Open"},
		{keyEnter, "Closed"},
		{keyLeft, "Open"},
		{keyLeft, "Any"},
		{keyLeft, "Pending"},
	}
	for _, tt := range tests {
		press(m, tt.key)
		if got := m.Session().State().Filter; got != tt.want {
			t.Errorf("after %s: expected filter %s, got %s", tt.key, tt.want, got)
		}
	}
}

func TestTabKeys(t *testing.T) {
	m := newTestModel(t, peopleManifest)

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{runes("2"), 1},
		{runes("9"), 1},
		{runes("]"), 2},
		{runes("]"), 2},
		{runes("["), 1},
		{runes("1"), 0},
		{runes("["), 0},
	}
	for _, tt := range tests {
		press(m, tt.key)
		if got := m.Session().State().ActiveTab; got != tt.want {
			t.Errorf("after %s: expected tab %d, got %d", tt.key, tt.want, got)
		}
	}
}

func TestFocusSurvivesTabSwitch(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, keyTab, keyTab, keyTab, keyTab, keyTab, keyTab)
	press(m, runes("2"))

	// The header is gone; focus falls back to a live element.
	if m.Session().View().Find(m.Focus()) == nil {
		t.Errorf("Expected focus on a rendered element, got %q", m.Focus())
	}
}

func TestReloadMessages(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	press(m, runes("2"))

	m.Update(manifestErrorMsg{err: errors.New("bad json")})
	if !strings.Contains(m.View(), "bad json") {
		t.Error("Expected reload error in the status line")
	}
	if m.Session().State().ActiveTab != 1 {
		t.Error("Expected state kept after a failed reload")
	}

	next, err := manifest.Parse([]byte(`{"tabs": [{"title": "Only"}]}`), manifest.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	m.Update(manifestReloadedMsg{manifest: next, path: "x.json"})
	if m.Session().State().ActiveTab != 0 {
		t.Error("Expected fresh state after reload")
	}
	if strings.Contains(m.View(), "bad json") {
		t.Error("Expected error cleared after reload")
	}
	if m.Focus() != render.TabKey(0) {
		t.Errorf("Expected focus reset, got %q", m.Focus())
	}
}

func TestViewShowsTree(t *testing.T) {
	m := newTestModel(t, peopleManifest)
	view := m.View()
	for _, want := range []string{"People", "Second", "Results", "Name", "Zed", "amy", "Quick Filters", "Filter 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestSnapshotAccordion(t *testing.T) {
	s := render.NewSession(manifest.Demo())
	out := Snapshot(s.View(), 120)

	for _, want := range []string{
		glyph.Get(glyph.Open) + " General",
		glyph.Get(glyph.Closed) + " SIU",
		glyph.Get(glyph.Closed) + " CICS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected snapshot to contain %q", want)
		}
	}
}

func TestThemeOverride(t *testing.T) {
	theme := DefaultTheme.Clone()

	if err := theme.Override(map[string]string{render.TokenBrand: "#112233"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := theme.Tokens[render.TokenBrand]; got.Light != "#112233" || got.Dark != "#112233" {
		t.Errorf("Expected single color for both backgrounds, got %+v", got)
	}
	if err := theme.Override(map[string]string{render.TokenMuted: "#111, #eeeeee"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := theme.Tokens[render.TokenMuted]; got.Light != "#111" || got.Dark != "#eeeeee" {
		t.Errorf("Expected light/dark pair, got %+v", got)
	}

	if DefaultTheme.Tokens[render.TokenBrand].Light == "#112233" {
		t.Error("Override leaked into the built-in theme")
	}

	bad := []map[string]string{
		{"brand.999": "#000000"},
		{render.TokenBrand: "blue"},
		{render.TokenBrand: "#12345"},
	}
	for _, tokens := range bad {
		if err := theme.Override(tokens); err == nil {
			t.Errorf("Expected error for %v", tokens)
		}
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(&DefaultTheme)

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("Expected theme %s to exist", name)
		}
		if GetTheme().Name != name {
			t.Errorf("Expected active theme %s, got %s", name, GetTheme().Name)
		}
	}
	if SetThemeByName("neon") {
		t.Error("Expected unknown theme to be rejected")
	}
}

func TestSetColorMode(t *testing.T) {
	defer lipgloss.SetColorProfile(termenv.Ascii)

	for _, mode := range ColorModes {
		if err := SetColorMode(mode); err != nil {
			t.Errorf("mode %s: unexpected error %v", mode, err)
		}
	}
	if err := SetColorMode("sepia"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.json")
	if err := os.WriteFile(path, []byte(`{"tabs": []}`), 0o600); err != nil {
		t.Fatal(err)
	}

	msgs := make(chan tea.Msg, 4)
	w, err := NewWatcher(path, 10*time.Millisecond, manifest.Load, func(msg tea.Msg) { msgs <- msg }, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(path, []byte(`{"tabs": [{"title": "New"}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	// A reload may catch the file between truncate and write; wait for the
	// one that sees the new content.
	timeout := time.After(5 * time.Second)
	for found := false; !found; {
		select {
		case msg := <-msgs:
			reloaded, ok := msg.(manifestReloadedMsg)
			found = ok && len(reloaded.manifest.Tabs) == 1 && reloaded.manifest.Tabs[0].Title == "New"
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}

func TestWatcherRejectsStdin(t *testing.T) {
	if _, err := NewWatcher("-", 0, manifest.Load, func(tea.Msg) {}, nil); err == nil {
		t.Error("Expected error watching stdin")
	}
}
