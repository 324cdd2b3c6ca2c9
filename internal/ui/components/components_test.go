package components

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/render"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// plainPainter styles nothing, so output is plain text
type plainPainter struct{}

func (plainPainter) Token(string) lipgloss.Style { return lipgloss.NewStyle() }
func (plainPainter) Fill(string) lipgloss.Style  { return lipgloss.NewStyle() }
func (plainPainter) Focused() lipgloss.Style     { return lipgloss.NewStyle().Reverse(true) }

func demoView() *render.Element {
	return render.NewSession(manifest.Demo()).View()
}

func TestRenderDemo(t *testing.T) {
	out := Render(demoView(), Frame{Painter: plainPainter{}, Width: 100})

	for _, want := range []string{
		"Case Explorer",
		"Cases",
		"Reports",
		"Quick Filters",
		render.SearchPlaceholder,
		"Subject",
		"C-1042",
		glyph.Get(glyph.Open) + " General",
		glyph.Get(glyph.Closed) + " SIU",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRenderNil(t *testing.T) {
	if out := Render(nil, Frame{Painter: plainPainter{}}); out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}

func TestTabStripEmpty(t *testing.T) {
	strip := render.Tabs(nil, 0)
	if out := TabStrip(strip, Frame{Painter: plainPainter{}}); !strings.Contains(out, "(no tabs)") {
		t.Errorf("Expected empty strip marker, got %q", out)
	}
}

func TestTabStripRuleSpansWidth(t *testing.T) {
	strip := render.Tabs(manifest.Demo().Tabs, 0)
	out := TabStrip(strip, Frame{Painter: plainPainter{}, Width: 60})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected tabs and rule, got %d lines", len(lines))
	}
	if w := lipgloss.Width(lines[1]); w != 60 {
		t.Errorf("Expected rule width 60, got %d", w)
	}
}

func TestTextInputPlaceholderAndInput(t *testing.T) {
	el := demoView().Find(render.KeySearchInput)
	if el == nil {
		t.Fatal("search input not found")
	}

	if out := TextInput(el, Frame{Painter: plainPainter{}}); out != "> "+render.SearchPlaceholder {
		t.Errorf("Expected placeholder, got %q", out)
	}

	f := Frame{Painter: plainPainter{}, Focus: render.KeySearchInput, Input: func(*render.Element) string { return "CURSOR" }}
	if out := TextInput(el, f); out != "CURSOR" {
		t.Errorf("Expected focused input to use the Input func, got %q", out)
	}
}

func TestSelectMarksSelectedOption(t *testing.T) {
	el := demoView().Find(render.KeyFilterSelect)
	if el == nil {
		t.Fatal("filter select not found")
	}

	out := Select(el, Frame{Painter: plainPainter{}})
	if !strings.Contains(out, glyph.Get(glyph.Selected)+" Any") {
		t.Errorf("Expected Any to be marked selected, got %q", out)
	}
	if !strings.Contains(out, glyph.Get(glyph.Bullet)+" Pending") {
		t.Errorf("Expected Pending as an unselected option, got %q", out)
	}
}

func TestSectionIndentsOpenTable(t *testing.T) {
	sections := demoView().FindAll(render.KindSection)
	if len(sections) == 0 {
		t.Fatal("no accordion sections")
	}
	out := Section(sections[0], Frame{Painter: plainPainter{}, Width: 80})
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected the open section to include its table:\n%s", out)
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "  ") {
			t.Errorf("Expected table lines indented, got %q", line)
		}
	}
}

func TestPlaceholderBox(t *testing.T) {
	s := render.NewSession(manifest.Demo())
	for i := range manifest.Demo().Tabs {
		s.Fire(render.TabKey(i), "")
		if ph := s.View().Child(render.KindContent).Child(render.KindPlaceholder); ph != nil {
			out := Placeholder(ph, Frame{Painter: plainPainter{}})
			if !strings.Contains(out, render.PlaceholderText) {
				t.Errorf("Expected placeholder text, got %q", out)
			}
			return
		}
	}
	t.Skip("demo manifest has no placeholder tab")
}
