package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/render"
)

// Panels draws the panels side by side, splitting the frame width evenly
func Panels(el *render.Element, f Frame) string {
	if len(el.Children) == 0 {
		return ""
	}

	inner := f
	if f.Width > 0 {
		// Each box adds two border columns.
		inner.Width = max(f.Width/len(el.Children)-2, 10)
	}

	boxes := make([]string, 0, len(el.Children))
	for _, panel := range el.Children {
		boxes = append(boxes, Panel(panel, inner))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Panel draws a bordered box with one child per line
func Panel(el *render.Element, f Frame) string {
	lines := make([]string, 0, len(el.Children))
	for _, c := range el.Children {
		lines = append(lines, Render(c, f))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Painter.Token(el.Token).GetForeground()).
		Padding(0, 1)
	if f.Width > 0 {
		box = box.Width(f.Width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Inline draws the single-line elements: headings, labels, inputs,
// buttons, selects and toggles
func Inline(el *render.Element, f Frame) string {
	switch el.Kind {
	case render.KindHeading:
		return f.Painter.Token(el.Token).Bold(true).Render(el.Text)
	case render.KindTextInput:
		return TextInput(el, f)
	case render.KindButton:
		return f.style(el).Render("[ " + el.Text + " ]")
	case render.KindSelect:
		return Select(el, f)
	case render.KindToggle:
		return f.style(el).Bold(true).Render(el.Glyph + " " + el.Text)
	default:
		return f.style(el).Render(el.Label())
	}
}

// TextInput draws the search box. The focused input is drawn by f.Input
// when set, so the cursor is shown.
func TextInput(el *render.Element, f Frame) string {
	if f.isFocused(el) && f.Input != nil {
		return f.Input(el)
	}

	text := el.Value
	style := f.style(el)
	if text == "" {
		text = el.Placeholder
		if !f.isFocused(el) {
			style = f.Painter.Token(render.TokenMuted)
		}
	}
	return style.Render("> " + text)
}

// Select draws the current value followed by the option list with the
// selected option marked
func Select(el *render.Element, f Frame) string {
	current := f.style(el).Render("‹ " + el.Value + " " + glyph.Get(glyph.SelectOpen) + " ›")

	options := make([]string, 0, len(el.Children))
	for _, opt := range el.Children {
		marker := glyph.Get(glyph.Bullet)
		style := f.Painter.Token(render.TokenMuted)
		if opt.Selected {
			marker = glyph.Get(glyph.Selected)
			style = f.Painter.Token(render.TokenLabel)
		}
		options = append(options, style.Render(marker+" "+opt.Text))
	}
	if len(options) == 0 {
		return current
	}
	return current + "  " + strings.Join(options, " ")
}
