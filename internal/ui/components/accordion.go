package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ManifestView/internal/render"
)

// Accordion draws its sections one under another
func Accordion(el *render.Element, f Frame) string {
	sections := make([]string, 0, len(el.Children))
	for _, s := range el.Children {
		sections = append(sections, Section(s, f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Section draws the toggle line and, when open, the embedded table
// indented under it
func Section(el *render.Element, f Frame) string {
	parts := make([]string, 0, len(el.Children))
	inner := f
	if f.Width > 2 {
		inner.Width = f.Width - 2
	}
	for _, c := range el.Children {
		if c.Kind == render.KindToggle {
			parts = append(parts, Inline(c, f))
			continue
		}
		parts = append(parts, lipgloss.NewStyle().PaddingLeft(2).Render(Render(c, inner)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Placeholder draws the fixed block shown for bodies that are not screens
func Placeholder(el *render.Element, f Frame) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Painter.Token(render.TokenBorder).GetForeground()).
		Padding(1, 4)
	return box.Render(f.Painter.Token(el.Token).Italic(true).Render(el.Text))
}
