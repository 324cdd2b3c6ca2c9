package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ManifestView/internal/render"
)

// TabStrip draws the tab buttons on one line. The selected tab is bold and
// underlined; the strip ends with a rule in the border color.
func TabStrip(el *render.Element, f Frame) string {
	if len(el.Children) == 0 {
		return f.Painter.Token(render.TokenMuted).Render("(no tabs)")
	}

	tabs := make([]string, 0, len(el.Children))
	for _, tab := range el.Children {
		style := f.style(tab).Padding(0, 1)
		if tab.Selected {
			style = style.Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(tab.Text))
	}

	sep := f.Painter.Token(render.TokenBorder).Render("│")
	line := strings.Join(tabs, sep)

	width := lipgloss.Width(line)
	if f.Width > width {
		width = f.Width
	}
	rule := f.Painter.Token(el.Token).Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Left, line, rule)
}
