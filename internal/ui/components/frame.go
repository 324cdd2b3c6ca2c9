package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ManifestView/internal/render"
)

// Painter resolves styling tokens of the render tree to lipgloss styles
type Painter interface {
	Token(token string) lipgloss.Style
	Fill(token string) lipgloss.Style
	Focused() lipgloss.Style
}

// Frame carries what presenters need besides the element itself
type Frame struct {
	Painter Painter
	Width   int

	// Focus is the key of the element under the cursor, "" for none
	Focus string

	// Input draws the focused text input, typically a bubbles textinput
	// view. When nil the input's value is drawn.
	Input func(el *render.Element) string
}

func (f Frame) isFocused(el *render.Element) bool {
	return f.Focus != "" && el.Key == f.Focus
}

// style returns the token style, replaced by the focus style when el is
// under the cursor
func (f Frame) style(el *render.Element) lipgloss.Style {
	if f.isFocused(el) {
		return f.Painter.Focused()
	}
	return f.Painter.Token(el.Token)
}

// Render draws an element and its subtree
func Render(el *render.Element, f Frame) string {
	if el == nil {
		return ""
	}

	switch el.Kind {
	case render.KindRoot:
		return renderRoot(el, f)
	case render.KindTabStrip:
		return TabStrip(el, f)
	case render.KindContent:
		return renderContent(el, f)
	case render.KindPanels:
		return Panels(el, f)
	case render.KindPanel:
		return Panel(el, f)
	case render.KindTable:
		return NewTableView(el, f).Render()
	case render.KindAccordion:
		return Accordion(el, f)
	case render.KindSection:
		return Section(el, f)
	case render.KindPlaceholder:
		return Placeholder(el, f)
	default:
		return Inline(el, f)
	}
}

func renderRoot(el *render.Element, f Frame) string {
	parts := make([]string, 0, len(el.Children)+1)
	if el.Text != "" {
		parts = append(parts, f.Painter.Token(render.TokenBrand).Bold(true).Render(el.Text))
	}
	for _, c := range el.Children {
		parts = append(parts, Render(c, f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderContent(el *render.Element, f Frame) string {
	parts := make([]string, 0, 2*len(el.Children))
	for i, c := range el.Children {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, Render(c, f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
