package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/ManifestView/internal/render"
)

// textFormatter writes a plain text snapshot: the tab line, the panels as
// label lines and every visible table as a box-drawn grid
type textFormatter struct {
	width int
}

// NewText creates a new text formatter. Table rows wider than width are
// cut; 0 disables the limit.
func NewText(width int) Formatter {
	return &textFormatter{width: width}
}

func (f *textFormatter) Format(root *render.Element) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("nothing to format")
	}

	var b strings.Builder
	if root.Text != "" {
		b.WriteString(root.Text + "\n\n")
	}
	f.writeTabs(&b, root.Child(render.KindTabStrip))

	for _, el := range childrenOf(root.Child(render.KindContent)) {
		b.WriteString("\n")
		f.writeBlock(&b, el, "")
	}
	return []byte(b.String()), nil
}

func (f *textFormatter) writeTabs(b *strings.Builder, strip *render.Element) {
	tabs := childrenOf(strip)
	if len(tabs) == 0 {
		b.WriteString("(no tabs)\n")
		return
	}
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		if t.Selected {
			labels[i] = "[" + t.Text + "]"
		} else {
			labels[i] = " " + t.Text + " "
		}
	}
	b.WriteString(strings.Join(labels, " ") + "\n")
}

func (f *textFormatter) writeBlock(b *strings.Builder, el *render.Element, indent string) {
	switch el.Kind {
	case render.KindPanels:
		for _, p := range el.Children {
			f.writeBlock(b, p, indent)
		}
	case render.KindPanel:
		for _, c := range el.Children {
			f.writeLine(b, c, indent)
		}
		b.WriteString("\n")
	case render.KindTable:
		f.writeTable(b, el, indent)
	case render.KindAccordion:
		for _, s := range el.Children {
			f.writeBlock(b, s, indent)
		}
	case render.KindSection:
		for _, c := range el.Children {
			if c.Kind == render.KindToggle {
				b.WriteString(indent + c.Glyph + " " + c.Text + "\n")
				continue
			}
			f.writeBlock(b, c, indent+"  ")
		}
	case render.KindPlaceholder:
		b.WriteString(indent + "[ " + el.Text + " ]\n")
	default:
		f.writeLine(b, el, indent)
	}
}

func (f *textFormatter) writeLine(b *strings.Builder, el *render.Element, indent string) {
	switch el.Kind {
	case render.KindHeading:
		b.WriteString(indent + el.Text + "\n")
		b.WriteString(indent + strings.Repeat("=", len([]rune(el.Text))) + "\n")
	case render.KindTextInput:
		value := el.Value
		if value == "" {
			value = "(" + el.Placeholder + ")"
		}
		b.WriteString(indent + "> " + value + "\n")
	case render.KindButton:
		b.WriteString(indent + "[ " + el.Text + " ]\n")
	case render.KindSelect:
		b.WriteString(indent + optionList(el) + "\n")
	default:
		b.WriteString(indent + el.Label() + "\n")
	}
}

func (f *textFormatter) writeTable(b *strings.Builder, el *render.Element, indent string) {
	g := newGrid(el, true)
	if g.title != "" {
		f.writeLine(b, &render.Element{Kind: render.KindHeading, Text: g.title}, indent)
	}
	if len(g.headers) == 0 {
		b.WriteString(indent + "(no columns)\n")
		return
	}

	t := g.writer()
	if f.width > 0 {
		t.SetAllowedRowLength(f.width - len(indent))
	}
	for _, line := range strings.Split(t.Render(), "\n") {
		b.WriteString(indent + line + "\n")
	}
	b.WriteString(fmt.Sprintf("%s(%d rows)\n", indent, len(g.rows)))
}
