package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/ManifestView/internal/render"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(root *render.Element) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("nothing to format")
	}

	var b strings.Builder
	title := root.Text
	if title == "" {
		title = activeTab(root)
	}
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}

	f.writeTabs(&b, root.Child(render.KindTabStrip))
	for _, el := range childrenOf(root.Child(render.KindContent)) {
		f.writeBlock(&b, el, 2)
	}
	return []byte(b.String()), nil
}

// writeTabs writes the tab strip as a list with the selected tab in bold
func (f *markdownFormatter) writeTabs(b *strings.Builder, strip *render.Element) {
	tabs := childrenOf(strip)
	if len(tabs) == 0 {
		return
	}
	for _, t := range tabs {
		if t.Selected {
			b.WriteString("- **" + t.Text + "**\n")
		} else {
			b.WriteString("- " + t.Text + "\n")
		}
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeBlock(b *strings.Builder, el *render.Element, level int) {
	heading := strings.Repeat("#", min(level, 6)) + " "

	switch el.Kind {
	case render.KindPanels:
		for _, p := range el.Children {
			f.writeBlock(b, p, level)
		}
	case render.KindPanel:
		for _, c := range el.Children {
			switch c.Kind {
			case render.KindHeading:
				b.WriteString(heading + c.Text + "\n\n")
			case render.KindTextInput:
				b.WriteString(fmt.Sprintf("- %s: `%s`\n", c.Placeholder, c.Value))
			case render.KindButton:
				b.WriteString("- [" + c.Text + "]\n")
			case render.KindLabel:
				b.WriteString("- " + c.Text + ":")
			case render.KindSelect:
				b.WriteString(" `" + optionList(c) + "`\n")
			}
		}
		b.WriteString("\n")
	case render.KindTable:
		g := newGrid(el, true)
		if g.title != "" {
			b.WriteString(heading + g.title + "\n\n")
		}
		if len(g.headers) == 0 {
			b.WriteString("_No columns._\n\n")
			return
		}
		b.WriteString(g.writer().RenderMarkdown() + "\n\n")
	case render.KindAccordion:
		for _, s := range el.Children {
			f.writeBlock(b, s, level)
		}
	case render.KindSection:
		for _, c := range el.Children {
			if c.Kind == render.KindToggle {
				b.WriteString(heading + c.Glyph + " " + c.Text + "\n\n")
				continue
			}
			f.writeBlock(b, c, level+1)
		}
	case render.KindPlaceholder:
		b.WriteString("> " + el.Text + "\n\n")
	}
}
