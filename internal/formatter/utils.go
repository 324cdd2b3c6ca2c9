package formatter

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/yildizm/ManifestView/internal/render"
)

// gridOf holds one table element flattened for output
type gridOf struct {
	title   string
	headers []string
	rows    [][]string
}

// newGrid flattens a table element. With glyphs set, header labels carry
// the sort glyph.
func newGrid(el *render.Element, glyphs bool) gridOf {
	var g gridOf
	for _, c := range el.Children {
		switch c.Kind {
		case render.KindHeading:
			g.title = c.Text
		case render.KindHeaderRow:
			for _, cell := range c.Children {
				if glyphs {
					g.headers = append(g.headers, cell.Label())
				} else {
					g.headers = append(g.headers, cell.Text)
				}
			}
		case render.KindRow:
			row := make([]string, len(c.Children))
			for i, cell := range c.Children {
				row[i] = cell.Text
			}
			g.rows = append(g.rows, row)
		}
	}
	return g
}

// writer builds a go-pretty table writer for the grid. Headers keep their
// case.
func (g gridOf) writer() table.Writer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault

	t := table.NewWriter()
	t.SetStyle(style)

	header := make(table.Row, len(g.headers))
	for i, h := range g.headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, r := range g.rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}
	return t
}

// activeTab returns the selected tab title, "" when none is selected
func activeTab(root *render.Element) string {
	strip := root.Child(render.KindTabStrip)
	for _, tab := range childrenOf(strip) {
		if tab.Selected {
			return tab.Text
		}
	}
	return ""
}

func childrenOf(el *render.Element) []*render.Element {
	if el == nil {
		return nil
	}
	return el.Children
}

// optionList renders select options as "Any|Open|..." with the selected one
// in brackets
func optionList(sel *render.Element) string {
	opts := make([]string, 0, len(sel.Children))
	for _, o := range sel.Children {
		if o.Selected {
			opts = append(opts, "["+o.Text+"]")
		} else {
			opts = append(opts, o.Text)
		}
	}
	return strings.Join(opts, "|")
}
