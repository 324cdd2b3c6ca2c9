package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yildizm/ManifestView/internal/render"
)

// TableView draws a table element: its optional heading over a bordered
// grid. Header cells show their sort glyph; rows alternate the stripe
// background.
type TableView struct {
	Element *render.Element
	Frame   Frame

	heading *render.Element
	header  *render.Element
	rows    []*render.Element
}

// NewTableView splits a table element into its parts
func NewTableView(el *render.Element, f Frame) *TableView {
	v := &TableView{Element: el, Frame: f}
	for _, c := range el.Children {
		switch c.Kind {
		case render.KindHeading:
			v.heading = c
		case render.KindHeaderRow:
			v.header = c
		case render.KindRow:
			v.rows = append(v.rows, c)
		}
	}
	return v
}

// Render renders the table
func (v *TableView) Render() string {
	var parts []string
	if v.heading != nil {
		parts = append(parts, Inline(v.heading, v.Frame))
	}

	if v.header == nil || len(v.header.Children) == 0 {
		parts = append(parts, v.Frame.Painter.Token(render.TokenMuted).Render("(no columns)"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, v.grid())
	if len(v.rows) == 0 {
		parts = append(parts, v.Frame.Painter.Token(render.TokenMuted).Render("(no rows)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *TableView) grid() string {
	headers := make([]string, len(v.header.Children))
	for i, cell := range v.header.Children {
		headers[i] = cell.Label()
	}

	rows := make([][]string, len(v.rows))
	for i, row := range v.rows {
		cells := make([]string, len(headers))
		for j := range cells {
			if j < len(row.Children) {
				cells[j] = row.Children[j].Text
			}
		}
		rows[i] = cells
	}

	p := v.Frame.Painter
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.Token(render.TokenBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col < len(v.header.Children) {
					return v.Frame.style(v.header.Children[col]).Bold(true).Padding(0, 1)
				}
				return p.Token(render.TokenBrand).Bold(true).Padding(0, 1)
			}
			if row >= 0 && row < len(v.rows) {
				return p.Fill(v.rows[row].Token).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	if v.Frame.Width > 0 {
		t = t.Width(v.Frame.Width)
	}
	return t.Render()
}
