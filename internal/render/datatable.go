package render

import (
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/table"
)

// DataTable renders one table spec. Header cells of sortable columns fire a
// sort toggle and show the direction glyph when their column is sorted;
// other header cells are inert. A nil spec renders the title over an
// empty table.
func DataTable(key, title string, spec *manifest.DataTable, sorts SortLookup, hideTitle bool) *Element {
	container := &Element{Kind: KindTable, Key: key}
	if !hideTitle {
		container.Add(&Element{Kind: KindHeading, Text: title, Token: TokenBrand})
	}
	if spec == nil {
		return container.Add(&Element{Kind: KindHeaderRow, Token: TokenBrand})
	}
	container.Value = spec.ID

	sortable := make(map[string]bool, len(spec.SortableColumns))
	for _, f := range spec.SortableColumns {
		sortable[f] = true
	}
	current := sorts.SortFor(spec.ID)

	header := &Element{Kind: KindHeaderRow, Token: TokenBrand}
	for i, col := range spec.Columns {
		cell := &Element{
			Kind: KindHeaderCell,
			Key:  columnKey(key, i),
			Text: col.Header,
		}
		if sortable[col.Field] {
			cell.Glyph = sortGlyph(current, col.Field)
			cell.Event = eventPtr(ToggleSort(spec.ID, col.Field))
		}
		header.Add(cell)
	}
	container.Add(header)

	for i, rec := range table.SortRows(spec.Rows, current) {
		row := &Element{Kind: KindRow, Stripe: i % 2, Token: stripeToken(i % 2)}
		for _, col := range spec.Columns {
			row.Add(&Element{Kind: KindCell, Text: rec.Get(col.Field).Display()})
		}
		container.Add(row)
	}
	return container
}

// Results renders the results region: a titled data table
func Results(title string, spec *manifest.DataTable, sorts SortLookup) *Element {
	return DataTable(resultsKey, title, spec, sorts, false)
}

func sortGlyph(s *table.Sort, col string) string {
	switch table.DirectionFor(s, col) {
	case table.Asc:
		return glyph.Get(glyph.SortAsc)
	case table.Desc:
		return glyph.Get(glyph.SortDesc)
	default:
		return ""
	}
}
