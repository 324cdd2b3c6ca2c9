package render

import (
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// Render builds the full tree for the current state: the tab strip, then
// the active tab's content. Only screen bodies are interpreted; any other
// body renders a fixed placeholder and its fields are ignored. An active
// tab outside the manifest leaves the content region empty.
func Render(m *manifest.Manifest, st *State) *Element {
	if st == nil {
		st = NewState()
	}
	var tabs []manifest.Tab
	if m != nil {
		tabs = m.Tabs
	}

	root := &Element{Kind: KindRoot}
	if m != nil {
		root.Text = m.Title
	}
	root.Add(Tabs(tabs, st.ActiveTab))

	content := &Element{Kind: KindContent}
	root.Add(content)

	tab := m.TabAt(st.ActiveTab)
	if tab == nil {
		return root
	}

	screen := tab.ScreenBody()
	if screen == nil {
		content.Add(&Element{Kind: KindPlaceholder, Text: PlaceholderText, Token: TokenMuted})
		return root
	}

	content.Add(
		SearchAndFilters(st.SearchText, st.Filter, screenTitles(screen)),
		Results(orDefault(screen.ResultsTitle, DefaultResultsTitle), screen.Results, st),
		Accordion(screen.AccordionItems(), st, st),
	)
	return root
}

// Accordion renders one collapsible section per item. The toggle flips the
// item's open state; an open section embeds the item's table without a title.
func Accordion(items []manifest.AccordionItem, open OpenLookup, sorts SortLookup) *Element {
	acc := &Element{Kind: KindAccordion}
	for i, item := range items {
		key := item.Key()
		isOpen := open.IsOpen(key)

		marker := glyph.Get(glyph.Closed)
		if isOpen {
			marker = glyph.Get(glyph.Open)
		}

		section := &Element{Kind: KindSection, Key: key, Open: isOpen, Token: TokenBorder}
		section.Add(&Element{
			Kind:  KindToggle,
			Key:   SectionKey(i),
			Text:  item.Title,
			Glyph: marker,
			Open:  isOpen,
			Token: TokenBrand,
			Event: eventPtr(ToggleOpen(key)),
		})
		if isOpen {
			section.Add(DataTable(sectionTableKey(i), item.Title, item.Table, sorts, true))
		}
		acc.Add(section)
	}
	return acc
}

func screenTitles(s *manifest.Screen) PanelTitles {
	return PanelTitles{
		Search:  orDefault(s.SearchPanelTitle, DefaultSearchTitle),
		Filters: orDefault(s.FiltersPanelTitle, DefaultFiltersTitle),
	}
}

// orDefault returns *s, or def when s is nil. A present empty string is kept.
func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
