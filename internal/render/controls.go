package render

import (
	"strconv"

	"github.com/yildizm/ManifestView/internal/manifest"
)

// Tabs renders one button per tab in manifest order. Only the button at
// active is selected; each fires its own selection.
func Tabs(tabs []manifest.Tab, active int) *Element {
	strip := &Element{Kind: KindTabStrip, Token: TokenBorder}
	for i, t := range tabs {
		tab := &Element{
			Kind:  KindTab,
			Key:   TabKey(i),
			Text:  t.Title,
			Token: TokenTab,
			Event: eventPtr(SelectTab(i)),
		}
		if i == active {
			tab.Selected = true
			tab.Token = TokenTabActive
		}
		strip.Add(tab)
	}
	return strip
}

// PanelTitles are the headings of the search and filter panels
type PanelTitles struct {
	Search  string
	Filters string
}

// DefaultPanelTitles returns the headings used when a screen names none
func DefaultPanelTitles() PanelTitles {
	return PanelTitles{Search: DefaultSearchTitle, Filters: DefaultFiltersTitle}
}

// SearchAndFilters renders the search box, the inert Search button and the
// filter select. Both values are captured in State and used nowhere else.
func SearchAndFilters(searchText, filter string, titles PanelTitles) *Element {
	search := (&Element{Kind: KindPanel, Token: TokenBorder}).Add(
		&Element{Kind: KindHeading, Text: titles.Search, Token: TokenBrand},
		&Element{
			Kind:        KindTextInput,
			Key:         KeySearchInput,
			Value:       searchText,
			Placeholder: SearchPlaceholder,
			Token:       TokenBorder,
			Event:       eventPtr(SetSearch("")),
		},
		&Element{
			Kind:  KindButton,
			Key:   KeySearchButton,
			Text:  SearchButtonText,
			Token: TokenBorder,
			Event: eventPtr(Event{Type: EventSearch}),
		},
	)

	sel := &Element{
		Kind:  KindSelect,
		Key:   KeyFilterSelect,
		Value: filter,
		Token: TokenBorder,
		Event: eventPtr(SetFilter("")),
	}
	for i, opt := range FilterOptions {
		sel.Add(&Element{
			Kind:     KindOption,
			Key:      KeyFilterSelect + "/" + strconv.Itoa(i),
			Text:     opt,
			Value:    opt,
			Selected: opt == filter,
		})
	}

	filters := (&Element{Kind: KindPanel, Token: TokenBorder}).Add(
		&Element{Kind: KindHeading, Text: titles.Filters, Token: TokenBrand},
		&Element{Kind: KindLabel, Text: FilterLabel, Token: TokenLabel},
		sel,
	)

	return (&Element{Kind: KindPanels}).Add(search, filters)
}
