package render

import (
	"maps"
	"slices"

	"github.com/yildizm/ManifestView/internal/table"
)

// Filter values offered by the filter select, in display order
var FilterOptions = []string{"Any", "Open", "Closed", "Pending"}

// DefaultFilter is the initial filter selection
const DefaultFilter = "Any"

// DefaultOpen returns the initial accordion open map. The keys are fixed
// and do not depend on the manifest: sections whose key is not listed start
// closed.
func DefaultOpen() map[string]bool {
	return map[string]bool{
		"general": true,
		"siu":     false,
		"cics":    false,
	}
}

// SortLookup gives renderers read access to sort states
type SortLookup interface {
	SortFor(tableID string) *table.Sort
}

// OpenLookup gives renderers read access to accordion open states
type OpenLookup interface {
	IsOpen(key string) bool
}

// State is every piece of mutable UI state. It is owned by one Session and
// changed only through the methods below, one per event type.
type State struct {
	ActiveTab  int                    `json:"active_tab"`
	Sorts      map[string]*table.Sort `json:"sorts"`
	Open       map[string]bool        `json:"open"`
	SearchText string                 `json:"search_text"`
	Filter     string                 `json:"filter"`
}

// NewState returns the initial state of a freshly mounted manifest
func NewState() *State {
	return &State{
		ActiveTab: 0,
		Sorts:     make(map[string]*table.Sort),
		Open:      DefaultOpen(),
		Filter:    DefaultFilter,
	}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	out := *s
	out.Sorts = make(map[string]*table.Sort, len(s.Sorts))
	for id, srt := range s.Sorts {
		if srt != nil {
			c := *srt
			srt = &c
		}
		out.Sorts[id] = srt
	}
	out.Open = maps.Clone(s.Open)
	if out.Open == nil {
		out.Open = make(map[string]bool)
	}
	return &out
}

// SortFor returns the sort of a table, nil when it was never sorted or the
// sort was cleared
func (s *State) SortFor(tableID string) *table.Sort {
	return s.Sorts[tableID]
}

// IsOpen reports whether an accordion section is expanded
func (s *State) IsOpen(key string) bool {
	return s.Open[key]
}

// SelectTab makes index the active tab. Indices outside the manifest are
// accepted; the interpreter renders an empty content region for them.
func (s *State) SelectTab(index int) bool {
	if s.ActiveTab == index {
		return false
	}
	s.ActiveTab = index
	return true
}

// ToggleSort advances the sort state machine of one table
func (s *State) ToggleSort(tableID, column string) bool {
	if s.Sorts == nil {
		s.Sorts = make(map[string]*table.Sort)
	}
	s.Sorts[tableID] = table.NextSort(s.Sorts[tableID], column)
	return true
}

// ToggleOpen flips one accordion section
func (s *State) ToggleOpen(key string) bool {
	if s.Open == nil {
		s.Open = make(map[string]bool)
	}
	s.Open[key] = !s.Open[key]
	return true
}

// SetSearchText records the search box content. Nothing filters on it.
func (s *State) SetSearchText(text string) bool {
	if s.SearchText == text {
		return false
	}
	s.SearchText = text
	return true
}

// SetFilter records the filter selection. Values outside FilterOptions are
// ignored. Nothing filters on it.
func (s *State) SetFilter(value string) bool {
	if !slices.Contains(FilterOptions, value) || s.Filter == value {
		return false
	}
	s.Filter = value
	return true
}

// Apply routes an event to its update method and reports whether the state
// changed
func (s *State) Apply(ev Event) bool {
	switch ev.Type {
	case EventSelectTab:
		return s.SelectTab(ev.Tab)
	case EventToggleSort:
		return s.ToggleSort(ev.TableID, ev.Column)
	case EventToggleOpen:
		return s.ToggleOpen(ev.Key)
	case EventSetSearch:
		return s.SetSearchText(ev.Value)
	case EventSetFilter:
		return s.SetFilter(ev.Value)
	default:
		// EventSearch and unknown events are no-ops.
		return false
	}
}
