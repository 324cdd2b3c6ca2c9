package render

import "fmt"

// EventType names a state transition
type EventType string

const (
	EventSelectTab  EventType = "select_tab"
	EventToggleSort EventType = "toggle_sort"
	EventToggleOpen EventType = "toggle_open"
	EventSetSearch  EventType = "set_search"
	EventSetFilter  EventType = "set_filter"

	// EventSearch is fired by the Search button. It changes nothing.
	EventSearch EventType = "search"
)

// Event is the data form of a UI callback. Only the fields of its type
// are set: Tab for tab selection, TableID and Column for sort toggles, Key
// for accordion toggles, Value for text and select changes.
type Event struct {
	Type    EventType `json:"type"`
	Tab     int       `json:"tab,omitempty"`
	TableID string    `json:"table_id,omitempty"`
	Column  string    `json:"column,omitempty"`
	Key     string    `json:"key,omitempty"`
	Value   string    `json:"value,omitempty"`
}

// SelectTab returns the event of a tab button
func SelectTab(index int) Event {
	return Event{Type: EventSelectTab, Tab: index}
}

// ToggleSort returns the event of a sortable header cell
func ToggleSort(tableID, column string) Event {
	return Event{Type: EventToggleSort, TableID: tableID, Column: column}
}

// ToggleOpen returns the event of an accordion section header
func ToggleOpen(key string) Event {
	return Event{Type: EventToggleOpen, Key: key}
}

// SetSearch returns the event of a keystroke in the search box
func SetSearch(text string) Event {
	return Event{Type: EventSetSearch, Value: text}
}

// SetFilter returns the event of a filter selection
func SetFilter(value string) Event {
	return Event{Type: EventSetFilter, Value: value}
}

// WithValue returns a copy of the event carrying value. Inputs and selects
// hold a template event; the presentation fills in what the user entered.
func (e Event) WithValue(value string) Event {
	e.Value = value
	return e
}

// String describes the event for logs
func (e Event) String() string {
	switch e.Type {
	case EventSelectTab:
		return fmt.Sprintf("%s(%d)", e.Type, e.Tab)
	case EventToggleSort:
		return fmt.Sprintf("%s(%s, %s)", e.Type, e.TableID, e.Column)
	case EventToggleOpen:
		return fmt.Sprintf("%s(%s)", e.Type, e.Key)
	case EventSetSearch, EventSetFilter:
		return fmt.Sprintf("%s(%q)", e.Type, e.Value)
	default:
		return string(e.Type)
	}
}

func eventPtr(e Event) *Event {
	return &e
}
