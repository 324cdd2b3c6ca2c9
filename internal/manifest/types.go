package manifest

// NodeType is the tag of the node union
type NodeType string

const (
	TypeStack       NodeType = "stack"
	TypeRow         NodeType = "row"
	TypePanel       NodeType = "panel"
	TypeTable       NodeType = "table"
	TypeAccordion   NodeType = "accordion"
	TypeScreen      NodeType = "screen"
	TypePlaceholder NodeType = "placeholder"
)

// Manifest is the root document: an ordered list of tabs
type Manifest struct {
	Title string `json:"title,omitempty"`
	Tabs  []Tab  `json:"tabs"`
}

// Tab is one entry of the tab strip. Body may be nil when the manifest
// omits it or it is not an object.
type Tab struct {
	Title string `json:"title"`
	Body  Node   `json:"body"`
}

// Node is one region of the layout tree
type Node interface {
	Type() NodeType
}

// Stack lays its children out vertically
type Stack struct {
	Children []Node `json:"children"`
}

// Row lays out a left node and an optional right node
type Row struct {
	Left  Node `json:"left"`
	Right Node `json:"right,omitempty"`
}

// Panel is a titled leaf stub
type Panel struct {
	Title string `json:"title"`
}

// TableStub is a titled leaf stub for a table region
type TableStub struct {
	Title string `json:"title"`
}

// AccordionStub is a titled leaf stub for an accordion region
type AccordionStub struct {
	Title string `json:"title"`
}

// Screen bundles the search panel, filter panel, results table and
// accordion. It is the only node the interpreter renders.
type Screen struct {
	SearchPanelTitle  *string    `json:"searchPanelTitle,omitempty"`
	FiltersPanelTitle *string    `json:"filtersPanelTitle,omitempty"`
	ResultsTitle      *string    `json:"resultsTitle,omitempty"`
	Results           *DataTable `json:"results,omitempty"`
	Accordion         *Accordion `json:"accordion,omitempty"`
}

// Accordion holds the collapsible sections of a screen
type Accordion struct {
	Items []AccordionItem `json:"items"`
}

// AccordionItem is one collapsible section
type AccordionItem struct {
	Title string     `json:"title"`
	Table *DataTable `json:"table,omitempty"`
}

// Placeholder is shown for tabs whose content is not built yet
type Placeholder struct {
	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`
}

// Unknown keeps a node whose tag is missing or unrecognised
type Unknown struct {
	Tag string `json:"type"`
}

func (*Stack) Type() NodeType         { return TypeStack }
func (*Row) Type() NodeType           { return TypeRow }
func (*Panel) Type() NodeType         { return TypePanel }
func (*TableStub) Type() NodeType     { return TypeTable }
func (*AccordionStub) Type() NodeType { return TypeAccordion }
func (*Screen) Type() NodeType        { return TypeScreen }
func (*Placeholder) Type() NodeType   { return TypePlaceholder }
func (u *Unknown) Type() NodeType     { return NodeType(u.Tag) }

// Column projects one row field into a table column
type Column struct {
	Header string `json:"header"`
	Field  string `json:"field"`
}

// DataTable is the data and column schema of one sortable table. ID keys
// the table's sort state and must be unique among mounted tables.
type DataTable struct {
	ID              string   `json:"id"`
	Columns         []Column `json:"columns"`
	Rows            []Record `json:"rows"`
	SortableColumns []string `json:"sortableColumns,omitempty"`
}

// IsSortable reports whether field is listed in SortableColumns
func (t *DataTable) IsSortable(field string) bool {
	if t == nil {
		return false
	}
	for _, f := range t.SortableColumns {
		if f == field {
			return true
		}
	}
	return false
}

// ScreenBody returns the tab body as a screen, or nil when it is not one
func (t *Tab) ScreenBody() *Screen {
	if t == nil {
		return nil
	}
	s, _ := t.Body.(*Screen)
	return s
}

// TabAt returns the tab at index, or nil when index is out of range
func (m *Manifest) TabAt(index int) *Tab {
	if m == nil || index < 0 || index >= len(m.Tabs) {
		return nil
	}
	return &m.Tabs[index]
}

// Tables returns every data table a screen mounts at once, results first
func (s *Screen) Tables() []*DataTable {
	if s == nil {
		return nil
	}
	var tables []*DataTable
	if s.Results != nil {
		tables = append(tables, s.Results)
	}
	for _, item := range s.AccordionItems() {
		if item.Table != nil {
			tables = append(tables, item.Table)
		}
	}
	return tables
}

// AccordionItems returns the accordion items, or none when absent
func (s *Screen) AccordionItems() []AccordionItem {
	if s == nil || s.Accordion == nil {
		return nil
	}
	return s.Accordion.Items
}
