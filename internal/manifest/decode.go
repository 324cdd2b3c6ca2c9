package manifest

import (
	"bytes"
	"encoding/json"
)

// Manifests are decoded leniently. A fragment with the wrong shape decodes
// to its empty default instead of failing the whole document, so a bad
// table renders as an empty region rather than stopping the screen.

func asObject(data []byte) map[string]json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	return obj
}

func asArray(data []byte) []json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil
	}
	return arr
}

// asText reads a scalar as display text; null, missing and composite
// values other than strings read as their display form.
func asText(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return ""
	}
	return v.Display()
}

// asOptionalText returns nil for missing or null fields
func asOptionalText(obj map[string]json.RawMessage, key string) *string {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	s := asText(raw)
	return &s
}

// UnmarshalJSON decodes the root document
func (m *Manifest) UnmarshalJSON(data []byte) error {
	*m = Manifest{}
	obj := asObject(data)
	if obj == nil {
		return nil
	}
	m.Title = asText(obj["title"])
	for _, raw := range asArray(obj["tabs"]) {
		var tab Tab
		_ = tab.UnmarshalJSON(raw)
		m.Tabs = append(m.Tabs, tab)
	}
	return nil
}

// UnmarshalJSON decodes a tab and its body node
func (t *Tab) UnmarshalJSON(data []byte) error {
	*t = Tab{}
	obj := asObject(data)
	if obj == nil {
		return nil
	}
	t.Title = asText(obj["title"])
	t.Body = decodeNode(obj["body"])
	return nil
}

// DecodeNode decodes one node of the layout tree. It returns nil when data
// is not an object.
func DecodeNode(data []byte) Node {
	return decodeNode(data)
}

func decodeNode(data []byte) Node {
	obj := asObject(data)
	if obj == nil {
		return nil
	}

	tag := asText(obj["type"])
	switch NodeType(tag) {
	case TypeStack:
		n := &Stack{}
		for _, raw := range asArray(obj["children"]) {
			if child := decodeNode(raw); child != nil {
				n.Children = append(n.Children, child)
			}
		}
		return n
	case TypeRow:
		return &Row{Left: decodeNode(obj["left"]), Right: decodeNode(obj["right"])}
	case TypePanel:
		return &Panel{Title: asText(obj["title"])}
	case TypeTable:
		return &TableStub{Title: asText(obj["title"])}
	case TypeAccordion:
		return &AccordionStub{Title: asText(obj["title"])}
	case TypePlaceholder:
		return &Placeholder{
			Title:   asOptionalText(obj, "title"),
			Message: asOptionalText(obj, "message"),
		}
	case TypeScreen:
		return decodeScreen(obj)
	default:
		return &Unknown{Tag: tag}
	}
}

func decodeScreen(obj map[string]json.RawMessage) *Screen {
	s := &Screen{
		SearchPanelTitle:  asOptionalText(obj, "searchPanelTitle"),
		FiltersPanelTitle: asOptionalText(obj, "filtersPanelTitle"),
		ResultsTitle:      asOptionalText(obj, "resultsTitle"),
		Results:           decodeDataTable(obj["results"]),
	}

	if acc := asObject(obj["accordion"]); acc != nil {
		s.Accordion = &Accordion{}
		for _, raw := range asArray(acc["items"]) {
			item := asObject(raw)
			if item == nil {
				continue
			}
			s.Accordion.Items = append(s.Accordion.Items, AccordionItem{
				Title: asText(item["title"]),
				Table: decodeDataTable(item["table"]),
			})
		}
	}
	return s
}

func decodeDataTable(data []byte) *DataTable {
	obj := asObject(data)
	if obj == nil {
		return nil
	}
	t := &DataTable{}
	_ = t.decode(obj)
	return t
}

// UnmarshalJSON decodes a table spec; fields with the wrong shape are empty
func (t *DataTable) UnmarshalJSON(data []byte) error {
	*t = DataTable{}
	obj := asObject(data)
	if obj == nil {
		return nil
	}
	return t.decode(obj)
}

func (t *DataTable) decode(obj map[string]json.RawMessage) error {
	t.ID = asText(obj["id"])

	for _, raw := range asArray(obj["columns"]) {
		col := asObject(raw)
		if col == nil {
			continue
		}
		t.Columns = append(t.Columns, Column{
			Header: asText(col["header"]),
			Field:  asText(col["field"]),
		})
	}

	for _, raw := range asArray(obj["rows"]) {
		row := Record{}
		for field, cell := range asObject(raw) {
			var v Value
			if err := v.UnmarshalJSON(cell); err == nil {
				row[field] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}

	for _, raw := range asArray(obj["sortableColumns"]) {
		t.SortableColumns = append(t.SortableColumns, asText(raw))
	}
	return nil
}

// Encoding writes the union tag next to each variant's fields.

func marshalTagged(tag NodeType, fields any) ([]byte, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	typed, err := json.Marshal(map[string]NodeType{"type": tag})
	if err != nil {
		return nil, err
	}
	if bytes.Equal(body, []byte("{}")) {
		return typed, nil
	}
	// {"type":"x"} + {...} -> {"type":"x",...}
	out := append(typed[:len(typed)-1], ',')
	return append(out, body[1:]...), nil
}

func (n *Stack) MarshalJSON() ([]byte, error) {
	type plain Stack
	return marshalTagged(TypeStack, (*plain)(n))
}

func (n *Row) MarshalJSON() ([]byte, error) {
	type plain Row
	return marshalTagged(TypeRow, (*plain)(n))
}

func (n *Panel) MarshalJSON() ([]byte, error) {
	type plain Panel
	return marshalTagged(TypePanel, (*plain)(n))
}

func (n *TableStub) MarshalJSON() ([]byte, error) {
	type plain TableStub
	return marshalTagged(TypeTable, (*plain)(n))
}

func (n *AccordionStub) MarshalJSON() ([]byte, error) {
	type plain AccordionStub
	return marshalTagged(TypeAccordion, (*plain)(n))
}

func (n *Screen) MarshalJSON() ([]byte, error) {
	type plain Screen
	return marshalTagged(TypeScreen, (*plain)(n))
}

func (n *Placeholder) MarshalJSON() ([]byte, error) {
	type plain Placeholder
	return marshalTagged(TypePlaceholder, (*plain)(n))
}
