package manifest

import "fmt"

// Severity grades a checker finding
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the severity label
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Finding is one problem reported by Check
type Finding struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

// String formats the finding as "severity path: message"
func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Severity, f.Path, f.Message)
}

// HasErrors reports whether any finding is an error
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check reports manifest problems the renderer tolerates silently: shared
// table ids, tables without ids, sortable fields with no column, unknown
// node types and duplicate tab titles.
func Check(m *Manifest) []Finding {
	c := &checker{}
	if m == nil || len(m.Tabs) == 0 {
		c.add(SeverityWarning, "tabs", "manifest has no tabs")
		return c.findings
	}

	titles := make(map[string]int)
	for i := range m.Tabs {
		tab := &m.Tabs[i]
		path := fmt.Sprintf("tabs[%d]", i)

		if prev, ok := titles[tab.Title]; ok {
			c.add(SeverityWarning, path+".title", fmt.Sprintf("duplicate tab title %q (also tabs[%d])", tab.Title, prev))
		} else {
			titles[tab.Title] = i
		}

		switch body := tab.Body.(type) {
		case nil:
			c.add(SeverityWarning, path+".body", "body is missing; the tab renders a placeholder")
		case *Screen:
			c.checkScreen(path+".body", body)
		default:
			c.checkNode(path+".body", body)
			c.add(SeverityInfo, path+".body", fmt.Sprintf("%q body renders as a placeholder", body.Type()))
		}
	}
	return c.findings
}

type checker struct {
	findings []Finding
}

func (c *checker) add(sev Severity, path, msg string) {
	c.findings = append(c.findings, Finding{Severity: sev, Path: path, Message: msg})
}

func (c *checker) checkNode(path string, node Node) {
	switch n := node.(type) {
	case *Stack:
		for i, child := range n.Children {
			c.checkNode(fmt.Sprintf("%s.children[%d]", path, i), child)
		}
	case *Row:
		if n.Left == nil {
			c.add(SeverityWarning, path+".left", "row has no left node")
		} else {
			c.checkNode(path+".left", n.Left)
		}
		if n.Right != nil {
			c.checkNode(path+".right", n.Right)
		}
	case *Screen:
		c.checkScreen(path, n)
	case *Unknown:
		if n.Tag == "" {
			c.add(SeverityWarning, path+".type", "node has no type")
		} else {
			c.add(SeverityWarning, path+".type", fmt.Sprintf("unknown node type %q", n.Tag))
		}
	}
}

func (c *checker) checkScreen(path string, s *Screen) {
	ids := make(map[string]string)
	register := func(tablePath string, t *DataTable) {
		c.checkTable(tablePath, t)
		if prev, ok := ids[t.ID]; ok {
			c.add(SeverityError, tablePath+".id",
				fmt.Sprintf("table id %q is also used by %s; both tables share one sort state", t.ID, prev))
			return
		}
		ids[t.ID] = tablePath
	}

	if s.Results != nil {
		register(path+".results", s.Results)
	}

	keys := make(map[string]string)
	for i, item := range s.AccordionItems() {
		itemPath := fmt.Sprintf("%s.accordion.items[%d]", path, i)
		key := item.Key()
		if prev, ok := keys[key]; ok {
			c.add(SeverityError, itemPath+".title",
				fmt.Sprintf("accordion key %q is also derived by %s; both sections open together", key, prev))
		} else {
			keys[key] = itemPath
		}
		if item.Table != nil {
			register(itemPath+".table", item.Table)
		}
	}
}

func (c *checker) checkTable(path string, t *DataTable) {
	if t.ID == "" {
		c.add(SeverityWarning, path+".id", "table has no id; tables without ids share one sort state")
	}
	if len(t.Columns) == 0 {
		c.add(SeverityWarning, path+".columns", "table has no columns")
	}

	fields := make(map[string]bool, len(t.Columns))
	for i, col := range t.Columns {
		if fields[col.Field] {
			c.add(SeverityWarning, fmt.Sprintf("%s.columns[%d].field", path, i),
				fmt.Sprintf("field %q appears in more than one column", col.Field))
		}
		fields[col.Field] = true
	}
	for i, f := range t.SortableColumns {
		if !fields[f] {
			c.add(SeverityWarning, fmt.Sprintf("%s.sortableColumns[%d]", path, i),
				fmt.Sprintf("sortable field %q has no column", f))
		}
	}
}
