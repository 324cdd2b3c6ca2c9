// Package render turns a manifest and the UI state into a render tree.
//
// The tree is independent of any presentation layer. Interactive elements
// carry the Event they fire; the presentation hands that event back to a
// Session, which applies it to State and renders the whole tree again.
package render

// Kind identifies what an element represents
type Kind string

const (
	KindRoot        Kind = "root"
	KindTabStrip    Kind = "tab_strip"
	KindTab         Kind = "tab"
	KindContent     Kind = "content"
	KindPanels      Kind = "panels"
	KindPanel       Kind = "panel"
	KindHeading     Kind = "heading"
	KindLabel       Kind = "label"
	KindTextInput   Kind = "text_input"
	KindButton      Kind = "button"
	KindSelect      Kind = "select"
	KindOption      Kind = "option"
	KindTable       Kind = "table"
	KindHeaderRow   Kind = "header_row"
	KindHeaderCell  Kind = "header_cell"
	KindRow         Kind = "row"
	KindCell        Kind = "cell"
	KindAccordion   Kind = "accordion"
	KindSection     Kind = "section"
	KindToggle      Kind = "toggle"
	KindPlaceholder Kind = "placeholder"
)

// Element is one node of the render tree
type Element struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key,omitempty"`
	Text string `json:"text,omitempty"`

	// Glyph is appended to Text when shown: a sort arrow on header cells,
	// the open/closed marker on accordion toggles.
	Glyph string `json:"glyph,omitempty"`

	// Value and Placeholder belong to inputs and selects.
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	Selected bool `json:"selected,omitempty"`
	Open     bool `json:"open,omitempty"`

	// Stripe is the row index parity: 0 for even rows, 1 for odd rows.
	Stripe int `json:"stripe,omitempty"`

	// Token names the styling token the presentation colors this element
	// with. Tokens are resolved by the theme, never computed here.
	Token string `json:"token,omitempty"`

	// Event is set on interactive elements only.
	Event *Event `json:"event,omitempty"`

	Children []*Element `json:"children,omitempty"`
}

// Interactive reports whether the element reacts to activation
func (e *Element) Interactive() bool {
	return e != nil && e.Event != nil
}

// Label returns the text as displayed, glyph included
func (e *Element) Label() string {
	if e == nil {
		return ""
	}
	return e.Text + e.Glyph
}

// Add appends children and returns e
func (e *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Walk visits e and its descendants depth first in document order. Returning
// false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Find returns the first element with the given key
func (e *Element) Find(key string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.Key == key {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element of the given kind in document order
func (e *Element) FindAll(kind Kind) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.Kind == kind {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Child returns the first direct child of the given kind
func (e *Element) Child(kind Kind) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Interactives returns every interactive element in document order, which
// is also the focus order of the terminal presenter.
func (e *Element) Interactives() []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.Interactive() {
			out = append(out, el)
		}
		return true
	})
	return out
}
