package formatter

import (
	"encoding/json"

	"github.com/yildizm/ManifestView/internal/render"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the JSON document: the selected tab title and the full
// render tree, events included
type JSONOutput struct {
	ActiveTab string          `json:"active_tab,omitempty"`
	Tree      *render.Element `json:"tree"`
}

func (f *jsonFormatter) Format(root *render.Element) ([]byte, error) {
	output := &JSONOutput{
		ActiveTab: activeTab(root),
		Tree:      root,
	}
	return json.MarshalIndent(output, "", "  ")
}
