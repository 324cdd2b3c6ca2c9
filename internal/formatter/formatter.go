package formatter

import (
	"fmt"

	"github.com/yildizm/ManifestView/internal/render"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(root *render.Element) ([]byte, error)
}

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatMarkdown, FormatCSV}

// New returns the formatter for a format name. width limits text table
// rows; 0 means unlimited.
func New(format string, width int) (Formatter, error) {
	switch format {
	case FormatText, "":
		return NewText(width), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatMarkdown, "md":
		return NewMarkdown(), nil
	case FormatCSV:
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
