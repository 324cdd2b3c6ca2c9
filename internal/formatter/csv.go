package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/ManifestView/internal/render"
)

// csvFormatter writes every visible table as a CSV block. Blocks are
// separated by a blank line; the first row of a block is the header,
// without sort glyphs.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(root *render.Element) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("nothing to format")
	}

	var b bytes.Buffer
	blocks := 0
	for _, el := range root.FindAll(render.KindTable) {
		g := newGrid(el, false)
		if len(g.headers) == 0 {
			continue
		}
		if blocks > 0 {
			b.WriteByte('\n')
		}
		if err := writeCSVBlock(&b, g); err != nil {
			return nil, err
		}
		blocks++
	}
	return b.Bytes(), nil
}

// writeCSVBlock writes one table; every record has one field per header
func writeCSVBlock(b *bytes.Buffer, g gridOf) error {
	writer := csv.NewWriter(b)

	if err := writer.Write(g.headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range g.rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
