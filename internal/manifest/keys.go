package manifest

import (
	"strings"

	"github.com/yildizm/ManifestView/internal/textcase"
)

// AccordionKey derives the open-state key of an accordion section: the
// lower-cased title with every run of whitespace replaced by "-". It is
// the only implementation; the renderer and the checker both call it.
func AccordionKey(title string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range textcase.Lower(title) {
		if textcase.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Key returns the item's accordion key
func (i AccordionItem) Key() string {
	return AccordionKey(i.Title)
}
