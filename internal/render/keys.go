package render

import "fmt"

// Element keys are derived from positions in the manifest, which does not
// change during a session, so a key names the same control across renders.
const (
	KeySearchInput  = "search/input"
	KeySearchButton = "search/button"
	KeyFilterSelect = "filter/select"

	resultsKey = "results"
)

// TabKey is the key of the tab button at index
func TabKey(index int) string {
	return fmt.Sprintf("tab/%d", index)
}

// ResultsColumnKey is the key of a results header cell
func ResultsColumnKey(column int) string {
	return columnKey(resultsKey, column)
}

// SectionKey is the key of the accordion toggle at index
func SectionKey(index int) string {
	return fmt.Sprintf("accordion/%d", index)
}

// SectionColumnKey is the key of a header cell of an accordion table
func SectionColumnKey(section, column int) string {
	return columnKey(sectionTableKey(section), column)
}

func sectionTableKey(section int) string {
	return SectionKey(section) + "/table"
}

func columnKey(tableKey string, column int) string {
	return fmt.Sprintf("%s/col/%d", tableKey, column)
}
