// Package table implements the sort state machine and row ordering of
// manifest data tables.
package table

import "fmt"

// Direction is the order a sorted column is shown in
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the active sort of one table. A nil *Sort means the rows are
// shown in manifest order.
type Sort struct {
	Col string    `json:"col"`
	Dir Direction `json:"dir"`
}

// String returns "col asc" or "none"
func (s *Sort) String() string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%s %s", s.Col, s.Dir)
}

// Equal reports whether two sort states are the same, treating nil as none
func (s *Sort) Equal(other *Sort) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return *s == *other
}

// NextSort returns the state after a click on col: a new column starts
// ascending, ascending becomes descending, descending clears the sort.
func NextSort(current *Sort, col string) *Sort {
	if current == nil || current.Col != col {
		return &Sort{Col: col, Dir: Asc}
	}
	if current.Dir == Asc {
		return &Sort{Col: col, Dir: Desc}
	}
	return nil
}

// DirectionFor reports the direction shown on col, or "" when col is not
// the sorted column
func DirectionFor(s *Sort, col string) Direction {
	if s == nil || s.Col != col {
		return ""
	}
	return s.Dir
}

// ParseSort reads "col" or "col:asc" / "col:desc". It is used by the
// command line to preset sort states.
func ParseSort(spec string) (*Sort, error) {
	col, dir := spec, string(Asc)
	for i := len(spec) - 1; i >= 0; i-- {
		if spec[i] == ':' {
			col, dir = spec[:i], spec[i+1:]
			break
		}
	}
	if col == "" {
		return nil, fmt.Errorf("sort column is empty in %q", spec)
	}
	switch Direction(dir) {
	case Asc, Desc:
		return &Sort{Col: col, Dir: Direction(dir)}, nil
	default:
		return nil, fmt.Errorf("invalid sort direction %q (must be asc or desc)", dir)
	}
}
