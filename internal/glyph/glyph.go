package glyph

import "sync/atomic"

// Glyph names
const (
	SortAsc    = "sort_asc"
	SortDesc   = "sort_desc"
	Open       = "open"
	Closed     = "closed"
	Focus      = "focus"
	Selected   = "selected"
	SelectOpen = "select_open"
	Bullet     = "bullet"
)

// glyphMap holds the unicode glyph and its ASCII fallback
var glyphMap = map[string][2]string{
	// [unicode, ascii]
	SortAsc:    {" ▲", " ^"},
	SortDesc:   {" ▼", " v"},
	Open:       {"▾", "v"},
	Closed:     {"▸", ">"},
	Focus:      {"▶", ">"},
	Selected:   {"●", "*"},
	SelectOpen: {"▿", "v"},
	Bullet:     {"•", "-"},
}

var asciiOnly atomic.Bool

// SetASCII switches every glyph to its ASCII fallback
func SetASCII(enabled bool) {
	asciiOnly.Store(enabled)
}

// IsASCII returns the current fallback state
func IsASCII() bool {
	return asciiOnly.Load()
}

// Get returns the glyph or its fallback; unknown names return "?"
func Get(name string) string {
	mapping, ok := glyphMap[name]
	if !ok {
		return "?"
	}
	if asciiOnly.Load() {
		return mapping[1]
	}
	return mapping[0]
}
