package textcase

import (
	"strings"
	"testing"
)

func TestCompareUTF16(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"ascii", "a", "b", -1},
		{"prefix is smaller", "ab", "abc", -1},
		{"longer is larger", "abc", "ab", 1},
		{"empty", "", "a", -1},
		// U+1F600 encodes as the surrogate 0xD83D, below 0xFF61.
		{"astral before halfwidth", "\U0001F600", "\uFF61", -1},
		{"halfwidth after astral", "\uFF61", "\U0001F600", 1},
		{"astral after bmp letter", "\U0001F600", "z", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareUTF16(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareUTF16(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	// Byte order disagrees for the astral pair.
	if strings.Compare("\U0001F600", "\uFF61") != 1 {
		t.Errorf("Expected byte order to place U+1F600 after U+FF61")
	}
}

func TestIsSpace(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\u00A0', true},
		{'\u2003', true},
		{'\uFEFF', true},
		{'\u0085', false},
		{'a', false},
		{'-', false},
	}
	for _, tt := range tests {
		if got := IsSpace(tt.r); got != tt.want {
			t.Errorf("IsSpace(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"SIU", "siu"},
		{"\u0130", "i\u0307"},
		{"A\u0085B", "a\u0085b"},
		{"A\uFEFFB", "a\uFEFFb"},
	}
	for _, tt := range tests {
		if got := Lower(tt.in); got != tt.want {
			t.Errorf("Lower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
