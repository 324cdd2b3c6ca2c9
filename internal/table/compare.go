package table

import (
	"math"
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/textcase"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber coerces a cell value the way a script engine's Number() does.
// The second result is false when the value is null or not a number.
func ToNumber(v manifest.Value) (float64, bool) {
	switch v.Kind() {
	case manifest.KindNumber:
		n := v.Num()
		return n, !math.IsNaN(n)
	case manifest.KindBool:
		if v.BoolValue() {
			return 1, true
		}
		return 0, true
	case manifest.KindString:
		return stringToNumber(v.Str())
	default:
		return 0, false
	}
}

func stringToNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, textcase.IsSpace)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	// Prefixed integers take no sign.
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return prefixedToNumber(s[2:], base)
		}
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports ErrRange with ±Inf or 0, which is the value we want.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

// prefixedToNumber reads the digits of a 0x/0o/0b literal. Values past
// 64 bits stay finite, rounded to the nearest float64; only values beyond
// the float64 range become +Inf.
func prefixedToNumber(digits string, base int) (float64, bool) {
	if strings.ContainsAny(digits, "+-_") {
		return 0, false
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

// Compare orders two cells ascending: null first, numerically when both
// coerce to numbers, otherwise by case-insensitive string order.
func Compare(a, b manifest.Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}

	an, aok := ToNumber(a)
	bn, bok := ToNumber(b)
	if aok && bok {
		// Equal infinities compare equal, as their difference is NaN.
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	return textcase.CompareUTF16(textcase.Lower(a.Display()), textcase.Lower(b.Display()))
}

// SortRows returns rows ordered by s. With a nil sort the input is returned
// as is. Otherwise a stable ascending sort runs on a copy, and descending
// order is that ascending result reversed, so rows with equal keys appear
// in reverse manifest order.
func SortRows(rows []manifest.Record, s *Sort) []manifest.Record {
	if s == nil {
		return rows
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b manifest.Record) int {
		return Compare(a.Get(s.Col), b.Get(s.Col))
	})

	if s.Dir == Desc {
		slices.Reverse(sorted)
	}
	return sorted
}
