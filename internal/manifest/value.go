package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which member of the cell value union is set
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Value is a single table cell. The zero Value is null, which is also what
// a missing field reads as.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// Record maps a column field to its cell value
type Record map[string]Value

// Null returns the null value
func Null() Value { return Value{} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports which member of the union is set
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is null or missing
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the raw string member
func (v Value) Str() string { return v.str }

// Num returns the raw number member
func (v Value) Num() float64 { return v.num }

// BoolValue returns the raw bool member
func (v Value) BoolValue() bool { return v.b }

// Display returns the text shown in a table cell. Null renders as the
// empty string, never as "null".
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Get returns the value stored under field, or null when absent
func (r Record) Get(field string) Value {
	if r == nil {
		return Null()
	}
	return r[field]
}

// FormatNumber formats n the way a script engine prints numbers: integers
// without a fraction, exponent form outside [1e-6, 1e21).
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07"); scripts do not.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + string(sign) + exp
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// UnmarshalJSON accepts any JSON value. Objects and arrays are kept as
// their compact JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = String(buf.String())
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			// Out of range numbers keep the ±Inf or 0 ParseFloat returns.
			var ne *strconv.NumError
			if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
				return err
			}
		}
		*v = Number(n)
	}
	return nil
}

// MarshalJSON writes the value back as the matching JSON scalar
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}
