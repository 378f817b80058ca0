package unbox

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Scalar enumerates the primitive targets covered by the built-in coercion
// table.
type Scalar interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// coerceScalar converts a raw tree value into T following the coercion table:
// identity for a matching runtime type, numeric interconversion with range
// checks, and locale-independent string parsing. It reports false when the raw
// value is neither the matching type, a compatible number, nor a parseable
// string.
func coerceScalar[T Scalar](raw any) (T, bool) {
	var out T
	ok := false
	switch p := any(&out).(type) {
	case *bool:
		*p, ok = coerceBool(raw)
	case *string:
		*p, ok = coerceString(raw)
	case *int:
		ok = coerceSignedInto(raw, strconv.IntSize, func(n int64) { *p = int(n) })
	case *int8:
		ok = coerceSignedInto(raw, 8, func(n int64) { *p = int8(n) })
	case *int16:
		ok = coerceSignedInto(raw, 16, func(n int64) { *p = int16(n) })
	case *int32:
		ok = coerceSignedInto(raw, 32, func(n int64) { *p = int32(n) })
	case *int64:
		ok = coerceSignedInto(raw, 64, func(n int64) { *p = n })
	case *uint:
		ok = coerceUnsignedInto(raw, strconv.IntSize, func(n uint64) { *p = uint(n) })
	case *uint8:
		ok = coerceUnsignedInto(raw, 8, func(n uint64) { *p = uint8(n) })
	case *uint16:
		ok = coerceUnsignedInto(raw, 16, func(n uint64) { *p = uint16(n) })
	case *uint32:
		ok = coerceUnsignedInto(raw, 32, func(n uint64) { *p = uint32(n) })
	case *uint64:
		ok = coerceUnsignedInto(raw, 64, func(n uint64) { *p = n })
	case *float32:
		var f float64
		if f, ok = coerceFloat64(raw); ok {
			*p = float32(f)
		}
	case *float64:
		*p, ok = coerceFloat64(raw)
	}
	if !ok {
		var zero T
		return zero, false
	}
	return out, true
}

func coerceSignedInto(raw any, bits int, set func(int64)) bool {
	n, ok := coerceInt64(raw)
	if !ok || !fitsSigned(n, bits) {
		return false
	}
	set(n)
	return true
}

func coerceUnsignedInto(raw any, bits int, set func(uint64)) bool {
	n, ok := coerceUint64(raw)
	if !ok || !fitsUnsigned(n, bits) {
		return false
	}
	set(n)
	return true
}

func fitsSigned(n int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	return n >= -(int64(1)<<(bits-1)) && n <= int64(1)<<(bits-1)-1
}

func fitsUnsigned(n uint64, bits int) bool {
	if bits >= 64 {
		return true
	}
	return n <= uint64(1)<<bits-1
}

// coerceInt64 accepts integer-valued numbers of any raw numeric kind and
// integer-parseable strings.
func coerceInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		return integralFloat(n)
	case json.Number:
		if v, err := n.Int64(); err == nil {
			return v, true
		}
		if f, err := n.Float64(); err == nil {
			return integralFloat(f)
		}
		return 0, false
	case string:
		if v, err := strconv.ParseInt(n, 10, 64); err == nil {
			return v, true
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return integralFloat(f)
		}
		return 0, false
	}
	return 0, false
}

// coerceUint64 accepts unsigned raws natively so values above MaxInt64 never
// round-trip through int64.
func coerceUint64(raw any) (uint64, bool) {
	switch n := raw.(type) {
	case uint:
		return uint64(n), true
	case uint64:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		return integralUintFloat(n)
	case json.Number:
		if v, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return v, true
		}
		if f, err := n.Float64(); err == nil {
			return integralUintFloat(f)
		}
		return 0, false
	case string:
		if v, err := strconv.ParseUint(n, 10, 64); err == nil {
			return v, true
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return integralUintFloat(f)
		}
		return 0, false
	}
	return 0, false
}

func integralUintFloat(f float64) (uint64, bool) {
	if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func integralFloat(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func coerceFloat64(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// coerceBool implements the boolean token law: zero is false and any nonzero
// integer is true; string tokens are case-insensitive over a fixed set and
// unrecognized tokens fail rather than defaulting.
func coerceBool(raw any) (bool, bool) {
	switch b := raw.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(b) {
		case "true", "t", "y", "yes", "1":
			return true, true
		case "false", "f", "n", "no", "0":
			return false, true
		}
		return false, false
	}
	if n, ok := coerceInt64(raw); ok {
		return n != 0, true
	}
	if f, ok := coerceFloat64(raw); ok {
		return f != 0, true
	}
	return false, false
}

func coerceString(raw any) (string, bool) {
	switch s := raw.(type) {
	case string:
		return s, true
	case json.Number:
		return string(s), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), true
	}
	return "", false
}
