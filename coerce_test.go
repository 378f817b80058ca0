package unbox_test

import (
	"encoding/json"
	"math"
	"testing"

	unbox "github.com/reoring/unbox"
)

func getScalar[T unbox.Scalar](t *testing.T, tree any, key string) (T, error) {
	t.Helper()
	return unbox.DecodeWith(unbox.Value(tree), func(u *unbox.Unboxer) (T, error) {
		return unbox.Require(u, key, unbox.ScalarOf[T]()), nil
	})
}

// TestCoerce_IdentityLaw resolves values already of the requested type
// unchanged.
func TestCoerce_IdentityLaw(t *testing.T) {
	tree := map[string]any{"s": "hi", "b": true, "f": 1.5}
	if v, err := getScalar[string](t, tree, "s"); err != nil || v != "hi" {
		t.Fatalf("string identity failed: v=%v err=%v", v, err)
	}
	if v, err := getScalar[bool](t, tree, "b"); err != nil || v != true {
		t.Fatalf("bool identity failed: v=%v err=%v", v, err)
	}
	if v, err := getScalar[float64](t, tree, "f"); err != nil || v != 1.5 {
		t.Fatalf("float identity failed: v=%v err=%v", v, err)
	}
}

// TestCoerce_StringNumberDuality converts "123" to 123 and rejects "abc".
func TestCoerce_StringNumberDuality(t *testing.T) {
	tree := map[string]any{"n": "123", "bad": "abc"}
	if v, err := getScalar[int](t, tree, "n"); err != nil || v != 123 {
		t.Fatalf("expected 123, got v=%v err=%v", v, err)
	}
	if _, err := getScalar[int](t, tree, "bad"); err == nil {
		t.Fatalf("expected failure for non-numeric string")
	}
	// optional access degrades to absent instead of failing
	v, err := unbox.DecodeWith(unbox.Value(tree), func(u *unbox.Unboxer) (bool, error) {
		_, ok := u.OptionalInt("bad")
		return ok, nil
	})
	if err != nil || v {
		t.Fatalf("optional malformed int should be absent, got present=%v err=%v", v, err)
	}
}

// TestCoerce_BooleanTokenLaw exercises the fixed case-insensitive token sets.
func TestCoerce_BooleanTokenLaw(t *testing.T) {
	trues := []string{"true", "t", "y", "yes", "TRUE", "Yes", "Y"}
	falses := []string{"false", "f", "n", "no", "FALSE", "No", "N"}
	for _, tok := range trues {
		if v, err := getScalar[bool](t, map[string]any{"b": tok}, "b"); err != nil || !v {
			t.Fatalf("token %q expected true, got v=%v err=%v", tok, v, err)
		}
	}
	for _, tok := range falses {
		if v, err := getScalar[bool](t, map[string]any{"b": tok}, "b"); err != nil || v {
			t.Fatalf("token %q expected false, got v=%v err=%v", tok, v, err)
		}
	}
	if _, err := getScalar[bool](t, map[string]any{"b": "maybe"}, "b"); err == nil {
		t.Fatalf("unrecognized token must fail, not default")
	}
}

// TestCoerce_BoolFromInteger treats zero as false and any nonzero integer as
// true.
func TestCoerce_BoolFromInteger(t *testing.T) {
	cases := map[string]bool{"0": false, "1": true, "2": true, "-1": true}
	for num, want := range cases {
		tree := map[string]any{"b": json.Number(num)}
		if v, err := getScalar[bool](t, tree, "b"); err != nil || v != want {
			t.Fatalf("number %s expected %v, got v=%v err=%v", num, want, v, err)
		}
	}
}

func TestCoerce_NumberRangeChecks(t *testing.T) {
	if _, err := getScalar[int8](t, map[string]any{"n": json.Number("300")}, "n"); err == nil {
		t.Fatalf("expected overflow failure for int8")
	}
	if _, err := getScalar[uint](t, map[string]any{"n": json.Number("-1")}, "n"); err == nil {
		t.Fatalf("expected failure for negative uint")
	}
	if v, err := getScalar[int64](t, map[string]any{"n": json.Number("9007199254740993")}, "n"); err != nil || v != 9007199254740993 {
		t.Fatalf("expected exact int64, got v=%v err=%v", v, err)
	}
}

// TestCoerce_UnsignedIdentityAboveMaxInt64 keeps the identity law for raw
// unsigned values that do not fit in int64.
func TestCoerce_UnsignedIdentityAboveMaxInt64(t *testing.T) {
	maxU := uint64(math.MaxUint64)
	if v, err := getScalar[uint64](t, map[string]any{"n": maxU}, "n"); err != nil || v != maxU {
		t.Fatalf("uint64 identity failed: v=%v err=%v", v, err)
	}
	if v, err := getScalar[uint](t, map[string]any{"n": ^uint(0)}, "n"); err != nil || v != ^uint(0) {
		t.Fatalf("uint identity failed: v=%v err=%v", v, err)
	}
	if v, err := getScalar[uint64](t, map[string]any{"n": json.Number("18446744073709551615")}, "n"); err != nil || v != maxU {
		t.Fatalf("uint64 from json.Number failed: v=%v err=%v", v, err)
	}
	if v, err := getScalar[uint64](t, map[string]any{"n": "18446744073709551615"}, "n"); err != nil || v != maxU {
		t.Fatalf("uint64 from string failed: v=%v err=%v", v, err)
	}
}

// TestCoerce_UnsignedAboveMaxInt64RejectedBySignedTargets fails instead of
// wrapping the sign.
func TestCoerce_UnsignedAboveMaxInt64RejectedBySignedTargets(t *testing.T) {
	if _, err := getScalar[int64](t, map[string]any{"n": uint64(math.MaxUint64)}, "n"); err == nil {
		t.Fatalf("expected failure for uint64 raw above MaxInt64")
	}
	if _, err := getScalar[int64](t, map[string]any{"n": ^uint(0)}, "n"); err == nil {
		t.Fatalf("expected failure for uint raw above MaxInt64")
	}
	// in-range unsigned raws still convert
	if v, err := getScalar[int64](t, map[string]any{"n": uint64(42)}, "n"); err != nil || v != 42 {
		t.Fatalf("expected 42, got v=%v err=%v", v, err)
	}
}

func TestCoerce_FloatFromIntegerRawKinds(t *testing.T) {
	raws := map[string]any{"a": int32(3), "b": uint(4), "c": uint64(5)}
	want := map[string]float64{"a": 3, "b": 4, "c": 5}
	for k, w := range want {
		if v, err := getScalar[float64](t, raws, k); err != nil || v != w {
			t.Fatalf("key %s expected %v, got v=%v err=%v", k, w, v, err)
		}
	}
}

func TestCoerce_NumberToString(t *testing.T) {
	tree := map[string]any{"n": json.Number("27")}
	if v, err := getScalar[string](t, tree, "n"); err != nil || v != "27" {
		t.Fatalf("expected \"27\", got v=%q err=%v", v, err)
	}
}
