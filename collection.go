package unbox

import (
	"sort"
	"strconv"

	"github.com/reoring/unbox/i18n"
)

// SliceOf decodes a raw sequence into []T, applying elem to every element in
// order. With allowInvalid false any single failure aborts the whole slice;
// with allowInvalid true failing elements are dropped (emitting a
// WarnInvalidElement warning) and the survivors keep their relative order. Zero
// survivors is not an error.
func SliceOf[T any](elem Transform[T], allowInvalid bool) Transform[[]T] {
	return func(u *Unboxer, raw any) ([]T, error) {
		if elem == nil {
			return nil, Issues{{Code: CodeInvalidElementType, Expected: typeName[T](), Message: i18n.T(CodeInvalidElementType, nil)}}
		}
		seq, ok := raw.([]any)
		if !ok {
			return nil, errCannotTransform
		}
		out := make([]T, 0, len(seq))
		for i, el := range seq {
			idx := strconv.Itoa(i)
			v, err := elem(u, el)
			if err != nil {
				if allowInvalid {
					u.warn(Warning{Kind: WarnInvalidElement, Path: idx, Value: el})
					continue
				}
				if iss, ok2 := AsIssues(err); ok2 {
					return nil, RebaseIssues(idx, iss)
				}
				return nil, Issues{{Path: idx, Code: CodeInvalidArrayElement, Key: idx, Value: el, Expected: typeName[T](), Message: i18n.T(CodeInvalidArrayElement, nil), Cause: causeOf(err)}}
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// SetOf behaves like SliceOf with duplicate elimination emerging from the
// map-backed target container.
func SetOf[T comparable](elem Transform[T], allowInvalid bool) Transform[map[T]struct{}] {
	slice := SliceOf(elem, allowInvalid)
	return func(u *Unboxer, raw any) (map[T]struct{}, error) {
		vs, err := slice(u, raw)
		if err != nil {
			return nil, err
		}
		out := make(map[T]struct{}, len(vs))
		for _, v := range vs {
			out[v] = struct{}{}
		}
		return out, nil
	}
}

// KeyTransform converts a raw dictionary key into K.
type KeyTransform[K comparable] func(raw string) (K, error)

// StringKeys is the identity KeyTransform for plain string keys.
func StringKeys() KeyTransform[string] {
	return func(raw string) (string, error) { return raw, nil }
}

// MapOf decodes a raw dictionary into map[K]V. Each raw key goes through key
// and each value through val; a failing pair is dropped jointly when
// allowInvalid is true and aborts the whole map otherwise. Entries are visited
// in sorted key order so failures are reported deterministically.
//
// Note on optional fields: a failing key invalidates the entire map unless
// allowInvalid is set; there is no implicit per-entry dropping.
func MapOf[K comparable, V any](key KeyTransform[K], val Transform[V], allowInvalid bool) Transform[map[K]V] {
	return func(u *Unboxer, raw any) (map[K]V, error) {
		if key == nil {
			return nil, Issues{{Code: CodeInvalidDictionaryKeyType, Expected: typeName[K](), Message: i18n.T(CodeInvalidDictionaryKeyType, nil)}}
		}
		if val == nil {
			return nil, Issues{{Code: CodeInvalidElementType, Expected: typeName[V](), Message: i18n.T(CodeInvalidElementType, nil)}}
		}
		dict, ok := raw.(map[string]any)
		if !ok {
			return nil, errCannotTransform
		}
		keys := make([]string, 0, len(dict))
		for k := range dict {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[K]V, len(dict))
		for _, rk := range keys {
			rv := dict[rk]
			k, kerr := key(rk)
			if kerr != nil {
				if allowInvalid {
					u.warn(Warning{Kind: WarnInvalidElement, Path: rk, Value: rk})
					continue
				}
				return nil, Issues{{Path: rk, Code: CodeInvalidDictionaryKey, Key: rk, Message: i18n.T(CodeInvalidDictionaryKey, nil), Cause: kerr}}
			}
			v, verr := val(u, rv)
			if verr != nil {
				if allowInvalid {
					u.warn(Warning{Kind: WarnInvalidElement, Path: rk, Value: rv})
					continue
				}
				if iss, ok2 := AsIssues(verr); ok2 {
					return nil, RebaseIssues(rk, iss)
				}
				return nil, Issues{{Path: rk, Code: CodeInvalidDictionaryValue, Key: rk, Value: rv, Expected: typeName[V](), Message: i18n.T(CodeInvalidDictionaryValue, nil), Cause: causeOf(verr)}}
			}
			out[k] = v
		}
		return out, nil
	}
}

// causeOf hides the internal sentinel from user-facing issues.
func causeOf(err error) error {
	if err == errCannotTransform {
		return nil
	}
	return err
}
