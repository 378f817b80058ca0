package unbox

import (
	"errors"
	"reflect"
)

// Transform is the strategy for turning a raw resolved value into T. A nil
// error means success. Failed transforms return either structured Issues
// (nested decodes) or a plain error; accessors wrap the latter into an
// invalid_value issue carrying the key and the offending raw value.
type Transform[T any] func(u *Unboxer, raw any) (T, error)

// errCannotTransform signals a plain "raw value cannot produce T" failure.
// Accessors turn it into an invalid_value issue for the accessed path.
var errCannotTransform = errors.New("unbox: cannot transform raw value")

// ScalarOf returns the built-in coercion Transform for a primitive target.
func ScalarOf[T Scalar]() Transform[T] {
	return func(_ *Unboxer, raw any) (T, error) {
		v, ok := coerceScalar[T](raw)
		if !ok {
			var zero T
			return zero, errCannotTransform
		}
		return v, nil
	}
}

// Raw returns the identity Transform: the raw tree value, untouched.
func Raw() Transform[any] {
	return func(_ *Unboxer, raw any) (any, error) { return raw, nil }
}

// From builds a by-transform whose declared raw representation is R: the raw
// value is first coerced to R through the scalar table, then fn maps R into T.
func From[R Scalar, T any](fn func(R) (T, error)) Transform[T] {
	return func(_ *Unboxer, raw any) (T, error) {
		var zero T
		r, ok := coerceScalar[R](raw)
		if !ok {
			return zero, errCannotTransform
		}
		v, err := fn(r)
		if err != nil {
			return zero, err
		}
		return v, nil
	}
}

// Formatter supplies a caller-configured conversion from a raw string
// representation, e.g. a date formatter with a specific layout.
type Formatter[T any] interface {
	Parse(raw string) (T, error)
}

// ViaFormatter adapts a Formatter into a Transform.
func ViaFormatter[T any](f Formatter[T]) Transform[T] {
	return From[string](f.Parse)
}

// Unboxable is implemented by model types that decode themselves from a
// session.
type Unboxable interface {
	Unbox(u *Unboxer) error
}

// ContextUnboxable is implemented by model types that require a
// caller-supplied contextual value during decoding.
type ContextUnboxable interface {
	UnboxWithContext(u *Unboxer, c any) error
}

// Decodable constrains P to a pointer to T implementing Unboxable.
type Decodable[T any] interface {
	*T
	Unboxable
}

// ContextDecodable constrains P to a pointer to T implementing
// ContextUnboxable.
type ContextDecodable[T any] interface {
	*T
	ContextUnboxable
}

// ModelOf returns a Transform that decodes a nested dictionary into T through
// its Unbox method. The child session inherits the parent's mode, observer and
// context; child issues are rebased under the outer key by the accessor.
func ModelOf[T any, P Decodable[T]]() Transform[T] {
	return func(u *Unboxer, raw any) (T, error) {
		var out T
		dict, ok := raw.(map[string]any)
		if !ok {
			return out, errCannotTransform
		}
		child := u.child(dict, u.ctx)
		if err := P(&out).Unbox(child); err != nil {
			return out, issuesFromErr(err)
		}
		if err := child.finish(); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	}
}

// ContextModelOf behaves like ModelOf for context-aware models. When override
// is supplied it replaces the inherited context for the child session.
func ContextModelOf[T any, P ContextDecodable[T]](override ...any) Transform[T] {
	return func(u *Unboxer, raw any) (T, error) {
		var out T
		dict, ok := raw.(map[string]any)
		if !ok {
			return out, errCannotTransform
		}
		c := u.ctx
		if len(override) > 0 {
			c = override[len(override)-1]
		}
		child := u.child(dict, c)
		if err := P(&out).UnboxWithContext(child, c); err != nil {
			return out, issuesFromErr(err)
		}
		if err := child.finish(); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	}
}

// typeName renders the target type for Expected descriptions in issues.
func typeName[T any]() string {
	var zero T
	return reflect.TypeOf(&zero).Elem().String()
}
