package unbox

import "github.com/reoring/unbox/i18n"

// Decode materializes the source into a value tree and decodes it as T via the
// model's Unbox method. The tree must be a dictionary. On failure the zero
// value is returned together with the aggregated Issues; output is never
// partially constructed.
func Decode[T any, P Decodable[T]](src Source, opts ...DecodeOpt) (T, error) {
	var zero T
	tree, iss := materialize(src)
	if iss != nil {
		return zero, iss
	}
	return DecodeValue[T, P](tree, opts...)
}

// DecodeValue decodes an already-parsed value tree as T. The tree must conform
// to the Value Tree shape (string-keyed maps, []any sequences, scalar leaves).
func DecodeValue[T any, P Decodable[T]](tree any, opts ...DecodeOpt) (T, error) {
	var out T
	dict, ok := tree.(map[string]any)
	if !ok {
		return out, Issues{{Code: CodeInvalidInput, Value: tree, Expected: "object", Message: i18n.T(CodeInvalidInput, nil)}}
	}
	u := newSession(dict, opts)
	if err := P(&out).Unbox(u); err != nil {
		var zero T
		return zero, issuesFromErr(err)
	}
	if err := u.finish(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeWithContext decodes the source as T, passing the contextual value c to
// the model's UnboxWithContext method. Nested models inherit c unless a decode
// overrides it via ContextModelOf.
func DecodeWithContext[T any, P ContextDecodable[T]](src Source, c any, opts ...DecodeOpt) (T, error) {
	var out T
	tree, iss := materialize(src)
	if iss != nil {
		return out, iss
	}
	dict, ok := tree.(map[string]any)
	if !ok {
		return out, Issues{{Code: CodeInvalidInput, Value: tree, Expected: "object", Message: i18n.T(CodeInvalidInput, nil)}}
	}
	opt := lastOpt(opts)
	opt.Context = c
	u := newSession(dict, []DecodeOpt{opt})
	if err := P(&out).UnboxWithContext(u, c); err != nil {
		var zero T
		return zero, issuesFromErr(err)
	}
	if err := u.finish(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeAt resolves keyPath from the tree root and decodes the value found
// there as T. Resolution funnels through the same accessor machinery as field
// reads, so errors carry the full dotted path.
func DecodeAt[T any, P Decodable[T]](src Source, keyPath string, opts ...DecodeOpt) (T, error) {
	var zero T
	tree, iss := materialize(src)
	if iss != nil {
		return zero, iss
	}
	u := newSession(tree, opts)
	out := RequireAt(u, keyPath, ModelOf[T, P]())
	if err := u.finish(); err != nil {
		return zero, err
	}
	return out, nil
}

// DecodeSlice decodes a top-level array of dictionaries into []T. With
// allowInvalid true, elements that fail to decode are dropped and reported
// through the warning observer; otherwise any failing element aborts the whole
// decode.
func DecodeSlice[T any, P Decodable[T]](src Source, allowInvalid bool, opts ...DecodeOpt) ([]T, error) {
	tree, iss := materialize(src)
	if iss != nil {
		return nil, iss
	}
	seq, ok := tree.([]any)
	if !ok {
		return nil, Issues{{Code: CodeInvalidInput, Value: tree, Expected: "array", Message: i18n.T(CodeInvalidInput, nil)}}
	}
	u := newSession(seq, opts)
	out, iss2 := applyTransform(u, "", seq, SliceOf(ModelOf[T, P](), allowInvalid))
	if len(iss2) > 0 {
		return nil, iss2
	}
	if err := u.finish(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeWith decodes the source through a standalone closure, for ad hoc or
// discriminator-driven decoding where the concrete type depends on a field
// value. Errors returned by fn that are not Issues surface as
// custom_decode_failed.
func DecodeWith[T any](src Source, fn func(u *Unboxer) (T, error), opts ...DecodeOpt) (T, error) {
	var zero T
	if fn == nil {
		return zero, Issues{{Code: CodeCustomDecodeFailed, Message: i18n.T(CodeCustomDecodeFailed, nil)}}
	}
	tree, iss := materialize(src)
	if iss != nil {
		return zero, iss
	}
	u := newSession(tree, opts)
	v, err := fn(u)
	if err != nil {
		return zero, issuesFromErr(err)
	}
	if err := u.finish(); err != nil {
		return zero, err
	}
	return v, nil
}

// ---- helpers ----

func lastOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func newSession(tree any, opts []DecodeOpt) *Unboxer {
	opt := lastOpt(opts)
	return &Unboxer{tree: tree, ctx: opt.Context, mode: opt.Mode, observe: opt.Observer}
}

func materialize(src Source) (any, Issues) {
	if src == nil {
		return nil, Issues{{Code: CodeInvalidInput, Message: i18n.T(CodeInvalidInput, nil)}}
	}
	v, err := src.Materialize()
	if err != nil {
		return nil, Issues{{Code: CodeInvalidInput, Message: i18n.T(CodeInvalidInput, nil), Cause: err}}
	}
	return v, nil
}
