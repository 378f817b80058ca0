package unbox

import "github.com/reoring/unbox/i18n"

// Unboxer is one in-progress decode session: an immutable value tree, an
// optional contextual value, and a failure ledger. One session decodes exactly
// one top-level value on one goroutine; nested model decodes run in child
// sessions bound to sub-trees.
type Unboxer struct {
	tree    any
	ctx     any
	mode    Mode
	observe Observer
	base    string // dotted location of this session from the decode root
	at      string // path currently being accessed, "" between accesses
	iss     Issues
}

// Context returns the contextual value supplied for this decode (nil when
// none was provided).
func (u *Unboxer) Context() any { return u.ctx }

// Tree returns the raw value tree owned by this session.
func (u *Unboxer) Tree() any { return u.tree }

func (u *Unboxer) child(tree any, ctx any) *Unboxer {
	return &Unboxer{
		tree:    tree,
		ctx:     ctx,
		mode:    u.mode,
		observe: u.observe,
		base:    joinPath(u.base, u.at),
	}
}

// halted reports whether a fail-fast session has already recorded its first
// failure; later accessors short-circuit.
func (u *Unboxer) halted() bool { return u.mode == ModeFailFast && len(u.iss) > 0 }

func (u *Unboxer) fail(iss Issues) {
	if u.halted() {
		return
	}
	u.iss = AppendIssues(u.iss, iss...)
}

func (u *Unboxer) warn(w Warning) {
	ob := u.observe
	if ob == nil {
		ob = getObserver()
	}
	if ob == nil {
		return
	}
	w.Path = joinPath(u.base, u.at, w.Path)
	ob(w)
}

// finish converts the ledger into the decode result: nil when empty, the
// aggregated Issues otherwise.
func (u *Unboxer) finish() error {
	if len(u.iss) > 0 {
		return u.iss
	}
	return nil
}

// ---- generic accessors ----

// Require resolves key as a flat key and transforms the value with tr. On
// failure the issue is recorded in the session ledger and the zero value of T
// is returned as an internal fallback; fallbacks never leak because a
// non-empty ledger always fails the decode.
func Require[T any](u *Unboxer, key string, tr Transform[T]) T {
	return acquire(u, key, false, tr)
}

// RequireAt is Require for a dotted key-path.
func RequireAt[T any](u *Unboxer, keyPath string, tr Transform[T]) T {
	return acquire(u, keyPath, true, tr)
}

// Optional resolves key as a flat key and transforms the value with tr. Any
// failure degrades to (zero, false) without touching the ledger; when the
// value was present but malformed a WarnInvalidOptional warning is emitted.
func Optional[T any](u *Unboxer, key string, tr Transform[T]) (T, bool) {
	return attempt(u, key, false, tr)
}

// OptionalAt is Optional for a dotted key-path.
func OptionalAt[T any](u *Unboxer, keyPath string, tr Transform[T]) (T, bool) {
	return attempt(u, keyPath, true, tr)
}

func acquire[T any](u *Unboxer, path string, split bool, tr Transform[T]) T {
	var zero T
	if u.halted() {
		return zero
	}
	raw, _, iss := resolve(u.tree, path, split)
	if len(iss) > 0 {
		u.fail(iss)
		return zero
	}
	v, iss2 := applyTransform(u, path, raw, tr)
	if len(iss2) > 0 {
		u.fail(iss2)
		return zero
	}
	return v
}

func attempt[T any](u *Unboxer, path string, split bool, tr Transform[T]) (T, bool) {
	var zero T
	if u.halted() {
		return zero, false
	}
	raw, _, iss := resolve(u.tree, path, split)
	if len(iss) > 0 {
		// plain absence stays silent; an empty path can never have been
		// present, so it stays silent too
		if iss[0].Code != CodeMissingKey && iss[0].Code != CodeEmptyPath {
			u.warn(Warning{Kind: WarnInvalidOptional, Path: path, Value: iss[0].Value})
		}
		return zero, false
	}
	v, iss2 := applyTransform(u, path, raw, tr)
	if len(iss2) > 0 {
		u.warn(Warning{Kind: WarnInvalidOptional, Path: path, Value: raw})
		return zero, false
	}
	return v, true
}

// applyTransform runs tr with the session's access cursor set to path, rebases
// structured child issues under it, and wraps plain failures into an
// invalid_value issue for the accessed path.
func applyTransform[T any](u *Unboxer, path string, raw any, tr Transform[T]) (T, Issues) {
	var zero T
	prev := u.at
	u.at = path
	v, err := tr(u, raw)
	u.at = prev
	if err == nil {
		return v, nil
	}
	if iss, ok := AsIssues(err); ok {
		return zero, RebaseIssues(path, iss)
	}
	return zero, Issues{{
		Path:     path,
		Code:     CodeInvalidValue,
		Key:      lastSegment(path),
		Value:    raw,
		Expected: typeName[T](),
		Message:  i18n.T(CodeInvalidValue, nil),
		Cause:    causeOf(err),
	}}
}

// ---- scalar convenience accessors ----

func (u *Unboxer) Bool(key string) bool                     { return Require(u, key, ScalarOf[bool]()) }
func (u *Unboxer) BoolAt(keyPath string) bool               { return RequireAt(u, keyPath, ScalarOf[bool]()) }
func (u *Unboxer) OptionalBool(key string) (bool, bool)     { return Optional(u, key, ScalarOf[bool]()) }
func (u *Unboxer) OptionalBoolAt(p string) (bool, bool)     { return OptionalAt(u, p, ScalarOf[bool]()) }
func (u *Unboxer) Int(key string) int                       { return Require(u, key, ScalarOf[int]()) }
func (u *Unboxer) IntAt(keyPath string) int                 { return RequireAt(u, keyPath, ScalarOf[int]()) }
func (u *Unboxer) OptionalInt(key string) (int, bool)       { return Optional(u, key, ScalarOf[int]()) }
func (u *Unboxer) OptionalIntAt(p string) (int, bool)       { return OptionalAt(u, p, ScalarOf[int]()) }
func (u *Unboxer) Int64(key string) int64                   { return Require(u, key, ScalarOf[int64]()) }
func (u *Unboxer) Int64At(keyPath string) int64             { return RequireAt(u, keyPath, ScalarOf[int64]()) }
func (u *Unboxer) OptionalInt64(key string) (int64, bool)   { return Optional(u, key, ScalarOf[int64]()) }
func (u *Unboxer) OptionalInt64At(p string) (int64, bool)   { return OptionalAt(u, p, ScalarOf[int64]()) }
func (u *Unboxer) Uint(key string) uint                     { return Require(u, key, ScalarOf[uint]()) }
func (u *Unboxer) UintAt(keyPath string) uint               { return RequireAt(u, keyPath, ScalarOf[uint]()) }
func (u *Unboxer) OptionalUint(key string) (uint, bool)     { return Optional(u, key, ScalarOf[uint]()) }
func (u *Unboxer) OptionalUintAt(p string) (uint, bool)     { return OptionalAt(u, p, ScalarOf[uint]()) }
func (u *Unboxer) Float64(key string) float64               { return Require(u, key, ScalarOf[float64]()) }
func (u *Unboxer) Float64At(keyPath string) float64         { return RequireAt(u, keyPath, ScalarOf[float64]()) }
func (u *Unboxer) OptionalFloat64(k string) (float64, bool) { return Optional(u, k, ScalarOf[float64]()) }
func (u *Unboxer) OptionalFloat64At(p string) (float64, bool) {
	return OptionalAt(u, p, ScalarOf[float64]())
}
func (u *Unboxer) String(key string) string                 { return Require(u, key, ScalarOf[string]()) }
func (u *Unboxer) StringAt(keyPath string) string           { return RequireAt(u, keyPath, ScalarOf[string]()) }
func (u *Unboxer) OptionalString(key string) (string, bool) { return Optional(u, key, ScalarOf[string]()) }
func (u *Unboxer) OptionalStringAt(p string) (string, bool) {
	return OptionalAt(u, p, ScalarOf[string]())
}
