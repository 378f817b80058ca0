package unbox

// Package unbox provides:
//
// - Schema-less, type-driven decoding of JSON-like value trees into Go values
// - A stable error model via Issues (dotted path, code, message)
// - Flat-key and dotted key-path resolution into nested objects and arrays
// - Accumulating and fail-fast decode modes with per-field error aggregation
//
// Design policy:
// - Keep only public APIs in the root package; ready-made transforms live under codec/.
// - Input parsing is pluggable via Source/Driver; the CLI lives under cmd/unbox.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct {
//		Name string
//		Age  int
//	}
//
//	func (m *User) Unbox(u *unbox.Unboxer) error {
//		m.Name = u.String("name")
//		m.Age = u.Int("age")
//		return nil
//	}
//
//	v, err := unbox.Decode[User](unbox.JSONBytes(data))
