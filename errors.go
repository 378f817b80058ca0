package unbox

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyPath                = "empty_path"
	CodeMissingKey               = "missing_key"
	CodeInvalidValue             = "invalid_value"
	CodeInvalidArrayElement      = "invalid_array_element"
	CodeInvalidDictionaryKeyType = "invalid_dictionary_key_type"
	CodeInvalidDictionaryKey     = "invalid_dictionary_key"
	CodeInvalidDictionaryValue   = "invalid_dictionary_value"
	CodeInvalidElementType       = "invalid_element_type"
	CodeInvalidInput             = "invalid_input"
	CodeCustomDecodeFailed       = "custom_decode_failed"
)

// Issue represents a single decode failure. It carries enough structured data
// (key, offending raw value, expected type description) to render a complete
// message without re-inspecting the original tree.
type Issue struct {
	Path    string // Dotted key-path from the decode root ("" for the root itself).
	Code    string // One of the codes listed above.
	Message string
	Key     string // Offending key or index segment, when known.
	Value   any    // Offending raw value, when one was found.
	// Expected describes the requested target type (for example: "int", "[]string").
	Expected string
	Cause    error // Optional: underlying error.
}

// Issues is a collection of decode errors that implements error. Order follows
// the order in which field accesses failed.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path == "" {
			b.WriteString(it.Code)
			continue
		}
		// e.g. missing_key at a.b
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// RebaseIssues re-prefixes every issue path under base so nested decode errors
// read as one globally addressable dotted path (e.g. "outer.inner.field").
func RebaseIssues(base string, iss Issues) Issues {
	if base == "" || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" {
			it.Path = base
		} else {
			it.Path = base + "." + it.Path
		}
		out[i] = it
	}
	return out
}

// issuesFromErr converts an error into Issues, wrapping non-Issues values with
// CodeCustomDecodeFailed.
func issuesFromErr(err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{{Code: CodeCustomDecodeFailed, Message: err.Error(), Cause: err}}
}
