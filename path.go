package unbox

import (
	"strconv"
	"strings"

	"github.com/reoring/unbox/i18n"
)

// resolve walks root along path and returns the raw value found there together
// with the last segment name. Flat keys are matched literally against
// dictionary keys, even when they contain the delimiter; key-paths are split
// on "." with each segment descending one level (objects by key, arrays by a
// non-negative index). An empty path never matches the root.
func resolve(root any, path string, splitPath bool) (any, string, Issues) {
	if path == "" {
		return nil, "", Issues{{Path: path, Code: CodeEmptyPath, Message: i18n.T(CodeEmptyPath, nil)}}
	}
	segs := []string{path}
	if splitPath {
		segs = strings.Split(path, ".")
	}
	last := segs[len(segs)-1]
	cur := root
	for _, seg := range segs {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, last, Issues{{Path: path, Code: CodeMissingKey, Key: seg, Message: i18n.T(CodeMissingKey, nil)}}
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, last, Issues{{Path: path, Code: CodeMissingKey, Key: seg, Message: i18n.T(CodeMissingKey, nil)}}
			}
			cur = node[idx]
		default:
			// cannot descend into a scalar
			return nil, last, Issues{{Path: path, Code: CodeInvalidValue, Key: seg, Value: cur, Expected: "object or array", Message: i18n.T(CodeInvalidValue, nil)}}
		}
	}
	return cur, last, nil
}

// joinPath joins dotted path fragments, skipping empty parts.
func joinPath(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
			continue
		}
		out += "." + p
	}
	return out
}

// lastSegment returns the final segment of a dotted key-path.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
