// Package focus parses the dot-separated field paths callers use to narrow
// a rendered error tree.
package focus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a focus path that cannot be split into segments.
var ErrMalformed = errors.New("malformed focus path")

// Parse splits path on '.' and strips any trailing bracket annotations from
// each segment, so "objects[1].name" yields ["objects", "name"].
//
// The annotations are discarded rather than turned into index segments;
// callers asking for "objects[1]" get the whole "objects" subtree.
func Parse(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformed)
	}
	raw := strings.Split(path, ".")
	segs := make([]string, 0, len(raw))
	for i, r := range raw {
		seg, err := stripAnnotation(r)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d %q: %v", ErrMalformed, i, r, err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// stripAnnotation returns the field name of a segment such as "items[1][2]".
func stripAnnotation(seg string) (string, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		if strings.IndexByte(seg, ']') >= 0 {
			return "", errors.New("unbalanced ']'")
		}
		if seg == "" {
			return "", errors.New("empty segment")
		}
		return seg, nil
	}
	name := seg[:open]
	if name == "" {
		return "", errors.New("annotation without field name")
	}
	if strings.IndexByte(name, ']') >= 0 {
		return "", errors.New("unbalanced ']'")
	}
	rest := seg[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", fmt.Errorf("unexpected %q after annotation", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", errors.New("unterminated '['")
		}
		if strings.IndexByte(rest[1:end], '[') >= 0 {
			return "", errors.New("nested '['")
		}
		rest = rest[end+1:]
	}
	return name, nil
}
