package skemaform

import "strings"

// PathRef builds JSON Pointer paths in a chain-safe way. Engines use it to
// report where a failing value lives.
type PathRef interface {
	Field(name string) PathRef
	Pointer() string
}

// Root returns the PathRef addressing the whole validated value.
func Root() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string // escaped reference tokens
}

func (p *pathRef) Field(name string) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), escapeToken(name))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// SplitPointer returns the unescaped reference tokens of a JSON Pointer.
// Both "" and "/" address the root and yield no tokens. A missing leading
// slash is tolerated.
func SplitPointer(pointer string) []string {
	if pointer == "" || pointer == "/" {
		return nil
	}
	pointer = strings.TrimPrefix(pointer, "/")
	raw := strings.Split(pointer, "/")
	out := make([]string, len(raw))
	for i, tok := range raw {
		out[i] = unescapeToken(tok)
	}
	return out
}

// escape '~' -> '~0', '/' -> '~1' per RFC6901
func escapeToken(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func unescapeToken(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}
