package skemaform

import (
	"fmt"

	"github.com/reoring/skemaform/internal/focus"
)

// Project narrows a rendered tree to the spine leading to key.
//
// An empty key returns tree unchanged. A tree without errors yields empty
// Fields whatever the key. Otherwise the result holds one chain of
// single-entry Fields from the root down to key; siblings at every level
// are dropped. The tip is the subtree found at key, or Absent when the
// errors stop short of it.
//
// Bracket annotations in key are ignored: "objects[1]" projects the whole
// "objects" subtree.
func Project(tree any, key string) (any, error) {
	if key == "" {
		return tree, nil
	}
	segs, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	return project(tree, segs), nil
}

func parseKey(key string) ([]string, error) {
	segs, err := focus.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFocusPath, err)
	}
	return segs, nil
}

func project(tree any, segs []string) any {
	if Valid(tree) {
		return Fields{}
	}
	return descend(tree, segs)
}

func descend(cur any, segs []string) any {
	if len(segs) == 0 {
		return cur
	}
	head := segs[0]
	next, ok := lookup(cur, head)
	if !ok {
		next = Absent
	}
	return Fields{head: descend(next, segs[1:])}
}

// lookup resolves one key against a rendered value. Messages and Absent
// have no keys; a vacancy in Items counts as not found.
func lookup(v any, key string) (any, bool) {
	switch t := v.(type) {
	case Fields:
		c, ok := t[key]
		return c, ok
	case *Hybrid:
		return t.Field(key)
	case Items:
		i, ok := index(key)
		if !ok || i >= len(t) || IsAbsent(t[i]) {
			return nil, false
		}
		return t[i], true
	}
	return nil, false
}
