package skemaform

import (
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/skemaform/internal/errtree"
	"github.com/reoring/skemaform/source"
)

// maxSparseItems bounds the length of an Items value whose size is inferred
// from reported indices alone.
const maxSparseItems = 1 << 16

// Tree folds issues into a nested error tree and renders it. data is the
// value that was validated, in any form Instance accepts; it is consulted
// only to size array-backed fields and may be nil.
func Tree(issues Issues, data any) any {
	if len(issues) == 0 {
		return Fields{}
	}
	inst, err := Instance(data)
	if err != nil {
		inst = data
	}
	return render(buildTree(issues), inst)
}

// Instance returns data as plain JSON values (map[string]any, []any,
// scalars). Raw JSON ([]byte, json.RawMessage) is decoded; structs and
// typed containers are round-tripped through JSON.
func Instance(data any) (any, error) {
	switch d := data.(type) {
	case []byte:
		return source.DecodeJSON(d)
	case json.RawMessage:
		return source.DecodeJSON(d)
	}
	return source.Normalize(data)
}

func buildTree(issues Issues) *errtree.Node {
	recs := make([]errtree.Record, len(issues))
	for i, it := range issues {
		recs[i] = errtree.Record{Path: SplitPointer(it.Path), Message: it.Message}
	}
	return errtree.Build(recs)
}

func render(n *errtree.Node, data any) any {
	switch {
	case n.HasMessages() && n.HasChildren():
		return &Hybrid{Messages: Messages(n.Messages()), Fields: renderFields(n, data)}
	case n.HasMessages():
		return Messages(n.Messages())
	case n.HasChildren():
		return renderChildren(n, data)
	default:
		return Fields{}
	}
}

func renderChildren(n *errtree.Node, data any) any {
	sh := shapeOf(data)
	if sh.kind != shapeMapping {
		if size, ok := itemsLen(n, sh); ok {
			items := make(Items, size)
			for i := range items {
				items[i] = Absent
			}
			for _, k := range n.Keys() {
				i, _ := strconv.Atoi(k)
				c, _ := n.Child(k)
				items[i] = render(c, elem(data, k))
			}
			return items
		}
	}
	return renderFields(n, data)
}

func renderFields(n *errtree.Node, data any) Fields {
	out := make(Fields, len(n.Keys()))
	for _, k := range n.Keys() {
		c, _ := n.Child(k)
		out[k] = render(c, elem(data, k))
	}
	return out
}

// itemsLen reports the Items length for n, or false when the children are
// not addressable as array positions.
func itemsLen(n *errtree.Node, sh shape) (int, bool) {
	hi := -1
	for _, k := range n.Keys() {
		i, ok := index(k)
		if !ok {
			return 0, false
		}
		hi = max(hi, i)
	}
	size := hi + 1
	if sh.kind == shapeSequence {
		size = max(size, sh.length)
	}
	if size > maxSparseItems && size > sh.length {
		return 0, false
	}
	return size, true
}

// index parses a canonical non-negative integer key ("0", "12"; not "01").
func index(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

type shapeKind int

const (
	shapeUnknown shapeKind = iota
	shapeMapping
	shapeSequence
)

type shape struct {
	kind   shapeKind
	length int
}

// shapeOf classifies the validated value at a node's path.
func shapeOf(data any) shape {
	switch v := data.(type) {
	case nil:
		return shape{}
	case map[string]any:
		return shape{kind: shapeMapping}
	case []any:
		return shape{kind: shapeSequence, length: len(v)}
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		return shape{kind: shapeMapping}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return shape{} // []byte is a scalar
		}
		return shape{kind: shapeSequence, length: rv.Len()}
	}
	return shape{}
}

// elem returns the child of data addressed by key, or nil when there is none.
func elem(data any, key string) any {
	switch v := data.(type) {
	case nil:
		return nil
	case map[string]any:
		return v[key]
	case []any:
		if i, ok := index(key); ok && i < len(v) {
			return v[i]
		}
		return nil
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Slice, reflect.Array:
		if i, ok := index(key); ok && i < rv.Len() {
			return rv.Index(i).Interface()
		}
	}
	return nil
}
