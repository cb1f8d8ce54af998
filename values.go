package skemaform

// Rendered error trees are built from the types below. A rendered value is
// always one of Fields, Messages, Items, *Hybrid or Absence.

// Fields maps field names to rendered child values.
type Fields map[string]any

// Messages lists the errors reported for one path, in engine order.
type Messages []string

// Items is the rendered form of an array-backed field. Positions without
// errors hold Absent.
type Items []any

// Hybrid is a node that has messages of its own and failing children, e.g.
// an object-level constraint reported next to per-field errors.
type Hybrid struct {
	Messages Messages
	Fields   Fields
}

// Len returns the number of own messages.
func (h *Hybrid) Len() int { return len(h.Messages) }

// At returns the i-th own message.
func (h *Hybrid) At(i int) string { return h.Messages[i] }

// Field returns the rendered child for name.
func (h *Hybrid) Field(name string) (any, bool) {
	v, ok := h.Fields[name]
	return v, ok
}

// Absence is the type of Absent.
type Absence struct{}

// Absent marks "no error here" at a position that is nevertheless part of
// the result: a vacancy in Items, or the tip of a projected spine that
// reaches past the deepest error. It differs from a key that is missing
// altogether.
var Absent = Absence{}

// IsAbsent reports whether v is the absence marker.
func IsAbsent(v any) bool {
	_, ok := v.(Absence)
	return ok
}

// Valid reports whether a rendered result carries no errors.
func Valid(result any) bool {
	switch v := result.(type) {
	case nil:
		return true
	case Fields:
		return len(v) == 0
	}
	return false
}
