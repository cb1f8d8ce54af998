package skemaform

import json "github.com/goccy/go-json"

// MessagesKey holds a Hybrid node's own messages in its JSON form.
const MessagesKey = "_errors"

// MarshalJSON encodes the absence marker as null.
func (Absence) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON encodes h as an object carrying the own messages under
// MessagesKey next to the child fields. A child named MessagesKey is
// shadowed by the messages.
func (h *Hybrid) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(h.Fields)+1)
	for k, v := range h.Fields {
		m[k] = v
	}
	m[MessagesKey] = h.Messages
	return json.Marshal(m)
}

// Encode returns the JSON form of a rendered result. Map keys are sorted so
// equal trees encode to equal bytes.
func Encode(result any) ([]byte, error) {
	if result == nil {
		result = Fields{}
	}
	return json.Marshal(result)
}

// EncodeIndent is Encode with indentation.
func EncodeIndent(result any, indent string) ([]byte, error) {
	if result == nil {
		result = Fields{}
	}
	return json.MarshalIndent(result, "", indent)
}
