package skemaform

import "context"

// Engine evaluates a schema against data. It reports every failing
// constraint as one Issue, ordered as evaluated; nil or empty Issues means
// the data is valid. A non-nil error means the engine itself failed and is
// handed back to the caller untouched.
//
// opts carries engine-specific settings that the adapter passes through
// without interpretation.
type Engine interface {
	Validate(ctx context.Context, data, schema any, opts map[string]any) (Issues, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, data, schema any, opts map[string]any) (Issues, error)

// Validate calls f.
func (f EngineFunc) Validate(ctx context.Context, data, schema any, opts map[string]any) (Issues, error) {
	return f(ctx, data, schema, opts)
}
