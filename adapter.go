package skemaform

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/reoring/skemaform/internal/logging"
)

// Options controls what a single Validate call reports.
type Options struct {
	// Key is the focus path ("a.b", "objects[1]"). Empty reports the full
	// tree. It never narrows what is validated.
	Key string
	// Engine is handed to the engine untouched.
	Engine map[string]any
}

// Adapter runs an Engine and turns its flat Issues into rendered error
// trees. An Adapter holds no per-call state and is safe for concurrent use.
type Adapter struct {
	engine Engine
	logger *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for per-call debug records.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an Adapter that delegates validation to engine.
func New(engine Engine, opts ...Option) *Adapter {
	a := &Adapter{engine: engine, logger: logging.NewNop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Validate checks the whole of data against the whole of schema and calls
// cont exactly once with the rendered result, projected to opts.Key when
// set. A valid document yields empty Fields.
//
// Usage errors (see ErrInvalidUsage) are returned before the engine runs
// and cont is not called. Engine failures are returned as is.
func (a *Adapter) Validate(ctx context.Context, data, schema any, opts Options, cont func(result any)) error {
	if a == nil || a.engine == nil {
		return usageErr("adapter has no engine")
	}
	if isNil(schema) {
		return usageErr("schema is required")
	}
	if cont == nil {
		return usageErr("continuation is required")
	}
	var segs []string
	if opts.Key != "" {
		var err error
		if segs, err = parseKey(opts.Key); err != nil {
			return err
		}
	}

	start := time.Now()
	issues, err := a.engine.Validate(ctx, data, schema, opts.Engine)
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelDebug, "engine failed", slog.Any("error", err))
		return err
	}

	result := Tree(issues, data)
	if segs != nil {
		result = project(result, segs)
	}
	a.logger.LogAttrs(ctx, slog.LevelDebug, "validated",
		slog.Int("issues", len(issues)),
		slog.String("summary", issues.Error()),
		slog.String("key", opts.Key),
		slog.Duration("took", time.Since(start)),
	)
	cont(result)
	return nil
}

// Errors is Validate returning the result directly.
func (a *Adapter) Errors(ctx context.Context, data, schema any, opts Options) (any, error) {
	var out any
	if err := a.Validate(ctx, data, schema, opts, func(r any) { out = r }); err != nil {
		return nil, err
	}
	return out, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
