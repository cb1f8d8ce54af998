// Package jsonschema binds the skemaform Engine interface to
// github.com/santhosh-tekuri/jsonschema/v6.
//
// Schemas may be given compiled (*jsonschema.Schema) or as a document:
// JSON text ([]byte, string, json.RawMessage) or an already decoded value
// (map[string]any, bool). Documents are compiled once and kept in an LRU
// keyed by their content hash.
package jsonschema

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reoring/skemaform"
	"github.com/reoring/skemaform/i18n"
)

// DefaultCacheSize is the number of compiled schemas kept by default.
const DefaultCacheSize = 128

// ErrUnsupportedSchema reports a schema value of a type the engine cannot
// compile.
var ErrUnsupportedSchema = errors.New("jsonschema: unsupported schema value")

// Engine validates data against JSON Schema documents.
type Engine struct {
	cache     *lru.Cache[string, *jsonschema.Schema]
	printer   *message.Printer
	tr        i18n.Translator
	cacheSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheSize sets the compiled-schema cache size. Values below 1 use
// DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(e *Engine) { e.cacheSize = n }
}

// WithTranslator phrases messages with tr instead of the global i18n
// translator.
func WithTranslator(tr i18n.Translator) Option {
	return func(e *Engine) { e.tr = tr }
}

// WithLanguage localizes the engine-provided detail text.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) { e.printer = message.NewPrinter(tag) }
}

// New returns an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		printer:   message.NewPrinter(language.English),
		cacheSize: DefaultCacheSize,
	}
	for _, o := range opts {
		o(e)
	}
	if e.cacheSize < 1 {
		e.cacheSize = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes.
	e.cache, _ = lru.New[string, *jsonschema.Schema](e.cacheSize)
	return e
}

// Validate implements skemaform.Engine. opts is accepted for interface
// compatibility; no option is recognized yet.
func (e *Engine) Validate(ctx context.Context, data, schema any, _ map[string]any) (skemaform.Issues, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sch, err := e.Compile(schema)
	if err != nil {
		return nil, err
	}
	inst, err := skemaform.Instance(data)
	if err != nil {
		return nil, err
	}
	err = sch.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}
	return e.flatten(verr, nil), nil
}

// Compile returns the compiled form of schema, using the cache for
// documents seen before.
func (e *Engine) Compile(schema any) (*jsonschema.Schema, error) {
	if s, ok := schema.(*jsonschema.Schema); ok {
		return s, nil
	}
	text, err := schemaText(schema)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(text)
	key := hex.EncodeToString(sum[:])
	if s, ok := e.cache.Get(key); ok {
		return s, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("jsonschema: parse schema: %w", err)
	}
	loc := "schema-" + key[:16] + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("jsonschema: add schema: %w", err)
	}
	s, err := c.Compile(loc)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: compile schema: %w", err)
	}
	e.cache.Add(key, s)
	return s, nil
}

// Cached returns the number of compiled schemas held.
func (e *Engine) Cached() int { return e.cache.Len() }

func schemaText(schema any) ([]byte, error) {
	switch s := schema.(type) {
	case []byte:
		return s, nil
	case json.RawMessage:
		return s, nil
	case string:
		return []byte(s), nil
	case map[string]any, bool:
		b, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: encode schema: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedSchema, schema)
}
