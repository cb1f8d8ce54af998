// Package source decodes JSON and YAML documents into the plain Go values
// validation engines work on: map[string]any, []any, string, bool, nil and
// json.Number (JSON) or int/float64 (YAML).
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// Format identifies a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat maps a format name ("json", "yaml" or "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("unknown format %q", name)
}

// FormatOf picks a format from a file name; anything that is not .yaml/.yml
// is treated as JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ReadFile reads and decodes the document at path.
func ReadFile(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(b, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Decode decodes b according to f.
func Decode(b []byte, f Format) (any, error) {
	if f == FormatYAML {
		return DecodeYAML(b)
	}
	return DecodeJSON(b)
}

// DecodeJSON decodes a single JSON document, keeping numbers as
// json.Number so no precision is lost before validation.
func DecodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after document")
	}
	return v, nil
}

// Normalize converts v into plain JSON values. Values that already are
// plain (as produced by DecodeJSON/DecodeYAML) are returned as is; anything
// else, such as structs or typed maps, is round-tripped through JSON.
func Normalize(v any) (any, error) {
	if isPlain(v) {
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return DecodeJSON(b)
}

func isPlain(v any) bool {
	switch t := v.(type) {
	case nil, string, bool, json.Number, float64, float32,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case map[string]any:
		for _, e := range t {
			if !isPlain(e) {
				return false
			}
		}
		return true
	case []any:
		for _, e := range t {
			if !isPlain(e) {
				return false
			}
		}
		return true
	}
	return false
}
