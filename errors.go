package skemaform

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeUnknownKey    = "unknown_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	// CodeConstraint covers composite or engine-specific constraints
	// (oneOf, dependentRequired, custom keywords, ...).
	CodeConstraint = "constraint"
)

// Issue is one failing constraint as reported by a validation engine.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above, or engine specific.
	Message string
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42})
	// for i18n and observability.
	Params map[string]any
}

// Issues is an ordered collection of validation failures. Error gives a
// one-line summary for logs.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /firstName
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// ErrInvalidUsage marks caller mistakes (missing schema, missing
// continuation, malformed options). It is returned directly and never
// delivered through a continuation.
var ErrInvalidUsage = errors.New("skemaform: invalid usage")

// ErrInvalidFocusPath reports a focus key that cannot be parsed. It wraps
// ErrInvalidUsage.
var ErrInvalidFocusPath = fmt.Errorf("%w: focus path", ErrInvalidUsage)

func usageErr(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidUsage}, a...)...)
}
