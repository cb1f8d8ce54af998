package jsonschema

import (
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/reoring/skemaform"
	"github.com/reoring/skemaform/i18n"
)

// rootLabel names the validated value itself in messages.
const rootLabel = "value"

// keywordCodes maps the failing keyword to an Issue code.
var keywordCodes = map[string]string{
	"type":                 skemaform.CodeInvalidType,
	"minimum":              skemaform.CodeTooSmall,
	"exclusiveMinimum":     skemaform.CodeTooSmall,
	"maximum":              skemaform.CodeTooBig,
	"exclusiveMaximum":     skemaform.CodeTooBig,
	"minLength":            skemaform.CodeTooShort,
	"minItems":             skemaform.CodeTooShort,
	"minProperties":        skemaform.CodeTooShort,
	"maxLength":            skemaform.CodeTooLong,
	"maxItems":             skemaform.CodeTooLong,
	"maxProperties":        skemaform.CodeTooLong,
	"pattern":              skemaform.CodePattern,
	"enum":                 skemaform.CodeInvalidEnum,
	"const":                skemaform.CodeInvalidEnum,
	"format":               skemaform.CodeInvalidFormat,
	"required":             skemaform.CodeRequired,
	"additionalProperties": skemaform.CodeUnknownKey,
}

// flatten walks the cause tree depth first and emits one Issue per leaf, in
// the order the validator produced them. Keywords that name several
// properties at once (required, additionalProperties) are split into one
// Issue per property, addressed at the property itself.
func (e *Engine) flatten(verr *jsonschema.ValidationError, dst skemaform.Issues) skemaform.Issues {
	if len(verr.Causes) > 0 {
		for _, c := range verr.Causes {
			dst = e.flatten(c, dst)
		}
		return dst
	}
	if verr.ErrorKind == nil {
		return dst
	}
	at := pointer(verr.InstanceLocation)
	kw := keyword(verr.ErrorKind)

	switch k := verr.ErrorKind.(type) {
	case *kind.Required:
		for _, name := range k.Missing {
			dst = skemaform.AppendIssues(dst, skemaform.IssueAt(at.Field(name), skemaform.CodeRequired,
				e.message(skemaform.CodeRequired, name, ""), params(verr, kw)))
		}
		return dst
	case *kind.AdditionalProperties:
		for _, name := range k.Properties {
			dst = skemaform.AppendIssues(dst, skemaform.IssueAt(at.Field(name), skemaform.CodeUnknownKey,
				e.message(skemaform.CodeUnknownKey, name, ""), params(verr, kw)))
		}
		return dst
	}

	code, ok := keywordCodes[kw]
	if !ok {
		code = skemaform.CodeConstraint
	}
	detail := verr.ErrorKind.LocalizedString(e.printer)
	return skemaform.AppendIssues(dst, skemaform.IssueAt(at, code, e.message(code, label(verr.InstanceLocation), detail), params(verr, kw)))
}

func (e *Engine) message(code, label, detail string) string {
	data := map[string]string{"label": label, "detail": detail}
	if e.tr != nil {
		return e.tr.Message(code, data)
	}
	return i18n.T(code, data)
}

func pointer(loc []string) skemaform.PathRef {
	p := skemaform.Root()
	for _, tok := range loc {
		p = p.Field(tok)
	}
	return p
}

func params(verr *jsonschema.ValidationError, kw string) map[string]any {
	return map[string]any{"keyword": kw, "schema": verr.SchemaURL}
}

func keyword(k jsonschema.ErrorKind) string {
	kp := k.KeywordPath()
	if len(kp) == 0 {
		return ""
	}
	return kp[len(kp)-1]
}

func label(loc []string) string {
	if len(loc) == 0 {
		return rootLabel
	}
	return loc[len(loc)-1]
}
