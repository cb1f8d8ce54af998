// Package i18n phrases Issue messages for form fields.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides values to embed in the message: "label" names the failing
// field and "detail" carries the engine's own description, when any.
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalogs = map[string]map[string]string{
	"en": {
		"required":       `"{label}" is required`,
		"unknown_key":    `"{label}" is not allowed`,
		"invalid_type":   `"{label}" {detail}`,
		"too_small":      `"{label}" {detail}`,
		"too_big":        `"{label}" {detail}`,
		"too_short":      `"{label}" {detail}`,
		"too_long":       `"{label}" {detail}`,
		"pattern":        `"{label}" {detail}`,
		"invalid_enum":   `"{label}" {detail}`,
		"invalid_format": `"{label}" {detail}`,
		"constraint":     `"{label}" {detail}`,
	},
	"ja": {
		"required":       `"{label}" は必須です`,
		"unknown_key":    `"{label}" は許可されていません`,
		"invalid_type":   `"{label}" の型が不正です: {detail}`,
		"too_small":      `"{label}" が小さすぎます: {detail}`,
		"too_big":        `"{label}" が大きすぎます: {detail}`,
		"too_short":      `"{label}" が短すぎます: {detail}`,
		"too_long":       `"{label}" が長すぎます: {detail}`,
		"pattern":        `"{label}" がパターンに一致しません: {detail}`,
		"invalid_enum":   `"{label}" は許可された値ではありません: {detail}`,
		"invalid_format": `"{label}" の形式が不正です: {detail}`,
		"constraint":     `"{label}" は制約を満たしていません: {detail}`,
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalogs[t.lang][code]
	if !ok {
		if d := data["detail"]; d != "" {
			return d
		}
		return code
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the built-in catalog languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

// New returns a dictionary Translator for lang without touching the global
// one. Unknown languages fall back to English.
func New(lang string) Translator {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}
