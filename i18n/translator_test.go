package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", map[string]string{"label": "firstName"}); msg != `"firstName" is required` {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", map[string]string{"label": "firstName"}); msg != `"firstName" は必須です` {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToDetail(t *testing.T) {
	tr := New("en")
	if msg := tr.Message("custom_keyword", map[string]string{"detail": "odd value"}); msg != "odd value" {
		t.Fatalf("expected detail fallback, got %q", msg)
	}
	if msg := tr.Message("custom_keyword", nil); msg != "custom_keyword" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

func TestTranslator_UnknownLanguageIsEnglish(t *testing.T) {
	tr := New("xx")
	got := tr.Message("too_long", map[string]string{"label": "name", "detail": "maxLength: got 5, want 3"})
	if got != `"name" maxLength: got 5, want 3` {
		t.Fatalf("unexpected message %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("required", nil); got != "X-required" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
