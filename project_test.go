package skemaform_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/skemaform"
)

func TestProject(t *testing.T) {
	tree := skemaform.Fields{
		"a": skemaform.Fields{
			"b": skemaform.Messages{"b!"},
			"c": skemaform.Messages{"c!"},
		},
		"d":     skemaform.Messages{"d!"},
		"items": skemaform.Items{skemaform.Absent, skemaform.Fields{"x": skemaform.Messages{"x!"}}},
		"form": &skemaform.Hybrid{
			Messages: skemaform.Messages{"form!"},
			Fields:   skemaform.Fields{"user": skemaform.Messages{"user!"}},
		},
	}

	tests := []struct {
		name string
		key  string
		want any
	}{
		{"no key", "", tree},
		{"leaf", "d", skemaform.Fields{"d": skemaform.Messages{"d!"}}},
		{"intermediate", "a", skemaform.Fields{"a": tree["a"]}},
		{"nested leaf", "a.c", skemaform.Fields{"a": skemaform.Fields{"c": skemaform.Messages{"c!"}}}},
		{"past leaf", "d.e", skemaform.Fields{"d": skemaform.Fields{"e": skemaform.Absent}}},
		{"unknown head", "z.y", skemaform.Fields{"z": skemaform.Fields{"y": skemaform.Absent}}},
		{"annotation ignored", "items[1]", skemaform.Fields{"items": tree["items"]}},
		{"index into items", "items.1.x", skemaform.Fields{"items": skemaform.Fields{"1": skemaform.Fields{"x": skemaform.Messages{"x!"}}}}},
		{"vacant index", "items.0", skemaform.Fields{"items": skemaform.Fields{"0": skemaform.Absent}}},
		{"hybrid verbatim", "form", skemaform.Fields{"form": tree["form"]}},
		{"through hybrid", "form.user", skemaform.Fields{"form": skemaform.Fields{"user": skemaform.Messages{"user!"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := skemaform.Project(tree, tt.key)
			if err != nil {
				t.Fatalf("project: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v\nwant %#v", got, tt.want)
			}
		})
	}
}

func TestProject_CleanTree(t *testing.T) {
	got, err := skemaform.Project(skemaform.Fields{}, "a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, skemaform.Fields{}) {
		t.Fatalf("clean tree must project to empty Fields, got %#v", got)
	}
}

func TestProject_SingleSpine(t *testing.T) {
	tree := skemaform.Fields{
		"a": skemaform.Fields{"b": skemaform.Messages{"1"}, "c": skemaform.Messages{"2"}},
		"d": skemaform.Messages{"3"},
	}
	got, _ := skemaform.Project(tree, "a.b")
	// Every level but the tip has exactly one key.
	cur := got
	for _, k := range []string{"a", "b"} {
		f, ok := cur.(skemaform.Fields)
		if !ok || len(f) != 1 {
			t.Fatalf("level %q is not a single-entry mapping: %#v", k, cur)
		}
		cur = f[k]
	}
	if !reflect.DeepEqual(cur, skemaform.Messages{"1"}) {
		t.Fatalf("tip = %#v", cur)
	}
	// The input is left untouched.
	if len(tree) != 2 || len(tree["a"].(skemaform.Fields)) != 2 {
		t.Fatalf("projection mutated its input: %#v", tree)
	}
}

func TestProject_Malformed(t *testing.T) {
	_, err := skemaform.Project(skemaform.Fields{}, "a..b")
	if !errors.Is(err, skemaform.ErrInvalidFocusPath) || !errors.Is(err, skemaform.ErrInvalidUsage) {
		t.Fatalf("want ErrInvalidFocusPath, got %v", err)
	}
}
