package skemaform_test

import (
	"context"
	"fmt"

	"github.com/reoring/skemaform"
)

// formEngine stands in for a real validation engine.
var formEngine = skemaform.EngineFunc(func(context.Context, any, any, map[string]any) (skemaform.Issues, error) {
	return skemaform.Issues{
		{Path: "/email", Code: skemaform.CodeInvalidFormat, Message: `"email" must be a valid email`},
		{Path: "/address/zip", Code: skemaform.CodeRequired, Message: `"zip" is required`},
		{Path: "/tags/2", Code: skemaform.CodeTooLong, Message: `"2" is too long`},
	}, nil
})

func ExampleAdapter_Validate() {
	a := skemaform.New(formEngine)
	data := map[string]any{"email": "nope", "address": map[string]any{}, "tags": []any{"a", "b", "ccccccc"}}

	_ = a.Validate(context.Background(), data, "schema", skemaform.Options{}, func(errs any) {
		b, _ := skemaform.Encode(errs)
		fmt.Println(string(b))
	})
	// Output:
	// {"address":{"zip":["\"zip\" is required"]},"email":["\"email\" must be a valid email"],"tags":[null,null,["\"2\" is too long"]]}
}

func ExampleAdapter_Validate_focusKey() {
	a := skemaform.New(formEngine)
	data := map[string]any{"email": "nope", "address": map[string]any{}}

	// Only the field being edited is reported, but the whole form is validated.
	for _, key := range []string{"address", "address.zip.code"} {
		_ = a.Validate(context.Background(), data, "schema", skemaform.Options{Key: key}, func(errs any) {
			b, _ := skemaform.Encode(errs)
			fmt.Println(string(b))
		})
	}
	// Output:
	// {"address":{"zip":["\"zip\" is required"]}}
	// {"address":{"zip":{"code":null}}}
}

func ExampleProject() {
	tree := skemaform.Fields{
		"a": skemaform.Fields{"b": skemaform.Messages{"b!"}, "c": skemaform.Messages{"c!"}},
		"d": skemaform.Messages{"d!"},
	}
	got, _ := skemaform.Project(tree, "a.c")
	fmt.Printf("%v\n", got)
	// Output:
	// map[a:map[c:[c!]]]
}
