// Package skemaform turns the flat output of a schema-validation engine into
// error trees shaped like the validated data, and narrows those trees to a
// single field for per-field feedback.
//
// An Engine reports each failing constraint as an Issue carrying a JSON
// Pointer path and one message. The Adapter validates the whole document,
// folds the Issues into a tree, renders it, and optionally projects it onto
// a focus key:
//
//	a := skemaform.New(jsonschema.New())
//	err := a.Validate(ctx, data, schema, skemaform.Options{Key: "a.b"}, func(errs any) {
//		// errs is skemaform.Fields{"a": skemaform.Fields{"b": skemaform.Messages{...}}}
//	})
//
// Rendered values are Fields, Messages, Items, *Hybrid and Absent. Items
// stand for array-backed fields and keep the positions of failing elements;
// Hybrid nodes carry object-level messages next to failing children.
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Engines live under engine/, the CLI under cmd/skemaform.
//   - Prefer black-box testing against public APIs.
package skemaform
