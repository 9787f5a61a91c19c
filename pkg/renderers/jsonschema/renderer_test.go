package jsonschema_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
	"github.com/ryn-cx/devious-schema/pkg/renderers/jsonschema"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

func renderSamples(t *testing.T, rootName string, docs ...string) *sample.Object {
	t.Helper()

	root := infer.New(rootName)
	for _, doc := range docs {
		value, err := sample.DecodeBytes([]byte(doc))
		if err != nil {
			t.Fatalf("decode sample: %v", err)
		}
		if err := infer.Merge(value, root); err != nil {
			t.Fatalf("merge sample: %v", err)
		}
	}

	out, err := jsonschema.New().Render(context.Background(), root, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// Decode with the order-preserving sample decoder so property order can
	// be asserted.
	decoded, err := sample.DecodeBytes(out)
	if err != nil {
		t.Fatalf("decode rendered schema: %v", err)
	}
	obj, ok := decoded.(*sample.Object)
	if !ok {
		t.Fatalf("rendered schema is %T, want object", decoded)
	}
	return obj
}

func get(t *testing.T, obj *sample.Object, key string) sample.Value {
	t.Helper()
	value, ok := obj.Get(key)
	if !ok {
		t.Fatalf("key %q missing from %v", key, obj.Keys())
	}
	return value
}

func TestObjectSchema(t *testing.T) {
	doc := renderSamples(t, "Root", `{"zeta": 1, "alpha": "x"}`)

	if got := get(t, doc, "$schema"); got != "https://json-schema.org/draft/2020-12/schema" {
		t.Fatalf("$schema = %v", got)
	}
	if got := get(t, doc, "type"); got != "object" {
		t.Fatalf("type = %v, want object", got)
	}
	if got := get(t, doc, "title"); got != "Root" {
		t.Fatalf("title = %v, want Root", got)
	}
	if got := get(t, doc, "additionalProperties"); got != false {
		t.Fatalf("additionalProperties = %v, want false", got)
	}

	properties, ok := get(t, doc, "properties").(*sample.Object)
	if !ok {
		t.Fatalf("properties is not an object")
	}

	// First-seen key order survives into the document.
	if diff := cmp.Diff([]string{"zeta", "alpha"}, properties.Keys()); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}

	required, ok := get(t, doc, "required").(sample.Array)
	if !ok {
		t.Fatalf("required is not an array")
	}
	if diff := cmp.Diff(sample.Array{"zeta", "alpha"}, required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionBecomesAnyOf(t *testing.T) {
	doc := renderSamples(t, "Root", `{"v": "s"}`, `{"v": 1}`)

	properties := get(t, doc, "properties").(*sample.Object)
	v, _ := properties.Get("v")
	field, ok := v.(*sample.Object)
	if !ok {
		t.Fatalf("property v is not an object")
	}

	anyOf, ok := get(t, field, "anyOf").(sample.Array)
	if !ok || len(anyOf) != 2 {
		t.Fatalf("anyOf = %v, want two alternatives", anyOf)
	}

	first := anyOf[0].(*sample.Object)
	second := anyOf[1].(*sample.Object)
	if got, _ := first.Get("type"); got != "string" {
		t.Fatalf("first alternative = %v, want string", got)
	}
	if got, _ := second.Get("type"); got != "integer" {
		t.Fatalf("second alternative = %v, want integer", got)
	}
}

func TestOptionalKeyGetsNullAlternative(t *testing.T) {
	doc := renderSamples(t, "Root", `{"a": 1, "b": 2}`, `{"a": 3}`)

	properties := get(t, doc, "properties").(*sample.Object)
	b, _ := properties.Get("b")
	field := b.(*sample.Object)

	anyOf, ok := get(t, field, "anyOf").(sample.Array)
	if !ok || len(anyOf) != 2 {
		t.Fatalf("anyOf = %v, want integer and null alternatives", anyOf)
	}
	second := anyOf[1].(*sample.Object)
	if got, _ := second.Get("type"); got != "null" {
		t.Fatalf("second alternative = %v, want null", got)
	}

	required, _ := get(t, doc, "required").(sample.Array)
	if diff := cmp.Diff(sample.Array{"a"}, required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}
