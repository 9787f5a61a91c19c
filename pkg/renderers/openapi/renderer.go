// Package openapi renders a completed descriptor as an OpenAPI 3 schema
// document. Objects forbid unknown properties and keys that were present in
// every sample are listed as required, mirroring the strictness of the
// generated pydantic models.
package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
)

// Renderer emits an OpenAPI 3 schema document.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return "openapi"
}

// ContentType describes the generated payload.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render converts the descriptor tree into an openapi3.Schema and returns it
// as indented JSON.
func (r *Renderer) Render(ctx context.Context, info *infer.TypeInfo, options render.Options) ([]byte, error) {
	if info == nil {
		return nil, errors.New("openapi: descriptor is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema := schemaFor(info)
	if schema.Title == "" {
		title := options.ClassName
		if title == "" {
			title = info.Name
		}
		schema.Title = title
	}

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal schema: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("openapi: indent schema: %w", err)
	}
	return buf.Bytes(), nil
}

// schemaFor builds one schema node, collecting alternatives in the same
// fixed order the annotation renderer uses: string, integer, number, object,
// array. Null and optionality map onto nullable.
func schemaFor(info *infer.TypeInfo) *openapi3.Schema {
	var alternatives []*openapi3.Schema

	if info.AllowStr {
		alternatives = append(alternatives, openapi3.NewStringSchema())
	}
	if info.AllowInt {
		alternatives = append(alternatives, openapi3.NewIntegerSchema())
	}
	if info.AllowFloat {
		alternatives = append(alternatives, openapi3.NewFloat64Schema())
	}

	if info.HasKeys() {
		alternatives = append(alternatives, objectSchemaFor(info))
	} else if info.AllowDict {
		alternatives = append(alternatives, openapi3.NewObjectSchema())
	}

	switch {
	case info.ListItems != nil:
		array := openapi3.NewArraySchema()
		array.Items = openapi3.NewSchemaRef("", schemaFor(info.ListItems))
		alternatives = append(alternatives, array)
	case info.AllowList:
		alternatives = append(alternatives, openapi3.NewArraySchema())
	}

	nullable := info.AllowNone || info.Optional

	switch len(alternatives) {
	case 0:
		return &openapi3.Schema{Nullable: nullable}
	case 1:
		schema := alternatives[0]
		schema.Nullable = nullable
		return schema
	}

	refs := make(openapi3.SchemaRefs, 0, len(alternatives))
	for _, alternative := range alternatives {
		refs = append(refs, openapi3.NewSchemaRef("", alternative))
	}
	return &openapi3.Schema{OneOf: refs, Nullable: nullable}
}

func objectSchemaFor(info *infer.TypeInfo) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	schema.Properties = make(openapi3.Schemas, len(info.Keys()))

	for _, key := range info.Keys() {
		child, _ := info.Key(key)
		schema.Properties[key] = openapi3.NewSchemaRef("", schemaFor(child))
		if !child.Optional {
			schema.Required = append(schema.Required, key)
		}
	}
	return schema
}
