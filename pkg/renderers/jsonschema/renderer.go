// Package jsonschema renders a completed descriptor as a JSON Schema (draft
// 2020-12) document. Property order follows first-seen key order and object
// schemas forbid additional properties, matching the generated pydantic
// models. Field aliases are implicit: properties carry the original wire
// names.
package jsonschema

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
)

const schemaVersion = "https://json-schema.org/draft/2020-12/schema"

// Renderer emits a JSON Schema document.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return "jsonschema"
}

// ContentType describes the generated payload.
func (r *Renderer) ContentType() string {
	return "application/schema+json"
}

// Render converts the descriptor tree into a jsonschema.Schema and returns
// it as indented JSON.
func (r *Renderer) Render(ctx context.Context, info *infer.TypeInfo, options render.Options) ([]byte, error) {
	if info == nil {
		return nil, errors.New("jsonschema: descriptor is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema := schemaFor(info)
	schema.Version = schemaVersion
	if schema.Title == "" {
		title := options.ClassName
		if title == "" {
			title = info.Name
		}
		schema.Title = title
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal schema: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("jsonschema: indent schema: %w", err)
	}
	return buf.Bytes(), nil
}

// schemaFor builds one schema node. Unions become anyOf in the same fixed
// order the annotation renderer uses, with a null alternative covering both
// observed nulls and optionality.
func schemaFor(info *infer.TypeInfo) *jsonschema.Schema {
	var alternatives []*jsonschema.Schema

	if info.AllowStr {
		alternatives = append(alternatives, &jsonschema.Schema{Type: "string"})
	}
	if info.AllowInt {
		alternatives = append(alternatives, &jsonschema.Schema{Type: "integer"})
	}
	if info.AllowFloat {
		alternatives = append(alternatives, &jsonschema.Schema{Type: "number"})
	}
	if info.AllowNone || info.Optional {
		alternatives = append(alternatives, &jsonschema.Schema{Type: "null"})
	}

	if info.HasKeys() {
		alternatives = append(alternatives, objectSchemaFor(info))
	} else if info.AllowDict {
		alternatives = append(alternatives, &jsonschema.Schema{Type: "object"})
	}

	switch {
	case info.ListItems != nil:
		alternatives = append(alternatives, &jsonschema.Schema{
			Type:  "array",
			Items: schemaFor(info.ListItems),
		})
	case info.AllowList:
		alternatives = append(alternatives, &jsonschema.Schema{Type: "array"})
	}

	switch len(alternatives) {
	case 0:
		return &jsonschema.Schema{}
	case 1:
		return alternatives[0]
	}
	return &jsonschema.Schema{AnyOf: alternatives}
}

func objectSchemaFor(info *infer.TypeInfo) *jsonschema.Schema {
	properties := orderedmap.New[string, *jsonschema.Schema]()
	var required []string

	for _, key := range info.Keys() {
		child, _ := info.Key(key)
		properties.Set(key, schemaFor(child))
		if !child.Optional {
			required = append(required, key)
		}
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           properties,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}
