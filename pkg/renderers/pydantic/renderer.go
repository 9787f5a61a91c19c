// Package pydantic renders a completed descriptor as pydantic model source.
// The output text is pinned byte-for-byte by golden tests: header lines,
// section separators, class layout, and union ordering all match the
// generator this package replaces.
package pydantic

import (
	"context"
	"errors"
	"strings"

	"github.com/ryn-cx/devious-schema/pkg/casing"
	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
)

const (
	header = "from pydantic import BaseModel, Field, ConfigDict\n" +
		"from typing import Any"

	// Two blank lines between sections, PEP 8 style.
	sectionSeparator = "\n\n\n"

	indent = "    "
)

// Renderer emits pydantic model definitions.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return "pydantic"
}

// ContentType describes the generated payload.
func (r *Renderer) ContentType() string {
	return "text/x-python"
}

// Render walks the descriptor and produces the import header followed by
// every generated model class and, for array-shaped roots, a top-level typed
// binding.
func (r *Renderer) Render(ctx context.Context, info *infer.TypeInfo, options render.Options) ([]byte, error) {
	if info == nil {
		return nil, errors.New("pydantic: descriptor is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	className := options.ClassName
	if className == "" {
		className = info.Name
	}
	return []byte(generateSchema(info, className)), nil
}

// generateSchema assembles the final text. The root descriptor picks one of
// three shapes: pure object, pure array, or both (samples included each).
func generateSchema(info *infer.TypeInfo, className string) string {
	var models []string

	switch {
	case info.HasKeys() && info.ListItems != nil:
		// The class generated for the object shape under the caller's name
		// is discarded; the annotation below regenerates it as "<Name>Dict"
		// so the binding can reference it alongside the list alternative.
		generateDictModel(info, className, &models)
		listType := buildTypeAnnotation(info, &models)
		models = append(models, casing.ToSnakeCase(info.Name)+": "+listType)
	case info.ListItems != nil:
		listType := buildTypeAnnotation(info, &models)
		models = append(models, casing.ToSnakeCase(info.Name)+": "+listType)
	case info.HasKeys():
		model := generateDictModel(info, className, &models)
		models = append(models, model)
	}

	return header + sectionSeparator + strings.Join(models, sectionSeparator)
}

// buildTypeAnnotation composes the union-type expression for one descriptor.
// Alternatives join in a fixed order: str, int, float, None, nested class or
// open map, list. The order is load-bearing for reproducible output.
func buildTypeAnnotation(info *infer.TypeInfo, models *[]string) string {
	var parts []string

	if info.AllowStr {
		parts = append(parts, "str")
	}
	if info.AllowInt {
		parts = append(parts, "int")
	}
	if info.AllowFloat {
		parts = append(parts, "float")
	}
	if info.AllowNone || info.Optional {
		parts = append(parts, "None")
	}

	if info.HasKeys() {
		className := casing.ToPascalCase(info.Name) + "Dict"
		parts = append(parts, `"`+className+`"`)
		model := generateDictModel(info, className, models)
		*models = append([]string{model}, *models...)
	} else if info.AllowDict {
		parts = append(parts, "dict[str, Any]")
	}

	listType := ""
	switch {
	case info.ListItems != nil:
		listType = buildTypeAnnotation(info.ListItems, models)
	case info.AllowList:
		listType = "Any"
	}
	if listType != "" {
		parts = append(parts, "list["+listType+"]")
	}

	switch len(parts) {
	case 0:
		return "Any"
	case 1:
		return parts[0]
	}
	return strings.Join(parts, " | ")
}

// generateDictModel emits one model class for an object shape. Nested object
// fields recurse through buildTypeAnnotation, which prepends their classes
// ahead of previously accumulated ones.
func generateDictModel(info *infer.TypeInfo, modelName string, models *[]string) string {
	lines := []string{
		"class " + casing.ToPascalCase(modelName) + "(BaseModel):",
		indent + `model_config = ConfigDict(extra="forbid")`,
	}

	for _, key := range info.Keys() {
		child, _ := info.Key(key)
		fieldType := buildTypeAnnotation(child, models)

		// Leading underscores are stripped because pydantic treats such
		// fields as private; the alias keeps the wire name round-trippable.
		identifier := strings.TrimLeft(casing.ToSnakeCase(key), "_")
		fieldConfig := ""
		if identifier != key {
			fieldConfig = ` = Field(alias="` + key + `")`
		}

		lines = append(lines, indent+identifier+": "+fieldType+fieldConfig)
	}

	return strings.Join(lines, "\n")
}
