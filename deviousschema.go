// Package deviousschema infers a type descriptor from example JSON or YAML
// documents and renders it as pydantic model source (or another registered
// output flavor). The top-level helpers cover the common one-shot flows;
// construct an orchestrator directly for custom loaders or renderers.
package deviousschema

import (
	"context"

	"github.com/ryn-cx/devious-schema/pkg/orchestrator"
	"github.com/ryn-cx/devious-schema/pkg/render"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

// Request aliases the orchestrator request for callers that only import the
// root package.
type Request = orchestrator.Request

// Option aliases the orchestrator option type.
type Option = orchestrator.Option

// RenderOptions aliases per-request rendering instructions.
type RenderOptions = render.Options

// NewOrchestrator builds the underlying pipeline with any overrides applied.
func NewOrchestrator(options ...Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GetSchema renders a single in-memory sample with the default renderer. The
// value passes through sample.FromAny, so plain Go maps, slices, and numbers
// are accepted.
func GetSchema(ctx context.Context, value sample.Value, rootName string) (string, error) {
	return GetSchemaFromValues(ctx, []sample.Value{value}, rootName)
}

// GetSchemaFromValues merges several in-memory samples into one schema.
func GetSchemaFromValues(ctx context.Context, samples []sample.Value, rootName string) (string, error) {
	return generate(ctx, Request{
		Samples:  samples,
		RootName: rootName,
	})
}

// GetSchemaFromFiles reads the given JSON or YAML files, merges every
// document, and renders the result. Any unreadable or malformed file fails
// the whole run.
func GetSchemaFromFiles(ctx context.Context, paths []string, rootName string) (string, error) {
	sources := make([]sample.Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, sample.SourceFromFile(path))
	}
	return generate(ctx, Request{
		Sources:  sources,
		RootName: rootName,
	})
}

// GetSchemaFromFolder merges every JSON or YAML document directly inside the
// folder, in lexical filename order, and renders the result.
func GetSchemaFromFolder(ctx context.Context, folder string, rootName string) (string, error) {
	return generate(ctx, Request{
		Folder:   folder,
		RootName: rootName,
	})
}

func generate(ctx context.Context, req Request) (string, error) {
	output, err := orchestrator.New().Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return string(output), nil
}
