package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/ryn-cx/devious-schema/internal/loader"
	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
	jsonschemarenderer "github.com/ryn-cx/devious-schema/pkg/renderers/jsonschema"
	openapirenderer "github.com/ryn-cx/devious-schema/pkg/renderers/openapi"
	"github.com/ryn-cx/devious-schema/pkg/renderers/pydantic"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

const (
	defaultRendererName = "pydantic"
	defaultRootName     = "Model"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom sample loader.
func WithLoader(loader sample.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions rebuilds the built-in loader from the supplied options,
// e.g. to enable HTTP sources or an fs.FS.
func WithLoaderOptions(options sample.LoaderOptions) Option {
	return func(o *Orchestrator) {
		o.loader = internalloader.New(options)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator coordinates the full pipeline from raw sample documents to
// generated schema output. It applies sensible defaults (pydantic renderer,
// offline-only loading) while remaining open to dependency injection.
type Orchestrator struct {
	loader          sample.Loader
	registry        *render.Registry
	defaultRenderer string
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to infer and render a schema.
type Request struct {
	// Sources identify where sample documents live. Optional when Folder or
	// Samples supply the data.
	Sources []sample.Source

	// Folder expands to every JSON/YAML document directly inside a
	// directory, appended after Sources in lexical order.
	Folder string

	// Samples supplies pre-decoded values, bypassing the loader. Values are
	// normalised with sample.FromAny; note that plain Go maps carry no key
	// order.
	Samples []sample.Value

	// RootName seeds the root descriptor's name and the generated class
	// name. Defaults to "Model".
	RootName string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request rendering instructions.
	RenderOptions render.Options
}

// Generate executes the loader → decoder → merge → renderer sequence and
// returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	info, err := o.Infer(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, info, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Infer runs everything except rendering and returns the merged descriptor.
func (o *Orchestrator) Infer(ctx context.Context, req Request) (*infer.TypeInfo, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	rootName := req.RootName
	if rootName == "" {
		rootName = defaultRootName
	}

	sources := append([]sample.Source(nil), req.Sources...)
	if req.Folder != "" {
		expanded, err := internalloader.ExpandFolder(req.Folder)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: expand folder: %w", err)
		}
		sources = append(sources, expanded...)
	}

	// Load and decode every document before merging anything so one bad
	// input fails the whole run with its path attached.
	values := make([]sample.Value, 0, len(sources)+len(req.Samples))
	for _, src := range sources {
		doc, err := o.loader.Load(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load %s: %w", src.Location(), err)
		}
		value, err := doc.Decode()
		if err != nil {
			return nil, fmt.Errorf("orchestrator: decode %s: %w", doc.Location(), err)
		}
		values = append(values, value)
	}
	for _, raw := range req.Samples {
		value, err := sample.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: normalise sample: %w", err)
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return nil, errors.New("orchestrator: no samples provided")
	}

	root := infer.New(rootName)
	if err := infer.MergeAll(values, root); err != nil {
		return nil, fmt.Errorf("orchestrator: merge samples: %w", err)
	}
	return root, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalloader.New(sample.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(pydantic.New())
		o.registry.MustRegister(openapirenderer.New())
		o.registry.MustRegister(jsonschemarenderer.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
