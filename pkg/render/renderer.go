// Package render defines the renderer contract and the named registry the
// orchestrator resolves renderers from.
package render

import (
	"context"

	"github.com/ryn-cx/devious-schema/pkg/infer"
)

// Options carries per-request rendering instructions.
type Options struct {
	// ClassName overrides the name used for the root model. Defaults to the
	// descriptor's own name.
	ClassName string
}

// Renderer converts a completed descriptor into generated source bytes
// (pydantic models, a JSON Schema document, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, info *infer.TypeInfo, options Options) ([]byte, error)
}
