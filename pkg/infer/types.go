// Package infer re-exports the descriptor type and merge entry points from
// internal/infer so callers and renderers share one public surface.
package infer

import (
	internalinfer "github.com/ryn-cx/devious-schema/internal/infer"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

// TypeInfo re-exports the internal descriptor type.
type TypeInfo = internalinfer.TypeInfo

var (
	// ErrUnsupportedKind re-exports the unsupported-value-kind sentinel.
	ErrUnsupportedKind = internalinfer.ErrUnsupportedKind

	// ErrRootKind re-exports the invalid-root sentinel.
	ErrRootKind = internalinfer.ErrRootKind
)

// New creates an empty descriptor with the given name.
func New(name string) *TypeInfo {
	return internalinfer.New(name)
}

// Merge folds one decoded sample into the descriptor, widening it in place.
func Merge(value sample.Value, info *TypeInfo) error {
	return internalinfer.Merge(value, info)
}

// MergeAll folds the samples into the shared descriptor in input order.
func MergeAll(values []sample.Value, info *TypeInfo) error {
	return internalinfer.MergeAll(values, info)
}
