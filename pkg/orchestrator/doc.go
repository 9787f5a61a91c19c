// Package orchestrator wires the loader → decoder → merge engine → renderer
// pipeline, providing dependency-injection friendly helpers for consumers
// that prefer a single entry point. Every source is loaded and decoded before
// the first merge so a bad input fails the whole run up front.
package orchestrator
