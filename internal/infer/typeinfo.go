// Package infer implements the type descriptor and the merge engine that
// folds sample data trees into it. Descriptors only ever widen: flags and
// children gain information across merges and nothing is removed. The public
// surface is re-exported through pkg/infer.
package infer

// TypeInfo records every shape observed at one position in the sample data.
// One descriptor exists per distinct position (root, object key, or the
// shared array-item slot); repeated merges mutate it in place.
type TypeInfo struct {
	// Name seeds generated class and field names. Assigned at creation from
	// the key path or list-position context.
	Name string

	AllowStr   bool
	AllowInt   bool
	AllowFloat bool
	AllowNone  bool
	AllowDict  bool
	AllowList  bool

	// Optional marks keys that were absent from at least one merged sample
	// of the parent object. Set, never cleared.
	Optional bool

	// ListItems is the single descriptor shared by every element of every
	// array observed at this position. Nil until the first non-empty array.
	ListItems *TypeInfo

	keys     []string
	children map[string]*TypeInfo
}

// New creates an empty descriptor with the given name.
func New(name string) *TypeInfo {
	return &TypeInfo{Name: name}
}

// Keys returns the observed object keys in first-seen order.
func (t *TypeInfo) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Key returns the child descriptor recorded for an object key.
func (t *TypeInfo) Key(name string) (*TypeInfo, bool) {
	child, ok := t.children[name]
	return child, ok
}

// HasKeys reports whether any object keys were observed at this position.
func (t *TypeInfo) HasKeys() bool {
	return len(t.keys) > 0
}

func (t *TypeInfo) putKey(name string, child *TypeInfo) {
	if t.children == nil {
		t.children = make(map[string]*TypeInfo)
	}
	if _, exists := t.children[name]; !exists {
		t.keys = append(t.keys, name)
	}
	t.children[name] = child
}
