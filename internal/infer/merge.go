package infer

import (
	"errors"
	"fmt"

	"github.com/ryn-cx/devious-schema/pkg/casing"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

var (
	// ErrUnsupportedKind reports a runtime value outside the supported set
	// of string, integer, float, null, object, and array. This is a contract
	// violation, not a recoverable condition.
	ErrUnsupportedKind = errors.New("infer: unsupported value kind")

	// ErrRootKind reports a top-level sample that is neither an object nor
	// an array.
	ErrRootKind = errors.New("infer: root sample must be an object or array")
)

// Merge folds one decoded sample into the root descriptor, widening it in
// place. It can be called repeatedly with different samples against the same
// descriptor to accumulate a union shape. The value's kind is recognised
// before any mutation, so a rejected sample leaves the descriptor untouched;
// a failure deep inside a container may leave earlier siblings already
// widened.
func Merge(value sample.Value, info *TypeInfo) error {
	if info == nil {
		return errors.New("infer: descriptor is required")
	}

	switch v := value.(type) {
	case *sample.Object:
		return mergeObject(v, info)
	case sample.Array:
		return mergeArray(v, info)
	default:
		return fmt.Errorf("%w: root is %T", ErrRootKind, value)
	}
}

// MergeAll folds the samples into the shared descriptor in input order. This
// is how optionality across samples and scalar-kind unions accumulate. On
// error, widening from already-processed samples remains in place.
func MergeAll(values []sample.Value, info *TypeInfo) error {
	for _, value := range values {
		if err := Merge(value, info); err != nil {
			return err
		}
	}
	return nil
}

func mergeObject(obj *sample.Object, info *TypeInfo) error {
	for _, key := range obj.Keys() {
		child, ok := info.Key(key)
		if !ok {
			child = New(info.Name + casing.ToPascalCase(key))
			info.putKey(key, child)
		}

		value, _ := obj.Get(key)
		if err := mergeValue(value, child, key); err != nil {
			return err
		}
	}

	// Optionality is re-checked against the current sample only; the flag is
	// never cleared, so a key absent from any sample stays optional. A key
	// first seen in a late sample and never missing afterwards stays
	// non-optional even though earlier samples lacked it.
	for _, key := range info.Keys() {
		if !obj.Has(key) {
			child, _ := info.Key(key)
			child.Optional = true
		}
	}
	return nil
}

func mergeArray(arr sample.Array, info *TypeInfo) error {
	info.AllowList = true
	if len(arr) == 0 {
		return nil
	}

	if info.ListItems == nil {
		info.ListItems = New(info.Name + "Item")
	}
	for _, item := range arr {
		if err := mergeValue(item, info.ListItems, ""); err != nil {
			return err
		}
	}
	return nil
}

func mergeValue(value sample.Value, info *TypeInfo, keyName string) error {
	switch v := value.(type) {
	case string:
		info.AllowStr = true
	case int:
		info.AllowInt = true
	case int64:
		info.AllowInt = true
	case float64:
		info.AllowFloat = true
	case nil:
		info.AllowNone = true
	case *sample.Object:
		info.AllowDict = true
		return mergeObject(v, info)
	case sample.Array:
		info.AllowList = true
		if len(v) == 0 {
			return nil
		}
		if info.ListItems == nil {
			name := info.Name + "Item"
			if keyName != "" {
				name = keyName + "_item"
			}
			info.ListItems = New(name)
		}
		for _, item := range v {
			if err := mergeValue(item, info.ListItems, ""); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedKind, value)
	}
	return nil
}
