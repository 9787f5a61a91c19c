// Package sample models decoded JSON-like data trees ahead of type
// inference. Go's built-in maps do not retain insertion order, but the order
// object keys were first seen is significant for generated output, so the
// package provides an insertion-ordered Object alongside plain scalar and
// array values, plus decoding helpers that preserve document order.
package sample

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// Value is one decoded JSON-like value. Supported kinds are string, int,
// int64, float64, nil, *Object, and Array. Other kinds (booleans included)
// survive decoding but are rejected by the merge engine.
type Value = any

// Array is an ordered sequence of decoded values.
type Array []Value

// Object is a string-keyed mapping that iterates in insertion order. A key
// written twice keeps its original position.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores value under key, appending the key on first insertion.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// FromAny normalises a native Go value into the Value shape produced by the
// decoders. Plain maps carry no ordering, so their keys are sorted; callers
// that need document order should decode with Decode or DecodeYAML instead.
// Already-normalised objects are revisited in place.
func FromAny(value any) (Value, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string, int, int64, float64, bool:
		return v, nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return float64(v), nil
	case json.Number:
		return numberValue(v)
	case *Object:
		for _, key := range v.keys {
			normalised, err := FromAny(v.values[key])
			if err != nil {
				return nil, err
			}
			v.values[key] = normalised
		}
		return v, nil
	case Array:
		return fromSlice(v)
	case []any:
		return fromSlice(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, key := range keys {
			normalised, err := FromAny(v[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, normalised)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("sample: unsupported value kind %T", value)
	}
}

func fromSlice(values []Value) (Array, error) {
	out := make(Array, 0, len(values))
	for _, value := range values {
		normalised, err := FromAny(value)
		if err != nil {
			return nil, err
		}
		out = append(out, normalised)
	}
	return out, nil
}
