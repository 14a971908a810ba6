package fragment

import (
	"iter"
	"maps"
	"slices"
)

// Kind classifies a fragment value for merging.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case *Object:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindScalar
	}
}

// Object is a string-keyed mapping that preserves first-insertion order.
// The zero value is not usable; create objects with NewObject.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// FromMap converts a plain map, recursively, into an Object with keys in sorted order.
func FromMap(m map[string]any) *Object {
	o := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		o.Set(k, fromPlain(m[k]))
	}
	return o
}

func fromPlain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromPlain(e)
		}
		return out
	default:
		return v
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// All iterates over key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// ShallowCopy returns a new object holding the same values.
func (o *Object) ShallowCopy() *Object {
	if o == nil {
		return NewObject()
	}
	return &Object{
		keys:   slices.Clone(o.keys),
		values: maps.Clone(o.values),
	}
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	c := &Object{
		keys:   slices.Clone(o.keys),
		values: make(map[string]any, len(o.values)),
	}
	for k, v := range o.values {
		c.values[k] = Clone(v)
	}
	return c
}

// Map converts o, recursively, into plain Go maps and slices.
func (o *Object) Map() map[string]any {
	if o == nil {
		return nil
	}
	m := make(map[string]any, len(o.keys))
	for k, v := range o.values {
		m[k] = toPlain(v)
	}
	return m
}

func toPlain(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toPlain(e)
		}
		return out
	default:
		return v
	}
}

// Clone deep-copies a fragment value. Scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}
