package modelmap

import (
	"iter"
	"maps"
	"slices"
)

// Record is a plain key/value object: a decoded wire payload or the flat
// form of a model.
type Record map[string]any

// Get returns the value stored under key and whether it was present.
func (r Record) Get(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Keys returns the record keys in sorted order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	return maps.Clone(r)
}

// merge assigns every key of f into r, overwriting existing keys.
func (r Record) merge(f Fragment) {
	for k, v := range f.All() {
		r[k] = v
	}
}

// Pair is a single key/value of a Fragment.
type Pair struct {
	Key   string
	Value any
}

// KV is shorthand for Pair{Key: key, Value: value}.
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Fragment is the partial record a transform returns. Keys keep the order in
// which they were first set; setting an existing key replaces its value in
// place. The zero value is an empty fragment ready to use.
type Fragment struct {
	keys   []string
	values map[string]any
}

// FragmentOf builds a fragment from pairs, in order.
func FragmentOf(pairs ...Pair) Fragment {
	var f Fragment
	for _, p := range pairs {
		f.Set(p.Key, p.Value)
	}

	return f
}

// FragmentFromMap builds a fragment from m with keys in sorted order.
func FragmentFromMap(m map[string]any) Fragment {
	var f Fragment
	for _, k := range slices.Sorted(maps.Keys(m)) {
		f.Set(k, m[k])
	}

	return f
}

// Set stores value under key.
func (f *Fragment) Set(key string, value any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}

	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (f Fragment) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of keys.
func (f Fragment) Len() int {
	return len(f.keys)
}

// Keys returns the keys in insertion order.
func (f Fragment) Keys() []string {
	return slices.Clone(f.keys)
}

// All iterates over the key/value pairs in insertion order.
func (f Fragment) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range f.keys {
			if !yield(k, f.values[k]) {
				return
			}
		}
	}
}

// Record returns the fragment as a new record.
func (f Fragment) Record() Record {
	r := make(Record, len(f.keys))
	r.merge(f)

	return r
}
