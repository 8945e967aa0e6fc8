package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"model-mapper/modelmap"
)

var (
	ErrUnsupportedTransform = errors.New("unsupported transform function signature")
	ErrDuplicateTransform   = errors.New("transform already registered")
	ErrUnknownTransform     = errors.New("unknown transform")
	ErrUnknownMapping       = errors.New("unknown mapping")
	ErrInvalidFile          = errors.New("invalid mapping file")
)

// Registry holds Go transform functions by name. It is safe for concurrent
// use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]modelmap.TransformFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]modelmap.TransformFunc),
	}
}

// Register adds fn under name. Supported signatures:
//   - modelmap.TransformFunc, func(modelmap.Record) (modelmap.Fragment, error)
//   - func(modelmap.Record) modelmap.Fragment
//   - func(map[string]any) (map[string]any, error)
//   - func(map[string]any) map[string]any
func (r *Registry) Register(name string, fn any) error {
	if name == "" {
		return errors.New("transform name is empty")
	}

	tf, err := AdaptFunc(fn)
	if err != nil {
		return fmt.Errorf("transform %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTransform, name)
	}

	r.funcs[name] = tf

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn any) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}

	return r
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (modelmap.TransformFunc, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]

	return fn, ok
}

// Has returns true if a function is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.funcs))
}

// AdaptFunc converts a supported function value into a TransformFunc.
func AdaptFunc(fn any) (modelmap.TransformFunc, error) {
	switch f := fn.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedTransform)
	case modelmap.TransformFunc:
		if f == nil {
			return nil, fmt.Errorf("%w: nil", ErrUnsupportedTransform)
		}

		return f, nil
	case func(modelmap.Record) (modelmap.Fragment, error):
		return f, nil
	case func(modelmap.Record) modelmap.Fragment:
		return func(src modelmap.Record) (modelmap.Fragment, error) {
			return f(src), nil
		}, nil
	case func(map[string]any) (map[string]any, error):
		return func(src modelmap.Record) (modelmap.Fragment, error) {
			out, err := f(src)
			if err != nil {
				return modelmap.Fragment{}, err
			}

			return modelmap.FragmentFromMap(out), nil
		}, nil
	case func(map[string]any) map[string]any:
		return func(src modelmap.Record) (modelmap.Fragment, error) {
			return modelmap.FragmentFromMap(f(src)), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedTransform, fn)
	}
}
