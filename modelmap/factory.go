package modelmap

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read by StructFactory and RecordOf to name
// model keys. Untagged exported fields use their Go field name.
const TagName = "model"

// Factory builds a typed entity from a model record. It applies its own
// defaults for keys absent from the record.
type Factory[T any] interface {
	FromRecord(rec Record) (T, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc[T any] func(rec Record) (T, error)

// FromRecord calls fn(rec).
func (fn FactoryFunc[T]) FromRecord(rec Record) (T, error) {
	return fn(rec)
}

// Recorder is implemented by models that know their own record form.
type Recorder interface {
	Record() Record
}

type structFactory[T any] struct {
	defaults T
}

// StructFactory returns a factory that decodes a record into a copy of
// defaults. Keys absent from the record keep their default value; fields are
// matched by the "model" tag. T should be a struct type, not a pointer.
func StructFactory[T any](defaults T) Factory[T] {
	return structFactory[T]{defaults: defaults}
}

func (f structFactory[T]) FromRecord(rec Record) (T, error) {
	out := f.defaults

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  &out,
		// Replace slices and maps instead of writing into the ones shared
		// with defaults.
		ZeroFields: true,
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if err := dec.Decode(map[string]any(rec)); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %T: %w", out, err)
	}

	return out, nil
}

// RecordOf returns the record form of a model. Records and plain maps are
// returned as is, a Recorder supplies its own record, and structs (or
// pointers to structs) are flattened by field, nested structs becoming
// nested records.
func RecordOf(v any) (Record, error) {
	switch m := v.(type) {
	case nil:
		return nil, ErrNilSource
	case Record:
		if m == nil {
			return nil, ErrNilSource
		}

		return m, nil
	case map[string]any:
		if m == nil {
			return nil, ErrNilSource
		}

		return Record(m), nil
	case Recorder:
		rec := m.Record()
		if rec == nil {
			return nil, ErrNilSource
		}

		return rec, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrNilSource
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotAStruct, v)
	}

	out := map[string]any{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(rv.Interface()); err != nil {
		return nil, fmt.Errorf("flatten %T: %w", v, err)
	}

	return Record(out), nil
}
