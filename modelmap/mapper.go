package modelmap

import "fmt"

// MapModelToWireFormat maps a model to its wire-format record. The model may
// be a Record, a plain map, a Recorder or a struct (see RecordOf).
func MapModelToWireFormat(model any, spec Specification, opts ...Option) (Record, error) {
	src, err := RecordOf(model)
	if err != nil {
		return nil, err
	}

	return Apply(src, spec, ToWireFormat, opts...)
}

// MapWireFormatToModel maps a wire-format record to a model record and hands
// it to factory.
func MapWireFormatToModel[T any](wire Record, spec Specification, factory Factory[T], opts ...Option) (T, error) {
	var zero T

	rec, err := Apply(wire, spec, ToModel, opts...)
	if err != nil {
		return zero, err
	}

	entity, err := factory.FromRecord(rec)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrFactory, err)
	}

	return entity, nil
}

// Mapper binds a specification to the factory of one entity type.
type Mapper[T any] struct {
	spec    Specification
	factory Factory[T]
	opts    []Option
}

// NewMapper returns a Mapper for T.
func NewMapper[T any](spec Specification, factory Factory[T], opts ...Option) *Mapper[T] {
	return &Mapper[T]{spec: spec, factory: factory, opts: opts}
}

// Specification returns the mapper's specification.
func (m *Mapper[T]) Specification() Specification {
	return m.spec
}

// ToModel maps a wire-format record to T.
func (m *Mapper[T]) ToModel(wire Record) (T, error) {
	return MapWireFormatToModel(wire, m.spec, m.factory, m.opts...)
}

// ToWireFormat maps model to its wire-format record.
func (m *Mapper[T]) ToWireFormat(model T) (Record, error) {
	return MapModelToWireFormat(model, m.spec, m.opts...)
}
