// Package modelmap converts between wire-format records and typed domain
// models using an ordered, declarative specification.
//
// A specification is a list of entries. Each entry is one of:
//
//   - DirectEntry: a model key that corresponds 1:1 to a wire key; the value is
//     copied verbatim in either direction.
//   - TransformEntry: a pair of optional functions, one per direction, that
//     receive the whole source record and return a Fragment that is merged
//     into the target. A nil function means the entry does not take part in
//     that direction.
//
// Entries are applied in order and later entries overwrite keys written by
// earlier ones.
//
// # Directions
//
//	ToWireFormat (model -> wire): source key = ModelKey, target key = WireKey
//	ToModel      (wire -> model): source key = WireKey,  target key = ModelKey
//
// # Example
//
//	spec := modelmap.Specification{
//		modelmap.Direct("id", "id"),
//		modelmap.Direct("username", "userName"),
//		modelmap.Transform("isAdmin", splitPerms, joinPerms),
//	}
//
//	user, err := modelmap.MapWireFormatToModel(payload, spec, modelmap.StructFactory(User{}))
//	wire, err := modelmap.MapModelToWireFormat(user, spec)
//
// The engine never mutates the source record or the specification, so a
// specification can be shared by any number of concurrent calls.
package modelmap
