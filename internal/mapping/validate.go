package mapping

import (
	"fmt"

	"model-mapper/internal/diagnostic"
	"model-mapper/modelmap"
)

// Validate checks a mapping file against reg and lints every mapping that
// builds cleanly.
func Validate(f *File, reg *Registry) *diagnostic.Diagnostics {
	specs, res := compile(f, reg)
	if f == nil {
		return res
	}

	for _, name := range f.Names() {
		if spec, ok := specs[name]; ok {
			res.Merge(Lint(name, spec))
		}
	}

	return res
}

// Lint reports suspicious entries of a built specification. Findings never
// change how the specification maps.
func Lint(name string, spec modelmap.Specification) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	// writers remembers the last direct entry writing each target key.
	writers := map[modelmap.Direction]map[string]int{
		modelmap.ToModel:      {},
		modelmap.ToWireFormat: {},
	}

	for i, entry := range spec {
		switch e := modelmap.Unwrap(entry).(type) {
		case modelmap.DirectEntry:
			loc := diagnostic.At(name, i, e.ModelKey)

			if e.ModelKey == "" {
				res.AddError("empty_model_key", "direct entry has no model key", loc)
			}

			if e.WireKey == "" {
				res.AddError("empty_wire_key", "direct entry has no wire key", loc)
			}

			for _, dir := range []modelmap.Direction{modelmap.ToModel, modelmap.ToWireFormat} {
				_, to := e.Keys(dir)
				if prev, ok := writers[dir][to]; ok {
					res.AddInfo("overwritten_key",
						fmt.Sprintf("%s key %q written by entry %d is overwritten", dir, to, prev), loc)
				}

				writers[dir][to] = i
			}

		case modelmap.TransformEntry:
			if e.IsInert() {
				res.AddWarning("dead_entry", "transform entry has no function for either direction",
					diagnostic.At(name, i, e.ModelKey))
			}

		default:
			res.AddError("nil_entry", fmt.Sprintf("entry is %T", entry), diagnostic.At(name, i, ""))
		}
	}

	return res
}
