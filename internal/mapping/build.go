package mapping

import (
	"fmt"

	"model-mapper/internal/diagnostic"
	"model-mapper/modelmap"
)

// Build validates f and returns the specification of the named mapping.
// Any error in the file fails the build.
func Build(f *File, name string, reg *Registry) (modelmap.Specification, error) {
	specs, err := BuildAll(f, reg)
	if err != nil {
		return nil, err
	}

	spec, ok := specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapping, name)
	}

	return spec, nil
}

// BuildAll validates f and returns every specification by mapping name.
func BuildAll(f *File, reg *Registry) (map[string]modelmap.Specification, error) {
	specs, res := compile(f, reg)
	if res.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, res.Error())
	}

	return specs, nil
}

// compiler turns a File into specifications, recording problems as it goes.
type compiler struct {
	file *File
	reg  *Registry
	res  *diagnostic.Diagnostics

	// declared holds every named file transform, including ones that failed
	// to compile, so references to them are not reported twice.
	declared   map[string]bool
	transforms map[string]modelmap.TransformFunc
	used       map[string]bool
}

func compile(f *File, reg *Registry) (map[string]modelmap.Specification, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", diagnostic.Nowhere)
		return nil, res
	}

	if f.Version != SchemaVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q (expected %q)", f.Version, SchemaVersion), diagnostic.Nowhere)
	}

	c := &compiler{
		file:       f,
		reg:        reg,
		res:        res,
		declared:   map[string]bool{},
		transforms: map[string]modelmap.TransformFunc{},
		used:       map[string]bool{},
	}

	c.compileTransforms()

	specs := make(map[string]modelmap.Specification, len(f.Mappings))
	seen := make(map[string]bool, len(f.Mappings))

	for i := range f.Mappings {
		m := &f.Mappings[i]

		if m.Name == "" {
			res.AddError("empty_mapping_name", fmt.Sprintf("mapping #%d has no name", i), diagnostic.Nowhere)
			continue
		}

		if seen[m.Name] {
			res.AddError("duplicate_mapping", fmt.Sprintf("duplicate mapping %q", m.Name), diagnostic.InMapping(m.Name))
			continue
		}

		seen[m.Name] = true

		if spec, ok := c.buildMapping(m); ok {
			specs[m.Name] = spec
		}
	}

	for i := range f.Transforms {
		name := f.Transforms[i].Name
		if name != "" && !c.used[name] {
			res.AddInfo("unused_transform", fmt.Sprintf("transform %q is not used by any entry", name),
				diagnostic.Location{Entry: -1, Key: name})
		}
	}

	return specs, res
}

func (c *compiler) compileTransforms() {
	for i := range c.file.Transforms {
		def := &c.file.Transforms[i]
		loc := diagnostic.Location{Entry: -1, Key: def.Name}

		if def.Name == "" {
			c.res.AddError("empty_transform_name", fmt.Sprintf("transform #%d has no name", i), diagnostic.Nowhere)
			continue
		}

		if c.declared[def.Name] {
			c.res.AddError("duplicate_transform", fmt.Sprintf("duplicate transform %q", def.Name), loc)
			continue
		}

		c.declared[def.Name] = true

		switch {
		case def.Expr != "" && def.Func != "":
			c.res.AddError("ambiguous_transform",
				fmt.Sprintf("transform %q declares both expr and func", def.Name), loc)

		case def.Expr != "":
			fn, err := CompileExpr(def.Expr)
			if err != nil {
				c.res.AddError("invalid_expression",
					fmt.Sprintf("transform %q: %v", def.Name, err), loc)

				continue
			}

			c.transforms[def.Name] = fn

		default:
			fn, ok := c.reg.Get(def.Func)
			if !ok {
				c.res.AddError("unknown_function",
					fmt.Sprintf("transform %q: no Go function registered as %q", def.Name, def.Func), loc)

				continue
			}

			c.transforms[def.Name] = fn
		}
	}
}

func (c *compiler) buildMapping(m *Mapping) (modelmap.Specification, bool) {
	entries := m.AllEntries()
	spec := make(modelmap.Specification, 0, len(entries))
	ok := true

	for i, e := range entries {
		loc := diagnostic.At(m.Name, i, e.Model)

		if !e.Transform {
			if e.Model == "" {
				c.res.AddError("empty_model_key", "direct entry has no model key", loc)
				ok = false
			}

			if e.Wire == "" {
				c.res.AddError("empty_wire_key", "entry has neither a wire key nor transforms", loc)
				ok = false
			}

			spec = append(spec, modelmap.Direct(e.Model, e.Wire))

			continue
		}

		if e.Wire != "" {
			c.res.AddError("ambiguous_entry", "entry declares both a wire key and transforms", loc)
			ok = false

			continue
		}

		toModel, okModel := c.resolve(e.ToModel, loc)
		toWire, okWire := c.resolve(e.ToWire, loc)

		if !okModel || !okWire {
			ok = false
			continue
		}

		spec = append(spec, modelmap.Transform(e.Model, toModel, toWire))
	}

	return spec, ok
}

// resolve looks a transform name up in the file, then in the registry.
// An empty name resolves to nil.
func (c *compiler) resolve(name string, loc diagnostic.Location) (modelmap.TransformFunc, bool) {
	if name == "" {
		return nil, true
	}

	c.used[name] = true

	if c.declared[name] {
		fn, ok := c.transforms[name]
		return fn, ok
	}

	if fn, ok := c.reg.Get(name); ok {
		return fn, true
	}

	c.res.AddError("unknown_transform", fmt.Sprintf("transform %q is not defined", name), loc)

	return nil, false
}
