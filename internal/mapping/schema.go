package mapping

// SchemaVersion is the only mapping file version understood.
const SchemaVersion = "1"

// File represents the root of a YAML mapping file.
type File struct {
	// Version of the mapping schema.
	Version string `yaml:"version,omitempty"`

	// Mappings lists the named specifications.
	Mappings []Mapping `yaml:"mappings"`

	// Transforms declares transforms available to the entries.
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

// Mapping is one named specification.
type Mapping struct {
	// Name identifies the mapping (e.g., "user").
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// OneToOne lists direct entries as model key -> wire key in document
	// order. They are applied before Entries.
	OneToOne KeyPairs `yaml:"121,omitempty"`

	// Entries lists direct and transform entries in order.
	Entries []EntryDef `yaml:"entries,omitempty"`
}

// KeyPair is a model key and the wire key it corresponds to.
type KeyPair struct {
	Model string
	Wire  string
}

// KeyPairs is an ordered list of key pairs, written in YAML as a mapping.
type KeyPairs []KeyPair

// EntryDef is a single entry of a mapping.
type EntryDef struct {
	// Model is the model key. For transform entries it is advisory.
	Model string

	// Wire is the wire key of a direct entry.
	Wire string

	// ToModel and ToWire name the transforms for each direction; empty means
	// the direction is not supported.
	ToModel string
	ToWire  string

	// Transform is set when the entry declared to_model or to_wire.
	Transform bool

	Description string
}

// TransformDef declares a transform.
type TransformDef struct {
	// Name is how entries refer to the transform.
	Name string `yaml:"name"`

	// Expr is an expr-lang expression evaluated with the source record as
	// its environment. It must evaluate to a map.
	Expr string `yaml:"expr,omitempty"`

	// Func names a Go function in the Registry. Defaults to Name when Expr
	// is empty.
	Func string `yaml:"func,omitempty"`

	Description string `yaml:"description,omitempty"`
}

// Mapping returns the mapping with the given name, or nil.
func (f *File) Mapping(name string) *Mapping {
	for i := range f.Mappings {
		if f.Mappings[i].Name == name {
			return &f.Mappings[i]
		}
	}

	return nil
}

// Names returns the mapping names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Mappings))
	for i := range f.Mappings {
		names = append(names, f.Mappings[i].Name)
	}

	return names
}

// Transform returns the declared transform with the given name, or nil.
func (f *File) Transform(name string) *TransformDef {
	for i := range f.Transforms {
		if f.Transforms[i].Name == name {
			return &f.Transforms[i]
		}
	}

	return nil
}

// AllEntries returns the 121 pairs as direct entries followed by Entries.
func (m *Mapping) AllEntries() []EntryDef {
	all := make([]EntryDef, 0, len(m.OneToOne)+len(m.Entries))
	for _, p := range m.OneToOne {
		all = append(all, EntryDef{Model: p.Model, Wire: p.Wire})
	}

	return append(all, m.Entries...)
}

// DirectDef returns a direct entry definition.
func DirectDef(model, wire string) EntryDef {
	return EntryDef{Model: model, Wire: wire}
}

// TransformEntryDef returns a transform entry definition. Empty names leave
// that direction unsupported.
func TransformEntryDef(model, toModel, toWire string) EntryDef {
	return EntryDef{Model: model, ToModel: toModel, ToWire: toWire, Transform: true}
}

// TransformNames returns the transform names the entry refers to.
func (e EntryDef) TransformNames() []string {
	var names []string
	if e.ToModel != "" {
		names = append(names, e.ToModel)
	}

	if e.ToWire != "" {
		names = append(names, e.ToWire)
	}

	return names
}
