package modelmap

// TransformFunc computes a fragment of the target from the whole source
// record. It must not modify src.
type TransformFunc func(src Record) (Fragment, error)

// Entry is one rule of a Specification. The only implementations are
// DirectEntry and TransformEntry.
type Entry interface {
	// Key returns the model key the entry is documented under.
	Key() string

	isEntry()
}

// DirectEntry copies the value of one field verbatim between ModelKey on the
// model side and WireKey on the wire side.
type DirectEntry struct {
	ModelKey string
	WireKey  string
}

// Direct returns a DirectEntry.
func Direct(modelKey, wireKey string) DirectEntry {
	return DirectEntry{ModelKey: modelKey, WireKey: wireKey}
}

// Key returns the model key.
func (e DirectEntry) Key() string { return e.ModelKey }

// Keys returns the source and target keys for the given direction.
func (e DirectEntry) Keys(dir Direction) (from, to string) {
	if dir == ToWireFormat {
		return e.ModelKey, e.WireKey
	}

	return e.WireKey, e.ModelKey
}

func (DirectEntry) isEntry() {}

// TransformEntry computes its contribution with a function per direction.
// ModelKey is advisory only: the function decides which keys it reads and
// writes. A nil function excludes the entry from that direction.
type TransformEntry struct {
	ModelKey string
	ToModel  TransformFunc
	ToWire   TransformFunc
}

// Transform returns a TransformEntry. Either function may be nil.
func Transform(modelKey string, toModel, toWire TransformFunc) TransformEntry {
	return TransformEntry{ModelKey: modelKey, ToModel: toModel, ToWire: toWire}
}

// Key returns the model key.
func (e TransformEntry) Key() string { return e.ModelKey }

// Func returns the function used for dir, or nil.
func (e TransformEntry) Func(dir Direction) TransformFunc {
	switch dir {
	case ToModel:
		return e.ToModel
	case ToWireFormat:
		return e.ToWire
	default:
		return nil
	}
}

// IsInert returns true when the entry has no function for either direction.
func (e TransformEntry) IsInert() bool {
	return e.ToModel == nil && e.ToWire == nil
}

func (TransformEntry) isEntry() {}

// Unwrap returns the value behind a *DirectEntry or *TransformEntry. Any
// other entry, including a nil pointer, is returned as is.
func Unwrap(e Entry) Entry {
	switch p := e.(type) {
	case *DirectEntry:
		if p != nil {
			return *p
		}
	case *TransformEntry:
		if p != nil {
			return *p
		}
	}

	return e
}

// Specification is an ordered list of entries. Later entries overwrite keys
// written by earlier ones. A specification must not be modified while it is
// in use.
type Specification []Entry

// ModelKeys returns the model keys of all entries, in order.
func (s Specification) ModelKeys() []string {
	keys := make([]string, 0, len(s))
	for _, e := range s {
		if e != nil {
			keys = append(keys, e.Key())
		}
	}

	return keys
}

// WireKeys returns the wire keys of the direct entries, in order.
func (s Specification) WireKeys() []string {
	var keys []string
	for _, e := range s {
		if d, ok := e.(DirectEntry); ok {
			keys = append(keys, d.WireKey)
		}
	}

	return keys
}
