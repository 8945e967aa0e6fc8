package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
mappings:
  - name: user
    description: users service
    121:
      username: userName
      id: id
    entries:
      - [email, mail]
      - model: isAdmin
        to_model: SplitAdmin
        to_wire: JoinAdmin
transforms:
  - name: SplitAdmin
    expr: '{"isAdmin": "admin" in user_perms}'
  - name: JoinAdmin
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Mappings, 1)

	m := f.Mappings[0]
	assert.Equal(t, "user", m.Name)
	assert.Equal(t, "users service", m.Description)

	// Document order is kept, not sorted.
	assert.Equal(t, KeyPairs{{Model: "username", Wire: "userName"}, {Model: "id", Wire: "id"}}, m.OneToOne)

	require.Len(t, m.Entries, 2, spew.Sdump(m.Entries))
	assert.Equal(t, DirectDef("email", "mail"), m.Entries[0])
	assert.Equal(t, TransformEntryDef("isAdmin", "SplitAdmin", "JoinAdmin"), m.Entries[1])

	require.Len(t, f.Transforms, 2)
	assert.Equal(t, `{"isAdmin": "admin" in user_perms}`, f.Transforms[0].Expr)
	assert.Empty(t, f.Transforms[0].Func)
	assert.Equal(t, "JoinAdmin", f.Transforms[1].Func, "func defaults to the name")
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("mappings: []\n"))
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, f.Version)
}

func TestParse_EntryForms(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want EntryDef
	}{
		{
			name: "pair",
			yaml: `[id, id]`,
			want: DirectDef("id", "id"),
		},
		{
			name: "triple with null",
			yaml: `[isAdmin, SplitAdmin, null]`,
			want: TransformEntryDef("isAdmin", "SplitAdmin", ""),
		},
		{
			name: "triple with two nulls",
			yaml: `[legacy, ~, ~]`,
			want: TransformEntryDef("legacy", "", ""),
		},
		{
			name: "map direct",
			yaml: `{model: id, wire: ID, description: primary key}`,
			want: EntryDef{Model: "id", Wire: "ID", Description: "primary key"},
		},
		{
			name: "map transform with explicit null",
			yaml: `{model: isAdmin, to_model: null}`,
			want: TransformEntryDef("isAdmin", "", ""),
		},
		{
			name: "map transform one direction",
			yaml: `{model: isAdmin, to_wire: JoinAdmin}`,
			want: TransformEntryDef("isAdmin", "", "JoinAdmin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "mappings:\n  - name: m\n    entries:\n      - " + tt.yaml + "\n"

			f, err := Parse([]byte(doc))
			require.NoError(t, err)
			require.Len(t, f.Mappings[0].Entries, 1)
			assert.Equal(t, tt.want, f.Mappings[0].Entries[0])
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		wantErr string
	}{
		{name: "scalar", entry: `id`, wantErr: "expected entry map or list"},
		{name: "one item", entry: `[id]`, wantErr: "got 1"},
		{name: "four items", entry: `[a, b, c, d]`, wantErr: "got 4"},
		{name: "unknown field", entry: `{model: id, target: id}`, wantErr: `unknown entry field "target"`},
		{name: "null model", entry: `[~, id]`, wantErr: "expected a string"},
		{name: "nested list", entry: `[id, [a, b]]`, wantErr: "expected a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "mappings:\n  - name: m\n    entries:\n      - " + tt.entry + "\n"

			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_OneToOneMustBeMap(t *testing.T) {
	_, err := Parse([]byte("mappings:\n  - name: m\n    121: [id, id]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping of model key to wire key")
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := &File{
		Version: SchemaVersion,
		Mappings: []Mapping{{
			Name:     "user",
			OneToOne: KeyPairs{{Model: "true", Wire: "123"}, {Model: "id", Wire: "id"}},
			Entries: []EntryDef{
				DirectDef("email", "mail"),
				TransformEntryDef("isAdmin", "SplitAdmin", ""),
				TransformEntryDef("legacy", "", ""),
			},
		}},
		Transforms: []TransformDef{{Name: "SplitAdmin", Func: "SplitAdmin"}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	// Keys that look like other scalars must stay strings.
	assert.Contains(t, string(data), `"true": "123"`)
	assert.Contains(t, string(data), "to_wire: null")

	got, err := Parse(data)
	require.NoError(t, err, string(data))
	assert.Equal(t, f, got, string(data))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.yaml")

	f := &File{
		Version:  SchemaVersion,
		Mappings: []Mapping{{Name: "m", Entries: []EntryDef{DirectDef("a", "b")}}},
	}
	require.NoError(t, WriteFile(f, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("mappings: {"), 0o644))

	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFileLookups(t *testing.T) {
	f := &File{
		Mappings:   []Mapping{{Name: "a"}, {Name: "b"}},
		Transforms: []TransformDef{{Name: "T"}},
	}

	assert.Equal(t, []string{"a", "b"}, f.Names())
	assert.Equal(t, "b", f.Mapping("b").Name)
	assert.Nil(t, f.Mapping("c"))
	assert.Equal(t, "T", f.Transform("T").Name)
	assert.Nil(t, f.Transform("U"))

	m := Mapping{
		OneToOne: KeyPairs{{Model: "id", Wire: "id"}},
		Entries:  []EntryDef{TransformEntryDef("x", "A", "B")},
	}
	assert.Equal(t, []EntryDef{DirectDef("id", "id"), TransformEntryDef("x", "A", "B")}, m.AllEntries())
	assert.Equal(t, []string{"A", "B"}, m.Entries[0].TransformNames())
	assert.Nil(t, DirectDef("a", "b").TransformNames())
}
