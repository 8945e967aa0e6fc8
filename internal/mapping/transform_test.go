package mapping

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-mapper/modelmap"
)

func TestAdaptFunc(t *testing.T) {
	src := modelmap.Record{"a": 1}
	want := modelmap.FragmentOf(modelmap.KV("b", 1))

	tests := []struct {
		name string
		fn   any
	}{
		{
			name: "TransformFunc",
			fn: modelmap.TransformFunc(func(r modelmap.Record) (modelmap.Fragment, error) {
				return modelmap.FragmentOf(modelmap.KV("b", r["a"])), nil
			}),
		},
		{
			name: "func with error",
			fn: func(r modelmap.Record) (modelmap.Fragment, error) {
				return modelmap.FragmentOf(modelmap.KV("b", r["a"])), nil
			},
		},
		{
			name: "func without error",
			fn: func(r modelmap.Record) modelmap.Fragment {
				return modelmap.FragmentOf(modelmap.KV("b", r["a"]))
			},
		},
		{
			name: "plain map with error",
			fn: func(m map[string]any) (map[string]any, error) {
				return map[string]any{"b": m["a"]}, nil
			},
		},
		{
			name: "plain map",
			fn: func(m map[string]any) map[string]any {
				return map[string]any{"b": m["a"]}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := AdaptFunc(tt.fn)
			require.NoError(t, err)

			got, err := fn(src)
			require.NoError(t, err)
			assert.Equal(t, want.Record(), got.Record())
		})
	}
}

func TestAdaptFunc_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	fn, err := AdaptFunc(func(map[string]any) (map[string]any, error) { return nil, boom })
	require.NoError(t, err)

	_, err = fn(modelmap.Record{})
	assert.ErrorIs(t, err, boom)
}

func TestAdaptFunc_Unsupported(t *testing.T) {
	for _, fn := range []any{nil, modelmap.TransformFunc(nil), "SplitAdmin", func() {}, func(string) string { return "" }} {
		_, err := AdaptFunc(fn)
		assert.ErrorIs(t, err, ErrUnsupportedTransform, "%T", fn)
	}
}

func TestRegistry(t *testing.T) {
	noop := func(map[string]any) map[string]any { return nil }

	reg := NewRegistry().MustRegister("b", noop).MustRegister("a", noop)

	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	fn, ok := reg.Get("a")
	assert.True(t, ok)
	assert.NotNil(t, fn)

	err := reg.Register("a", noop)
	assert.ErrorIs(t, err, ErrDuplicateTransform)

	err = reg.Register("", noop)
	assert.Error(t, err)

	err = reg.Register("x", 42)
	assert.ErrorIs(t, err, ErrUnsupportedTransform)

	assert.Panics(t, func() { reg.MustRegister("a", noop) })
}

func TestRegistry_Nil(t *testing.T) {
	var reg *Registry

	_, ok := reg.Get("a")
	assert.False(t, ok)
	assert.False(t, reg.Has("a"))
	assert.Nil(t, reg.Names())
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(2)

		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Register(name, func(m map[string]any) map[string]any { return m }))
		}()

		go func() {
			defer wg.Done()
			reg.Has(name)
		}()
	}

	wg.Wait()
	assert.Equal(t, []string{"a", "b", "c", "d"}, reg.Names())
}

func TestCompileExpr(t *testing.T) {
	split, err := CompileExpr(`{"isAdmin": "admin" in user_perms, "permissions": filter(user_perms, # != "admin")}`)
	require.NoError(t, err)

	frag, err := split(modelmap.Record{"user_perms": []any{"update", "admin"}})
	require.NoError(t, err)

	// Keys arrive in sorted order.
	assert.Equal(t, []string{"isAdmin", "permissions"}, frag.Keys())

	got := frag.Record()
	assert.Equal(t, true, got["isAdmin"])
	assert.Equal(t, []any{"update"}, got["permissions"])

	frag, err = split(modelmap.Record{"user_perms": []any{"read"}})
	require.NoError(t, err)
	assert.Equal(t, false, frag.Record()["isAdmin"])
}

func TestCompileExpr_Errors(t *testing.T) {
	_, err := CompileExpr(`{"a": `)
	require.Error(t, err)

	notMap, err := CompileExpr(`1 + 2`)
	require.NoError(t, err)

	_, err = notMap(modelmap.Record{})
	assert.ErrorIs(t, err, ErrNotAFragment)

	failing, err := CompileExpr(`{"a": x.y}`)
	require.NoError(t, err)

	_, err = failing(modelmap.Record{"x": 1})
	assert.Error(t, err)
}
