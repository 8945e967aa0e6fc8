package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"id", []string{"id"}},
		{"ID", []string{"id"}},
		{"userName", []string{"user", "name"}},
		{"UserName", []string{"user", "name"}},
		{"user_perms", []string{"user", "perms"}},
		{"user-perms", []string{"user", "perms"}},
		{"meta.created_at", []string{"meta", "created", "at"}},
		{"isAdmin", []string{"is", "admin"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"user_Name", []string{"user", "name"}},
		{"__x__", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	for _, in := range []string{"username", "userName", "UserName", "user_name", "USER-NAME", "user name"} {
		assert.Equal(t, "username", NormalizeKey(in), in)
	}

	assert.Empty(t, NormalizeKey("_-"))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abd", 1},
		{"Hello", "hello", 1},
		{"name", "name1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("user_name", "userName"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", "__"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("name", "name1"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestRank(t *testing.T) {
	ranked := Rank("name", []string{"name2", "zzz", "Name", "name1"})
	require.Len(t, ranked, 4)

	assert.Equal(t, "Name", ranked[0].WireKey)
	assert.Equal(t, "name1", ranked[1].WireKey, "ties sorted by key")
	assert.Equal(t, "name2", ranked[2].WireKey)
	assert.Equal(t, "zzz", ranked[3].WireKey)
}

func TestSuggest(t *testing.T) {
	th := DefaultThresholds()

	got := Suggest(
		[]string{"id", "username", "isAdmin", "name"},
		[]string{"id", "userName", "user_perms", "name1", "name2"},
		th,
	)
	require.Len(t, got, 4)

	assert.Equal(t, "id", got[0].WireKey)
	assert.True(t, got[0].Matched())
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
	assert.Len(t, got[0].Candidates, th.MaxCandidates)

	assert.Equal(t, "userName", got[1].WireKey)

	assert.False(t, got[2].Matched())
	assert.False(t, got[2].Ambiguous)

	assert.False(t, got[3].Matched())
	assert.True(t, got[3].Ambiguous)
	require.GreaterOrEqual(t, len(got[3].Candidates), 2)
	assert.Equal(t, "name1", got[3].Candidates[0].WireKey)
	assert.Equal(t, "name2", got[3].Candidates[1].WireKey)
	assert.InDelta(t, got[3].Candidates[0].Score, got[3].Candidates[1].Score, 1e-9)
}

func TestSuggest_Edges(t *testing.T) {
	assert.Empty(t, Suggest(nil, []string{"id"}, DefaultThresholds()))

	got := Suggest([]string{"id"}, nil, DefaultThresholds())
	require.Len(t, got, 1)
	assert.False(t, got[0].Matched())
	assert.Empty(t, got[0].Candidates)

	// A single candidate needs no gap.
	got = Suggest([]string{"name"}, []string{"name1"}, DefaultThresholds())
	assert.Equal(t, "name1", got[0].WireKey)

	// Zero MaxCandidates keeps everything.
	got = Suggest([]string{"a"}, []string{"a", "b", "c", "d", "e"}, Thresholds{MinScore: 0.5})
	assert.Len(t, got[0].Candidates, 5)
	assert.Equal(t, "a", got[0].WireKey)
}

func ExampleSuggest() {
	for _, s := range Suggest(
		[]string{"id", "username", "permissions"},
		[]string{"id", "userName", "user_perms"},
		DefaultThresholds(),
	) {
		fmt.Printf("%s -> %q\n", s.ModelKey, s.WireKey)
	}
	// Output:
	// id -> "id"
	// username -> "userName"
	// permissions -> ""
}
