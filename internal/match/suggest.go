package match

import (
	"cmp"
	"slices"
)

// Default thresholds for accepting a suggestion.
const (
	DefaultMinScore      = 0.7
	DefaultMinGap        = 0.15
	DefaultMaxCandidates = 3
)

// Thresholds decide when a best candidate is accepted.
type Thresholds struct {
	// MinScore is the lowest similarity a best candidate may have.
	MinScore float64
	// MinGap is how far the best candidate must lead the runner-up.
	MinGap float64
	// MaxCandidates caps Suggestion.Candidates. Zero keeps all.
	MaxCandidates int
}

// DefaultThresholds returns the thresholds used by the CLI.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinScore:      DefaultMinScore,
		MinGap:        DefaultMinGap,
		MaxCandidates: DefaultMaxCandidates,
	}
}

// Candidate is a wire key scored against a model key.
type Candidate struct {
	WireKey string
	Score   float64
}

// Suggestion is the outcome for one model key.
type Suggestion struct {
	ModelKey string

	// WireKey is the accepted wire key, empty when none was accepted.
	WireKey string
	Score   float64

	// Ambiguous is set when the best candidate scored high enough but did
	// not lead the runner-up by MinGap.
	Ambiguous bool

	// Candidates are ranked best first.
	Candidates []Candidate
}

// Matched reports whether a wire key was accepted.
func (s Suggestion) Matched() bool {
	return s.WireKey != ""
}

// Suggest proposes a wire key for every model key, in model key order. Wire
// keys are not reserved: two model keys may be matched to the same wire key.
func Suggest(modelKeys, wireKeys []string, th Thresholds) []Suggestion {
	out := make([]Suggestion, 0, len(modelKeys))

	for _, modelKey := range modelKeys {
		out = append(out, suggestOne(modelKey, wireKeys, th))
	}

	return out
}

func suggestOne(modelKey string, wireKeys []string, th Thresholds) Suggestion {
	s := Suggestion{ModelKey: modelKey}
	if len(wireKeys) == 0 {
		return s
	}

	ranked := Rank(modelKey, wireKeys)

	best := ranked[0]
	s.Score = best.Score

	switch {
	case best.Score < th.MinScore:
		// unmatched
	case len(ranked) > 1 && best.Score-ranked[1].Score < th.MinGap:
		s.Ambiguous = true
	default:
		s.WireKey = best.WireKey
	}

	if th.MaxCandidates > 0 && len(ranked) > th.MaxCandidates {
		ranked = ranked[:th.MaxCandidates]
	}

	s.Candidates = ranked

	return s
}

// Rank scores every wire key against modelKey, best first. Ties are broken by
// wire key.
func Rank(modelKey string, wireKeys []string) []Candidate {
	ranked := make([]Candidate, 0, len(wireKeys))
	for _, wk := range wireKeys {
		ranked = append(ranked, Candidate{WireKey: wk, Score: Similarity(modelKey, wk)})
	}

	slices.SortFunc(ranked, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.WireKey, b.WireKey)
	})

	return ranked
}
