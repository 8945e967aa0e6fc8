package match

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Distance returns the Levenshtein distance between a and b, computed from a
// character diff.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	dmp := diffpatch.New()

	return dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
}

// Similarity scores two keys between 0 and 1 after normalization. Identical
// normalized keys score 1.
func Similarity(a, b string) float64 {
	na, nb := NormalizeKey(a), NormalizeKey(b)

	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}
