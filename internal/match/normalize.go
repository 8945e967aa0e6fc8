package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a record key for fuzzy comparison: camel case and
// separators are removed and everything is lower case.
//
//	NormalizeKey("userName")  == "username"
//	NormalizeKey("user_name") == "username"
//	NormalizeKey("USER-NAME") == "username"
func NormalizeKey(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits a key into lower-case words on separators and camel case
// boundaries. An acronym stays one word:
//
//	Tokenize("getHTTPResponse") == []string{"get", "http", "response"}
//	Tokenize("user_perms")      == []string{"user", "perms"}
func Tokenize(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordStarts(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ':
		return true
	default:
		return false
	}
}

// wordStarts reports whether runes[i] opens a new word: a lower-to-upper
// transition ("userName") or the last capital of an acronym followed by a
// lower-case letter ("XMLParser").
func wordStarts(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
