// Package match suggests direct entries by comparing model keys with wire
// keys.
//
// Key functions:
//   - NormalizeKey: folds case and separators for fuzzy matching
//   - Similarity: Levenshtein similarity of two normalized keys
//   - Suggest: ranks wire keys per model key and accepts clear winners
package match
