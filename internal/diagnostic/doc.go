// Package diagnostic provides structured errors, warnings and notes found
// while validating mapping files and linting specifications.
//
// Key capabilities:
//   - Errors that make a mapping unusable (unknown transforms, empty keys)
//   - Warnings for entries that can never contribute (no function in either direction)
//   - Notes on keys that a later entry overwrites
package diagnostic
