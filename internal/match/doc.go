// Package match provides name normalization, Levenshtein distance calculation,
// type compatibility scoring, and candidate ranking for "did you mean"
// suggestions on unresolved property names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - ScoreTypeCompatibility: scores type compatibility of reflect types
//   - RankCandidates: ranks known property names against an unknown one
//   - Suggest: the few best-ranked names worth showing to a user
package match
