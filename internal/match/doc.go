// Package match ranks known C identifiers by similarity to a name that
// could not be resolved, for "did you mean" hints.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so list_head matches ListHead
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: scores and sorts known names against a miss
//   - Suggest: the names worth showing to a user
package match
