// Package match scores how likely a field of an old struct layout is the
// same field of a new layout.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - LevenshteinNormalized, SubstringSimilarity: name similarity in [0, 1]
//   - ScoreTypeCompatibility: scores type compatibility using go/types
//   - FieldSimilarity: combined name and type score of two fields
//   - FieldsEqual: fields that are the same field regardless of scoring
package match
