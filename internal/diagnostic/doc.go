// Package diagnostic provides structured warnings, errors, and notes about
// how the fields of an old struct layout were carried over to a new one.
//
// Key capabilities:
//   - Unmatched old and new field reports
//   - Weak match warnings with the similarity that linked the fields
//   - Conversion notes for links that need a transform
package diagnostic
