// Package reconcile provides a similarity-based bipartite reconciliation
// engine: it links items of a source sequence to items of a target sequence
// one-to-one, using an exact equality relation and/or a fractional similarity
// score.
//
// The matching is a deterministic heuristic, not an optimal assignment:
//  1. Equal pairs are linked immediately.
//  2. Remaining pairs at or above the similarity threshold become candidates
//     in a quantified similarity matrix.
//  3. Perfect candidates (similarity 1.0) are linked.
//  4. Noise (candidates far below the best of their row or column) is dropped
//     when the similarity threshold is below the noise factor.
//  5. A fixed-point loop links unconflicted candidates, resolves singleton
//     conflicts with precedence rules and falls back to the best remaining
//     candidate until no candidates are left.
//
// Key types:
//   - Config: thresholds and factors controlling the heuristics
//   - Matcher: reusable, immutable match configuration plus callbacks
//   - Result: immutable outcome of one Match call with memoized views
//
// A Matcher may be shared by concurrent goroutines; every Match call owns its
// working state. Callbacks are invoked synchronously from the calling goroutine.
package reconcile
