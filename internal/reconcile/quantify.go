package reconcile

import "math"

// MaxQuantifier is the quantifier of a perfect match (similarity 1.0).
// Zero means "no candidate".
const MaxQuantifier = 1_000_000_000

// Quantify converts a similarity in [0,1] into an integer quantifier.
// Quantify(1.0) is exactly MaxQuantifier.
func Quantify(similarity float64) int {
	return int(math.Floor(similarity * MaxQuantifier))
}

// Similarity converts a quantifier back into a similarity in [0,1].
func Similarity(quantifier int) float64 {
	return float64(quantifier) / MaxQuantifier
}

// similarity64 is Similarity for accumulated totals.
func similarity64(quantifier int64) float64 {
	return float64(quantifier) / MaxQuantifier
}
