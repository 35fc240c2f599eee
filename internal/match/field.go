package match

import (
	"go/types"

	"type-reconciler/internal/analyze"
)

// Weights of the combined field score.
const (
	nameWeight = 0.6
	typeWeight = 0.4
)

// FieldScore is the breakdown of a field similarity.
type FieldScore struct {
	NameScore     float64
	Compatibility TypeCompatibilityResult
	// Score is the combined score in [0, 1].
	Score float64
}

// ScoreFields scores an old field against a new field.
// A legacy tag naming the old field counts as a perfect name match.
func ScoreFields(old, new *analyze.FieldInfo) FieldScore {
	nameScore := NameSimilarity(old.Name, new.Name)
	if new.WasNamed(old.Name) {
		nameScore = 1.0
	}

	compat := ScoreTypeCompatibility(old.GoType(), new.GoType())

	return FieldScore{
		NameScore:     nameScore,
		Compatibility: compat,
		Score:         nameScore*nameWeight + compat.Compatibility.Weight()*typeWeight,
	}
}

// FieldSimilarity returns the combined score of ScoreFields.
func FieldSimilarity(old, new *analyze.FieldInfo) float64 {
	return ScoreFields(old, new).Score
}

// FieldsEqual reports whether the new field is the old field: either with the
// same name, or declaring the old name in its legacy tag, and an identical type.
func FieldsEqual(old, new *analyze.FieldInfo) bool {
	if old.Name != new.Name && !new.WasNamed(old.Name) {
		return false
	}

	ot, nt := old.GoType(), new.GoType()

	return ot != nil && nt != nil && types.Identical(ot, nt)
}
