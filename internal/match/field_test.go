package match

import (
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"type-reconciler/internal/analyze"
)

func field(name string, typ types.Type, tag string) *analyze.FieldInfo {
	return &analyze.FieldInfo{
		Name: name,
		Type: &analyze.TypeInfo{Kind: analyze.TypeKindBasic, GoType: typ},
		Tag:  reflect.StructTag(tag),
	}
}

func TestScoreFields(t *testing.T) {
	str := types.Typ[types.String]
	i64 := types.Typ[types.Int64]

	tests := []struct {
		name     string
		old      *analyze.FieldInfo
		new      *analyze.FieldInfo
		expected float64
		compat   TypeCompatibility
	}{
		{"same field", field("Email", str, ""), field("Email", str, ""), 1.0, TypeIdentical},
		{"legacy alias", field("FullName", str, ""), field("DisplayName", str, `legacy:"FullName"`), 1.0, TypeIdentical},
		{"renamed", field("Email", str, ""), field("EmailAddress", str, ""), 0.6*2.0/3.0 + 0.4, TypeIdentical},
		{"needs transform", field("Total", i64, ""), field("Total", str, ""), 0.6 + 0.4*0.4, TypeNeedsTransform},
		{"unrelated", field("Email", str, ""), field("Password", types.Typ[types.Bool], ""), 0.0, TypeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreFields(tt.old, tt.new)
			assert.InDelta(t, tt.expected, score.Score, 1e-9)
			assert.Equal(t, tt.compat, score.Compatibility.Compatibility)
			assert.InDelta(t, score.Score, FieldSimilarity(tt.old, tt.new), 1e-12)
			assert.True(t, score.Score >= 0 && score.Score <= 1)
		})
	}
}

func TestFieldsEqual(t *testing.T) {
	str := types.Typ[types.String]
	i64 := types.Typ[types.Int64]

	assert.True(t, FieldsEqual(field("ID", i64, ""), field("ID", i64, "")))
	assert.True(t, FieldsEqual(field("FullName", str, ""), field("DisplayName", str, `legacy:"Name,FullName"`)))

	// Same name, different type.
	assert.False(t, FieldsEqual(field("ID", i64, ""), field("ID", str, "")))
	// Similar name is not enough.
	assert.False(t, FieldsEqual(field("Email", str, ""), field("EmailAddress", str, "")))
	// The alias must be on the new field.
	assert.False(t, FieldsEqual(field("DisplayName", str, `legacy:"FullName"`), field("FullName", str, "")))
	// Unknown types never compare equal.
	assert.False(t, FieldsEqual(&analyze.FieldInfo{Name: "X"}, &analyze.FieldInfo{Name: "X"}))
}
