package match

import (
	"go/types"
	"testing"
)

func TestTypeCompatibility_String(t *testing.T) {
	tests := []struct {
		compat   TypeCompatibility
		expected string
	}{
		{TypeIdentical, "identical"},
		{TypeAssignable, "assignable"},
		{TypeConvertible, "convertible"},
		{TypeNeedsTransform, "needs_transform"},
		{TypeIncompatible, "incompatible"},
		{TypeCompatibility(42), "TypeCompatibility(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.compat.String(); got != tt.expected {
				t.Errorf("TypeCompatibility.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTypeCompatibility_Weight(t *testing.T) {
	levels := []TypeCompatibility{TypeIncompatible, TypeNeedsTransform, TypeConvertible, TypeAssignable, TypeIdentical}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Weight() >= levels[i].Weight() {
			t.Errorf("%s should weigh less than %s", levels[i-1], levels[i])
		}
	}

	if TypeIdentical.Weight() != 1.0 || TypeIncompatible.Weight() != 0.0 {
		t.Error("weights should span [0, 1]")
	}
}

func namedString(name string) *types.Named {
	pkg := types.NewPackage("example.com/legacy", "legacy")
	obj := types.NewTypeName(0, pkg, name, nil)

	return types.NewNamed(obj, types.Typ[types.String], nil)
}

func TestScoreTypeCompatibility(t *testing.T) {
	intType := types.Typ[types.Int]
	int64Type := types.Typ[types.Int64]
	stringType := types.Typ[types.String]
	float64Type := types.Typ[types.Float64]
	boolType := types.Typ[types.Bool]
	status := namedString("OrderStatus")

	tests := []struct {
		name     string
		source   types.Type
		target   types.Type
		expected TypeCompatibility
	}{
		{"identical int", intType, intType, TypeIdentical},
		{"int32 and rune", types.Typ[types.Int32], types.Universe.Lookup("rune").Type(), TypeIdentical},
		{"int to int64", intType, int64Type, TypeConvertible},
		{"float64 to int", float64Type, intType, TypeConvertible},
		{"named string to string", status, stringType, TypeConvertible},
		{"string to named string", stringType, status, TypeConvertible},
		{"int64 to string", int64Type, stringType, TypeNeedsTransform},
		{"string to int", stringType, intType, TypeNeedsTransform},
		{"int64 to named string", int64Type, status, TypeNeedsTransform},
		{"bool to string", boolType, stringType, TypeIncompatible},
		{"string to bool", stringType, boolType, TypeIncompatible},
		{"nil source", nil, intType, TypeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreTypeCompatibility(tt.source, tt.target)
			if result.Compatibility != tt.expected {
				t.Errorf("ScoreTypeCompatibility() = %v, want %v (reason: %s)",
					result.Compatibility, tt.expected, result.Reason)
			}
			if result.Reason == "" {
				t.Error("Reason should be set")
			}
		})
	}
}

func TestScoreTypeCompatibility_Pointers(t *testing.T) {
	intType := types.Typ[types.Int]
	stringType := types.Typ[types.String]
	ptrInt := types.NewPointer(intType)
	ptrString := types.NewPointer(stringType)

	tests := []struct {
		name     string
		source   types.Type
		target   types.Type
		expected TypeCompatibility
		reason   string
	}{
		{"identical pointers", ptrInt, ptrInt, TypeIdentical, "types are identical"},
		{"dereference", ptrString, stringType, TypeNeedsTransform, "requires pointer dereference"},
		{"take address", stringType, ptrString, TypeNeedsTransform, "requires taking address"},
		{"unrelated pointers", ptrInt, ptrString, TypeIncompatible, "types are not compatible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreTypeCompatibility(tt.source, tt.target)
			if result.Compatibility != tt.expected || result.Reason != tt.reason {
				t.Errorf("ScoreTypeCompatibility() = %v (%s), want %v (%s)",
					result.Compatibility, result.Reason, tt.expected, tt.reason)
			}
		})
	}
}

func TestScoreTypeCompatibility_Slices(t *testing.T) {
	intSlice := types.NewSlice(types.Typ[types.Int])
	int64Slice := types.NewSlice(types.Typ[types.Int64])
	boolSlice := types.NewSlice(types.Typ[types.Bool])
	stringSlice := types.NewSlice(types.Typ[types.String])

	tests := []struct {
		name     string
		source   types.Type
		target   types.Type
		expected TypeCompatibility
	}{
		{"identical slices", intSlice, intSlice, TypeIdentical},
		{"convertible elements", intSlice, int64Slice, TypeNeedsTransform},
		{"incompatible elements", boolSlice, stringSlice, TypeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreTypeCompatibility(tt.source, tt.target)
			if result.Compatibility != tt.expected {
				t.Errorf("ScoreTypeCompatibility() = %v, want %v (reason: %s)",
					result.Compatibility, tt.expected, result.Reason)
			}
		})
	}
}

func TestScoreTypeCompatibility_Structs(t *testing.T) {
	a := types.NewStruct([]*types.Var{
		types.NewField(0, nil, "ID", types.Typ[types.Int], false),
	}, nil)
	b := types.NewStruct([]*types.Var{
		types.NewField(0, nil, "Key", types.Typ[types.String], false),
	}, nil)

	result := ScoreTypeCompatibility(a, b)
	if result.Compatibility != TypeNeedsTransform {
		t.Errorf("ScoreTypeCompatibility() = %v, want %v", result.Compatibility, TypeNeedsTransform)
	}
}
