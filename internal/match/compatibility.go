package match

import (
	"go/types"
)

//go:generate go tool stringer -type=TypeCompatibility -linecomment -output=compatibility_string.go

// TypeCompatibility represents how a value of an old field type carries over
// to a new field type.
type TypeCompatibility int

const (
	// TypeIncompatible means the value cannot be carried over.
	TypeIncompatible TypeCompatibility = iota // incompatible
	// TypeNeedsTransform means the value needs a custom transform (e.g. int -> string, *T -> T).
	TypeNeedsTransform // needs_transform
	// TypeConvertible means a Go conversion carries the value over.
	TypeConvertible // convertible
	// TypeAssignable means the old value can be assigned to the new field.
	TypeAssignable // assignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical // identical
)

// Weight maps the compatibility level to [0, 1] for similarity scoring.
func (c TypeCompatibility) Weight() float64 {
	switch c {
	case TypeIdentical:
		return 1.0
	case TypeAssignable:
		return 0.9
	case TypeConvertible:
		return 0.7
	case TypeNeedsTransform:
		return 0.4
	default:
		return 0.0
	}
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
}

// ScoreTypeCompatibility determines the compatibility between an old and a new type.
// Pointer wrapping and unwrapping are treated as transforms.
func ScoreTypeCompatibility(source, target types.Type) TypeCompatibilityResult {
	if source == nil || target == nil {
		return TypeCompatibilityResult{TypeIncompatible, "type is unknown"}
	}

	switch {
	case types.Identical(source, target):
		return TypeCompatibilityResult{TypeIdentical, "types are identical"}
	case types.AssignableTo(source, target):
		return TypeCompatibilityResult{TypeAssignable, "source is assignable to target"}
	case isNumeric(source) && isString(target):
		// A Go conversion would yield a rune, not the decimal text.
		return TypeCompatibilityResult{TypeNeedsTransform, "number must be formatted as string"}
	case types.ConvertibleTo(source, target):
		return TypeCompatibilityResult{TypeConvertible, "source is convertible to target"}
	}

	if reason := transformReason(source, target); reason != "" {
		return TypeCompatibilityResult{TypeNeedsTransform, reason}
	}

	return TypeCompatibilityResult{TypeIncompatible, "types are not compatible"}
}

// transformReason explains why a transform can carry a value over, or
// returns "" if none can.
func transformReason(source, target types.Type) string {
	sourcePtr, sourceIsPtr := source.(*types.Pointer)
	targetPtr, targetIsPtr := target.(*types.Pointer)

	if sourceIsPtr && !targetIsPtr && carries(sourcePtr.Elem(), target) {
		return "requires pointer dereference"
	}
	if !sourceIsPtr && targetIsPtr && carries(source, targetPtr.Elem()) {
		return "requires taking address"
	}

	if isString(source) && isNumeric(target) {
		return "string must be parsed as number"
	}

	sourceSlice, sourceIsSlice := source.Underlying().(*types.Slice)
	targetSlice, targetIsSlice := target.Underlying().(*types.Slice)
	if sourceIsSlice && targetIsSlice {
		elem := ScoreTypeCompatibility(sourceSlice.Elem(), targetSlice.Elem())
		if elem.Compatibility >= TypeNeedsTransform {
			return "slice elements are " + elem.Compatibility.String()
		}
	}

	// Struct to struct: fields are reconciled separately.
	_, sourceIsStruct := source.Underlying().(*types.Struct)
	_, targetIsStruct := target.Underlying().(*types.Struct)
	if sourceIsStruct && targetIsStruct {
		return "struct fields must be mapped"
	}

	return ""
}

func carries(source, target types.Type) bool {
	return types.AssignableTo(source, target) || types.ConvertibleTo(source, target)
}

func isNumeric(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsNumeric != 0
}

func isString(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0
}
