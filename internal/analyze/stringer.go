package analyze

import "strconv"

// TypeString returns a compact representation of a type for reports:
// named types are qualified by their package alias ("v1.OrderStatus"),
// composite types are spelled out ("[]*v1.OrderItem").
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct, TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Short()
		}
		if t.Kind == TypeKindStruct {
			return "struct{...}"
		}
		return TypeString(t.Underlying)

	case TypeKindPointer:
		return "*" + elemString(t)

	case TypeKindSlice:
		return "[]" + elemString(t)

	case TypeKindArray:
		n := "?"
		if arr, ok := t.GoType.Underlying().(interface{ Len() int64 }); ok {
			n = strconv.FormatInt(arr.Len(), 10)
		}
		return "[" + n + "]" + elemString(t)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.Short()
		}
		return t.GoType.String()

	default:
		if t.GoType == nil {
			return "<unknown>"
		}
		return t.GoType.String()
	}
}

func elemString(t *TypeInfo) string {
	if t.ElemType == nil {
		return "<unknown>"
	}

	return TypeString(t.ElemType)
}
