package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: "type-reconciler/examples/legacy/v1", Name: "Order"}
	assert.Equal(t, "type-reconciler/examples/legacy/v1.Order", id.String())
	assert.Equal(t, "v1.Order", id.Short())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
	assert.Equal(t, "int", idNoPkg.Short())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_LegacyNames(t *testing.T) {
	tests := []struct {
		tag      string
		expected []string
	}{
		{``, nil},
		{`json:"name"`, nil},
		{`legacy:"FullName"`, []string{"FullName"}},
		{`json:"x" legacy:"A, B,,"`, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			f := FieldInfo{Name: "X", Tag: reflect.StructTag(tt.tag)}
			assert.Equal(t, tt.expected, f.LegacyNames())
		})
	}
}

func TestTypeGraph_Lookup(t *testing.T) {
	g := NewTypeGraph()
	a := &TypeInfo{ID: TypeID{PkgPath: "example.com/store/v1", Name: "Order"}, Kind: TypeKindStruct}
	b := &TypeInfo{ID: TypeID{PkgPath: "example.com/store/v2", Name: "Order"}, Kind: TypeKindStruct}
	c := &TypeInfo{ID: TypeID{PkgPath: "example.com/billing", Name: "Invoice"}, Kind: TypeKindStruct}
	for _, ti := range []*TypeInfo{a, b, c} {
		g.Types[ti.ID] = ti
	}

	assert.Same(t, b, g.Lookup("example.com/store/v2.Order"))
	assert.Same(t, a, g.Lookup("v1.Order"))
	assert.Same(t, b, g.Lookup("store/v2.Order"))
	assert.Same(t, c, g.Lookup("Invoice"))
	// Name-only lookups pick the first type in import path order.
	assert.Same(t, a, g.Lookup("Order"))

	assert.Nil(t, g.Lookup("v3.Order"))
	assert.Nil(t, g.Lookup("1.Order"))
	assert.Nil(t, g.Lookup(".Order"))
	assert.Nil(t, g.Lookup("v1."))
	assert.Nil(t, g.Lookup(""))

	var nilGraph *TypeGraph
	assert.Nil(t, nilGraph.Lookup("Order"))
}
