package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"type-reconciler/internal/common"
)

// LegacyTag is the struct tag listing former names of a field, e.g. `legacy:"FullName,Name"`.
const LegacyTag = "legacy"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "type-reconciler/examples/legacy/v1"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	return common.Qualify(t.PkgPath, t.Name)
}

// Short returns the type name qualified by the last package path element.
func (t TypeID) Short() string {
	return common.QualifyShort(t.PkgPath, t.Name)
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // named type from a package outside the graph (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	ElemType   *TypeInfo   // For pointers, slices and arrays, the element type
	Underlying *TypeInfo   // For aliases, the underlying type
	Fields     []FieldInfo // For structs, the exported fields in declaration order
	GoType     types.Type  // The original go/types.Type (for compatibility checks)
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Field returns the field with the given name, or nil.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// FieldInfo describes an exported struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct, counting unexported fields
}

// GoType returns the go/types type of the field, or nil if unknown.
func (f *FieldInfo) GoType() types.Type {
	if f == nil || f.Type == nil {
		return nil
	}

	return f.Type.GoType
}

// LegacyNames returns the former names declared in the legacy struct tag.
func (f *FieldInfo) LegacyNames() []string {
	tag := f.Tag.Get(LegacyTag)
	if tag == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(tag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// WasNamed reports whether the field was formerly called name.
func (f *FieldInfo) WasNamed(name string) bool {
	return slices.Contains(f.LegacyNames(), name)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup resolves a type reference like:
//   - "type-reconciler/examples/legacy/v1.Order" (full)
//   - "v1.Order" (package path suffix)
//   - "Order" (name only; the first match in import path order)
//
// It returns nil if no type matches.
func (g *TypeGraph) Lookup(ref string) *TypeInfo {
	if g == nil || ref == "" {
		return nil
	}

	pkgStr, name := "", ref
	if dot := strings.LastIndex(ref, "."); dot >= 0 {
		pkgStr, name = ref[:dot], ref[dot+1:]
		if pkgStr == "" || name == "" {
			return nil
		}
	}

	if t := g.GetType(TypeID{PkgPath: pkgStr, Name: name}); t != nil {
		return t
	}

	for _, id := range g.sortedIDs() {
		if id.Name != name {
			continue
		}
		if pkgStr == "" || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return g.Types[id]
		}
	}

	return nil
}

// Struct resolves ref with Lookup and checks that it names a struct.
func (g *TypeGraph) Struct(ref string) (*TypeInfo, error) {
	info := g.Lookup(ref)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, ref)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("%w: %s (kind: %s)", ErrNotStruct, info.ID, info.Kind)
	}

	return info, nil
}

func (g *TypeGraph) sortedIDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
