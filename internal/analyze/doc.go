// Package analyze loads Go packages and extracts the struct types whose
// fields get reconciled between two versions of a persisted layout.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of named types and their exported fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/basic/alias/pointer/slice/array/external) and fields
//   - FieldInfo: field name, type, tag, legacy names and position
//   - TypeGraph: all named types of the loaded packages, with Lookup by reference
package analyze
