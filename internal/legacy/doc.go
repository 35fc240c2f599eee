// Package legacy reconciles the fields of an old struct layout with the
// fields of its new layout.
//
// Resolution pipeline per type pair:
//  1. Look up both struct types in the analyzed type graph
//  2. Drop ignored old fields and link pinned fields
//  3. Link the remaining fields with the similarity matcher:
//     equal fields first (same name or legacy tag, identical type), then
//     by combined name and type similarity; incompatible types are vetoed
//  4. Emit diagnostics (discarded and added fields, weak links, transforms)
package legacy
