// Package common holds small helpers shared by the analysis and reconciliation packages.
package common

import "path"

// UnknownStr is the String value of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the default import name of a package path, its last element.
// An empty path yields an empty alias.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// Qualify joins a package path and a type name as "pkgPath.Name".
// Names of predeclared types are returned as is.
func Qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}

// QualifyShort is Qualify with the package path reduced to its alias.
func QualifyShort(pkgPath, name string) string {
	return Qualify(PkgAlias(pkgPath), name)
}
