package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"type-reconciler/internal/common"
)

// Diagnostic codes reported by field reconciliation.
const (
	CodeUnmatchedSource = "unmatched_source" // old field without a home
	CodeUnmatchedTarget = "unmatched_target" // new field without a former field
	CodeWeakMatch       = "weak_match"
	CodeNeedsTransform  = "needs_transform"
	CodeInvalidPin      = "invalid_pin"
	CodeUnknownField    = "unknown_field"
	CodeTypeNotFound    = "type_not_found"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic `yaml:"errors,omitempty"`
	Warnings []Diagnostic `yaml:"warnings,omitempty"`
	Infos    []Diagnostic `yaml:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message"`
	// TypePair identifies which type pair this relates to (if any).
	TypePair string `yaml:"type_pair,omitempty"`
	// Field identifies which field this relates to (if any).
	Field string `yaml:"field,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the severity by name.
func (s DiagnosticSeverity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a severity written by MarshalYAML.
func (s *DiagnosticSeverity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}

	for _, candidate := range []DiagnosticSeverity{DiagnosticInfo, DiagnosticWarning, DiagnosticError} {
		if candidate.String() == name {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown diagnostic severity %q", name)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typePair, field string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, typePair, field))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, field string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, typePair, field))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, field string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, typePair, field))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, typePair, field string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Field:    field,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of all severities.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// WithCode returns the diagnostics of all severities carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var found []Diagnostic
	for _, diag := range d.All() {
		if diag.Code == code {
			found = append(found, diag)
		}
	}

	return found
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil without errors.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
