package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"type-reconciler/internal/reconcile"
)

// ErrInvalidFile is returned when a reconcile file fails validation.
var ErrInvalidFile = errors.New("invalid reconcile file")

// LoadFile loads and parses a YAML reconcile file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reconcile file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and validates YAML data. Matcher keys missing from the data
// keep their default values.
func Parse(data []byte) (*File, error) {
	f := File{Matcher: reconcile.DefaultConfig()}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse reconcile YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Validate checks the version, the matcher thresholds and every pair.
// All problems are reported at once, joined and wrapping ErrInvalidFile.
func (f *File) Validate() error {
	var errs []error

	if f.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %q", f.Version))
	}
	if err := f.Matcher.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(f.Pairs) == 0 {
		errs = append(errs, errors.New("no pairs"))
	}

	for i, p := range f.Pairs {
		if p.Source == "" || p.Target == "" {
			errs = append(errs, fmt.Errorf("pairs[%d]: source and target are required", i))
			continue
		}

		seen := make(map[string]string, len(p.Pinned))
		for _, from := range p.PinnedSources() {
			to := p.Pinned[from]
			if to == "" {
				errs = append(errs, fmt.Errorf("pairs[%d] %s: pinned field %s has no target", i, p, from))
			}
			if p.Ignore.Contains(from) {
				errs = append(errs, fmt.Errorf("pairs[%d] %s: field %s is both pinned and ignored", i, p, from))
			}
			if other, dup := seen[to]; dup && to != "" {
				errs = append(errs, fmt.Errorf("pairs[%d] %s: fields %s and %s are pinned to %s", i, p, other, from, to))
			}
			seen[to] = from
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(errs...))
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal reconcile file: %w", err)
	}

	return writeYAML(path, data)
}

func writeYAML(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
