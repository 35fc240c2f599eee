package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"type-reconciler/internal/reconcile"
)

// CurrentVersion is the only supported file version.
const CurrentVersion = "1"

// File is the root structure of a reconcile YAML file.
type File struct {
	// Version is the schema version (default "1").
	Version string `yaml:"version"`
	// Matcher holds the thresholds of the similarity matcher.
	Matcher reconcile.Config `yaml:"matcher"`
	// Packages are the package patterns that declare the types.
	Packages []string `yaml:"packages,omitempty"`
	// Pairs lists the old and new struct types to reconcile.
	Pairs []Pair `yaml:"pairs"`
}

// Pair names an old struct type and its new layout.
type Pair struct {
	// Source is the old type reference.
	Source string `yaml:"source"`
	// Target is the new type reference.
	Target string `yaml:"target"`
	// Pinned maps old field names to new field names.
	Pinned map[string]string `yaml:"pinned,omitempty"`
	// Ignore lists old fields that are dropped on purpose.
	Ignore StringOrArray `yaml:"ignore,omitempty"`
}

// String returns "source->target".
func (p Pair) String() string {
	return p.Source + "->" + p.Target
}

// PinnedSources returns the pinned old field names in sorted order.
func (p Pair) PinnedSources() []string {
	names := make([]string, 0, len(p.Pinned))
	for name := range p.Pinned {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML like `ignore: Notes` or `ignore: [Notes, Internal]`.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}
		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
