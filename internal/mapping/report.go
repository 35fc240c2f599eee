package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"type-reconciler/internal/diagnostic"
	"type-reconciler/internal/reconcile"
)

// Report is the outcome of reconciling all pairs of a File.
type Report struct {
	Version string           `yaml:"version"`
	Matcher reconcile.Config `yaml:"matcher"`
	Pairs   []PairReport     `yaml:"pairs"`
}

// PairReport describes how the fields of one old type carry over to the new type.
type PairReport struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Links in old field order.
	Links []LinkReport `yaml:"links,omitempty"`
	// Discarded old fields without a new field.
	Discarded []string `yaml:"discarded,omitempty"`
	// Added new fields without an old field.
	Added []string `yaml:"added,omitempty"`
	// Ignored old fields listed in the pair's ignore list.
	Ignored     []string               `yaml:"ignored,omitempty"`
	Stats       Stats                  `yaml:"stats"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// LinkReport is one old field -> new field link.
type LinkReport struct {
	Source        string  `yaml:"source"`
	Target        string  `yaml:"target"`
	SourceType    string  `yaml:"source_type"`
	TargetType    string  `yaml:"target_type"`
	Similarity    float64 `yaml:"similarity"`
	Phase         string  `yaml:"phase"`
	Compatibility string  `yaml:"compatibility"`
}

// Stats summarizes the similarities of the matched links of a pair.
type Stats struct {
	MatchCount int     `yaml:"match_count"`
	Total      float64 `yaml:"total"`
	Average    float64 `yaml:"average"`
	Lowest     float64 `yaml:"lowest"`
	Highest    float64 `yaml:"highest"`
}

// MarshalReport serializes a Report to YAML.
func MarshalReport(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteReport writes a Report to the given path.
func WriteReport(r *Report, path string) error {
	data, err := MarshalReport(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return writeYAML(path, data)
}
