package legacy

import (
	"type-reconciler/internal/analyze"
	"type-reconciler/internal/diagnostic"
	"type-reconciler/internal/mapping"
	"type-reconciler/internal/match"
	"type-reconciler/internal/reconcile"
)

// PhasePinned names links taken from the pinned list of a pair.
const PhasePinned = "Pinned"

// Link is an old field carried over to a new field.
type Link struct {
	Source *analyze.FieldInfo
	Target *analyze.FieldInfo
	// Similarity is the combined name and type score of the fields.
	Similarity float64
	// Phase is the matcher phase that made the link; PhaseNone for pinned links.
	Phase         reconcile.Phase
	Pinned        bool
	Compatibility match.TypeCompatibilityResult
}

// PhaseName returns PhasePinned for pinned links, the matcher phase otherwise.
func (l Link) PhaseName() string {
	if l.Pinned {
		return PhasePinned
	}

	return l.Phase.String()
}

// TypeMapping is the field reconciliation of one type pair.
type TypeMapping struct {
	Pair   mapping.Pair
	Source *analyze.TypeInfo
	Target *analyze.TypeInfo

	// Links in old field order.
	Links []Link
	// Discarded old fields without a new field, in declaration order.
	Discarded []*analyze.FieldInfo
	// Added new fields without an old field, in declaration order.
	Added []*analyze.FieldInfo
	// Ignored old fields listed in the ignore list of the pair.
	Ignored []*analyze.FieldInfo

	// Result is the matcher outcome for the fields that were neither pinned
	// nor ignored; nil if the pair could not be resolved.
	Result *reconcile.Result[*analyze.FieldInfo]

	Diagnostics diagnostic.Diagnostics
}

// Stats summarizes the similarities of all links, pinned ones included.
func (m *TypeMapping) Stats() mapping.Stats {
	var s mapping.Stats
	for i, l := range m.Links {
		if i == 0 || l.Similarity < s.Lowest {
			s.Lowest = l.Similarity
		}
		s.Highest = max(s.Highest, l.Similarity)
		s.Total += l.Similarity
	}
	s.MatchCount = len(m.Links)
	if s.MatchCount > 0 {
		s.Average = s.Total / float64(s.MatchCount)
	}

	return s
}

// Report converts the mapping to its YAML report form.
func (m *TypeMapping) Report() mapping.PairReport {
	r := mapping.PairReport{
		Source:      m.Pair.Source,
		Target:      m.Pair.Target,
		Discarded:   fieldNames(m.Discarded),
		Added:       fieldNames(m.Added),
		Ignored:     fieldNames(m.Ignored),
		Stats:       m.Stats(),
		Diagnostics: m.Diagnostics,
	}

	for _, l := range m.Links {
		r.Links = append(r.Links, mapping.LinkReport{
			Source:        l.Source.Name,
			Target:        l.Target.Name,
			SourceType:    analyze.TypeString(l.Source.Type),
			TargetType:    analyze.TypeString(l.Target.Type),
			Similarity:    l.Similarity,
			Phase:         l.PhaseName(),
			Compatibility: l.Compatibility.Compatibility.String(),
		})
	}

	return r
}

// BuildReport assembles the report of all mappings, in the given order.
func BuildReport(cfg reconcile.Config, mappings []*TypeMapping) *mapping.Report {
	r := &mapping.Report{
		Version: mapping.CurrentVersion,
		Matcher: cfg,
		Pairs:   make([]mapping.PairReport, 0, len(mappings)),
	}
	for _, m := range mappings {
		r.Pairs = append(r.Pairs, m.Report())
	}

	return r
}

func fieldNames(fields []*analyze.FieldInfo) []string {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}
