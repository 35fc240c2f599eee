package legacy

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"type-reconciler/internal/analyze"
	"type-reconciler/internal/diagnostic"
	"type-reconciler/internal/mapping"
	"type-reconciler/internal/match"
	"type-reconciler/internal/reconcile"
)

// Config holds configuration for field reconciliation.
type Config struct {
	// Matcher holds the thresholds of the similarity matcher.
	Matcher reconcile.Config
	// WeakMatchThreshold reports matched links below this similarity as weak.
	WeakMatchThreshold float64
	// Workers limits how many pairs ResolveAll reconciles at once (0 = GOMAXPROCS).
	Workers int
}

// DefaultConfig returns the default reconciliation configuration.
func DefaultConfig() Config {
	return Config{
		Matcher:            reconcile.DefaultConfig(),
		WeakMatchThreshold: reconcile.DefaultSingletonPrecedenceThreshold,
	}
}

// Mapper reconciles type pairs of an analyzed type graph.
// It is safe for concurrent use.
type Mapper struct {
	graph   *analyze.TypeGraph
	matcher *reconcile.Matcher[*analyze.FieldInfo]
	config  Config
	logger  *slog.Logger
}

// NewMapper creates a Mapper over graph. A nil logger discards all output.
func NewMapper(graph *analyze.TypeGraph, cfg Config, logger *slog.Logger) (*Mapper, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	matcher, err := reconcile.NewMatcher(cfg.Matcher,
		reconcile.WithEquality[*analyze.FieldInfo](match.FieldsEqual),
		reconcile.WithSimilarity[*analyze.FieldInfo](match.FieldSimilarity),
		reconcile.WithValidator[*analyze.FieldInfo](compatibleTypes),
		reconcile.WithLogger[*analyze.FieldInfo](logger.With("component", "reconcile")),
	)
	if err != nil {
		return nil, fmt.Errorf("create field matcher: %w", err)
	}

	return &Mapper{
		graph:   graph,
		matcher: matcher,
		config:  cfg,
		logger:  logger,
	}, nil
}

// compatibleTypes vetoes links between fields whose values cannot be carried over.
func compatibleTypes(old, new *analyze.FieldInfo, _ float64, _, _ int) (bool, error) {
	compat := match.ScoreTypeCompatibility(old.GoType(), new.GoType())

	return compat.Compatibility != match.TypeIncompatible, nil
}

// ResolveAll resolves all pairs concurrently. The mappings are returned in
// the order of pairs. The first error cancels the pairs not yet resolved.
func (m *Mapper) ResolveAll(ctx context.Context, pairs []mapping.Pair) ([]*TypeMapping, error) {
	mappings := make([]*TypeMapping, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	workers := m.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for i, pair := range pairs {
		g.Go(func() error {
			tm, err := m.Resolve(ctx, pair)
			if err != nil {
				return err
			}
			mappings[i] = tm

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mappings, nil
}

// Resolve reconciles the fields of one pair.
// Types that cannot be found are reported as error diagnostics of the
// returned mapping; only a cancelled context or a matcher failure is an error.
func (m *Mapper) Resolve(ctx context.Context, pair mapping.Pair) (*TypeMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tm := &TypeMapping{Pair: pair}
	pairName := pair.String()

	source, err := m.graph.Struct(pair.Source)
	if err != nil {
		tm.Diagnostics.AddError(diagnostic.CodeTypeNotFound, err.Error(), pairName, "")
	}
	target, err := m.graph.Struct(pair.Target)
	if err != nil {
		tm.Diagnostics.AddError(diagnostic.CodeTypeNotFound, err.Error(), pairName, "")
	}
	if tm.Diagnostics.HasErrors() {
		return tm, nil
	}
	tm.Source, tm.Target = source, target

	oldFields, newFields := m.applyRules(tm)

	result, err := m.matcher.Match(oldFields, newFields)
	if err != nil {
		return nil, fmt.Errorf("match fields of %s: %w", pairName, err)
	}
	tm.Result = result

	for _, p := range result.SourceMatches() {
		compat := match.ScoreTypeCompatibility(p.Source.GoType(), p.Target.GoType())
		tm.Links = append(tm.Links, Link{
			Source:        p.Source,
			Target:        p.Target,
			Similarity:    p.Similarity,
			Phase:         p.Phase,
			Compatibility: compat,
		})
	}
	slices.SortFunc(tm.Links, func(a, b Link) int {
		return a.Source.Index - b.Source.Index
	})

	tm.Discarded = result.UnmatchedSources()
	tm.Added = result.UnmatchedTargets()
	m.diagnose(tm)

	m.logger.Debug("legacy: resolved pair",
		"pair", pairName,
		"links", len(tm.Links),
		"matched", result.MatchCount(),
		"discarded", len(tm.Discarded),
		"added", len(tm.Added),
		"average_similarity", result.AverageSimilarity())

	return tm, nil
}

// applyRules records ignored and pinned fields and returns the fields left
// for the matcher, in declaration order.
func (m *Mapper) applyRules(tm *TypeMapping) (oldFields, newFields []*analyze.FieldInfo) {
	pairName := tm.Pair.String()
	// taken maps a pinned new field to the old field it is pinned to.
	taken := make(map[string]string)

	for _, name := range tm.Pair.Ignore {
		f := tm.Source.Field(name)
		if f == nil {
			tm.Diagnostics.AddWarning(diagnostic.CodeUnknownField,
				fmt.Sprintf("ignored field %s does not exist in %s", name, tm.Source.ID.Short()), pairName, name)
			continue
		}
		tm.Ignored = append(tm.Ignored, f)
	}

	pinnedOld := make(map[string]bool)
	for _, from := range tm.Pair.PinnedSources() {
		to := tm.Pair.Pinned[from]
		old, cur := tm.Source.Field(from), tm.Target.Field(to)
		if old == nil || cur == nil {
			tm.Diagnostics.AddError(diagnostic.CodeInvalidPin,
				fmt.Sprintf("pinned fields %s -> %s do not exist", from, to), pairName, from)
			continue
		}
		if tm.Pair.Ignore.Contains(from) {
			tm.Diagnostics.AddWarning(diagnostic.CodeInvalidPin,
				fmt.Sprintf("pinned field %s is ignored", from), pairName, from)
			continue
		}
		if prev, ok := taken[to]; ok {
			tm.Diagnostics.AddError(diagnostic.CodeInvalidPin,
				fmt.Sprintf("pinned field %s -> %s: %s is already pinned to %s", from, to, to, prev), pairName, from)
			continue
		}

		score := match.ScoreFields(old, cur)
		if score.Compatibility.Compatibility == match.TypeIncompatible {
			tm.Diagnostics.AddWarning(diagnostic.CodeInvalidPin,
				fmt.Sprintf("pinned fields %s -> %s have incompatible types", from, to), pairName, from)
		}

		tm.Links = append(tm.Links, Link{
			Source:        old,
			Target:        cur,
			Similarity:    score.Score,
			Pinned:        true,
			Compatibility: score.Compatibility,
		})
		pinnedOld[from] = true
		taken[to] = from
	}

	for i := range tm.Source.Fields {
		f := &tm.Source.Fields[i]
		if !pinnedOld[f.Name] && !tm.Pair.Ignore.Contains(f.Name) {
			oldFields = append(oldFields, f)
		}
	}
	for i := range tm.Target.Fields {
		f := &tm.Target.Fields[i]
		if _, ok := taken[f.Name]; !ok {
			newFields = append(newFields, f)
		}
	}

	// Match rejects nil sequences.
	if oldFields == nil {
		oldFields = []*analyze.FieldInfo{}
	}
	if newFields == nil {
		newFields = []*analyze.FieldInfo{}
	}

	return oldFields, newFields
}

func (m *Mapper) diagnose(tm *TypeMapping) {
	pairName := tm.Pair.String()

	for _, l := range tm.Links {
		field := l.Source.Name
		if !l.Pinned && l.Phase != reconcile.PhaseEqual && l.Similarity < m.config.WeakMatchThreshold {
			tm.Diagnostics.AddWarning(diagnostic.CodeWeakMatch,
				fmt.Sprintf("%s -> %s linked with similarity %.2f", l.Source.Name, l.Target.Name, l.Similarity),
				pairName, field)
		}
		if l.Compatibility.Compatibility == match.TypeNeedsTransform {
			tm.Diagnostics.AddInfo(diagnostic.CodeNeedsTransform,
				fmt.Sprintf("%s -> %s: %s", analyze.TypeString(l.Source.Type), analyze.TypeString(l.Target.Type),
					l.Compatibility.Reason),
				pairName, field)
		}
	}

	for _, f := range tm.Discarded {
		tm.Diagnostics.AddWarning(diagnostic.CodeUnmatchedSource,
			fmt.Sprintf("old field %s has no match in %s", f.Name, tm.Target.ID.Short()), pairName, f.Name)
	}
	for _, f := range tm.Added {
		tm.Diagnostics.AddInfo(diagnostic.CodeUnmatchedTarget,
			fmt.Sprintf("new field %s has no former field in %s", f.Name, tm.Source.ID.Short()), pairName, f.Name)
	}
}
