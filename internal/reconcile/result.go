package reconcile

import (
	"slices"
	"sync"
)

// Pair is a link between a source item and a target item.
type Pair[T any] struct {
	SourceIndex int
	TargetIndex int
	Source      T
	Target      T
	// Similarity of the pair; 1.0 for links made by the equality relation.
	Similarity float64
	// Phase is the step of the algorithm that made the link.
	Phase Phase
}

// Slot is a position of an input sequence that may be empty.
type Slot[T any] struct {
	Item  T
	Valid bool
}

// Result is the immutable outcome of a Match call.
// Slices returned by its methods are fresh copies; the pairs they point to
// are shared and must be treated as read-only.
type Result[T any] struct {
	sources []T
	targets []T

	srcToTrg []int
	trgToSrc []int

	bySource []*Pair[T]
	byTarget []*Pair[T]

	matchCount      int
	totalQuantifier int64
	lowest          float64
	highest         float64

	remainingSources func() []Slot[T]
	remainingTargets func() []Slot[T]
	unmatchedSources func() []T
	unmatchedTargets func() []T
	matchedSources   func() []T
	matchedTargets   func() []T
	sourceMatches    func() []Pair[T]
	targetMatches    func() []Pair[T]
}

func newResult[T any](l *linker[T]) *Result[T] {
	r := &Result[T]{
		sources:         slices.Clone(l.source),
		targets:         slices.Clone(l.target),
		srcToTrg:        slices.Clone(l.srcToTrg),
		trgToSrc:        slices.Clone(l.trgToSrc),
		bySource:        make([]*Pair[T], l.rows),
		byTarget:        make([]*Pair[T], l.cols),
		totalQuantifier: l.totalQuantifier,
	}

	for s, t := range r.srcToTrg {
		if t < 0 {
			continue
		}
		q := l.linkedQuantifiers[s]
		p := &Pair[T]{
			SourceIndex: s,
			TargetIndex: t,
			Source:      r.sources[s],
			Target:      r.targets[t],
			Similarity:  Similarity(q),
			Phase:       l.linkedPhases[s],
		}
		r.bySource[s] = p
		r.byTarget[t] = p

		if r.matchCount == 0 || p.Similarity < r.lowest {
			r.lowest = p.Similarity
		}
		r.highest = max(r.highest, p.Similarity)
		r.matchCount++
	}

	r.remainingSources = sync.OnceValue(func() []Slot[T] { return remaining(r.sources, r.srcToTrg) })
	r.remainingTargets = sync.OnceValue(func() []Slot[T] { return remaining(r.targets, r.trgToSrc) })
	r.unmatchedSources = sync.OnceValue(func() []T { return selectItems(r.sources, r.srcToTrg, false) })
	r.unmatchedTargets = sync.OnceValue(func() []T { return selectItems(r.targets, r.trgToSrc, false) })
	r.matchedSources = sync.OnceValue(func() []T { return selectItems(r.sources, r.srcToTrg, true) })
	r.matchedTargets = sync.OnceValue(func() []T { return selectItems(r.targets, r.trgToSrc, true) })
	r.sourceMatches = sync.OnceValue(func() []Pair[T] { return compact(r.bySource) })
	r.targetMatches = sync.OnceValue(func() []Pair[T] { return compact(r.byTarget) })

	return r
}

// MatchCount returns the number of links.
func (r *Result[T]) MatchCount() int {
	return r.matchCount
}

// TotalSimilarity returns the sum of the similarities of the links made from
// the similarity matrix. Links of the equality relation are not included.
func (r *Result[T]) TotalSimilarity() float64 {
	return similarity64(r.totalQuantifier)
}

// AverageSimilarity returns TotalSimilarity divided by the number of links,
// equality links included, or 0 without links.
func (r *Result[T]) AverageSimilarity() float64 {
	if r.matchCount == 0 {
		return 0
	}

	return similarity64(r.totalQuantifier) / float64(r.matchCount)
}

// LowestSimilarity returns the lowest similarity of all links, or 0 without links.
func (r *Result[T]) LowestSimilarity() float64 {
	return r.lowest
}

// HighestSimilarity returns the highest similarity of all links, or 0 without links.
func (r *Result[T]) HighestSimilarity() float64 {
	return r.highest
}

// Sources returns the input source items.
func (r *Result[T]) Sources() []T {
	return slices.Clone(r.sources)
}

// Targets returns the input target items.
func (r *Result[T]) Targets() []T {
	return slices.Clone(r.targets)
}

// TargetOf returns the target index linked to source s, or -1.
func (r *Result[T]) TargetOf(s int) int {
	return r.srcToTrg[s]
}

// SourceOf returns the source index linked to target t, or -1.
func (r *Result[T]) SourceOf(t int) int {
	return r.trgToSrc[t]
}

// MatchesInSourceOrder returns one entry per source position, nil where unmatched.
func (r *Result[T]) MatchesInSourceOrder() []*Pair[T] {
	return slices.Clone(r.bySource)
}

// MatchesInTargetOrder returns one entry per target position, nil where unmatched.
func (r *Result[T]) MatchesInTargetOrder() []*Pair[T] {
	return slices.Clone(r.byTarget)
}

// RemainingSources returns the sources at their original positions with matched slots empty.
func (r *Result[T]) RemainingSources() []Slot[T] {
	return slices.Clone(r.remainingSources())
}

// RemainingTargets returns the targets at their original positions with matched slots empty.
func (r *Result[T]) RemainingTargets() []Slot[T] {
	return slices.Clone(r.remainingTargets())
}

// UnmatchedSources returns the sources without a link, in source order.
func (r *Result[T]) UnmatchedSources() []T {
	return slices.Clone(r.unmatchedSources())
}

// UnmatchedTargets returns the targets without a link, in target order.
func (r *Result[T]) UnmatchedTargets() []T {
	return slices.Clone(r.unmatchedTargets())
}

// MatchedSources returns the linked sources, in source order.
func (r *Result[T]) MatchedSources() []T {
	return slices.Clone(r.matchedSources())
}

// MatchedTargets returns the linked targets, in target order.
func (r *Result[T]) MatchedTargets() []T {
	return slices.Clone(r.matchedTargets())
}

// SourceMatches returns all links in source order.
func (r *Result[T]) SourceMatches() []Pair[T] {
	return slices.Clone(r.sourceMatches())
}

// TargetMatches returns all links in target order.
func (r *Result[T]) TargetMatches() []Pair[T] {
	return slices.Clone(r.targetMatches())
}

func remaining[T any](items []T, mapping []int) []Slot[T] {
	slots := make([]Slot[T], len(items))
	for i, item := range items {
		if mapping[i] < 0 {
			slots[i] = Slot[T]{Item: item, Valid: true}
		}
	}

	return slots
}

func selectItems[T any](items []T, mapping []int, matched bool) []T {
	selected := make([]T, 0, len(items))
	for i, item := range items {
		if (mapping[i] >= 0) == matched {
			selected = append(selected, item)
		}
	}

	return selected
}

func compact[T any](pairs []*Pair[T]) []Pair[T] {
	compacted := make([]Pair[T], 0, len(pairs))
	for _, p := range pairs {
		if p != nil {
			compacted = append(compacted, *p)
		}
	}

	return compacted
}
