package reconcile

import (
	"fmt"
	"math"
	"strings"
)

// linker is the working state of a single Match call.
// The input slices are never written; availability is tracked per index.
type linker[T any] struct {
	config   Config
	equal    Equality[T]
	similar  SimilarityFunc[T]
	validate Validator[T]

	source, target []T
	rows, cols     int

	srcPlaceholder []bool
	trgPlaceholder []bool

	// cells holds the quantified similarity matrix in row-major order.
	cells        []int
	srcCandCount []int
	trgCandCount []int

	// sourceCandidates and targetCandidates count rows and columns with at least one candidate.
	sourceCandidates int
	targetCandidates int

	srcToTrg []int
	trgToSrc []int

	linkedQuantifiers []int   // per source index
	linkedPhases      []Phase // per source index
	totalQuantifier   int64

	precedenceThreshold int
	log                 func(msg string, args ...any)
	debugEnabled        bool
}

func newLinker[T any](m *Matcher[T], source, target []T) *linker[T] {
	l := &linker[T]{
		config:              m.config,
		equal:               m.equal,
		similar:             m.similar,
		validate:            m.validate,
		source:              source,
		target:              target,
		rows:                len(source),
		cols:                len(target),
		srcPlaceholder:      make([]bool, len(source)),
		trgPlaceholder:      make([]bool, len(target)),
		srcCandCount:        make([]int, len(source)),
		trgCandCount:        make([]int, len(target)),
		srcToTrg:            make([]int, len(source)),
		trgToSrc:            make([]int, len(target)),
		linkedQuantifiers:   make([]int, len(source)),
		linkedPhases:        make([]Phase, len(source)),
		precedenceThreshold: Quantify(m.config.SingletonPrecedenceThreshold),
		log:                 m.logger.Debug,
		debugEnabled:        debugEnabled(m.logger),
	}

	for s := range source {
		l.srcToTrg[s] = -1
		l.srcPlaceholder[s] = m.placeholder(source[s])
	}
	for t := range target {
		l.trgToSrc[t] = -1
		l.trgPlaceholder[t] = m.placeholder(target[t])
	}

	return l
}

func (l *linker[T]) at(s, t int) int {
	return l.cells[s*l.cols+t]
}

// sourceAvailable reports whether source s may still be compared.
func (l *linker[T]) sourceAvailable(s int) bool {
	return !l.srcPlaceholder[s] && l.srcToTrg[s] < 0
}

// targetAvailable reports whether target t may still be compared.
func (l *linker[T]) targetAvailable(t int) bool {
	return !l.trgPlaceholder[t] && l.trgToSrc[t] < 0
}

// linkAllEqual links every available pair satisfying the equality relation.
// Equal links bypass the matrix: their pairs report similarity 1.0 but they
// add nothing to the total similarity.
func (l *linker[T]) linkAllEqual() int {
	if l.equal == nil {
		return 0
	}

	linked := 0
	for s := range l.source {
		if !l.sourceAvailable(s) {
			continue
		}
		for t := range l.target {
			if !l.targetAvailable(t) || !l.equal(l.source[s], l.target[t]) {
				continue
			}
			l.link(s, t, MaxQuantifier, PhaseEqual)
			linked++
			break
		}
	}

	return linked
}

// buildMatrix stores the quantified similarity of every available pair at or
// above the similarity threshold and counts the candidates of each row and column.
func (l *linker[T]) buildMatrix() error {
	l.cells = make([]int, l.rows*l.cols)
	threshold := l.config.SimilarityThreshold

	for s := range l.source {
		if !l.sourceAvailable(s) {
			continue
		}
		for t := range l.target {
			if !l.targetAvailable(t) {
				continue
			}

			sim := l.similar(l.source[s], l.target[t])
			if math.IsNaN(sim) || sim < 0 || sim > 1 {
				return fmt.Errorf("%w: %v for source %d and target %d", ErrSimilarityOutOfRange, sim, s, t)
			}
			if sim < threshold {
				continue
			}

			q := Quantify(sim)
			if q == 0 {
				continue
			}
			l.cells[s*l.cols+t] = q
			l.srcCandCount[s]++
			l.trgCandCount[t]++
		}
	}

	for s := range l.srcCandCount {
		if l.srcCandCount[s] > 0 {
			l.sourceCandidates++
		}
	}
	for t := range l.trgCandCount {
		if l.trgCandCount[t] > 0 {
			l.targetCandidates++
		}
	}

	return nil
}

// hasCandidates reports whether at least one candidate is left.
func (l *linker[T]) hasCandidates() bool {
	return l.sourceCandidates > 0 && l.targetCandidates > 0
}

// removeCell drops candidate (s,t) and keeps the counts in lockstep.
func (l *linker[T]) removeCell(s, t int) {
	l.cells[s*l.cols+t] = 0
	if l.trgCandCount[t]--; l.trgCandCount[t] == 0 {
		l.targetCandidates--
	}
	if l.srcCandCount[s]--; l.srcCandCount[s] == 0 {
		l.sourceCandidates--
	}
}

// link records the mapping of s to t.
func (l *linker[T]) link(s, t, quantifier int, phase Phase) {
	l.srcToTrg[s] = t
	l.trgToSrc[t] = s
	l.linkedQuantifiers[s] = quantifier
	l.linkedPhases[s] = phase
}

// dumpState renders the working matrix for debugging.
func (l *linker[T]) dumpState(title string) string {
	var b strings.Builder

	matchCount := 0
	for _, t := range l.srcToTrg {
		if t >= 0 {
			matchCount++
		}
	}

	fmt.Fprintf(&b, "%s\n[candidates = %d][total similarity = %.3f][match count = %d]\n",
		title, min(l.sourceCandidates, l.targetCandidates), similarity64(l.totalQuantifier), matchCount)

	b.WriteString("s\\t\t")
	for t := 0; t < l.cols; t++ {
		fmt.Fprintf(&b, "%d\t", t)
	}
	b.WriteString("s2t\n")

	for s := 0; s < l.rows; s++ {
		fmt.Fprintf(&b, "%d\t", s)
		for t := 0; t < l.cols; t++ {
			if l.cells != nil && l.at(s, t) > 0 {
				fmt.Fprintf(&b, "%.2f", Similarity(l.at(s, t)))
			}
			b.WriteByte('\t')
		}
		switch {
		case l.srcToTrg[s] >= 0:
			fmt.Fprintf(&b, "#%d", l.srcToTrg[s])
		case l.srcCandCount[s] > 0:
			fmt.Fprintf(&b, "[%d]", l.srcCandCount[s])
		}
		b.WriteByte('\n')
	}

	b.WriteString("t2s\t")
	for t := 0; t < l.cols; t++ {
		switch {
		case l.trgToSrc[t] >= 0:
			fmt.Fprintf(&b, "#%d", l.trgToSrc[t])
		case l.trgCandCount[t] > 0:
			fmt.Fprintf(&b, "[%d]", l.trgCandCount[t])
		}
		b.WriteByte('\t')
	}
	b.WriteByte('\n')

	return b.String()
}
