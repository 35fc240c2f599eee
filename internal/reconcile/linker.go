package reconcile

import (
	"context"
	"fmt"
	"log/slog"
)

func debugEnabled(logger *slog.Logger) bool {
	return logger.Enabled(context.Background(), slog.LevelDebug)
}

// run executes all phases. The matrix and counts are consistent whenever a
// phase returns, including on error.
func (l *linker[T]) run() error {
	if n := l.linkAllEqual(); n > 0 {
		l.log("reconcile: linked equal items", "count", n)
	}

	// A zero threshold disables similarity matching.
	if l.similar == nil || l.config.SimilarityThreshold <= 0 {
		return nil
	}

	if err := l.buildMatrix(); err != nil {
		return err
	}
	l.log("reconcile: built candidate matrix",
		"rows", l.rows, "cols", l.cols,
		"source_candidates", l.sourceCandidates, "target_candidates", l.targetCandidates)
	l.trace("initial matrix")

	if err := l.linkAllPerfect(); err != nil {
		return err
	}

	if l.config.noiseRemoval() {
		removed := l.removeNoise()
		l.log("reconcile: removed noise", "count", removed)
		l.trace("after noise removal")
	}

	for l.hasCandidates() {
		changed, err := l.linkAllUnconflicted()
		if err != nil {
			return err
		}
		if changed {
			continue
		}

		if changed, err = l.resolveSourceSingleton(); err != nil {
			return err
		}
		if changed {
			continue
		}

		if changed, err = l.resolveTargetSingleton(); err != nil {
			return err
		}
		if changed {
			continue
		}

		l.log("reconcile: falling back to best remaining candidate")
		if err := l.linkBestRemaining(); err != nil {
			return err
		}
	}
	l.trace("final matrix")

	return nil
}

func (l *linker[T]) trace(title string) {
	if l.debugEnabled {
		l.log("reconcile: state", "dump", l.dumpState(title))
	}
}

// linkOne links candidate (s,t) unless the validator rejects it, in which
// case only the cell is dropped. Either way at least one candidate is removed.
func (l *linker[T]) linkOne(s, t int, phase Phase) error {
	q := l.at(s, t)

	if l.validate != nil {
		ok, err := l.validate(l.source[s], l.target[t], Similarity(q), l.srcCandCount[s], l.trgCandCount[t])
		if err != nil {
			return fmt.Errorf("validate source %d and target %d: %w", s, t, err)
		}
		if !ok {
			l.removeCell(s, t)
			return nil
		}
	}

	l.link(s, t, q, phase)
	l.totalQuantifier += int64(q)

	for i := 0; i < l.cols; i++ {
		if l.at(s, i) > 0 {
			l.removeCell(s, i)
		}
	}
	for i := 0; i < l.rows; i++ {
		if l.at(i, t) > 0 {
			l.removeCell(i, t)
		}
	}

	return nil
}

// linkAllPerfect links every candidate with similarity 1.0.
func (l *linker[T]) linkAllPerfect() error {
	for s := 0; s < l.rows; s++ {
		if l.srcCandCount[s] == 0 {
			continue
		}
		for t := 0; t < l.cols; t++ {
			if l.at(s, t) != MaxQuantifier {
				continue
			}
			if err := l.linkOne(s, t, PhasePerfect); err != nil {
				return err
			}
		}
	}

	return nil
}

// removeNoise drops candidates below NoiseFactor times the maximum of their
// row, then of their column. It returns the number of dropped candidates.
func (l *linker[T]) removeNoise() int {
	removed := 0

	for s := 0; s < l.rows; s++ {
		if l.srcCandCount[s] == 0 {
			continue
		}
		rowMax := 0
		for t := 0; t < l.cols; t++ {
			rowMax = max(rowMax, l.at(s, t))
		}
		noise := int(float64(rowMax) * l.config.NoiseFactor)
		if noise == 0 {
			continue
		}
		for t := 0; t < l.cols; t++ {
			if q := l.at(s, t); q > 0 && q < noise {
				l.removeCell(s, t)
				removed++
			}
		}
	}

	for t := 0; t < l.cols; t++ {
		if l.trgCandCount[t] == 0 {
			continue
		}
		colMax := 0
		for s := 0; s < l.rows; s++ {
			colMax = max(colMax, l.at(s, t))
		}
		noise := int(float64(colMax) * l.config.NoiseFactor)
		if noise == 0 {
			continue
		}
		for s := 0; s < l.rows; s++ {
			if q := l.at(s, t); q > 0 && q < noise {
				l.removeCell(s, t)
				removed++
			}
		}
	}

	return removed
}

// linkAllUnconflicted links candidates that are the only candidate of both
// their row and their column, until there are none left.
func (l *linker[T]) linkAllUnconflicted() (bool, error) {
	changed := false

	for {
		s, t, found := l.findUnconflicted()
		if !found {
			return changed, nil
		}
		if err := l.linkOne(s, t, PhaseUnconflicted); err != nil {
			return changed, err
		}
		changed = true
	}
}

func (l *linker[T]) findUnconflicted() (int, int, bool) {
	for s := 0; s < l.rows; s++ {
		if l.srcCandCount[s] != 1 {
			continue
		}
		t := l.soleTarget(s)
		if l.trgCandCount[t] == 1 {
			return s, t, true
		}
	}

	return -1, -1, false
}

// soleTarget returns the first candidate column of row s.
func (l *linker[T]) soleTarget(s int) int {
	for t := 0; t < l.cols; t++ {
		if l.at(s, t) > 0 {
			return t
		}
	}

	return -1
}

// soleSource returns the first candidate row of column t.
func (l *linker[T]) soleSource(t int) int {
	for s := 0; s < l.rows; s++ {
		if l.at(s, t) > 0 {
			return s
		}
	}

	return -1
}

// hasPrecedence decides whether the best singleton candidate wins a slot
// against the best overall candidate for the same slot.
func (l *linker[T]) hasPrecedence(singleton, singletonQ, overall, overallQ int) bool {
	if singletonQ >= l.precedenceThreshold {
		return true
	}

	return overall == singleton || float64(singletonQ)*l.config.SingletonPrecedenceBonus >= float64(overallQ)
}

// resolveSourceSingleton links one source row that has a single candidate
// column, if the best such row for that column has precedence.
func (l *linker[T]) resolveSourceSingleton() (bool, error) {
	for s := 0; s < l.rows; s++ {
		if l.srcCandCount[s] != 1 {
			continue
		}
		t := l.soleTarget(s)

		bsts, bstsQ := s, l.at(s, t)
		for i := 0; i < l.rows; i++ {
			if l.srcCandCount[i] == 1 && l.at(i, t) > bstsQ {
				bsts, bstsQ = i, l.at(i, t)
			}
		}

		bots, botsQ := bsts, bstsQ
		for i := 0; i < l.rows; i++ {
			if l.at(i, t) > botsQ {
				bots, botsQ = i, l.at(i, t)
			}
		}

		if l.hasPrecedence(bsts, bstsQ, bots, botsQ) {
			return true, l.linkOne(bsts, t, PhaseSourceSingleton)
		}
	}

	return false, nil
}

// resolveTargetSingleton mirrors resolveSourceSingleton with the roles swapped.
func (l *linker[T]) resolveTargetSingleton() (bool, error) {
	for t := 0; t < l.cols; t++ {
		if l.trgCandCount[t] != 1 {
			continue
		}
		s := l.soleSource(t)

		bsst, bsstQ := t, l.at(s, t)
		for i := 0; i < l.cols; i++ {
			if l.trgCandCount[i] == 1 && l.at(s, i) > bsstQ {
				bsst, bsstQ = i, l.at(s, i)
			}
		}

		bost, bostQ := bsst, bsstQ
		for i := 0; i < l.cols; i++ {
			if l.at(s, i) > bostQ {
				bost, bostQ = i, l.at(s, i)
			}
		}

		if l.hasPrecedence(bsst, bsstQ, bost, bostQ) {
			return true, l.linkOne(s, bsst, PhaseTargetSingleton)
		}
	}

	return false, nil
}

// linkBestRemaining links the candidate with the highest quantifier.
// The caller guarantees that at least one candidate exists.
func (l *linker[T]) linkBestRemaining() error {
	sMax, tMax, qMax := -1, -1, 0
	for s := 0; s < l.rows; s++ {
		if l.srcCandCount[s] == 0 {
			continue
		}
		for t := 0; t < l.cols; t++ {
			if q := l.at(s, t); q > qMax {
				sMax, tMax, qMax = s, t, q
			}
		}
	}

	return l.linkOne(sMax, tMax, PhaseBestRemaining)
}
