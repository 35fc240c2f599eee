package reconcile

import (
	"fmt"
	"strings"
)

// AssembleVertical renders one line per source item:
//
//	Firstname	<-1.00->	firstname
//	Freetext	 +
//		       x	noteLink
//
// Linked sources show the similarity and their target, unmatched sources are
// marked with "+" and unmatched targets are listed last, marked with "x".
func AssembleVertical[T any](r *Result[T], format func(T) string) string {
	var b strings.Builder

	for s, p := range r.bySource {
		b.WriteString(format(r.sources[s]))
		if p != nil {
			fmt.Fprintf(&b, "\t<-%.2f->\t", p.Similarity)
			b.WriteString(format(p.Target))
		} else {
			b.WriteString("\t + ")
		}
		b.WriteByte('\n')
	}

	for t, p := range r.byTarget {
		if p == nil {
			b.WriteString("\t       x\t")
			b.WriteString(format(r.targets[t]))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// AssembleHorizontal renders the sources as columns of a four line scheme:
// the sources, a "|" or "+" marker per source, the link markers followed by a
// "-" per unmatched target, and the linked targets followed by the unmatched ones.
func AssembleHorizontal[T any](r *Result[T], format func(T) string) string {
	var line1, line2, line3, line4 strings.Builder

	for _, item := range r.sources {
		line1.WriteString(format(item))
		line1.WriteByte('\t')
	}

	for _, p := range r.bySource {
		if p != nil {
			line2.WriteByte('|')
			line3.WriteByte('|')
			line4.WriteString(format(p.Target))
		} else {
			line2.WriteByte('+')
		}
		line2.WriteByte('\t')
		line3.WriteByte('\t')
		line4.WriteByte('\t')
	}

	for _, item := range r.unmatchedTargets() {
		line3.WriteString("-\t")
		line4.WriteString(format(item))
		line4.WriteByte('\t')
	}

	return line1.String() + "\n" + line2.String() + "\n" + line3.String() + "\n" + line4.String()
}
