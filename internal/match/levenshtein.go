package match

import (
	"unicode/utf8"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings,
// counted in runes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in ra to size the rows by it.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a similarity score between 0 and 1:
// 1 - distance / max(len(a), len(b)). Two empty strings score 1.0.
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// SubstringSimilarity scores token containment: the share of tokens the
// identifiers have in common, after normalization (Dice coefficient).
//
//	SubstringSimilarity("Email", "EmailAddress") == 2.0/3.0
func SubstringSimilarity(a, b string) float64 {
	ta, tb := Tokenize(a), Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	counts := make(map[string]int, len(ta))
	for _, t := range ta {
		counts[t]++
	}

	common := 0
	for _, t := range tb {
		if counts[t] > 0 {
			counts[t]--
			common++
		}
	}

	return 2 * float64(common) / float64(len(ta)+len(tb))
}

// NameSimilarity is the best of the normalized edit distance score, the same
// score with affixes stripped, and the token containment score.
func NameSimilarity(a, b string) float64 {
	return max(
		LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b)),
		LevenshteinNormalized(StripAffixes(a), StripAffixes(b)),
		SubstringSimilarity(a, b),
	)
}
