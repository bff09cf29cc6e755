package engine

// #region imports
import "strings"

// #endregion

// #region word-sets

// protectiveWords and harmfulWords are the fixed demo vocabularies. A richer
// production vocabulary is explicitly out of scope.
var protectiveWords = []string{
	"help", "protect", "care", "honest", "respect", "safety",
}

var harmfulWords = []string{
	"hurt", "kill", "destroy", "abuse", "dominate", "oppress",
}

// #endregion

// #region score

// Score maps raw text to the complementary PG/PE pair. Matching is
// case-insensitive and counts set membership: a word repeated in the text
// still contributes once. The result always satisfies PG + PE == 1.
func Score(text string) (pg, pe float64) {
	lower := strings.ToLower(text)

	good := countMembership(lower, protectiveWords)
	harm := countMembership(lower, harmfulWords)

	rawPG := 0.5 + 0.1*float64(good) - 0.1*float64(harm)
	rawPE := 1.0 - rawPG

	pg = clamp01(rawPG)
	pe = clamp01(rawPE)

	// Renormalize so the pair sums to exactly 1. The zero-sum guard is
	// unreachable given the formula but keeps the division total safe.
	total := pg + pe
	if total == 0 {
		total = 1
	}
	return pg / total, pe / total
}

// #endregion

// #region helpers

// countMembership counts how many words from the set occur in lower at all.
func countMembership(lower string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	return hits
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion
