// Package fuzzy scores how well a partially typed query aligns with
// candidate binding names. Matching is case-insensitive and rewards
// alignments that land on word starts, camelCase humps, and consecutive
// runs, the way completion users expect.
package fuzzy

import "unicode"

const (
	// recursionLimit bounds the backtracking search. This is a cost bound,
	// not a correctness guarantee: on adversarial inputs a true match can
	// be missed once the budget runs out.
	recursionLimit = 10

	sequentialBonus  = 15
	separatorBonus   = 30
	camelBonus       = 30
	firstLetterBonus = 15

	leadingLetterPenalty    = -5
	maxLeadingLetterPenalty = -15
	unmatchedLetterPenalty  = -1
)

// Match reports whether every rune of pattern appears, in order, somewhere
// in candidate, and the score of the best alignment found. Empty patterns
// and empty candidates never match.
func Match(pattern, candidate string) (matched bool, score int) {
	if pattern == "" || candidate == "" {
		return false, 0
	}
	recursions := 0
	matched, score, _ = matchRecursive([]rune(pattern), []rune(candidate), 0, 0, nil, &recursions)
	return matched, score
}

// matchRecursive aligns pattern[pIdx:] against candidate[cIdx:]. At every
// candidate position where the next pattern rune matches, it branches: one
// recursive attempt skips this occurrence to look for a better alignment
// later, and the direct path takes it. The higher-scoring full match wins;
// ties and failed recursion keep the direct result.
func matchRecursive(pattern, candidate []rune, pIdx, cIdx int, srcMatches []int, recursions *int) (bool, int, []int) {
	if *recursions >= recursionLimit {
		return false, 0, nil
	}
	*recursions++

	if pIdx == len(pattern) || cIdx == len(candidate) {
		return false, 0, nil
	}

	matches := make([]int, len(srcMatches), len(srcMatches)+len(pattern))
	copy(matches, srcMatches)

	var (
		bestRecursive      []int
		bestRecursiveScore int
		recursiveMatched   bool
	)

	for pIdx < len(pattern) && cIdx < len(candidate) {
		if unicode.ToLower(pattern[pIdx]) == unicode.ToLower(candidate[cIdx]) {
			if ok, rScore, rMatches := matchRecursive(pattern, candidate, pIdx, cIdx+1, matches, recursions); ok {
				if !recursiveMatched || rScore > bestRecursiveScore {
					bestRecursiveScore = rScore
					bestRecursive = rMatches
				}
				recursiveMatched = true
			}
			matches = append(matches, cIdx)
			pIdx++
		}
		cIdx++
	}

	if pIdx != len(pattern) {
		return false, 0, nil
	}

	score := scoreAlignment(candidate, matches)
	if recursiveMatched && bestRecursiveScore > score {
		return true, bestRecursiveScore, bestRecursive
	}
	return true, score, matches
}

// scoreAlignment scores one full alignment over the matched candidate
// positions, which arrive 0-indexed in increasing order.
func scoreAlignment(candidate []rune, matches []int) int {
	score := 100

	penalty := leadingLetterPenalty * matches[0]
	if penalty < maxLeadingLetterPenalty {
		penalty = maxLeadingLetterPenalty
	}
	score += penalty

	score += unmatchedLetterPenalty * (len(candidate) - len(matches))

	for i, idx := range matches {
		if i > 0 && idx == matches[i-1]+1 {
			score += sequentialBonus
		}
		if idx == 0 {
			score += firstLetterBonus
			continue
		}
		prev := candidate[idx-1]
		curr := candidate[idx]
		if unicode.IsLower(prev) && unicode.IsUpper(curr) {
			score += camelBonus
		}
		if prev == '_' || prev == ' ' || unicode.IsDigit(prev) {
			score += separatorBonus
		}
	}
	return score
}
