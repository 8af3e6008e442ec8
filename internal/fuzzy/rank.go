package fuzzy

import "sort"

// MatchResult pairs a candidate with its fuzzy score. Scores are only
// meaningful for candidates that matched; non-matches are excluded from
// results rather than carrying a sentinel score.
type MatchResult struct {
	Candidate string
	Score     int
}

// Rank keeps the candidates that match query with a non-negative score and
// orders them by descending score. Equal scores keep their original
// relative order. The caller truncates to its display count; the full
// ranked set is returned.
func Rank(query string, candidates []string) []string {
	var results []MatchResult
	for _, c := range candidates {
		if matched, score := Match(query, c); matched && score >= 0 {
			results = append(results, MatchResult{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	ranked := make([]string, len(results))
	for i, r := range results {
		ranked[i] = r.Candidate
	}
	return ranked
}
