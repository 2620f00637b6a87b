package picker

import "strings"

// fuzzyMatchScore reports whether query is a case-insensitive subsequence of
// candidate, and how well it fits. Scoring favors contiguous runs of matched
// characters and matches anchored at the start of the name. An empty query
// matches everything at the minimum score. Comparison is rune-wise so
// multi-byte names filter correctly.
func fuzzyMatchScore(candidate, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	cand := []rune(strings.ToLower(candidate))
	q := []rune(strings.ToLower(query))

	matchIdx := make([]int, 0, len(q))
	searchFrom := 0
	for _, ch := range q {
		found := false
		for j := searchFrom; j < len(cand); j++ {
			if cand[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(matchIdx)
	for i := range matchIdx {
		prevAdjacent := i > 0 && matchIdx[i] == matchIdx[i-1]+1
		nextAdjacent := i+1 < len(matchIdx) && matchIdx[i+1] == matchIdx[i]+1
		if prevAdjacent || nextAdjacent {
			score += 2
		}
	}
	if matchIdx[0] == 0 {
		score += 3
	}
	return true, score
}
