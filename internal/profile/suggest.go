package profile

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from an existing name
// before the suggestion is considered noise.
const maxSuggestDistance = 3

// Suggest returns the existing name closest to the given input, or "" when
// nothing is within edit distance. Comparison is case-insensitive; ties keep
// the earliest record.
func (s *Store) Suggest(name string) string {
	input := strings.ToLower(strings.TrimSpace(name))
	if input == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, r := range s.records {
		d := levenshtein.ComputeDistance(input, strings.ToLower(r.Name))
		if d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	return best
}
