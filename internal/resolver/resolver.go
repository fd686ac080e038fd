// Package resolver maps free-text user input to canonical reference names
// using weighted fuzzy matching.
package resolver

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// scoreCutoff is the minimum WRatio score (0-100) for a match. Below it
// the query is treated as unrecognized rather than guessed at.
const scoreCutoff = 65

// Resolve returns the candidate that best matches the query, or false when
// nothing scores at or above the cutoff. Matching is case-insensitive and
// ties keep the earliest candidate, so results are stable for a fixed
// candidate order.
func Resolve(query string, candidates []string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}

	best := ""
	bestScore := 0
	for _, candidate := range candidates {
		score := fuzzy.WRatio(query, strings.ToLower(candidate))
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < scoreCutoff {
		return "", false
	}
	return best, true
}
