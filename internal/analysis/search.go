package analysis

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gridironhq/gridiron/internal/models"
)

const matchThreshold = 0.7

// MatchName resolves a possibly misspelled name against the candidate list
// using Levenshtein similarity. It returns the index of the best match above
// the threshold, or false when nothing comes close.
func MatchName(name string, candidates []string) (int, bool) {
	best := -1
	bestScore := -1.0
	query := strings.ToLower(name)

	for i, c := range candidates {
		candidate := strings.ToLower(c)
		distance := fuzzy.LevenshteinDistance(query, candidate)
		maxLen := len(query)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}

		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > matchThreshold && similarity > bestScore {
			bestScore = similarity
			best = i
		}
	}

	return best, best >= 0
}

// FindPlayer looks a player up in the value records by fuzzy name match.
func FindPlayer(name string, values []models.PlayerValue) (models.PlayerValue, bool) {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name
	}

	i, ok := MatchName(name, names)
	if !ok {
		return models.PlayerValue{}, false
	}
	return values[i], true
}
