package analysis

import (
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// DefaultPickupLimit caps pickup recommendations when no limit is given.
const DefaultPickupLimit = 10

// RecommendPickups ranks free agents by VOR descending, preferring steadier
// players (lower consistency deviation) on ties. When no candidate carries a
// VOR signal the ranking falls back to raw total points with the same tie
// break. Players already rostered are excluded.
func RecommendPickups(available []models.PlayerValue, rostered map[string]bool, limit int) []models.PickupSuggestion {
	if limit <= 0 {
		limit = DefaultPickupLimit
	}

	candidates := make([]models.PlayerValue, 0, len(available))
	hasVOR := false
	for _, v := range available {
		if rostered[v.Name] {
			continue
		}
		if v.VOR != 0 {
			hasVOR = true
		}
		candidates = append(candidates, v)
	}

	rank := func(v models.PlayerValue) float64 {
		if hasVOR {
			return v.VOR
		}
		return v.TotalPoints
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := rank(candidates[i]), rank(candidates[j])
		if ri != rj {
			return ri > rj
		}
		return candidates[i].Consistency < candidates[j].Consistency
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]models.PickupSuggestion, len(candidates))
	for i, v := range candidates {
		suggestions[i] = models.PickupSuggestion{
			Name:        v.Name,
			Position:    v.Position,
			ProTeam:     v.ProTeam,
			VOR:         v.VOR,
			Consistency: v.Consistency,
			TotalPoints: v.TotalPoints,
		}
	}
	return suggestions
}
