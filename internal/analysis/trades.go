package analysis

import (
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// Fixed policy thresholds, in fantasy points over or under a player's
// established average.
const (
	sellHighThreshold = 10.0
	buyLowThreshold   = -5.0
)

// TradeTargets flags players whose most recent week diverged sharply from
// their average over the prior weeks. Sell high candidates beat their
// average by more than ten points (sorted biggest spike first); buy low
// candidates fell more than five points short (sorted biggest dip first).
// A dataset with a single week has no prior average and yields no
// candidates.
func TradeTargets(scored []models.PlayerWeek) (sellHigh, buyLow []models.TradeCandidate) {
	currentWeek := 0
	for _, row := range scored {
		if row.Week > currentWeek {
			currentWeek = row.Week
		}
	}
	if currentWeek == 0 {
		return nil, nil
	}

	type history struct {
		current    models.PlayerWeek
		hasCurrent bool
		priorSum   float64
		priorGames int
	}

	players := make(map[string]*history)
	var order []string
	for _, row := range scored {
		h, ok := players[row.Name]
		if !ok {
			h = &history{}
			players[row.Name] = h
			order = append(order, row.Name)
		}
		if row.Week == currentWeek {
			h.current = row
			h.hasCurrent = true
		} else {
			h.priorSum += row.FantasyPoints
			h.priorGames++
		}
	}

	for _, name := range order {
		h := players[name]
		if !h.hasCurrent || h.priorGames == 0 {
			continue
		}

		avg := h.priorSum / float64(h.priorGames)
		candidate := models.TradeCandidate{
			Name:          h.current.Name,
			Position:      h.current.Position,
			CurrentPoints: h.current.FantasyPoints,
			AveragePoints: avg,
			Difference:    h.current.FantasyPoints - avg,
		}

		switch {
		case candidate.Difference > sellHighThreshold:
			sellHigh = append(sellHigh, candidate)
		case candidate.Difference < buyLowThreshold:
			buyLow = append(buyLow, candidate)
		}
	}

	sort.SliceStable(sellHigh, func(i, j int) bool {
		return sellHigh[i].Difference > sellHigh[j].Difference
	})
	sort.SliceStable(buyLow, func(i, j int) bool {
		return buyLow[i].Difference < buyLow[j].Difference
	})

	return sellHigh, buyLow
}
