// Package analysis turns player value records into roster advice: positional
// needs, free agent pickups, trade targets, and bye week conflicts.
package analysis

import (
	"fmt"
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// AnalyzeTeamNeeds compares my roster's average VOR per position against the
// league average. The league average only counts above replacement players,
// so a position's league number reflects its top tier rather than waiver
// fodder. Needs come back sorted ascending, weakest position first.
func AnalyzeTeamNeeds(myRoster, leagueWide []models.PlayerValue) models.TeamNeedsReport {
	if len(myRoster) == 0 {
		return models.TeamNeedsReport{
			Narrative: "No team needs analysis possible: the roster is empty.",
		}
	}

	leagueAvg := averageVORByPosition(leagueWide, true)
	myAvg := averageVORByPosition(myRoster, false)

	positions := make([]string, 0, len(myAvg))
	for position := range myAvg {
		positions = append(positions, position)
	}
	sort.Strings(positions)

	needs := make([]models.PositionalNeed, 0, len(positions))
	for _, position := range positions {
		needs = append(needs, models.PositionalNeed{
			Position:  position,
			MyAvgVOR:  myAvg[position],
			LeagueVOR: leagueAvg[position],
			Diff:      myAvg[position] - leagueAvg[position],
		})
	}

	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].Diff < needs[j].Diff
	})

	weakest := needs[0]
	strongest := needs[len(needs)-1]
	narrative := fmt.Sprintf(
		"Your strongest position is %s (%+.2f VOR vs the league average). Your biggest need is %s (%+.2f).",
		strongest.Position, strongest.Diff, weakest.Position, weakest.Diff,
	)

	return models.TeamNeedsReport{Needs: needs, Narrative: narrative}
}

// averageVORByPosition computes mean VOR per position. With aboveReplacement
// set, players at or below replacement level are excluded from the mean.
func averageVORByPosition(values []models.PlayerValue, aboveReplacement bool) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, v := range values {
		if aboveReplacement && v.VOR <= 0 {
			continue
		}
		sums[v.Position] += v.VOR
		counts[v.Position]++
	}

	averages := make(map[string]float64, len(sums))
	for position, sum := range sums {
		averages[position] = sum / float64(counts[position])
	}
	return averages
}
