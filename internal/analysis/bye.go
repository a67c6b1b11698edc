package analysis

import (
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// ByeConflicts groups my roster by bye week and flags weeks where two or
// more players sit out together. byeWeeks maps pro team abbreviation to bye
// week; players whose team has no known bye are skipped.
func ByeConflicts(roster []models.PlayerValue, byeWeeks map[string]int) []models.ByeConflict {
	weeks := make(map[int][]string)
	for _, p := range roster {
		week, ok := byeWeeks[p.ProTeam]
		if !ok {
			continue
		}
		weeks[week] = append(weeks[week], p.Name)
	}

	var conflicts []models.ByeConflict
	for week, players := range weeks {
		if len(players) < 2 {
			continue
		}
		sort.Strings(players)
		conflicts = append(conflicts, models.ByeConflict{Week: week, Players: players})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Week < conflicts[j].Week
	})
	return conflicts
}
