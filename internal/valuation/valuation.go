// Package valuation aggregates scored weekly stat lines into season values:
// total points, value over replacement, and week to week consistency.
package valuation

import (
	"math"
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// defaultStarters is the per-team starter count assumed for a position when
// the roster settings do not say otherwise. Unknown positions count as one.
var defaultStarters = map[string]int{
	"QB":  1,
	"RB":  2,
	"WR":  2,
	"TE":  1,
	"K":   1,
	"DST": 1,
}

// Valuate aggregates scored player weeks into one value record per player.
// The replacement level for a position is the mean total of its top
// leagueSize*starters players; a player's VOR is their total minus that
// level and may be negative. Output preserves first appearance order.
func Valuate(scored []models.PlayerWeek, rosterSettings map[string]int, leagueSize int) []models.PlayerValue {
	totals := aggregate(scored)

	byPosition := make(map[string][]*models.PlayerValue)
	for i := range totals {
		v := &totals[i]
		byPosition[v.Position] = append(byPosition[v.Position], v)
	}

	for position, players := range byPosition {
		replacement := replacementLevel(players, starters(position, rosterSettings)*leagueSize)
		for _, p := range players {
			p.VOR = p.TotalPoints - replacement
		}
	}

	return totals
}

func starters(position string, rosterSettings map[string]int) int {
	if n, ok := rosterSettings[position]; ok && n > 0 {
		return n
	}
	if n, ok := defaultStarters[position]; ok {
		return n
	}
	return 1
}

// replacementLevel is the mean total of the top count players. With fewer
// players than count, every player is part of the replacement pool.
func replacementLevel(players []*models.PlayerValue, count int) float64 {
	if len(players) == 0 {
		return 0
	}

	ranked := make([]*models.PlayerValue, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})

	if count > len(ranked) {
		count = len(ranked)
	}

	var sum float64
	for _, p := range ranked[:count] {
		sum += p.TotalPoints
	}
	return sum / float64(count)
}

func aggregate(scored []models.PlayerWeek) []models.PlayerValue {
	index := make(map[string]int)
	var order []string
	weekly := make(map[string][]float64)

	var totals []models.PlayerValue
	for _, row := range scored {
		i, ok := index[row.Name]
		if !ok {
			i = len(totals)
			index[row.Name] = i
			order = append(order, row.Name)
			totals = append(totals, models.PlayerValue{
				Name:     row.Name,
				Position: row.Position,
				ProTeam:  row.ProTeam,
			})
		}
		totals[i].TotalPoints += row.FantasyPoints
		totals[i].Games++
		weekly[row.Name] = append(weekly[row.Name], row.FantasyPoints)
	}

	for _, name := range order {
		totals[index[name]].Consistency = sampleStdDev(weekly[name])
	}

	return totals
}

// sampleStdDev is the sample standard deviation (n-1 denominator). A single
// observation has no spread and yields zero.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
