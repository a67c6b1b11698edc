// Package draft implements value based drafting: VBD scores over projected
// season points and a snake draft simulation that recommends a pick for
// every round.
package draft

import (
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// UndraftedADP is the market cost assigned to players absent from the ADP
// report, pushing them behind every drafted player.
const UndraftedADP = 999

// Prospect is a draftable player with projection, market cost, and computed
// draft value.
type Prospect struct {
	Name            string
	Position        string
	ProTeam         string
	ProjectedPoints float64
	ADP             float64
	VBD             float64
}

// Config drives the snake draft simulation.
type Config struct {
	LeagueSize    int
	DraftPosition int
	RosterSlots   map[string]int
}

// benchShare is the extra per-team depth assumed beyond starters when
// placing the replacement level for a position. Kickers and defenses are
// streamed, not stashed, so they get none.
var benchShare = map[string]float64{
	"RB": 1.5,
	"WR": 1.5,
	"TE": 0.5,
}

var corePositions = []string{"QB", "RB", "WR", "TE", "K", "DST"}

// CalculateVBD fills each prospect's VBD: projected points minus the
// projection of the replacement level player at their position. Positions
// outside the core vocabulary keep a zero VBD.
func CalculateVBD(prospects []Prospect, rosterSlots map[string]int, leagueSize int) []Prospect {
	out := make([]Prospect, len(prospects))
	copy(out, prospects)

	for _, position := range corePositions {
		var ranked []*Prospect
		for i := range out {
			if out[i].Position == position {
				ranked = append(ranked, &out[i])
			}
		}
		if len(ranked) == 0 {
			continue
		}

		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ProjectedPoints > ranked[j].ProjectedPoints
		})

		count := float64(rosterSlots[position]*leagueSize) + benchShare[position]*float64(leagueSize)
		rlIndex := int(count) - 1
		if rlIndex >= len(ranked) {
			rlIndex = len(ranked) - 1
		}

		if rlIndex < 0 {
			// No replacement level to measure against.
			for _, p := range ranked {
				p.VBD = p.ProjectedPoints
			}
			continue
		}

		replacement := ranked[rlIndex].ProjectedPoints
		for _, p := range ranked {
			p.VBD = p.ProjectedPoints - replacement
		}
	}

	return out
}

// fillOrder is the roster slot sequence a team drafts for, starters first.
var fillOrder = []string{
	"QB", "RB", "RB", "WR", "WR", "TE",
	"RB_WR", "WR_TE", "FLEX",
	"K", "DST",
	"DP", "DP",
	"BE", "BE", "BE", "BE", "BE", "BE", "BE",
}

var draftEligibility = map[string][]string{
	"QB":    {"QB"},
	"RB":    {"RB"},
	"WR":    {"WR"},
	"TE":    {"TE"},
	"K":     {"K"},
	"DST":   {"DST"},
	"RB_WR": {"RB", "WR"},
	"WR_TE": {"WR", "TE"},
	"FLEX":  {"RB", "WR", "TE"},
	"DP":    {"DB", "LB", "DE", "DL", "CB", "S", "DT", "NT"},
}

// Simulate runs a snake draft from my seat. Opponents always take the best
// remaining player by ADP; my picks take the best VBD among players
// eligible for the next unfilled roster slot. The simulation stops early if
// a slot cannot be filled from the remaining pool.
func Simulate(prospects []Prospect, cfg Config) []models.DraftPick {
	order := roundOrder(cfg.RosterSlots)
	if len(order) == 0 || cfg.LeagueSize <= 0 {
		return nil
	}

	available := make([]Prospect, len(prospects))
	copy(available, prospects)

	var picks []models.DraftPick
	taken := 0

	for round := 1; round <= len(order); round++ {
		myOverall := overallPick(round, cfg.LeagueSize, cfg.DraftPosition)

		for taken < myOverall-1 && len(available) > 0 {
			available = removeProspect(available, bestByADP(available))
			taken++
		}

		slot := order[round-1]
		pick := bestForSlot(available, slot)
		if pick < 0 {
			break
		}

		picks = append(picks, models.DraftPick{
			Round:    round,
			Overall:  myOverall,
			Name:     available[pick].Name,
			Position: available[pick].Position,
			VBD:      available[pick].VBD,
		})
		available = removeProspect(available, pick)
		taken++
	}

	return picks
}

// roundOrder clamps the preferred fill order to the configured slot counts.
func roundOrder(rosterSlots map[string]int) []string {
	counts := make(map[string]int, len(rosterSlots))
	var order []string
	for _, slot := range fillOrder {
		if counts[slot] < rosterSlots[slot] {
			order = append(order, slot)
			counts[slot]++
		}
	}
	return order
}

// overallPick is my absolute pick number in a snake draft round.
func overallPick(round, leagueSize, position int) int {
	base := (round - 1) * leagueSize
	if round%2 == 1 {
		return base + position
	}
	return base + leagueSize - position + 1
}

func bestByADP(available []Prospect) int {
	best := 0
	for i := 1; i < len(available); i++ {
		if available[i].ADP < available[best].ADP {
			best = i
		}
	}
	return best
}

// bestForSlot is the highest VBD eligible player, or -1 if none remain.
// Bench slots accept any position.
func bestForSlot(available []Prospect, slot string) int {
	best := -1
	for i := range available {
		if slot != "BE" && !eligibleFor(available[i].Position, slot) {
			continue
		}
		if best < 0 || available[i].VBD > available[best].VBD {
			best = i
		}
	}
	return best
}

func eligibleFor(position, slot string) bool {
	for _, allowed := range draftEligibility[slot] {
		if position == allowed {
			return true
		}
	}
	return false
}

func removeProspect(available []Prospect, i int) []Prospect {
	out := make([]Prospect, 0, len(available)-1)
	out = append(out, available[:i]...)
	return append(out, available[i+1:]...)
}
