// Package lineup solves the weekly starting lineup as an exact 0/1
// assignment problem: maximize projected points subject to every starting
// slot being filled by a distinct, position-eligible player.
package lineup

import (
	"errors"
	"sort"

	"github.com/gridironhq/gridiron/internal/models"
)

// ErrInfeasible reports that the roster cannot fill the configured starting
// slots. This is a hard failure: a partial lineup is never returned.
var ErrInfeasible = errors.New("lineup: no feasible assignment for the configured slots")

// slotEligibility maps roster slot names to the player positions allowed in
// them. Bench and injured reserve are not here: they never compete for the
// starting lineup.
var slotEligibility = map[string][]string{
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

// Assignment places one player into one slot instance.
type Assignment struct {
	Slot   string
	Player models.ProjectedPlayer
}

// Lineup is a complete feasible assignment and its objective value.
type Lineup struct {
	Assignments    []Assignment
	TotalProjected float64
}

// Optimize assigns candidates to the starting slots in slots, maximizing
// total projected points. Each player fills at most one slot and every slot
// instance is filled exactly. BE and IR entries in slots are ignored.
// Returns ErrInfeasible when the slots cannot all be filled.
func Optimize(candidates []models.ProjectedPlayer, slots map[string]int) (Lineup, error) {
	instances := slotInstances(slots)
	if len(instances) == 0 {
		return Lineup{}, nil
	}

	eligible := make([][]int, len(instances))
	for i, slot := range instances {
		for p, candidate := range candidates {
			if positionEligible(candidate.Position, slot) {
				eligible[i] = append(eligible[i], p)
			}
		}
		if len(eligible[i]) == 0 {
			return Lineup{}, ErrInfeasible
		}
	}

	s := &solver{
		candidates: candidates,
		instances:  instances,
		eligible:   eligible,
		chosen:     make([]int, len(instances)),
		best:       make([]int, len(instances)),
		used:       make([]bool, len(candidates)),
		bestTotal:  -1,
		found:      false,
	}
	s.computeBounds()
	s.search(0, 0)

	if !s.found {
		return Lineup{}, ErrInfeasible
	}

	lineup := Lineup{Assignments: make([]Assignment, len(instances))}
	for i, p := range s.best {
		lineup.Assignments[i] = Assignment{Slot: instances[i], Player: candidates[p]}
		lineup.TotalProjected += candidates[p].ProjectedPoints
	}

	sort.SliceStable(lineup.Assignments, func(i, j int) bool {
		if lineup.Assignments[i].Slot != lineup.Assignments[j].Slot {
			return lineup.Assignments[i].Slot < lineup.Assignments[j].Slot
		}
		return lineup.Assignments[i].Player.ProjectedPoints > lineup.Assignments[j].Player.ProjectedPoints
	})

	return lineup, nil
}

// slotInstances expands the slot counts into one entry per required player,
// sorted so identical slots sit next to each other.
func slotInstances(slots map[string]int) []string {
	names := make([]string, 0, len(slots))
	for name, count := range slots {
		if name == "BE" || name == "IR" || count <= 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var instances []string
	for _, name := range names {
		for i := 0; i < slots[name]; i++ {
			instances = append(instances, name)
		}
	}
	return instances
}

func positionEligible(position, slot string) bool {
	for _, allowed := range slotEligibility[slot] {
		if position == allowed {
			return true
		}
	}
	return false
}

type solver struct {
	candidates []models.ProjectedPlayer
	instances  []string
	eligible   [][]int
	suffixMax  []float64

	chosen    []int
	best      []int
	used      []bool
	total     float64
	bestTotal float64
	found     bool
}

// computeBounds precomputes, for each instance, the best points any eligible
// player could contribute, accumulated from the back. The sum is an
// optimistic bound used to prune hopeless branches.
func (s *solver) computeBounds() {
	s.suffixMax = make([]float64, len(s.instances)+1)
	for i := len(s.instances) - 1; i >= 0; i-- {
		max := 0.0
		for _, p := range s.eligible[i] {
			if pts := s.candidates[p].ProjectedPoints; pts > max {
				max = pts
			}
		}
		s.suffixMax[i] = s.suffixMax[i+1] + max
	}
}

func (s *solver) search(i int, minIndex int) {
	if i == len(s.instances) {
		if s.total > s.bestTotal {
			s.bestTotal = s.total
			copy(s.best, s.chosen)
			s.found = true
		}
		return
	}

	if s.found && s.total+s.suffixMax[i] <= s.bestTotal {
		return
	}

	// Instances of the same slot are interchangeable; forcing increasing
	// player indices across them avoids exploring permutations twice.
	startIndex := 0
	if i > 0 && s.instances[i] == s.instances[i-1] {
		startIndex = minIndex
	}

	for _, p := range s.eligible[i] {
		if p < startIndex || s.used[p] {
			continue
		}
		s.used[p] = true
		s.chosen[i] = p
		s.total += s.candidates[p].ProjectedPoints

		s.search(i+1, p+1)

		s.total -= s.candidates[p].ProjectedPoints
		s.used[p] = false
	}
}
