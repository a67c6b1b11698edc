package espn

// ID maps for the fantasy v3 API. ESPN encodes positions, pro teams, lineup
// slots, and stat categories as integers.

func positionString(positionID int) string {
	positions := map[int]string{
		1: "QB", 2: "RB", 3: "WR", 4: "TE", 5: "K", 16: "DST",
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

func proTeamString(proTeamID int) string {
	teams := map[int]string{
		1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
		9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
		17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
		25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
	}

	if team, ok := teams[proTeamID]; ok {
		return team
	}

	return "Unknown"
}

// slotName translates lineup slot IDs into the names the optimizer uses.
func slotName(slotID int) string {
	slots := map[int]string{
		0:  "QB",
		2:  "RB",
		3:  "RB_WR",
		4:  "WR",
		5:  "WR_TE",
		6:  "TE",
		15: "DP",
		16: "DST",
		17: "K",
		20: "BE",
		21: "IR",
		23: "FLEX",
	}
	if name, ok := slots[slotID]; ok {
		return name
	}
	return "Unknown"
}

// scoringStatRules maps ESPN per-stat scoring items onto named rules. Yardage
// stats score per yard on the wire, so the multiplier converts them into the
// per-bucket form the rule set uses. Stat IDs outside the map are dropped.
var scoringStatRules = map[int]struct {
	rule       string
	multiplier float64
}{
	3:  {"every_25_passing_yards", 25},
	4:  {"td_pass", 1},
	19: {"2pt_passing_conversion", 1},
	20: {"interceptions_thrown", 1},
	24: {"every_10_rushing_yards", 10},
	25: {"td_rush", 1},
	26: {"2pt_rushing_conversion", 1},
	42: {"every_10_receiving_yards", 10},
	43: {"td_reception", 1},
	44: {"2pt_receiving_conversion", 1},
	53: {"every_5_receptions", 5},
	72: {"total_fumbles_lost", 1},
	74: {"fg_made_(50_59_yards)", 1},
	77: {"fg_made_(40_49_yards)", 1},
	80: {"fg_made_(0_39_yards)", 1},
	85: {"fg_missed_(0_39_yards)", 1},
	86: {"each_pat_made", 1},
	88: {"each_pat_missed", 1},
	95: {"each_interception", 1},
	96: {"each_fumble_recovered", 1},
	97: {"blocked_punt,_pat_or_fg", 1},
	98: {"defensive_touchdowns", 1},
	99: {"1_2_sack", 1},
}

// Raw stat IDs for the kicking and defense categories the weekly breakdown
// rows carry.
const (
	statFGMade50Plus  = "74"
	statFGMade40To49  = "77"
	statFGMadeUnder40 = "80"
	statFGMissed      = "85"
	statXPMade        = "86"
	statXPMissed      = "88"

	statDefInterceptions   = "95"
	statDefFumbles         = "96"
	statDefBlockedKicks    = "97"
	statDefTDs             = "98"
	statDefSacks           = "99"
	statDefForcedFumbles   = "106"
	statDefAssistedTackles = "107"
	statDefSoloTackles     = "108"
	statDefPassesDefensed  = "113"
	statDefPointsAllowed   = "120"
	statDefYardsAllowed    = "127"
)
