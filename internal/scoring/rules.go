package scoring

// RuleSet maps scoring rule identifiers to point values. A rule absent from
// the set contributes zero points, so a partial configuration still scores.
type RuleSet map[string]float64

func (r RuleSet) Points(rule string) float64 {
	return r[rule]
}

// Offense rule identifiers. The names match the keys used in league
// scoring configuration files.
const (
	Every25PassingYards       = "every_25_passing_yards"
	TDPass                    = "td_pass"
	InterceptionsThrown       = "interceptions_thrown"
	TwoPointPassingConversion = "2pt_passing_conversion"

	Every10RushingYards       = "every_10_rushing_yards"
	TDRush                    = "td_rush"
	TwoPointRushingConversion = "2pt_rushing_conversion"

	Every10ReceivingYards       = "every_10_receiving_yards"
	TDReception                 = "td_reception"
	Every5Receptions            = "every_5_receptions"
	TwoPointReceivingConversion = "2pt_receiving_conversion"

	TotalFumblesLost = "total_fumbles_lost"
	KickoffReturnTD  = "kickoff_return_td"
	TwoPointReturn   = "2pt_return"
)

// Long touchdown and single game yardage bonuses.
const (
	TDPass40Bonus = "40+_yard_td_pass_bonus"
	TDPass50Bonus = "50+_yard_td_pass_bonus"
	TDRush40Bonus = "40+_yard_td_rush_bonus"
	TDRush50Bonus = "50+_yard_td_rush_bonus"
	TDRec40Bonus  = "40+_yard_td_rec_bonus"
	TDRec50Bonus  = "50+_yard_td_rec_bonus"

	PassingGame300To399   = "300_399_yard_passing_game"
	PassingGame400Plus    = "400+_yard_passing_game"
	RushingGame100To199   = "100_199_yard_rushing_game"
	RushingGame200Plus    = "200+_yard_rushing_game"
	ReceivingGame100To199 = "100_199_yard_receiving_game"
	ReceivingGame200Plus  = "200+_yard_receiving_game"
)

// Kicking rule identifiers.
const (
	FGMade60Plus  = "fg_made_(60+_yards)"
	FGMade50To59  = "fg_made_(50_59_yards)"
	FGMade40To49  = "fg_made_(40_49_yards)"
	FGMade0To39   = "fg_made_(0_39_yards)"
	FGMissed0To39 = "fg_missed_(0_39_yards)"
	PATMade       = "each_pat_made"
	PATMissed     = "each_pat_missed"
)

// Defense rule identifiers.
const (
	HalfSack            = "1_2_sack"
	EachInterception    = "each_interception"
	EachFumbleRecovered = "each_fumble_recovered"
	BlockedKick         = "blocked_punt,_pat_or_fg"
	DefensiveTouchdowns = "defensive_touchdowns"
	EachFumbleForced    = "each_fumble_forced"
	AssistedTackles     = "assisted_tackles"
	SoloTackles         = "solo_tackles"
	PassesDefensed      = "passes_defensed"

	PointsAllowed0      = "0_points_allowed"
	PointsAllowed1To6   = "1_6_points_allowed"
	PointsAllowed7To13  = "7_13_points_allowed"
	PointsAllowed14To17 = "14_17_points_allowed"
	PointsAllowed22To27 = "22_27_points_allowed"
	PointsAllowed28To34 = "28_34_points_allowed"
	PointsAllowed35To45 = "35_45_points_allowed"
	PointsAllowed46Plus = "46+_points_allowed"

	YardsAllowedUnder100 = "less_than_100_total_yards_allowed"
	YardsAllowed100To199 = "100_199_total_yards_allowed"
	YardsAllowed200To299 = "200_299_total_yards_allowed"
	YardsAllowed300To349 = "300_349_total_yards_allowed"
	YardsAllowed400To449 = "400_449_total_yards_allowed"
	YardsAllowed450To499 = "450_499_total_yards_allowed"
	YardsAllowed500To549 = "500_549_total_yards_allowed"
	YardsAllowed550Plus  = "550+_total_yards_allowed"
)
