package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron/internal/models"
)

func TestScoreBasicOffense(t *testing.T) {
	rules := RuleSet{
		Every25PassingYards:   1.0,
		TDPass:                4.0,
		InterceptionsThrown:   -2.0,
		Every10RushingYards:   1.0,
		TDRush:                6.0,
		Every10ReceivingYards: 1.0,
		TDReception:           6.0,
		Every5Receptions:      1.0,
		TotalFumblesLost:      -2.0,
	}

	records := []models.PlayerWeek{
		{
			Name:     "QB1",
			Position: "QB",
			Passing:  models.PassingStats{Yards: 250, TDs: 2, Interceptions: 1},
		},
		{
			Name:     "RB1",
			Position: "RB",
			Rushing:  models.RushingStats{Yards: 100, TDs: 1, FumblesLost: 1},
		},
		{
			Name:      "WR1",
			Position:  "WR",
			Receiving: models.ReceivingStats{Yards: 50, TDs: 1, Receptions: 5},
		},
	}

	scored := Score(records, rules)
	require.Len(t, scored, 3)

	assert.InDelta(t, 16.0, scored[0].FantasyPoints, 1e-9)
	assert.InDelta(t, 14.0, scored[1].FantasyPoints, 1e-9)
	assert.InDelta(t, 12.0, scored[2].FantasyPoints, 1e-9)
}

func TestScoreFractionalYardage(t *testing.T) {
	rules := RuleSet{
		Every25PassingYards:   1.0,
		Every10RushingYards:   1.0,
		Every10ReceivingYards: 1.0,
		Every5Receptions:      1.0,
	}

	// Yardage divides continuously, no flooring on partial increments.
	records := []models.PlayerWeek{
		{
			Name:     "QB1",
			Position: "QB",
			Passing:  models.PassingStats{Yards: 299},
		},
		{
			Name:      "WR1",
			Position:  "WR",
			Receiving: models.ReceivingStats{Yards: 87, Receptions: 6},
		},
		{
			Name:     "RB1",
			Position: "RB",
			Rushing:  models.RushingStats{Yards: 63},
		},
	}

	scored := Score(records, rules)
	require.Len(t, scored, 3)

	assert.InDelta(t, 299.0/25.0, scored[0].FantasyPoints, 1e-9)
	assert.InDelta(t, 8.7+1.2, scored[1].FantasyPoints, 1e-9)
	assert.InDelta(t, 6.3, scored[2].FantasyPoints, 1e-9)
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	records := []models.PlayerWeek{
		{Name: "QB1", Position: "QB", Passing: models.PassingStats{Yards: 250}},
	}

	scored := Score(records, RuleSet{Every25PassingYards: 1.0})

	assert.Zero(t, records[0].FantasyPoints)
	assert.InDelta(t, 10.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreZeroStatLine(t *testing.T) {
	rules := RuleSet{
		Every25PassingYards: 1.0,
		TDPass:              4.0,
		InterceptionsThrown: -2.0,
		TotalFumblesLost:    -2.0,
		Every5Receptions:    1.0,
	}

	scored := Score([]models.PlayerWeek{{Name: "Rookie", Position: "QB"}}, rules)
	assert.Zero(t, scored[0].FantasyPoints)
}

func TestScoreMissingRulesContributeNothing(t *testing.T) {
	rules := RuleSet{Every25PassingYards: 1.0}

	scored := Score([]models.PlayerWeek{
		{Name: "QB1", Position: "QB", Passing: models.PassingStats{Yards: 250, TDs: 3}},
	}, rules)

	assert.InDelta(t, 10.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreOffensiveBonuses(t *testing.T) {
	rules := RuleSet{
		Every25PassingYards:   1.0,
		TDPass:                6.0,
		Every10RushingYards:   1.0,
		TDRush:                6.0,
		Every10ReceivingYards: 1.0,
		TDReception:           6.0,
		TDPass40Bonus:         1.0,
		TDPass50Bonus:         2.0,
		TDRush40Bonus:         1.0,
		TDRush50Bonus:         2.0,
		TDRec40Bonus:          1.0,
		TDRec50Bonus:          2.0,
		ReceivingGame100To199: 3.0,
		ReceivingGame200Plus:  4.0,
		RushingGame100To199:   3.0,
		RushingGame200Plus:    4.0,
		PassingGame300To399:   3.0,
		PassingGame400Plus:    4.0,
	}

	record := models.PlayerWeek{
		Name:      "BonusPlayer",
		Position:  "QB",
		Passing:   models.PassingStats{Yards: 350, TDs: 1, TDYards: 55},
		Rushing:   models.RushingStats{Yards: 150, TDs: 1, TDYards: 45},
		Receiving: models.ReceivingStats{Yards: 210, TDs: 1, TDYards: 40},
	}

	scored := Score([]models.PlayerWeek{record}, rules)

	// Passing 14 + 6 + 1 + 2 + 3, rushing 15 + 6 + 1 + 3, receiving 21 + 6 + 1 + 4.
	assert.InDelta(t, 83.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreSpecialTeams(t *testing.T) {
	rules := RuleSet{
		KickoffReturnTD: 6.0,
		TwoPointReturn:  2.0,
	}

	scored := Score([]models.PlayerWeek{
		{Name: "Returner", Position: "WR", SpecialTeamsTDs: 1, TwoPointReturns: 1},
	}, rules)

	assert.InDelta(t, 8.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreKicking(t *testing.T) {
	rules := RuleSet{
		FGMade60Plus:  5.0,
		FGMade50To59:  5.0,
		FGMade40To49:  3.0,
		FGMade0To39:   3.0,
		FGMissed0To39: -1.0,
		PATMade:       1.0,
		PATMissed:     -1.0,
	}

	kicking := models.KickingStats{
		FGMade50Plus:  1,
		FGMade40To49:  1,
		FGMadeUnder40: 1,
		FGMissed:      1,
		XPMade:        2,
		XPMissed:      1,
	}

	scored := Score([]models.PlayerWeek{
		{Name: "K1", Position: "K", Kicking: kicking},
	}, rules)

	// The single 50+ make earns both the 50-59 and the 60+ rule values.
	assert.InDelta(t, 16.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreKickingIgnoredForNonKickers(t *testing.T) {
	rules := RuleSet{FGMade0To39: 3.0, PATMade: 1.0}

	scored := Score([]models.PlayerWeek{
		{Name: "QB1", Position: "QB", Kicking: models.KickingStats{FGMadeUnder40: 2, XPMade: 3}},
	}, rules)

	assert.Zero(t, scored[0].FantasyPoints)
}

func defenseRules() RuleSet {
	return RuleSet{
		HalfSack:            0.5,
		EachInterception:    3.0,
		EachFumbleRecovered: 2.0,
		BlockedKick:         2.0,
		DefensiveTouchdowns: 6.0,
		EachFumbleForced:    1.0,
		AssistedTackles:     0.5,
		SoloTackles:         0.75,
		PassesDefensed:      1.0,

		PointsAllowed0:      10.0,
		PointsAllowed1To6:   7.5,
		PointsAllowed7To13:  5.0,
		PointsAllowed14To17: 2.5,
		PointsAllowed22To27: -2.5,
		PointsAllowed28To34: -5.0,
		PointsAllowed35To45: -7.5,
		PointsAllowed46Plus: -10.0,

		YardsAllowedUnder100: 10.0,
		YardsAllowed100To199: 7.5,
		YardsAllowed200To299: 5.0,
		YardsAllowed300To349: 2.5,
		YardsAllowed400To449: -2.5,
		YardsAllowed450To499: -7.5,
		YardsAllowed500To549: -15.0,
		YardsAllowed550Plus:  -25.0,
	}
}

func TestScoreDefense(t *testing.T) {
	defense := models.DefenseStats{
		Sacks:            2,
		Interceptions:    1,
		FumblesRecovered: 1,
		BlockedKicks:     1,
		TDs:              1,
		ForcedFumbles:    1,
		AssistedTackles:  2,
		SoloTackles:      4,
		PassesDefensed:   3,
		PointsAllowed:    10,
		YardsAllowed:     250,
	}

	scored := Score([]models.PlayerWeek{
		{Name: "DST1", Position: "DST", Defense: defense},
	}, defenseRules())

	// 1 + 3 + 2 + 2 + 6 + 1 + 1 + 3 + 3 + 5 + 5.
	assert.InDelta(t, 32.0, scored[0].FantasyPoints, 1e-9)
}

func TestScoreDefenseAllowedBuckets(t *testing.T) {
	tests := []struct {
		name          string
		pointsAllowed float64
		yardsAllowed  float64
		want          float64
	}{
		{"shutout and under 100", 0, 0, 20.0},
		{"six points is upper bound of 1-6", 6, 0, 17.5},
		{"seven points drops to 7-13", 7, 0, 15.0},
		{"thirteen points stays in 7-13", 13, 0, 15.0},
		{"fourteen points drops to 14-17", 14, 0, 12.5},
		{"eighteen points scores no bucket", 18, 0, 10.0},
		{"ninety nine yards is under 100", 0, 99, 20.0},
		{"one hundred yards moves to 100-199", 0, 100, 17.5},
		{"one ninety nine stays in 100-199", 0, 199, 17.5},
		{"two hundred moves to 200-299", 0, 200, 15.0},
		{"three seventy five scores no yard bucket", 0, 375, 10.0},
		{"blowout scores both negative buckets", 46, 550, -35.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := Score([]models.PlayerWeek{
				{
					Name:     "DST",
					Position: "DST",
					Defense: models.DefenseStats{
						PointsAllowed: tt.pointsAllowed,
						YardsAllowed:  tt.yardsAllowed,
					},
				},
			}, defenseRules())

			assert.InDelta(t, tt.want, scored[0].FantasyPoints, 1e-9)
		})
	}
}

func TestScoreDefenseIgnoredForNonDefense(t *testing.T) {
	scored := Score([]models.PlayerWeek{
		{Name: "WR1", Position: "WR", Defense: models.DefenseStats{Sacks: 4, SoloTackles: 10}},
	}, defenseRules())

	// Offensive positions still skip the allowed buckets.
	assert.Zero(t, scored[0].FantasyPoints)
}

func TestScoreEmptyInput(t *testing.T) {
	assert.Empty(t, Score(nil, defenseRules()))
}
