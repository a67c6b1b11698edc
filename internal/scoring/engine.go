package scoring

import (
	"github.com/gridironhq/gridiron/internal/models"
)

// Score computes fantasy points for every record under the given rule set.
// The input is not modified; a scored copy is returned with one output row
// per input row. A record with no recognized stats scores zero.
func Score(records []models.PlayerWeek, rules RuleSet) []models.PlayerWeek {
	scored := make([]models.PlayerWeek, len(records))
	for i, rec := range records {
		rec.FantasyPoints = playerPoints(rec, rules)
		scored[i] = rec
	}
	return scored
}

func playerPoints(p models.PlayerWeek, r RuleSet) float64 {
	total := passingPoints(p.Passing, r)
	total += rushingPoints(p.Rushing, r)
	total += receivingPoints(p.Receiving, r)
	total += (p.Rushing.FumblesLost + p.Receiving.FumblesLost) * r.Points(TotalFumblesLost)

	// Every return touchdown type scores under the kickoff return rule.
	total += p.SpecialTeamsTDs * r.Points(KickoffReturnTD)
	total += p.TwoPointReturns * r.Points(TwoPointReturn)

	switch p.Position {
	case "K":
		total += kickingPoints(p.Kicking, r)
	case "DST":
		total += defensePoints(p.Defense, r)
	}

	return total
}

func passingPoints(s models.PassingStats, r RuleSet) float64 {
	pts := s.Yards / 25 * r.Points(Every25PassingYards)
	pts += s.TDs * r.Points(TDPass)
	pts += s.Interceptions * r.Points(InterceptionsThrown)
	pts += s.TwoPointConversions * r.Points(TwoPointPassingConversion)

	if s.TDYards >= 40 {
		pts += r.Points(TDPass40Bonus)
	}
	if s.TDYards >= 50 {
		pts += r.Points(TDPass50Bonus)
	}

	switch {
	case s.Yards >= 400:
		pts += r.Points(PassingGame400Plus)
	case s.Yards >= 300:
		pts += r.Points(PassingGame300To399)
	}

	return pts
}

func rushingPoints(s models.RushingStats, r RuleSet) float64 {
	pts := s.Yards / 10 * r.Points(Every10RushingYards)
	pts += s.TDs * r.Points(TDRush)
	pts += s.TwoPointConversions * r.Points(TwoPointRushingConversion)

	if s.TDYards >= 40 {
		pts += r.Points(TDRush40Bonus)
	}
	if s.TDYards >= 50 {
		pts += r.Points(TDRush50Bonus)
	}

	switch {
	case s.Yards >= 200:
		pts += r.Points(RushingGame200Plus)
	case s.Yards >= 100:
		pts += r.Points(RushingGame100To199)
	}

	return pts
}

func receivingPoints(s models.ReceivingStats, r RuleSet) float64 {
	pts := s.Yards / 10 * r.Points(Every10ReceivingYards)
	pts += s.TDs * r.Points(TDReception)
	pts += s.Receptions / 5 * r.Points(Every5Receptions)
	pts += s.TwoPointConversions * r.Points(TwoPointReceivingConversion)

	if s.TDYards >= 40 {
		pts += r.Points(TDRec40Bonus)
	}
	if s.TDYards >= 50 {
		pts += r.Points(TDRec50Bonus)
	}

	switch {
	case s.Yards >= 200:
		pts += r.Points(ReceivingGame200Plus)
	case s.Yards >= 100:
		pts += r.Points(ReceivingGame100To199)
	}

	return pts
}

func kickingPoints(s models.KickingStats, r RuleSet) float64 {
	// Stat feeds report a single 50+ bucket, so both long distance rules
	// apply to it. Misses likewise collapse onto the 0-39 penalty.
	pts := s.FGMade50Plus * (r.Points(FGMade50To59) + r.Points(FGMade60Plus))
	pts += s.FGMade40To49 * r.Points(FGMade40To49)
	pts += s.FGMadeUnder40 * r.Points(FGMade0To39)
	pts += s.FGMissed * r.Points(FGMissed0To39)
	pts += s.XPMade * r.Points(PATMade)
	pts += s.XPMissed * r.Points(PATMissed)
	return pts
}

func defensePoints(s models.DefenseStats, r RuleSet) float64 {
	pts := s.Sacks * r.Points(HalfSack)
	pts += s.Interceptions * r.Points(EachInterception)
	pts += s.FumblesRecovered * r.Points(EachFumbleRecovered)
	pts += s.BlockedKicks * r.Points(BlockedKick)
	pts += s.TDs * r.Points(DefensiveTouchdowns)
	pts += s.ForcedFumbles * r.Points(EachFumbleForced)
	pts += s.AssistedTackles * r.Points(AssistedTackles)
	pts += s.SoloTackles * r.Points(SoloTackles)
	pts += s.PassesDefensed * r.Points(PassesDefensed)

	if rule := pointsAllowedRule(s.PointsAllowed); rule != "" {
		pts += r.Points(rule)
	}
	if rule := yardsAllowedRule(s.YardsAllowed); rule != "" {
		pts += r.Points(rule)
	}

	return pts
}

// pointsAllowedRule selects the points allowed bucket. 18-21 has no rule and
// contributes nothing.
func pointsAllowedRule(pa float64) string {
	switch {
	case pa <= 0:
		return PointsAllowed0
	case pa <= 6:
		return PointsAllowed1To6
	case pa <= 13:
		return PointsAllowed7To13
	case pa <= 17:
		return PointsAllowed14To17
	case pa <= 21:
		return ""
	case pa <= 27:
		return PointsAllowed22To27
	case pa <= 34:
		return PointsAllowed28To34
	case pa <= 45:
		return PointsAllowed35To45
	default:
		return PointsAllowed46Plus
	}
}

// yardsAllowedRule selects the yards allowed bucket. 350-399 has no rule.
func yardsAllowedRule(ya float64) string {
	switch {
	case ya < 100:
		return YardsAllowedUnder100
	case ya <= 199:
		return YardsAllowed100To199
	case ya <= 299:
		return YardsAllowed200To299
	case ya <= 349:
		return YardsAllowed300To349
	case ya <= 399:
		return ""
	case ya <= 449:
		return YardsAllowed400To449
	case ya <= 499:
		return YardsAllowed450To499
	case ya <= 549:
		return YardsAllowed500To549
	default:
		return YardsAllowed550Plus
	}
}
