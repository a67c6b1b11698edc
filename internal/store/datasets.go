package store

import (
	"strconv"

	"github.com/gridironhq/gridiron/internal/models"
)

var statsHeader = []string{
	"player_display_name",
	"position",
	"recent_team",
	"week",
	"passing_yards",
	"passing_tds",
	"interceptions",
	"passing_2pt_conversions",
	"passing_td_yards",
	"passing_fumbles_lost",
	"rushing_yards",
	"rushing_tds",
	"rushing_2pt_conversions",
	"rushing_td_yards",
	"rushing_fumbles_lost",
	"receiving_yards",
	"receiving_tds",
	"receptions",
	"receiving_2pt_conversions",
	"receiving_td_yards",
	"receiving_fumbles_lost",
	"special_teams_tds",
	"2pt_return",
	"madeFieldGoalsFrom50Plus",
	"madeFieldGoalsFrom40To49",
	"madeFieldGoalsFromUnder40",
	"missedFieldGoals",
	"madeExtraPoints",
	"missedExtraPoints",
	"defensiveSacks",
	"defensiveInterceptions",
	"defensiveFumbles",
	"defensiveBlockedKicks",
	"defensiveTouchdowns",
	"defensiveForcedFumbles",
	"defensiveAssistedTackles",
	"defensiveSoloTackles",
	"defensivePassesDefensed",
	"defensivePointsAllowed",
	"defensiveYardsAllowed",
	"fantasy_points",
}

// LoadPlayerStats reads the weekly stat rows for every player.
func (s *Store) LoadPlayerStats() ([]models.PlayerWeek, error) {
	header, records, err := s.readCSV(statsFile)
	if err != nil {
		return nil, err
	}

	index := headerIndex(header)
	players := make([]models.PlayerWeek, 0, len(records))
	for _, cells := range records {
		r := row{index: index, cells: cells}
		week, _ := strconv.Atoi(r.text("week"))
		players = append(players, models.PlayerWeek{
			Name:     r.text("player_display_name"),
			Position: r.text("position"),
			ProTeam:  r.text("recent_team"),
			Week:     week,
			Passing: models.PassingStats{
				Yards:               r.number("passing_yards"),
				TDs:                 r.number("passing_tds"),
				Interceptions:       r.number("interceptions"),
				TwoPointConversions: r.number("passing_2pt_conversions"),
				TDYards:             r.number("passing_td_yards"),
				FumblesLost:         r.number("passing_fumbles_lost"),
			},
			Rushing: models.RushingStats{
				Yards:               r.number("rushing_yards"),
				TDs:                 r.number("rushing_tds"),
				TwoPointConversions: r.number("rushing_2pt_conversions"),
				TDYards:             r.number("rushing_td_yards"),
				FumblesLost:         r.number("rushing_fumbles_lost"),
			},
			Receiving: models.ReceivingStats{
				Yards:               r.number("receiving_yards"),
				TDs:                 r.number("receiving_tds"),
				Receptions:          r.number("receptions"),
				TwoPointConversions: r.number("receiving_2pt_conversions"),
				TDYards:             r.number("receiving_td_yards"),
				FumblesLost:         r.number("receiving_fumbles_lost"),
			},
			Kicking: models.KickingStats{
				FGMade50Plus:  r.number("madeFieldGoalsFrom50Plus"),
				FGMade40To49:  r.number("madeFieldGoalsFrom40To49"),
				FGMadeUnder40: r.number("madeFieldGoalsFromUnder40"),
				FGMissed:      r.number("missedFieldGoals"),
				XPMade:        r.number("madeExtraPoints"),
				XPMissed:      r.number("missedExtraPoints"),
			},
			Defense: models.DefenseStats{
				Sacks:            r.number("defensiveSacks"),
				Interceptions:    r.number("defensiveInterceptions"),
				FumblesRecovered: r.number("defensiveFumbles"),
				BlockedKicks:     r.number("defensiveBlockedKicks"),
				TDs:              r.number("defensiveTouchdowns"),
				ForcedFumbles:    r.number("defensiveForcedFumbles"),
				AssistedTackles:  r.number("defensiveAssistedTackles"),
				SoloTackles:      r.number("defensiveSoloTackles"),
				PassesDefensed:   r.number("defensivePassesDefensed"),
				PointsAllowed:    r.number("defensivePointsAllowed"),
				YardsAllowed:     r.number("defensiveYardsAllowed"),
			},
			SpecialTeamsTDs: r.number("special_teams_tds"),
			TwoPointReturns: r.number("2pt_return"),
			FantasyPoints:   r.number("fantasy_points"),
		})
	}
	return players, nil
}

// SavePlayerStats writes the weekly stat rows, replacing any existing file.
func (s *Store) SavePlayerStats(players []models.PlayerWeek) error {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			p.Name,
			p.Position,
			p.ProTeam,
			strconv.Itoa(p.Week),
			formatFloat(p.Passing.Yards),
			formatFloat(p.Passing.TDs),
			formatFloat(p.Passing.Interceptions),
			formatFloat(p.Passing.TwoPointConversions),
			formatFloat(p.Passing.TDYards),
			formatFloat(p.Passing.FumblesLost),
			formatFloat(p.Rushing.Yards),
			formatFloat(p.Rushing.TDs),
			formatFloat(p.Rushing.TwoPointConversions),
			formatFloat(p.Rushing.TDYards),
			formatFloat(p.Rushing.FumblesLost),
			formatFloat(p.Receiving.Yards),
			formatFloat(p.Receiving.TDs),
			formatFloat(p.Receiving.Receptions),
			formatFloat(p.Receiving.TwoPointConversions),
			formatFloat(p.Receiving.TDYards),
			formatFloat(p.Receiving.FumblesLost),
			formatFloat(p.SpecialTeamsTDs),
			formatFloat(p.TwoPointReturns),
			formatFloat(p.Kicking.FGMade50Plus),
			formatFloat(p.Kicking.FGMade40To49),
			formatFloat(p.Kicking.FGMadeUnder40),
			formatFloat(p.Kicking.FGMissed),
			formatFloat(p.Kicking.XPMade),
			formatFloat(p.Kicking.XPMissed),
			formatFloat(p.Defense.Sacks),
			formatFloat(p.Defense.Interceptions),
			formatFloat(p.Defense.FumblesRecovered),
			formatFloat(p.Defense.BlockedKicks),
			formatFloat(p.Defense.TDs),
			formatFloat(p.Defense.ForcedFumbles),
			formatFloat(p.Defense.AssistedTackles),
			formatFloat(p.Defense.SoloTackles),
			formatFloat(p.Defense.PassesDefensed),
			formatFloat(p.Defense.PointsAllowed),
			formatFloat(p.Defense.YardsAllowed),
			formatFloat(p.FantasyPoints),
		})
	}
	return s.writeCSV(statsFile, statsHeader, rows)
}

var projectionsHeader = []string{"full_name", "position", "team", "projected_points"}

// LoadProjections reads rest-of-season projections.
func (s *Store) LoadProjections() ([]models.ProjectedPlayer, error) {
	header, records, err := s.readCSV(projectionsFile)
	if err != nil {
		return nil, err
	}

	index := headerIndex(header)
	projected := make([]models.ProjectedPlayer, 0, len(records))
	for _, cells := range records {
		r := row{index: index, cells: cells}
		projected = append(projected, models.ProjectedPlayer{
			Name:            r.text("full_name"),
			Position:        r.text("position"),
			ProTeam:         r.text("team"),
			ProjectedPoints: r.number("projected_points"),
		})
	}
	return projected, nil
}

func (s *Store) SaveProjections(projected []models.ProjectedPlayer) error {
	rows := make([][]string, 0, len(projected))
	for _, p := range projected {
		rows = append(rows, []string{p.Name, p.Position, p.ProTeam, formatFloat(p.ProjectedPoints)})
	}
	return s.writeCSV(projectionsFile, projectionsHeader, rows)
}

var adpHeader = []string{"full_name", "position", "team", "adp"}

// LoadADP reads average draft position entries.
func (s *Store) LoadADP() ([]models.ADPEntry, error) {
	header, records, err := s.readCSV(adpFile)
	if err != nil {
		return nil, err
	}

	index := headerIndex(header)
	entries := make([]models.ADPEntry, 0, len(records))
	for _, cells := range records {
		r := row{index: index, cells: cells}
		entries = append(entries, models.ADPEntry{
			Name:     r.text("full_name"),
			Position: r.text("position"),
			ProTeam:  r.text("team"),
			ADP:      r.number("adp"),
		})
	}
	return entries, nil
}

func (s *Store) SaveADP(entries []models.ADPEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Position, e.ProTeam, formatFloat(e.ADP)})
	}
	return s.writeCSV(adpFile, adpHeader, rows)
}
