package espn

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gridironhq/gridiron/internal/models"
	"github.com/gridironhq/gridiron/internal/scoring"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint() string {
	return fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
}

// GetLeagueMetadata fetches league settings, including the lineup slot
// counts the optimizer and valuation need.
func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	slots := make(map[string]int)
	for slotID, count := range leagueResponse.Settings.RosterSettings.LineupSlotCounts {
		if count <= 0 {
			continue
		}
		var id int
		if _, err := fmt.Sscanf(slotID, "%d", &id); err != nil {
			continue
		}
		if name := slotName(id); name != "Unknown" {
			slots[name] = count
		}
	}

	metadata := &models.LeagueMetadata{
		LeagueID:    leagueResponse.ID,
		Name:        leagueResponse.Settings.Name,
		Size:        leagueResponse.Settings.Size,
		CurrentWeek: leagueResponse.Status.CurrentMatchupPeriod,
		FirstWeek:   leagueResponse.Status.FirstScoringPeriod,
		FinalWeek:   leagueResponse.Status.FinalScoringPeriod,
		IsActive:    leagueResponse.Status.IsActive,
		RosterSlots: slots,
		LastUpdated: time.Now(),
	}

	return metadata, nil
}

// GetScoringRules translates the league's scoring items into named rules.
// Stat categories without a named rule are skipped.
func (a *API) GetScoringRules() (scoring.RuleSet, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching scoring settings: %w", err)
	}

	rules := make(scoring.RuleSet)
	for _, item := range leagueResponse.Settings.ScoringSettings.ScoringItems {
		mapping, ok := scoringStatRules[item.StatID]
		if !ok {
			continue
		}
		rules[mapping.rule] = item.Points * mapping.multiplier
	}

	return rules, nil
}

// GetTeams fetches every fantasy team with its current roster.
func (a *API) GetTeams(week int) ([]models.LeagueTeam, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view":            "mTeam,mRoster",
		"scoringPeriodId": fmt.Sprintf("%d", week),
	}

	if err := a.client.Get(a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}

	teams := make([]models.LeagueTeam, 0, len(leagueResponse.Teams))
	for _, team := range leagueResponse.Teams {
		leagueTeam := models.LeagueTeam{
			ID:           team.ID,
			Name:         team.Name,
			Abbreviation: team.Abbreviation,
		}
		for _, entry := range team.Roster.Entries {
			player := entry.PlayerPoolEntry.Player
			leagueTeam.Roster = append(leagueTeam.Roster, models.RosteredPlayer{
				Name:         player.FullName,
				Position:     positionString(player.DefaultPositionID),
				ProTeam:      proTeamString(player.ProTeamID),
				Slot:         slotName(entry.LineupSlotID),
				InjuryStatus: player.InjuryStatus,
				PercentOwned: player.Ownership.PercentOwned,
			})
		}
		teams = append(teams, leagueTeam)
	}

	return teams, nil
}

// GetRosteredNames returns the set of player names on any fantasy roster,
// used to filter waiver candidates.
func (a *API) GetRosteredNames(week int) (map[string]bool, error) {
	teams, err := a.GetTeams(week)
	if err != nil {
		return nil, err
	}

	rostered := make(map[string]bool)
	for _, team := range teams {
		for _, player := range team.Roster {
			rostered[player.Name] = true
		}
	}
	return rostered, nil
}

// GetFreeAgents fetches unrostered players with their rest-of-season
// projections, most owned first.
func (a *API) GetFreeAgents(limit int) ([]models.ProjectedPlayer, error) {
	var playersResponse models.PlayersResponse
	params := map[string]string{
		"view": "kona_player_info",
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"filterStatus": map[string]interface{}{
				"value": []string{"FREEAGENT", "WAIVERS"},
			},
			"limit": limit,
			"sortPercOwned": map[string]interface{}{
				"sortAsc":      false,
				"sortPriority": 1,
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(a.leagueEndpoint(), params, headers, &playersResponse); err != nil {
		return nil, fmt.Errorf("fetching free agents: %w", err)
	}

	agents := make([]models.ProjectedPlayer, 0, len(playersResponse.Players))
	for _, entry := range playersResponse.Players {
		agents = append(agents, models.ProjectedPlayer{
			Name:            entry.Player.FullName,
			Position:        positionString(entry.Player.DefaultPositionID),
			ProTeam:         proTeamString(entry.Player.ProTeamID),
			ProjectedPoints: projectedSeasonTotal(entry),
		})
	}

	return agents, nil
}

func projectedSeasonTotal(entry models.PlayerPoolEntry) float64 {
	for _, stat := range entry.Player.Stats {
		if stat.StatSourceID == 1 && stat.ScoringPeriodID == 0 {
			return stat.AppliedTotal
		}
	}
	return entry.AppliedStatTotal
}

// GetKickingDefenseStats fetches weekly stat breakdowns for kickers and
// defenses. The public play-by-play data most projections come from lacks
// both, so these rows come straight from ESPN.
func (a *API) GetKickingDefenseStats(firstWeek, lastWeek int) ([]models.PlayerWeek, error) {
	var playersResponse models.PlayersResponse
	params := map[string]string{
		"view": "kona_player_info",
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"filterSlotIds": map[string]interface{}{
				"value": []int{16, 17},
			},
			"limit": 200,
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(a.leagueEndpoint(), params, headers, &playersResponse); err != nil {
		return nil, fmt.Errorf("fetching kicker and defense stats: %w", err)
	}

	var rows []models.PlayerWeek
	for _, entry := range playersResponse.Players {
		position := positionString(entry.Player.DefaultPositionID)
		if position != "K" && position != "DST" {
			continue
		}

		for _, stat := range entry.Player.Stats {
			if stat.StatSourceID != 0 || stat.ScoringPeriodID < firstWeek || stat.ScoringPeriodID > lastWeek {
				continue
			}
			rows = append(rows, statRow(entry, position, stat))
		}
	}

	return rows, nil
}

func statRow(entry models.PlayerPoolEntry, position string, stat models.Stat) models.PlayerWeek {
	raw := func(statID string) float64 { return stat.Stats[statID] }

	return models.PlayerWeek{
		Name:     entry.Player.FullName,
		Position: position,
		ProTeam:  proTeamString(entry.Player.ProTeamID),
		Week:     stat.ScoringPeriodID,
		Kicking: models.KickingStats{
			FGMade50Plus:  raw(statFGMade50Plus),
			FGMade40To49:  raw(statFGMade40To49),
			FGMadeUnder40: raw(statFGMadeUnder40),
			FGMissed:      raw(statFGMissed),
			XPMade:        raw(statXPMade),
			XPMissed:      raw(statXPMissed),
		},
		Defense: models.DefenseStats{
			Sacks:            raw(statDefSacks),
			Interceptions:    raw(statDefInterceptions),
			FumblesRecovered: raw(statDefFumbles),
			BlockedKicks:     raw(statDefBlockedKicks),
			TDs:              raw(statDefTDs),
			ForcedFumbles:    raw(statDefForcedFumbles),
			AssistedTackles:  raw(statDefAssistedTackles),
			SoloTackles:      raw(statDefSoloTackles),
			PassesDefensed:   raw(statDefPassesDefensed),
			PointsAllowed:    raw(statDefPointsAllowed),
			YardsAllowed:     raw(statDefYardsAllowed),
		},
		FantasyPoints: stat.AppliedTotal,
	}
}

type ProTeamInfo struct {
	ID      int    `json:"id"`
	Abbrev  string `json:"abbrev"`
	ByeWeek int    `json:"byeWeek"`
	Name    string `json:"name"`
}

// GetProSchedule returns bye weeks keyed by pro team abbreviation.
func (a *API) GetProSchedule() (map[string]int, error) {
	var scheduleResponse struct {
		Settings struct {
			ProTeams []ProTeamInfo `json:"proTeams"`
		} `json:"settings"`
	}

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}

	if err := a.client.Get(endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	byeWeeks := make(map[string]int)
	for _, team := range scheduleResponse.Settings.ProTeams {
		if team.ByeWeek > 0 {
			byeWeeks[team.Abbrev] = team.ByeWeek
		}
	}

	return byeWeeks, nil
}
