package espn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron/internal/config"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.ESPNAPI{Year: "2025", LeagueID: "12345"})
	client.baseURL = server.URL
	return NewAPI(client)
}

func TestGetLeagueMetadata(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons/2025/segments/0/leagues/12345", r.URL.Path)
		assert.Equal(t, "mSettings", r.URL.Query().Get("view"))

		w.Write([]byte(`{
			"id": 12345,
			"status": {"currentMatchupPeriod": 6, "firstScoringPeriod": 1, "finalScoringPeriod": 17, "isActive": true},
			"settings": {
				"name": "Test League",
				"size": 10,
				"rosterSettings": {"lineupSlotCounts": {"0": 1, "2": 2, "4": 2, "6": 1, "16": 1, "17": 1, "20": 7, "23": 1, "99": 1}}
			}
		}`))
	})

	metadata, err := api.GetLeagueMetadata()
	require.NoError(t, err)

	assert.Equal(t, 12345, metadata.LeagueID)
	assert.Equal(t, "Test League", metadata.Name)
	assert.Equal(t, 10, metadata.Size)
	assert.Equal(t, 6, metadata.CurrentWeek)
	assert.Equal(t, map[string]int{
		"QB": 1, "RB": 2, "WR": 2, "TE": 1, "DST": 1, "K": 1, "BE": 7, "FLEX": 1,
	}, metadata.RosterSlots)
}

func TestGetScoringRules(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"settings": {
				"scoringSettings": {"scoringItems": [
					{"statId": 3, "points": 0.04},
					{"statId": 4, "points": 4},
					{"statId": 53, "points": 0.2},
					{"statId": 999, "points": 2}
				]}
			}
		}`))
	})

	rules, err := api.GetScoringRules()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rules["every_25_passing_yards"], 1e-9)
	assert.Equal(t, 4.0, rules["td_pass"])
	assert.InDelta(t, 1.0, rules["every_5_receptions"], 1e-9)
	assert.NotContains(t, rules, "999")
	assert.Len(t, rules, 3)
}

func TestGetTeams(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"teams": [{
				"id": 1,
				"abbrev": "GRID",
				"name": "Gridiron Gang",
				"roster": {"entries": [
					{"lineupSlotId": 0, "playerPoolEntry": {"player": {"fullName": "Josh Allen", "defaultPositionId": 1, "proTeamId": 2, "injuryStatus": "ACTIVE"}}},
					{"lineupSlotId": 20, "playerPoolEntry": {"player": {"fullName": "Jaylen Waddle", "defaultPositionId": 3, "proTeamId": 15}}}
				]}
			}]
		}`))
	})

	teams, err := api.GetTeams(6)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	team := teams[0]
	assert.Equal(t, "Gridiron Gang", team.Name)
	require.Len(t, team.Roster, 2)
	assert.Equal(t, "Josh Allen", team.Roster[0].Name)
	assert.Equal(t, "QB", team.Roster[0].Position)
	assert.Equal(t, "BUF", team.Roster[0].ProTeam)
	assert.Equal(t, "QB", team.Roster[0].Slot)
	assert.Equal(t, "BE", team.Roster[1].Slot)
}

func TestGetFreeAgentsUsesSeasonProjection(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("x-fantasy-filter"))
		w.Write([]byte(`{
			"players": [{
				"appliedStatTotal": 12.5,
				"player": {
					"fullName": "Roschon Johnson",
					"defaultPositionId": 2,
					"proTeamId": 3,
					"stats": [
						{"statSourceId": 0, "scoringPeriodId": 5, "appliedTotal": 8.1},
						{"statSourceId": 1, "scoringPeriodId": 0, "appliedTotal": 94.3}
					]
				}
			}]
		}`))
	})

	agents, err := api.GetFreeAgents(50)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Roschon Johnson", agents[0].Name)
	assert.Equal(t, "RB", agents[0].Position)
	assert.Equal(t, 94.3, agents[0].ProjectedPoints)
}

func TestGetKickingDefenseStats(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"players": [{
				"player": {
					"fullName": "Ravens D/ST",
					"defaultPositionId": 16,
					"proTeamId": 33,
					"stats": [
						{"statSourceId": 0, "scoringPeriodId": 2, "appliedTotal": 14,
						 "stats": {"99": 4, "95": 2, "120": 10, "127": 255}},
						{"statSourceId": 1, "scoringPeriodId": 2, "appliedTotal": 7,
						 "stats": {"99": 9}},
						{"statSourceId": 0, "scoringPeriodId": 9, "appliedTotal": 3,
						 "stats": {"99": 1}}
					]
				}
			}]
		}`))
	})

	rows, err := api.GetKickingDefenseStats(1, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Ravens D/ST", row.Name)
	assert.Equal(t, "DST", row.Position)
	assert.Equal(t, 2, row.Week)
	assert.Equal(t, 4.0, row.Defense.Sacks)
	assert.Equal(t, 2.0, row.Defense.Interceptions)
	assert.Equal(t, 10.0, row.Defense.PointsAllowed)
	assert.Equal(t, 255.0, row.Defense.YardsAllowed)
	assert.Equal(t, 14.0, row.FantasyPoints)
}

func TestGetProSchedule(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons/2025", r.URL.Path)
		w.Write([]byte(`{
			"settings": {"proTeams": [
				{"id": 2, "abbrev": "BUF", "byeWeek": 12},
				{"id": 12, "abbrev": "KC", "byeWeek": 6},
				{"id": 0, "abbrev": "FA", "byeWeek": 0}
			]}
		}`))
	})

	byeWeeks, err := api.GetProSchedule()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BUF": 12, "KC": 6}, byeWeeks)
}
