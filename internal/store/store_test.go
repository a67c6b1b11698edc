package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron/internal/models"
)

func TestPlayerStatsRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	players := []models.PlayerWeek{
		{
			Name:     "Patrick Mahomes",
			Position: "QB",
			ProTeam:  "KC",
			Week:     3,
			Passing:  models.PassingStats{Yards: 291, TDs: 2, Interceptions: 1, TDYards: 44},
			Rushing:  models.RushingStats{Yards: 21},
		},
		{
			Name:     "Harrison Butker",
			Position: "K",
			ProTeam:  "KC",
			Week:     3,
			Kicking:  models.KickingStats{FGMade50Plus: 1, FGMadeUnder40: 2, XPMade: 3},
		},
	}

	require.NoError(t, s.SavePlayerStats(players))

	loaded, err := s.LoadPlayerStats()
	require.NoError(t, err)
	assert.Equal(t, players, loaded)
}

func TestLoadPlayerStatsToleratesSparseColumns(t *testing.T) {
	dir := t.TempDir()
	csv := "player_display_name,position,week,receiving_yards,receptions\n" +
		"CeeDee Lamb,WR,1,112,9\n" +
		"CeeDee Lamb,WR,2,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player_stats.csv"), []byte(csv), 0o644))

	loaded, err := New(dir).LoadPlayerStats()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, 112.0, loaded[0].Receiving.Yards)
	assert.Equal(t, 9.0, loaded[0].Receiving.Receptions)
	assert.Zero(t, loaded[1].Receiving.Yards)
	assert.Zero(t, loaded[0].Passing.Yards)
}

func TestLoadPlayerStatsMissingFile(t *testing.T) {
	_, err := New(t.TempDir()).LoadPlayerStats()
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestProjectionsRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	projected := []models.ProjectedPlayer{
		{Name: "Bijan Robinson", Position: "RB", ProTeam: "ATL", ProjectedPoints: 280.5},
		{Name: "Ja'Marr Chase", Position: "WR", ProTeam: "CIN", ProjectedPoints: 310},
	}

	require.NoError(t, s.SaveProjections(projected))

	loaded, err := s.LoadProjections()
	require.NoError(t, err)
	assert.Equal(t, projected, loaded)
}

func TestADPRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	entries := []models.ADPEntry{
		{Name: "Ja'Marr Chase", Position: "WR", ProTeam: "CIN", ADP: 1.2},
		{Name: "Bijan Robinson", Position: "RB", ProTeam: "ATL", ADP: 2.8},
	}

	require.NoError(t, s.SaveADP(entries))

	loaded, err := s.LoadADP()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	md := `# My Team

Some intro text.

| Player | Position | Slot |
| --- | --- | --- |
| Josh Allen | QB | QB |
| Derrick Henry | RB | RB |
| Travis Kelce | TE | BE |
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "my_team.md"), []byte(md), 0o644))

	entries, err := New(dir).LoadRoster()
	require.NoError(t, err)
	assert.Equal(t, []RosterEntry{
		{Name: "Josh Allen", Position: "QB"},
		{Name: "Derrick Henry", Position: "RB"},
		{Name: "Travis Kelce", Position: "TE"},
	}, entries)
}

func TestRosterRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	entries := []RosterEntry{
		{Name: "Josh Allen", Position: "QB"},
		{Name: "Amon-Ra St. Brown", Position: "WR"},
	}

	require.NoError(t, s.SaveRoster(entries))

	loaded, err := s.LoadRoster()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := New(t.TempDir()).LoadRoster()
	assert.True(t, errors.Is(err, ErrNoData))
}
