package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLeague(t *testing.T) {
	content := `
league_settings:
  number_of_teams: 10
roster_settings:
  QB: 1
  RB: 2
  WR: 2
  TE: 1
  K: 1
  DST: 1
  BE: 7
scoring_rules:
  td_pass: 4.0
  every_25_passing_yards: 1.0
  interceptions_thrown: -2.0
draft_position: 7
llm_settings:
  provider: gemini
  model: gemini-1.5-pro
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	league, err := LoadLeague(path)
	require.NoError(t, err)

	assert.Equal(t, 10, league.LeagueSettings.NumberOfTeams)
	assert.Equal(t, 2, league.RosterSettings["RB"])
	assert.Equal(t, 7, league.RosterSettings["BE"])
	assert.InDelta(t, 4.0, league.ScoringRules["td_pass"], 1e-9)
	assert.InDelta(t, -2.0, league.ScoringRules["interceptions_thrown"], 1e-9)
	assert.Equal(t, 7, league.DraftPosition)
	assert.Equal(t, "gemini-1.5-pro", league.LLMSettings.Model)

	// Unset fields fall back to defaults.
	assert.Equal(t, "30 7 * * 2", league.ReportSchedule)
	assert.Equal(t, "data", league.DataDir)
}

func TestLoadLeagueDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	league, err := LoadLeague(path)
	require.NoError(t, err)

	assert.Equal(t, 12, league.LeagueSettings.NumberOfTeams)
	assert.Equal(t, 1, league.DraftPosition)
	assert.Equal(t, "gemini", league.LLMSettings.Provider)
}

func TestLoadLeagueMissingFile(t *testing.T) {
	_, err := LoadLeague(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadLeagueInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roster_settings: [not a map"), 0o644))

	_, err := LoadLeague(path)
	assert.Error(t, err)
}
