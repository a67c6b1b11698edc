package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// League is the league configuration loaded from league.yaml: scoring
// rules, roster slot counts, and analysis settings that are league policy
// rather than secrets.
type League struct {
	LeagueSettings LeagueSettings     `yaml:"league_settings"`
	RosterSettings map[string]int     `yaml:"roster_settings"`
	ScoringRules   map[string]float64 `yaml:"scoring_rules"`
	DraftPosition  int                `yaml:"draft_position"`
	ReportSchedule string             `yaml:"report_schedule"`
	LLMSettings    LLMSettings        `yaml:"llm_settings"`
	DataDir        string             `yaml:"data_dir"`
}

type LeagueSettings struct {
	NumberOfTeams int `yaml:"number_of_teams"`
}

type LLMSettings struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// LoadLeague reads and validates a league configuration file.
func LoadLeague(path string) (*League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading league config: %w", err)
	}

	var league League
	if err := yaml.Unmarshal(data, &league); err != nil {
		return nil, fmt.Errorf("parsing league config: %w", err)
	}

	league.applyDefaults()
	return &league, nil
}

func (l *League) applyDefaults() {
	if l.LeagueSettings.NumberOfTeams == 0 {
		l.LeagueSettings.NumberOfTeams = 12
	}
	if l.DraftPosition == 0 {
		l.DraftPosition = 1
	}
	if l.ReportSchedule == "" {
		// Tuesday morning, after Monday night games settle.
		l.ReportSchedule = "30 7 * * 2"
	}
	if l.DataDir == "" {
		l.DataDir = "data"
	}
	if l.LLMSettings.Provider == "" {
		l.LLMSettings.Provider = "gemini"
	}
	if l.LLMSettings.Model == "" {
		l.LLMSettings.Model = "gemini-1.5-flash"
	}
}
