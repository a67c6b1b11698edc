package models

import "time"

// LeagueMetadata is the league level state pulled from ESPN, cached between
// report runs.
type LeagueMetadata struct {
	LeagueID    int
	Name        string
	Size        int
	CurrentWeek int
	FirstWeek   int
	FinalWeek   int
	IsActive    bool
	RosterSlots map[string]int
	LastUpdated time.Time
}

// LeagueTeam is one fantasy team and its current roster.
type LeagueTeam struct {
	ID           int
	Name         string
	Abbreviation string
	Roster       []RosteredPlayer
}

type RosteredPlayer struct {
	Name         string
	Position     string
	ProTeam      string
	Slot         string
	InjuryStatus string
	PercentOwned float64
}
