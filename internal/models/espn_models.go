package models

// Wire types for the ESPN fantasy v3 API. Field names follow the JSON the
// web client receives.

type LeagueResponse struct {
	ID              int      `json:"id"`
	ScoringPeriodID int      `json:"scoringPeriodId"`
	SeasonID        int      `json:"seasonId"`
	SegmentID       int      `json:"segmentId"`
	Status          Status   `json:"status"`
	Teams           []Team   `json:"teams"`
	Settings        Settings `json:"settings"`
}

type Settings struct {
	Name            string          `json:"name"`
	Size            int             `json:"size"`
	RosterSettings  RosterSettings  `json:"rosterSettings"`
	ScoringSettings ScoringSettings `json:"scoringSettings"`
}

// RosterSettings carries lineup slot counts keyed by slot ID string.
type RosterSettings struct {
	LineupSlotCounts map[string]int `json:"lineupSlotCounts"`
}

type ScoringSettings struct {
	ScoringItems []ScoringItem `json:"scoringItems"`
}

type ScoringItem struct {
	StatID int     `json:"statId"`
	Points float64 `json:"points"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbrev"`
	Name         string `json:"name"`
	Roster       Roster `json:"roster"`
}

type Roster struct {
	Entries []LineupEntry `json:"entries"`
}

type LineupEntry struct {
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
	LineupSlotID    int             `json:"lineupSlotId"`
}

type PlayersResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID               int     `json:"id"`
	OnTeamID         int     `json:"onTeamId"`
	Player           Player  `json:"player"`
	AppliedStatTotal float64 `json:"appliedStatTotal"`
}

type Player struct {
	ID                int       `json:"id"`
	FullName          string    `json:"fullName"`
	DefaultPositionID int       `json:"defaultPositionId"`
	ProTeamID         int       `json:"proTeamId"`
	Ownership         Ownership `json:"ownership"`
	Stats             []Stat    `json:"stats"`
	InjuryStatus      string    `json:"injuryStatus"`
}

type Ownership struct {
	PercentOwned float64 `json:"percentOwned"`
}

type Stat struct {
	StatSourceID    int                `json:"statSourceId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	Stats           map[string]float64 `json:"stats"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}
