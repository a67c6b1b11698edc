package models

// PlayerWeek is a single player's stat line for one week. Missing stats are
// zero values, which score zero points under any rule set.
type PlayerWeek struct {
	Name     string
	Position string
	ProTeam  string
	Week     int

	Passing   PassingStats
	Rushing   RushingStats
	Receiving ReceivingStats
	Kicking   KickingStats
	Defense   DefenseStats

	SpecialTeamsTDs float64
	TwoPointReturns float64

	FantasyPoints float64
}

type PassingStats struct {
	Yards               float64
	TDs                 float64
	Interceptions       float64
	TwoPointConversions float64
	// TDYards is the length of the longest touchdown pass of the game.
	TDYards     float64
	FumblesLost float64
}

type RushingStats struct {
	Yards               float64
	TDs                 float64
	TwoPointConversions float64
	TDYards             float64
	FumblesLost         float64
}

type ReceivingStats struct {
	Yards               float64
	TDs                 float64
	Receptions          float64
	TwoPointConversions float64
	TDYards             float64
	FumblesLost         float64
}

type KickingStats struct {
	FGMade50Plus  float64
	FGMade40To49  float64
	FGMadeUnder40 float64
	FGMissed      float64
	XPMade        float64
	XPMissed      float64
}

type DefenseStats struct {
	Sacks            float64
	Interceptions    float64
	FumblesRecovered float64
	BlockedKicks     float64
	TDs              float64
	ForcedFumbles    float64
	AssistedTackles  float64
	SoloTackles      float64
	PassesDefensed   float64
	PointsAllowed    float64
	YardsAllowed     float64
}

// ProjectedPlayer is a player's projected season or week total.
type ProjectedPlayer struct {
	Name            string
	Position        string
	ProTeam         string
	ProjectedPoints float64
}

// ADPEntry is one row of an average draft position report.
type ADPEntry struct {
	Name     string
	Position string
	ProTeam  string
	ADP      float64
}
