package models

// PlayerValue is a player's season aggregate: total fantasy points, value
// over the positional replacement level, and week to week consistency.
type PlayerValue struct {
	Name        string
	Position    string
	ProTeam     string
	TotalPoints float64
	Games       int
	// Consistency is the sample standard deviation of weekly points.
	// Lower is steadier. Zero when only one week of data exists.
	Consistency float64
	VOR         float64
}

// PositionalNeed compares my average VOR at a position against the league
// average. Negative Diff means the position is below league standard.
type PositionalNeed struct {
	Position  string
	MyAvgVOR  float64
	LeagueVOR float64
	Diff      float64
}

// TeamNeedsReport is the positional needs table plus a narrative summary.
type TeamNeedsReport struct {
	Needs     []PositionalNeed
	Narrative string
}

// PickupSuggestion is a free agent recommendation.
type PickupSuggestion struct {
	Name        string
	Position    string
	ProTeam     string
	VOR         float64
	Consistency float64
	TotalPoints float64
}

// TradeCandidate is a player whose current week diverged from their
// established average, flagged as a sell high or buy low target.
type TradeCandidate struct {
	Name          string
	Position      string
	CurrentPoints float64
	AveragePoints float64
	Difference    float64
}

// ByeConflict flags a week in which several of my starters sit out.
type ByeConflict struct {
	Week    int
	Players []string
}

// DraftPick is one recommended selection in a simulated draft.
type DraftPick struct {
	Round    int
	Overall  int
	Name     string
	Position string
	VBD      float64
}
