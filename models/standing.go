package models

// StandingRow is the per-team aggregate over a group's completed matches.
// It is a computed view: the engine rebuilds it on every query.
type StandingRow struct {
	Team     string `json:"team"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	SetsWon  int    `json:"sets_won"`
	SetsLost int    `json:"sets_lost"`
	Points   int    `json:"points"`
}

// SetDifference is the second ranking key after points.
func (r StandingRow) SetDifference() int {
	return r.SetsWon - r.SetsLost
}

// FinalStanding is one row of the overall tournament classification.
type FinalStanding struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
}
