package models

// DrawWinner is the winner value of a group match that ended with equal set
// counts. Knockout matches never carry it.
const DrawWinner = "Draw"

// Match is a group-stage fixture. Nil scores mean the match has not been
// played yet. Winner is derived by the engine, never taken from input.
type Match struct {
	Side1  string `json:"side1"`
	Side2  string `json:"side2"`
	Score1 *int   `json:"score1"`
	Score2 *int   `json:"score2"`
	Winner string `json:"winner"`
}

// Played reports whether both set counts have been entered.
func (m Match) Played() bool {
	return m.Score1 != nil && m.Score2 != nil
}
