package models

// ScoringRules configures group-stage point awards. A loss by exactly one set
// where the winner reached WinningSetThreshold sets (a 3-2 in best-of-5) earns
// the loser TiebreakPoints instead of LossPoints.
type ScoringRules struct {
	WinPoints           int `json:"win_points"`
	LossPoints          int `json:"loss_points"`
	TiebreakPoints      int `json:"tiebreak_points"`
	WinningSetThreshold int `json:"winning_set_threshold"`
}

// DefaultScoringRules returns the best-of-5 volleyball defaults.
func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		WinPoints:           3,
		LossPoints:          0,
		TiebreakPoints:      1,
		WinningSetThreshold: 3,
	}
}
