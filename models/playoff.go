package models

// Phase tags a playoff match with its round.
type Phase string

const (
	PhaseQuarterfinal Phase = "Quarterfinal"
	PhaseSemifinal    Phase = "Semifinal"
	PhaseFinal        Phase = "Final"
	PhaseThirdPlace   Phase = "Third Place"
)

// Outcome selects which side of a finished match a slot reference takes.
type Outcome string

const (
	TakeWinner Outcome = "winner"
	TakeLoser  Outcome = "loser"
)

// SlotRef points a bracket slot at the outcome of an earlier match.
type SlotRef struct {
	Match int     `json:"match"`
	Take  Outcome `json:"take"`
}

// Slot is one side of a playoff match. Initial-round slots hold a team name
// directly. Later-round slots carry a Source reference and an empty Team until
// propagation resolves them; Label is the human-readable placeholder
// ("Semifinal 1 Winner") shown while the slot is unresolved.
type Slot struct {
	Team   string   `json:"team"`
	Label  string   `json:"label,omitempty"`
	Source *SlotRef `json:"source,omitempty"`
}

// DisplayName returns the resolved team name, or the placeholder label while
// the source match is still undecided.
func (s Slot) DisplayName() string {
	if s.Team != "" {
		return s.Team
	}
	return s.Label
}

// PlayoffMatch is one bracket fixture. Number is unique across the bracket and
// is what SlotRefs point at.
type PlayoffMatch struct {
	Number int    `json:"number"`
	Phase  Phase  `json:"phase"`
	Side1  Slot   `json:"side1"`
	Side2  Slot   `json:"side2"`
	Score1 *int   `json:"score1"`
	Score2 *int   `json:"score2"`
	Winner string `json:"winner"`
}

// Played reports whether both set counts have been entered.
func (m PlayoffMatch) Played() bool {
	return m.Score1 != nil && m.Score2 != nil
}

// Loser returns the losing side of a decided match, or "" while undecided.
func (m PlayoffMatch) Loser() string {
	switch m.Winner {
	case "":
		return ""
	case m.Side2.Team:
		return m.Side1.Team
	default:
		return m.Side2.Team
	}
}
