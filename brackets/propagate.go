package brackets

import "github.com/lucaferrario/tournament-manager/models"

// Propagate re-derives every winner and re-resolves every referenced slot in a
// single forward pass. Matches must be ordered so that a match appears after
// the matches its slots reference, which Build guarantees.
//
// Because resolution is recomputed from the slot graph on every call, editing
// an earlier round re-fills dependent slots with the new outcome, and a slot
// whose feeder became undecided reverts to its placeholder label.
func Propagate(matches []models.PlayoffMatch) {
	byNumber := make(map[int]*models.PlayoffMatch, len(matches))
	for i := range matches {
		byNumber[matches[i].Number] = &matches[i]
	}

	for i := range matches {
		m := &matches[i]
		resolveSlot(&m.Side1, byNumber)
		resolveSlot(&m.Side2, byNumber)
		m.Winner = deriveWinner(m)
	}
}

func resolveSlot(s *models.Slot, byNumber map[int]*models.PlayoffMatch) {
	if s.Source == nil {
		return
	}
	src, ok := byNumber[s.Source.Match]
	if !ok || src.Winner == "" {
		s.Team = ""
		return
	}
	if s.Source.Take == models.TakeWinner {
		s.Team = src.Winner
	} else {
		s.Team = src.Loser()
	}
}

// deriveWinner resolves a match with both scores present by strict comparison.
// Equal scores leave the winner empty; the service layer rejects those before
// they reach the bracket.
func deriveWinner(m *models.PlayoffMatch) string {
	if !m.Played() {
		return ""
	}
	switch {
	case *m.Score1 > *m.Score2:
		return m.Side1.Team
	case *m.Score2 > *m.Score1:
		return m.Side2.Team
	}
	return ""
}
