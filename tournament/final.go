package tournament

import "github.com/lucaferrario/tournament-manager/models"

// GenerateFinalStandings assembles the total ordering of all grouped teams.
// It is a no-op unless a bracket exists and every playoff match is decided.
//
// Positions 1 and 2 come from the final, 3 and 4 from the third-place match
// when present, then the quarterfinal losers in quarterfinal order. Every
// remaining team follows in group-standings order, group by group in label
// order, skipping teams already placed.
func (t *Tournament) GenerateFinalStandings() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.playoffsCompleteLocked() {
		return
	}

	var standings []models.FinalStanding
	placed := make(map[string]bool)
	place := func(team string) {
		standings = append(standings, models.FinalStanding{
			Position: len(standings) + 1,
			Team:     team,
		})
		placed[team] = true
	}

	for _, m := range t.phaseMatchesLocked(models.PhaseFinal) {
		place(m.Winner)
		place(m.Loser())
	}
	for _, m := range t.phaseMatchesLocked(models.PhaseThirdPlace) {
		place(m.Winner)
		place(m.Loser())
	}
	for _, m := range t.phaseMatchesLocked(models.PhaseQuarterfinal) {
		place(m.Loser())
	}

	for _, g := range t.groups {
		for _, row := range t.standingsLocked(g.Label) {
			if !placed[row.Team] {
				place(row.Team)
			}
		}
	}

	t.finalStandings = standings
}

func (t *Tournament) phaseMatchesLocked(phase models.Phase) []models.PlayoffMatch {
	var out []models.PlayoffMatch
	for _, m := range t.playoffs {
		if m.Phase == phase {
			out = append(out, m)
		}
	}
	return out
}
