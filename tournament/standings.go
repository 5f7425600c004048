package tournament

import (
	"sort"

	"github.com/lucaferrario/tournament-manager/models"
)

// UpdateMatchResults replaces the stored schedule for the group with the
// supplied one and re-derives every match winner from its scores. Updates for
// unknown groups are ignored.
func (t *Tournament) UpdateMatchResults(group string, updated []models.Match) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.matches[group]; !ok {
		return
	}

	ms := make([]models.Match, len(updated))
	for i, m := range updated {
		m.Score1 = copyScore(m.Score1)
		m.Score2 = copyScore(m.Score2)
		m.Winner = groupWinner(m)
		ms[i] = m
	}
	t.matches[group] = ms
}

func groupWinner(m models.Match) string {
	if !m.Played() {
		return ""
	}
	switch {
	case *m.Score1 > *m.Score2:
		return m.Side1
	case *m.Score2 > *m.Score1:
		return m.Side2
	}
	return models.DrawWinner
}

// CalculateGroupStandings recomputes the group table from its completed
// matches. The result is ranked by points, then set difference, then sets
// won, all descending; rows tied on all three keys keep team-list order.
// Unknown groups yield an empty result.
func (t *Tournament) CalculateGroupStandings(group string) []models.StandingRow {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.standingsLocked(group)
}

func (t *Tournament) standingsLocked(group string) []models.StandingRow {
	teams := t.groupTeamsLocked(group)
	ms, ok := t.matches[group]
	if teams == nil || !ok {
		return nil
	}

	rows := make([]models.StandingRow, len(teams))
	index := make(map[string]int, len(teams))
	for i, name := range teams {
		rows[i] = models.StandingRow{Team: name}
		index[name] = i
	}

	for _, m := range ms {
		if !m.Played() {
			continue
		}
		i1, ok1 := index[m.Side1]
		i2, ok2 := index[m.Side2]
		if !ok1 || !ok2 {
			continue
		}
		s1, s2 := *m.Score1, *m.Score2

		rows[i1].Played++
		rows[i1].SetsWon += s1
		rows[i1].SetsLost += s2
		rows[i2].Played++
		rows[i2].SetsWon += s2
		rows[i2].SetsLost += s1

		switch {
		case s1 > s2:
			t.awardPoints(&rows[i1], &rows[i2], s1, s2)
		case s2 > s1:
			t.awardPoints(&rows[i2], &rows[i1], s2, s1)
		}
		// Draws accrue sets only.
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].SetDifference() != rows[j].SetDifference() {
			return rows[i].SetDifference() > rows[j].SetDifference()
		}
		return rows[i].SetsWon > rows[j].SetsWon
	})
	return rows
}

func (t *Tournament) awardPoints(winner, loser *models.StandingRow, winnerSets, loserSets int) {
	winner.Wins++
	loser.Losses++
	winner.Points += t.rules.WinPoints
	if loserSets == winnerSets-1 && winnerSets == t.rules.WinningSetThreshold {
		loser.Points += t.rules.TiebreakPoints
	} else {
		loser.Points += t.rules.LossPoints
	}
}

// CheckGroupsComplete reports whether every match in every group has both
// scores entered. It is false while no schedule exists at all.
func (t *Tournament) CheckGroupsComplete() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.matches) == 0 {
		return false
	}
	for _, ms := range t.matches {
		for _, m := range ms {
			if !m.Played() {
				return false
			}
		}
	}
	return true
}
