package tournament

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaferrario/tournament-manager/models"
)

func score(v int) *int { return &v }

// lexicographicWinner gives Side1 a 3:0 win when its name sorts first,
// otherwise Side2. Deterministic regardless of how the draw shuffled.
func lexicographicWinner(m models.Match) (int, int) {
	if m.Side1 < m.Side2 {
		return 3, 0
	}
	return 0, 3
}

func playAllGroups(t *testing.T, tr *Tournament, result func(models.Match) (int, int)) {
	t.Helper()
	for _, g := range tr.Groups() {
		ms := tr.GroupMatches(g.Label)
		for i := range ms {
			s1, s2 := result(ms[i])
			ms[i].Score1 = score(s1)
			ms[i].Score2 = score(s2)
		}
		tr.UpdateMatchResults(g.Label, ms)
	}
	require.True(t, tr.CheckGroupsComplete())
}

// playAllPlayoffs decides every remaining bracket match, Side1 winning 3:1,
// round by round so propagation fills later slots before they are scored.
func playAllPlayoffs(t *testing.T, tr *Tournament) {
	t.Helper()
	for range tr.Playoffs() {
		if tr.CheckPlayoffsComplete() {
			break
		}
		ms := tr.Playoffs()
		var batch []models.PlayoffMatch
		for _, m := range ms {
			if !m.Played() && m.Side1.Team != "" && m.Side2.Team != "" {
				m.Score1 = score(3)
				m.Score2 = score(1)
				batch = append(batch, m)
			}
		}
		require.NotEmpty(t, batch, "no playable matches left but bracket incomplete")
		require.NoError(t, tr.UpdatePlayoffResults(batch))
	}
	require.True(t, tr.CheckPlayoffsComplete())
}
