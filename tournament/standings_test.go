package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaferrario/tournament-manager/models"
)

func twoTeamGroup(t *testing.T) (*Tournament, models.Match) {
	t.Helper()
	tr := newWithTeams(t, 2)
	tr.CreateGroups(1, 2)
	tr.GenerateMatches()
	ms := tr.GroupMatches("A")
	require.Len(t, ms, 1)
	return tr, ms[0]
}

func TestStandingsCleanWin(t *testing.T) {
	tr, m := twoTeamGroup(t)
	m.Score1 = score(3)
	m.Score2 = score(0)
	tr.UpdateMatchResults("A", []models.Match{m})

	rows := tr.CalculateGroupStandings("A")
	require.Len(t, rows, 2)
	assert.Equal(t, m.Side1, rows[0].Team)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 3, rows[0].SetDifference())
	assert.Equal(t, 0, rows[1].Points, "a 3:0 loss earns nothing")
	assert.Equal(t, 1, rows[1].Losses)
}

func TestStandingsTiebreakLossBonus(t *testing.T) {
	tr, m := twoTeamGroup(t)
	m.Score1 = score(2)
	m.Score2 = score(3)
	tr.UpdateMatchResults("A", []models.Match{m})

	rows := tr.CalculateGroupStandings("A")
	require.Len(t, rows, 2)
	assert.Equal(t, m.Side2, rows[0].Team)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[1].Points, "losing a full-distance match earns the bonus point")
	assert.Equal(t, -1, rows[1].SetDifference())
}

func TestStandingsNoBonusBelowThreshold(t *testing.T) {
	// 2:1 is a win by one set but not at the deciding-set threshold.
	tr, m := twoTeamGroup(t)
	m.Score1 = score(2)
	m.Score2 = score(1)
	tr.UpdateMatchResults("A", []models.Match{m})

	rows := tr.CalculateGroupStandings("A")
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 0, rows[1].Points)
}

func TestStandingsDrawAccruesSetsOnly(t *testing.T) {
	tr, m := twoTeamGroup(t)
	m.Score1 = score(2)
	m.Score2 = score(2)
	tr.UpdateMatchResults("A", []models.Match{m})

	stored := tr.GroupMatches("A")
	assert.Equal(t, models.DrawWinner, stored[0].Winner)

	rows := tr.CalculateGroupStandings("A")
	for _, row := range rows {
		assert.Equal(t, 0, row.Points)
		assert.Equal(t, 0, row.Wins)
		assert.Equal(t, 0, row.Losses)
		assert.Equal(t, 1, row.Played)
		assert.Equal(t, 2, row.SetsWon)
	}
}

func TestStandingsOrderedByPointsThenSetDifference(t *testing.T) {
	tr := newWithTeams(t, 3)
	tr.CreateGroups(1, 3)
	tr.GenerateMatches()

	teams := tr.Groups()[0].Teams
	ms := tr.GroupMatches("A")
	set := func(side1, side2 string, s1, s2 int) {
		for i := range ms {
			if ms[i].Side1 == side1 && ms[i].Side2 == side2 {
				ms[i].Score1, ms[i].Score2 = score(s1), score(s2)
				return
			}
			if ms[i].Side1 == side2 && ms[i].Side2 == side1 {
				ms[i].Score1, ms[i].Score2 = score(s2), score(s1)
				return
			}
		}
		t.Fatalf("no scheduled match between %s and %s", side1, side2)
	}

	// One win each, but teams[0] takes its loss to a fifth set.
	set(teams[0], teams[1], 3, 0)
	set(teams[1], teams[2], 3, 0)
	set(teams[2], teams[0], 3, 2)
	tr.UpdateMatchResults("A", ms)

	rows := tr.CalculateGroupStandings("A")
	require.Len(t, rows, 3)
	assert.Equal(t, teams[0], rows[0].Team, "tiebreak point puts it ahead at one win apiece")
	assert.Equal(t, 4, rows[0].Points)
	assert.Equal(t, teams[1], rows[1].Team, "set difference splits the remaining tie")
	assert.Equal(t, 3, rows[1].Points)
	assert.Equal(t, 0, rows[1].SetDifference())
	assert.Equal(t, teams[2], rows[2].Team)
	assert.Equal(t, 3, rows[2].Points)
	assert.Equal(t, -2, rows[2].SetDifference())
}

func TestStandingsFullTieKeepsTeamListOrder(t *testing.T) {
	tr := newWithTeams(t, 3)
	tr.CreateGroups(1, 3)
	tr.GenerateMatches()

	teams := tr.Groups()[0].Teams
	ms := tr.GroupMatches("A")
	require.Len(t, ms, 3)
	// A perfect cycle of 3:0 wins leaves all three keys equal.
	ms[0].Score1, ms[0].Score2 = score(3), score(0) // teams[0] beats teams[1]
	ms[1].Score1, ms[1].Score2 = score(0), score(3) // teams[2] beats teams[0]
	ms[2].Score1, ms[2].Score2 = score(3), score(0) // teams[1] beats teams[2]
	tr.UpdateMatchResults("A", ms)

	rows := tr.CalculateGroupStandings("A")
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, teams[i], row.Team)
	}
}

func TestUpdateMatchResultsIgnoresUnknownGroup(t *testing.T) {
	tr := newWithTeams(t, 2)
	tr.CreateGroups(1, 2)
	tr.GenerateMatches()

	tr.UpdateMatchResults("Z", []models.Match{{Side1: "X", Side2: "Y", Score1: score(3), Score2: score(0)}})

	assert.Nil(t, tr.GroupMatches("Z"))
	assert.Nil(t, tr.CalculateGroupStandings("Z"))
}

func TestCheckGroupsComplete(t *testing.T) {
	tr := newWithTeams(t, 4)
	assert.False(t, tr.CheckGroupsComplete(), "no schedule means not complete")

	tr.CreateGroups(2, 2)
	tr.GenerateMatches()
	assert.False(t, tr.CheckGroupsComplete())

	playAllGroups(t, tr, lexicographicWinner)
	assert.True(t, tr.CheckGroupsComplete())
}
