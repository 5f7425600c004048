package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaferrario/tournament-manager/models"
)

func TestGenerateFinalStandingsRequiresCompleteBracket(t *testing.T) {
	tr := newWithTeams(t, 4)
	tr.CreateGroups(1, 4)
	tr.GenerateMatches()
	playAllGroups(t, tr, lexicographicWinner)
	tr.GeneratePlayoffs(4)

	tr.GenerateFinalStandings()
	assert.Empty(t, tr.FinalStandings(), "undecided playoff matches block the classification")
}

func TestGenerateFinalStandingsFullCycle(t *testing.T) {
	tr := newWithTeams(t, 8)
	tr.CreateGroups(2, 4)
	tr.GenerateMatches()
	playAllGroups(t, tr, lexicographicWinner)
	tr.GeneratePlayoffs(2)
	playAllPlayoffs(t, tr)
	tr.GenerateFinalStandings()

	standings := tr.FinalStandings()
	require.Len(t, standings, 8, "every grouped team gets a position")

	seen := make(map[string]bool)
	for i, s := range standings {
		assert.Equal(t, i+1, s.Position, "positions are contiguous from 1")
		assert.False(t, seen[s.Team], "team %s placed twice", s.Team)
		seen[s.Team] = true
	}

	var final, third models.PlayoffMatch
	for _, m := range tr.Playoffs() {
		switch m.Phase {
		case models.PhaseFinal:
			final = m
		case models.PhaseThirdPlace:
			third = m
		}
	}
	assert.Equal(t, final.Winner, standings[0].Team)
	assert.Equal(t, final.Loser(), standings[1].Team)
	assert.Equal(t, third.Winner, standings[2].Team)
	assert.Equal(t, third.Loser(), standings[3].Team)
}

func TestGenerateFinalStandingsQuarterfinalLosers(t *testing.T) {
	tr := newWithTeams(t, 8)
	tr.CreateGroups(1, 8)
	tr.GenerateMatches()
	playAllGroups(t, tr, lexicographicWinner)
	tr.GeneratePlayoffs(8)

	require.Len(t, tr.Playoffs(), 8, "eight qualifiers open with quarterfinals")
	playAllPlayoffs(t, tr)
	tr.GenerateFinalStandings()

	standings := tr.FinalStandings()
	require.Len(t, standings, 8)

	var qfLosers []string
	for _, m := range tr.Playoffs() {
		if m.Phase == models.PhaseQuarterfinal {
			qfLosers = append(qfLosers, m.Loser())
		}
	}
	require.Len(t, qfLosers, 4)
	for i, loser := range qfLosers {
		assert.Equal(t, loser, standings[4+i].Team, "quarterfinal losers fill positions 5-8 in match order")
	}
}

func TestGenerateFinalStandingsPlacesNonQualifiersByGroupRank(t *testing.T) {
	tr := newWithTeams(t, 8)
	tr.CreateGroups(2, 4)
	tr.GenerateMatches()
	playAllGroups(t, tr, lexicographicWinner)
	tr.GeneratePlayoffs(2)
	playAllPlayoffs(t, tr)
	tr.GenerateFinalStandings()

	standings := tr.FinalStandings()
	require.Len(t, standings, 8)

	var expectedTail []string
	for _, g := range tr.Groups() {
		rows := tr.CalculateGroupStandings(g.Label)
		for _, row := range rows[2:] {
			expectedTail = append(expectedTail, row.Team)
		}
	}
	require.Len(t, expectedTail, 4)
	for i, team := range expectedTail {
		assert.Equal(t, team, standings[4+i].Team, "non-qualifiers follow in group-standings order")
	}
}
