package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/tournament"
)

// completedGroupStage builds one four-team group with every match decided.
func completedGroupStage(t *testing.T) (*tournament.Tournament, GroupService) {
	t.Helper()
	engine := engineWithTeams(t, 4)
	groupSvc := NewGroupService(engine, testHub())
	_, err := groupSvc.CreateGroups(context.Background(), 1, 4)
	require.NoError(t, err)

	ms, err := groupSvc.GroupMatches(context.Background(), "A")
	require.NoError(t, err)
	for i := range ms {
		if ms[i].Side1 < ms[i].Side2 {
			ms[i].Score1, ms[i].Score2 = score(3), score(0)
		} else {
			ms[i].Score1, ms[i].Score2 = score(0), score(3)
		}
	}
	_, err = groupSvc.UpdateMatchResults(context.Background(), "A", ms)
	require.NoError(t, err)
	return engine, groupSvc
}

func TestGenerateBracketGates(t *testing.T) {
	engine := engineWithTeams(t, 4)
	svc := NewPlayoffService(engine, testHub())

	_, err := svc.GenerateBracket(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAdvanceCount)

	_, err = svc.GenerateBracket(context.Background(), 2)
	assert.ErrorIs(t, err, ErrGroupStageIncomplete, "no schedule means the group stage is not done")
}

func TestGenerateBracketFromCompleteGroups(t *testing.T) {
	engine, _ := completedGroupStage(t)
	svc := NewPlayoffService(engine, testHub())

	bracket, err := svc.GenerateBracket(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, bracket, 4)
	assert.Equal(t, models.PhaseSemifinal, bracket[0].Phase)
}

func TestUpdateResultsValidation(t *testing.T) {
	engine, _ := completedGroupStage(t)
	svc := NewPlayoffService(engine, testHub())

	_, err := svc.UpdateResults(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoBracket)

	bracket, err := svc.GenerateBracket(context.Background(), 4)
	require.NoError(t, err)

	bad := bracket[0]
	bad.Score1, bad.Score2 = score(-2), score(3)
	_, err = svc.UpdateResults(context.Background(), []models.PlayoffMatch{bad})
	assert.ErrorIs(t, err, ErrNegativeScore)

	level := bracket[0]
	level.Score1, level.Score2 = score(2), score(2)
	_, err = svc.UpdateResults(context.Background(), []models.PlayoffMatch{level})
	assert.ErrorIs(t, err, ErrPlayoffDraw)

	good := bracket[0]
	good.Score1, good.Score2 = score(3), score(1)
	updated, err := svc.UpdateResults(context.Background(), []models.PlayoffMatch{good})
	require.NoError(t, err)
	assert.Equal(t, good.Side1.Team, updated[0].Winner)
}

func TestRankingServiceGates(t *testing.T) {
	engine, _ := completedGroupStage(t)
	hub := testHub()
	playoffSvc := NewPlayoffService(engine, hub)
	rankingSvc := NewRankingService(engine, hub)

	_, err := rankingSvc.GenerateFinalStandings(context.Background())
	assert.ErrorIs(t, err, ErrNoBracket)

	_, err = playoffSvc.GenerateBracket(context.Background(), 4)
	require.NoError(t, err)

	_, err = rankingSvc.GenerateFinalStandings(context.Background())
	assert.ErrorIs(t, err, ErrPlayoffsIncomplete)

	for !playoffSvc.PlayoffsComplete(context.Background()) {
		var batch []models.PlayoffMatch
		for _, m := range playoffSvc.Bracket(context.Background()) {
			if !m.Played() && m.Side1.Team != "" && m.Side2.Team != "" {
				m.Score1, m.Score2 = score(3), score(0)
				batch = append(batch, m)
			}
		}
		require.NotEmpty(t, batch)
		_, err = playoffSvc.UpdateResults(context.Background(), batch)
		require.NoError(t, err)
	}

	standings, err := rankingSvc.GenerateFinalStandings(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 4)
	assert.Equal(t, 1, standings[0].Position)
}
