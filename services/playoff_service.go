package services

import (
	"context"
	"errors"

	"github.com/lucaferrario/tournament-manager/live"
	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/tournament"
)

type PlayoffService interface {
	GenerateBracket(ctx context.Context, teamsAdvancing int) ([]models.PlayoffMatch, error)
	Bracket(ctx context.Context) []models.PlayoffMatch
	UpdateResults(ctx context.Context, updated []models.PlayoffMatch) ([]models.PlayoffMatch, error)
	PlayoffsComplete(ctx context.Context) bool
}

type playoffService struct {
	engine *tournament.Tournament
	hub    *live.Hub
}

func NewPlayoffService(engine *tournament.Tournament, hub *live.Hub) PlayoffService {
	return &playoffService{engine: engine, hub: hub}
}

func (s *playoffService) GenerateBracket(ctx context.Context, teamsAdvancing int) ([]models.PlayoffMatch, error) {
	if teamsAdvancing <= 0 {
		return nil, ErrInvalidAdvanceCount
	}
	if !s.engine.CheckGroupsComplete() {
		return nil, ErrGroupStageIncomplete
	}

	s.engine.GeneratePlayoffs(teamsAdvancing)

	bracket := s.engine.Playoffs()
	s.hub.Broadcast(live.TopicPlayoffs, live.Message{Type: live.EventPlayoffsGenerated, Payload: bracket})
	return bracket, nil
}

func (s *playoffService) Bracket(ctx context.Context) []models.PlayoffMatch {
	return s.engine.Playoffs()
}

func (s *playoffService) UpdateResults(ctx context.Context, updated []models.PlayoffMatch) ([]models.PlayoffMatch, error) {
	if len(s.engine.Playoffs()) == 0 {
		return nil, ErrNoBracket
	}
	for _, m := range updated {
		if (m.Score1 != nil && *m.Score1 < 0) || (m.Score2 != nil && *m.Score2 < 0) {
			return nil, ErrNegativeScore
		}
	}

	if err := s.engine.UpdatePlayoffResults(updated); err != nil {
		if errors.Is(err, tournament.ErrPlayoffDraw) {
			return nil, ErrPlayoffDraw
		}
		return nil, err
	}

	bracket := s.engine.Playoffs()
	s.hub.Broadcast(live.TopicPlayoffs, live.Message{Type: live.EventPlayoffResultsUpdated, Payload: bracket})
	return bracket, nil
}

func (s *playoffService) PlayoffsComplete(ctx context.Context) bool {
	return s.engine.CheckPlayoffsComplete()
}
