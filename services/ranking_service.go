package services

import (
	"context"

	"github.com/lucaferrario/tournament-manager/live"
	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/tournament"
)

type RankingService interface {
	GenerateFinalStandings(ctx context.Context) ([]models.FinalStanding, error)
	FinalStandings(ctx context.Context) []models.FinalStanding
}

type rankingService struct {
	engine *tournament.Tournament
	hub    *live.Hub
}

func NewRankingService(engine *tournament.Tournament, hub *live.Hub) RankingService {
	return &rankingService{engine: engine, hub: hub}
}

func (s *rankingService) GenerateFinalStandings(ctx context.Context) ([]models.FinalStanding, error) {
	if len(s.engine.Playoffs()) == 0 {
		return nil, ErrNoBracket
	}
	if !s.engine.CheckPlayoffsComplete() {
		return nil, ErrPlayoffsIncomplete
	}

	s.engine.GenerateFinalStandings()

	standings := s.engine.FinalStandings()
	s.hub.Broadcast(live.TopicStandings, live.Message{Type: live.EventFinalStandingsUpdated, Payload: standings})
	return standings, nil
}

func (s *rankingService) FinalStandings(ctx context.Context) []models.FinalStanding {
	return s.engine.FinalStandings()
}
