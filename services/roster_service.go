package services

import (
	"context"

	"github.com/lucaferrario/tournament-manager/live"
	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/tournament"
)

type RegisterTeamInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactInfo   string `json:"contact_info"`
	Paid          bool   `json:"paid"`
	Notes         string `json:"notes"`
}

type RosterService interface {
	RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error)
	ListTeams(ctx context.Context) []models.Team
}

type rosterService struct {
	engine *tournament.Tournament
	hub    *live.Hub
}

func NewRosterService(engine *tournament.Tournament, hub *live.Hub) RosterService {
	return &rosterService{engine: engine, hub: hub}
}

func (s *rosterService) RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}

	if !s.engine.AddTeam(input.Name, input.ContactPerson, input.ContactInfo, input.Paid, input.Notes) {
		return nil, ErrTeamNameConflict
	}

	team := models.Team{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		ContactInfo:   input.ContactInfo,
		Paid:          input.Paid,
		Notes:         input.Notes,
	}
	s.hub.Broadcast(live.TopicRoster, live.Message{Type: live.EventRosterUpdated, Payload: team})
	return &team, nil
}

func (s *rosterService) ListTeams(ctx context.Context) []models.Team {
	return s.engine.Teams()
}
