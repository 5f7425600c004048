package services

import (
	"context"

	"github.com/lucaferrario/tournament-manager/live"
	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/tournament"
)

type GroupService interface {
	// CreateGroups starts a new cycle: assigns teams to groups and generates
	// the full round-robin schedule in one step.
	CreateGroups(ctx context.Context, numGroups, teamsPerGroup int) ([]models.Group, error)
	ListGroups(ctx context.Context) []models.Group
	GroupMatches(ctx context.Context, group string) ([]models.Match, error)
	UpdateMatchResults(ctx context.Context, group string, updated []models.Match) ([]models.Match, error)
	GroupStandings(ctx context.Context, group string) ([]models.StandingRow, error)
	GroupsComplete(ctx context.Context) bool
}

type groupService struct {
	engine *tournament.Tournament
	hub    *live.Hub
}

func NewGroupService(engine *tournament.Tournament, hub *live.Hub) GroupService {
	return &groupService{engine: engine, hub: hub}
}

func (s *groupService) CreateGroups(ctx context.Context, numGroups, teamsPerGroup int) ([]models.Group, error) {
	if numGroups <= 0 || teamsPerGroup <= 0 {
		return nil, ErrInvalidGroupLayout
	}

	s.engine.CreateGroups(numGroups, teamsPerGroup)
	s.engine.GenerateMatches()

	groups := s.engine.Groups()
	s.hub.Broadcast(live.TopicGroups, live.Message{Type: live.EventGroupsCreated, Payload: groups})
	return groups, nil
}

func (s *groupService) ListGroups(ctx context.Context) []models.Group {
	return s.engine.Groups()
}

func (s *groupService) GroupMatches(ctx context.Context, group string) ([]models.Match, error) {
	if !s.engine.HasGroup(group) {
		return nil, ErrGroupNotFound
	}
	return s.engine.GroupMatches(group), nil
}

func (s *groupService) UpdateMatchResults(ctx context.Context, group string, updated []models.Match) ([]models.Match, error) {
	stored := s.engine.GroupMatches(group)
	if stored == nil {
		return nil, ErrGroupNotFound
	}
	if err := validateScheduleShape(stored, updated); err != nil {
		return nil, err
	}

	s.engine.UpdateMatchResults(group, updated)

	matches := s.engine.GroupMatches(group)
	s.hub.Broadcast(live.TopicGroups, live.Message{
		Type: live.EventGroupResultsUpdated,
		Payload: map[string]interface{}{
			"group":     group,
			"matches":   matches,
			"standings": s.engine.CalculateGroupStandings(group),
		},
	})
	return matches, nil
}

// validateScheduleShape guards the input boundary: callers must send back the
// same fixtures the engine emitted, with only the scores edited.
func validateScheduleShape(stored, updated []models.Match) error {
	if len(stored) != len(updated) {
		return ErrScheduleMismatch
	}
	for i, u := range updated {
		if u.Side1 != stored[i].Side1 || u.Side2 != stored[i].Side2 {
			return ErrScheduleMismatch
		}
		if (u.Score1 != nil && *u.Score1 < 0) || (u.Score2 != nil && *u.Score2 < 0) {
			return ErrNegativeScore
		}
	}
	return nil
}

func (s *groupService) GroupStandings(ctx context.Context, group string) ([]models.StandingRow, error) {
	if !s.engine.HasGroup(group) {
		return nil, ErrGroupNotFound
	}
	return s.engine.CalculateGroupStandings(group), nil
}

func (s *groupService) GroupsComplete(ctx context.Context) bool {
	return s.engine.CheckGroupsComplete()
}
