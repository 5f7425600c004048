// Package tournament implements the progression engine for a multi-stage
// tournament: registration, round-robin groups, derived standings, a
// single-elimination bracket and the final classification. State lives in
// memory for the duration of one session; persistence and rendering belong to
// the callers.
package tournament

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lucaferrario/tournament-manager/brackets"
	"github.com/lucaferrario/tournament-manager/models"
)

// Tournament holds the full state of one tournament cycle. All methods are
// safe for concurrent use; the engine itself is a single shared session.
type Tournament struct {
	mu      sync.RWMutex
	rules   models.ScoringRules
	rng     *rand.Rand
	pairing brackets.PairingStrategy

	teams          []models.Team
	groups         []models.Group
	matches        map[string][]models.Match
	playoffs       []models.PlayoffMatch
	finalStandings []models.FinalStanding
}

// Option configures a Tournament at construction time.
type Option func(*Tournament)

// WithRand injects the randomness source used for group assignment, so tests
// can fix the seed and get reproducible draws.
func WithRand(r *rand.Rand) Option {
	return func(t *Tournament) { t.rng = r }
}

// WithScoringRules overrides the best-of-5 default point scheme.
func WithScoringRules(rules models.ScoringRules) Option {
	return func(t *Tournament) { t.rules = rules }
}

// WithPairing overrides the opening-round pairing policy.
func WithPairing(p brackets.PairingStrategy) Option {
	return func(t *Tournament) { t.pairing = p }
}

// New returns an empty tournament with default rules, an entropy-seeded
// shuffle source and first-vs-last bracket pairing.
func New(opts ...Option) *Tournament {
	t := &Tournament{
		rules:   models.DefaultScoringRules(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		pairing: brackets.FirstVsLastPairing{},
		matches: make(map[string][]models.Match),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Teams returns a copy of the roster in registration order.
func (t *Tournament) Teams() []models.Team {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.Team(nil), t.teams...)
}

// Groups returns a copy of the current groups in label order.
func (t *Tournament) Groups() []models.Group {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Group, len(t.groups))
	for i, g := range t.groups {
		out[i] = models.Group{Label: g.Label, Teams: append([]string(nil), g.Teams...)}
	}
	return out
}

// GroupMatches returns a copy of the stored schedule for the group, or nil
// when the group does not exist.
func (t *Tournament) GroupMatches(group string) []models.Match {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ms, ok := t.matches[group]
	if !ok {
		return nil
	}
	return append([]models.Match(nil), ms...)
}

// HasGroup reports whether a group with the given label exists.
func (t *Tournament) HasGroup(group string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.groupTeamsLocked(group) != nil
}

// Playoffs returns a copy of the bracket match table.
func (t *Tournament) Playoffs() []models.PlayoffMatch {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.PlayoffMatch(nil), t.playoffs...)
}

// FinalStandings returns a copy of the final classification, or nil if it has
// not been generated yet.
func (t *Tournament) FinalStandings() []models.FinalStanding {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.FinalStanding(nil), t.finalStandings...)
}

func (t *Tournament) groupTeamsLocked(group string) []string {
	for _, g := range t.groups {
		if g.Label == group {
			return g.Teams
		}
	}
	return nil
}

func copyScore(s *int) *int {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
