package tournament

import "github.com/lucaferrario/tournament-manager/models"

// CreateGroups starts a new bracket cycle: all groups, schedules, playoff and
// final-standings state is wiped. The roster is shuffled and sliced into
// numGroups consecutive chunks of teamsPerGroup, labeled A, B, C, ... Teams
// beyond numGroups*teamsPerGroup are left out of the cycle; that is capacity
// truncation, not an error.
func (t *Tournament) CreateGroups(numGroups, teamsPerGroup int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.groups = nil
	t.matches = make(map[string][]models.Match)
	t.playoffs = nil
	t.finalStandings = nil

	names := make([]string, len(t.teams))
	for i, team := range t.teams {
		names[i] = team.Name
	}
	t.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	for g := 0; g < numGroups; g++ {
		start := g * teamsPerGroup
		if start >= len(names) {
			break
		}
		end := start + teamsPerGroup
		if end > len(names) {
			end = len(names)
		}
		t.groups = append(t.groups, models.Group{
			Label: string(rune('A' + g)),
			Teams: append([]string(nil), names[start:end]...),
		})
	}
}

// GenerateMatches builds the complete round-robin schedule for every group:
// one match per unordered pair, in team-list order, all scores unset.
func (t *Tournament) GenerateMatches() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.matches = make(map[string][]models.Match)
	for _, g := range t.groups {
		var ms []models.Match
		for i := 0; i < len(g.Teams); i++ {
			for j := i + 1; j < len(g.Teams); j++ {
				ms = append(ms, models.Match{Side1: g.Teams[i], Side2: g.Teams[j]})
			}
		}
		t.matches[g.Label] = ms
	}
}
