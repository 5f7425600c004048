package tournament

import "github.com/lucaferrario/tournament-manager/models"

// AddTeam registers a team and reports whether it was added. A duplicate name
// leaves the roster unchanged and returns false. No other validation happens
// here; the calling boundary decides what names it accepts.
func (t *Tournament) AddTeam(name, contactPerson, contactInfo string, paid bool, notes string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, team := range t.teams {
		if team.Name == name {
			return false
		}
	}

	t.teams = append(t.teams, models.Team{
		Name:          name,
		ContactPerson: contactPerson,
		ContactInfo:   contactInfo,
		Paid:          paid,
		Notes:         notes,
	})
	return true
}
