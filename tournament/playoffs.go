package tournament

import (
	"errors"

	"github.com/lucaferrario/tournament-manager/brackets"
	"github.com/lucaferrario/tournament-manager/models"
)

// ErrPlayoffDraw rejects a playoff result with equal set counts. Knockout
// matches must end decisively; the submitted batch is discarded whole.
var ErrPlayoffDraw = errors.New("playoff matches cannot end level")

// GeneratePlayoffs qualifies the top teamsAdvancing teams of every group, in
// group-label order and each group's standings order, and rebuilds the bracket
// from that flattened list. Any previous bracket and final standings are
// discarded. Fewer than two qualifiers produce no bracket.
func (t *Tournament) GeneratePlayoffs(teamsAdvancing int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var qualified []string
	for _, g := range t.groups {
		rows := t.standingsLocked(g.Label)
		for i := 0; i < teamsAdvancing && i < len(rows); i++ {
			qualified = append(qualified, rows[i].Team)
		}
	}

	t.playoffs = brackets.Build(qualified, t.pairing)
	t.finalStandings = nil
}

// UpdatePlayoffResults copies the submitted scores into the stored bracket,
// matched by bracket number, then re-runs winner derivation and slot
// propagation over the whole bracket. A level score anywhere in the batch
// returns ErrPlayoffDraw and leaves the bracket untouched.
func (t *Tournament) UpdatePlayoffResults(updated []models.PlayoffMatch) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range updated {
		if u.Played() && *u.Score1 == *u.Score2 {
			return ErrPlayoffDraw
		}
	}

	for i := range t.playoffs {
		for _, u := range updated {
			if u.Number == t.playoffs[i].Number {
				t.playoffs[i].Score1 = copyScore(u.Score1)
				t.playoffs[i].Score2 = copyScore(u.Score2)
			}
		}
	}

	brackets.Propagate(t.playoffs)
	return nil
}

// CheckPlayoffsComplete reports whether a bracket exists and every match in it
// has both scores entered.
func (t *Tournament) CheckPlayoffsComplete() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.playoffsCompleteLocked()
}

func (t *Tournament) playoffsCompleteLocked() bool {
	if len(t.playoffs) == 0 {
		return false
	}
	for _, m := range t.playoffs {
		if !m.Played() {
			return false
		}
	}
	return true
}
