package brackets

import (
	"fmt"

	"github.com/lucaferrario/tournament-manager/models"
)

// Build derives the knockout bracket from the qualified-team list. The shape
// depends only on the count:
//
//	>= 8 teams: 4 quarterfinals, 2 semifinals, final, third-place match
//	4-7 teams:  2 semifinals, final, third-place match
//	2-3 teams:  a single final between the first two qualifiers
//	< 2 teams:  no bracket
//
// Later rounds are wired to their feeder matches through SlotRefs; the
// placeholder labels ("Quarterfinal 1 Winner") are display-only.
func Build(qualified []string, pairing PairingStrategy) []models.PlayoffMatch {
	n := len(qualified)
	switch {
	case n >= 8:
		return buildWithQuarterfinals(qualified, pairing)
	case n >= 4:
		return buildFromSemifinals(qualified, pairing)
	case n >= 2:
		return []models.PlayoffMatch{{
			Number: 1,
			Phase:  models.PhaseFinal,
			Side1:  models.Slot{Team: qualified[0]},
			Side2:  models.Slot{Team: qualified[1]},
		}}
	default:
		return nil
	}
}

func buildWithQuarterfinals(qualified []string, pairing PairingStrategy) []models.PlayoffMatch {
	matches := make([]models.PlayoffMatch, 0, 8)
	for i, pair := range pairing.Pair(qualified, 4) {
		matches = append(matches, models.PlayoffMatch{
			Number: i + 1,
			Phase:  models.PhaseQuarterfinal,
			Side1:  models.Slot{Team: pair[0]},
			Side2:  models.Slot{Team: pair[1]},
		})
	}

	// Semifinal 1 takes the winners of QF1/QF2, semifinal 2 of QF3/QF4.
	matches = append(matches,
		models.PlayoffMatch{
			Number: 5,
			Phase:  models.PhaseSemifinal,
			Side1:  refSlot(models.PhaseQuarterfinal, 1, 1, models.TakeWinner),
			Side2:  refSlot(models.PhaseQuarterfinal, 2, 2, models.TakeWinner),
		},
		models.PlayoffMatch{
			Number: 6,
			Phase:  models.PhaseSemifinal,
			Side1:  refSlot(models.PhaseQuarterfinal, 3, 3, models.TakeWinner),
			Side2:  refSlot(models.PhaseQuarterfinal, 4, 4, models.TakeWinner),
		},
	)

	matches = append(matches, finalAndThirdPlace(7, 5, 6)...)
	return matches
}

func buildFromSemifinals(qualified []string, pairing PairingStrategy) []models.PlayoffMatch {
	matches := make([]models.PlayoffMatch, 0, 4)
	for i, pair := range pairing.Pair(qualified, 2) {
		matches = append(matches, models.PlayoffMatch{
			Number: i + 1,
			Phase:  models.PhaseSemifinal,
			Side1:  models.Slot{Team: pair[0]},
			Side2:  models.Slot{Team: pair[1]},
		})
	}
	matches = append(matches, finalAndThirdPlace(3, 1, 2)...)
	return matches
}

// finalAndThirdPlace emits the final (fed by the semifinal winners) and the
// third-place match (fed by the semifinal losers). sf1 and sf2 are the match
// numbers of the two semifinals, firstNumber the number given to the final.
func finalAndThirdPlace(firstNumber, sf1, sf2 int) []models.PlayoffMatch {
	return []models.PlayoffMatch{
		{
			Number: firstNumber,
			Phase:  models.PhaseFinal,
			Side1:  refSlot(models.PhaseSemifinal, 1, sf1, models.TakeWinner),
			Side2:  refSlot(models.PhaseSemifinal, 2, sf2, models.TakeWinner),
		},
		{
			Number: firstNumber + 1,
			Phase:  models.PhaseThirdPlace,
			Side1:  refSlot(models.PhaseSemifinal, 1, sf1, models.TakeLoser),
			Side2:  refSlot(models.PhaseSemifinal, 2, sf2, models.TakeLoser),
		},
	}
}

func refSlot(phase models.Phase, ordinal, matchNumber int, take models.Outcome) models.Slot {
	role := "Winner"
	if take == models.TakeLoser {
		role = "Loser"
	}
	return models.Slot{
		Label:  fmt.Sprintf("%s %d %s", phase, ordinal, role),
		Source: &models.SlotRef{Match: matchNumber, Take: take},
	}
}
