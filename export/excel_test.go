package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lucaferrario/tournament-manager/models"
)

func score(v int) *int { return &v }

func sampleSnapshot() Snapshot {
	return Snapshot{
		Teams: []models.Team{
			{Name: "Sand Sharks", ContactPerson: "Lena", ContactInfo: "lena@example.com", Paid: true},
			{Name: "Net Ninjas", ContactPerson: "Paul", Paid: false, Notes: "pays on site"},
		},
		Groups: []GroupSheet{{
			Group: models.Group{Label: "A", Teams: []string{"Sand Sharks", "Net Ninjas"}},
			Matches: []models.Match{{
				Side1: "Sand Sharks", Side2: "Net Ninjas",
				Score1: score(3), Score2: score(2), Winner: "Sand Sharks",
			}},
			Standings: []models.StandingRow{
				{Team: "Sand Sharks", Played: 1, Wins: 1, SetsWon: 3, SetsLost: 2, Points: 3},
				{Team: "Net Ninjas", Played: 1, Losses: 1, SetsWon: 2, SetsLost: 3, Points: 1},
			},
		}},
		Playoffs: []models.PlayoffMatch{{
			Number: 1,
			Phase:  models.PhaseFinal,
			Side1:  models.Slot{Team: "Sand Sharks"},
			Side2:  models.Slot{Label: "Semifinal 2 Winner", Source: &models.SlotRef{Match: 2, Take: models.TakeWinner}},
		}},
		FinalStandings: []models.FinalStanding{
			{Position: 1, Team: "Sand Sharks"},
			{Position: 2, Team: "Net Ninjas"},
		},
	}
}

func TestWorkbookSheets(t *testing.T) {
	data, err := Workbook(sampleSnapshot())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Registrations", "Group A", "Playoffs", "Final Standings"}, f.GetSheetList())
}

func TestWorkbookRegistrations(t *testing.T) {
	data, err := Workbook(sampleSnapshot())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Registrations", ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Team", cell("A1"))
	assert.Equal(t, "Paid", cell("D1"))
	assert.Equal(t, "Sand Sharks", cell("A2"))
	assert.Equal(t, "Net Ninjas", cell("A3"))
	assert.Equal(t, "pays on site", cell("E3"))
}

func TestWorkbookGroupSheetSections(t *testing.T) {
	data, err := Workbook(sampleSnapshot())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Group A", ref)
		require.NoError(t, err)
		return v
	}
	// Team list, then a blank row, then matches, blank row, standings.
	assert.Equal(t, "Teams", cell("A1"))
	assert.Equal(t, "Sand Sharks", cell("A2"))
	assert.Equal(t, "Side 1", cell("A5"))
	assert.Equal(t, "Winner", cell("E5"))
	assert.Equal(t, "Sand Sharks", cell("E6"))
	assert.Equal(t, "Points", cell("G8"))
	assert.Equal(t, "3", cell("G9"))
}

func TestWorkbookPlayoffsUsePlaceholderForOpenSlots(t *testing.T) {
	data, err := Workbook(sampleSnapshot())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	side2, err := f.GetCellValue("Playoffs", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Semifinal 2 Winner", side2)
}

func TestWorkbookOmitsEmptyStageSheets(t *testing.T) {
	snap := sampleSnapshot()
	snap.Playoffs = nil
	snap.FinalStandings = nil

	data, err := Workbook(snap)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Registrations", "Group A"}, f.GetSheetList())
}
