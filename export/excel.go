// Package export serializes an engine snapshot into an xlsx workbook: one
// sheet for registrations, one per group (team list, matches, standings), one
// for the bracket and one for the final standings.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lucaferrario/tournament-manager/models"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GroupSheet bundles everything shown on a single group's sheet.
type GroupSheet struct {
	Group     models.Group
	Matches   []models.Match
	Standings []models.StandingRow
}

// Snapshot is the read-only engine state the workbook is rendered from.
type Snapshot struct {
	Teams          []models.Team
	Groups         []GroupSheet
	Playoffs       []models.PlayoffMatch
	FinalStandings []models.FinalStanding
}

// Workbook renders the snapshot. Header rows are bold and centered; data rows
// are left untouched.
func Workbook(snap Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	w := &sheetWriter{file: f, headerStyle: headerStyle}

	if err := f.SetSheetName("Sheet1", "Registrations"); err != nil {
		return nil, err
	}
	if err := w.writeRegistrations(snap.Teams); err != nil {
		return nil, err
	}

	for _, gs := range snap.Groups {
		if err := w.writeGroupSheet(gs); err != nil {
			return nil, err
		}
	}

	if len(snap.Playoffs) > 0 {
		if err := w.writePlayoffs(snap.Playoffs); err != nil {
			return nil, err
		}
	}
	if len(snap.FinalStandings) > 0 {
		if err := w.writeFinalStandings(snap.FinalStandings); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetWriter struct {
	file        *excelize.File
	headerStyle int
}

func (w *sheetWriter) writeRegistrations(teams []models.Team) error {
	sheet := "Registrations"
	if err := w.writeHeader(sheet, 1, []interface{}{"Team", "Contact Person", "Contact Info", "Paid", "Notes"}); err != nil {
		return err
	}
	for i, t := range teams {
		row := []interface{}{t.Name, t.ContactPerson, t.ContactInfo, t.Paid, t.Notes}
		if err := w.writeRow(sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeGroupSheet(gs GroupSheet) error {
	sheet := "Group " + gs.Group.Label
	if _, err := w.file.NewSheet(sheet); err != nil {
		return err
	}

	row := 1
	if err := w.writeHeader(sheet, row, []interface{}{"Teams"}); err != nil {
		return err
	}
	for _, name := range gs.Group.Teams {
		row++
		if err := w.writeRow(sheet, row, []interface{}{name}); err != nil {
			return err
		}
	}

	row += 2
	if err := w.writeHeader(sheet, row, []interface{}{"Side 1", "Side 2", "Sets 1", "Sets 2", "Winner"}); err != nil {
		return err
	}
	for _, m := range gs.Matches {
		row++
		cells := []interface{}{m.Side1, m.Side2, scoreCell(m.Score1), scoreCell(m.Score2), m.Winner}
		if err := w.writeRow(sheet, row, cells); err != nil {
			return err
		}
	}

	row += 2
	if err := w.writeHeader(sheet, row, []interface{}{"Team", "Played", "Wins", "Losses", "Sets Won", "Sets Lost", "Points"}); err != nil {
		return err
	}
	for _, s := range gs.Standings {
		row++
		cells := []interface{}{s.Team, s.Played, s.Wins, s.Losses, s.SetsWon, s.SetsLost, s.Points}
		if err := w.writeRow(sheet, row, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writePlayoffs(matches []models.PlayoffMatch) error {
	sheet := "Playoffs"
	if _, err := w.file.NewSheet(sheet); err != nil {
		return err
	}
	if err := w.writeHeader(sheet, 1, []interface{}{"Phase", "Side 1", "Side 2", "Sets 1", "Sets 2", "Winner"}); err != nil {
		return err
	}
	for i, m := range matches {
		cells := []interface{}{
			string(m.Phase),
			m.Side1.DisplayName(),
			m.Side2.DisplayName(),
			scoreCell(m.Score1),
			scoreCell(m.Score2),
			m.Winner,
		}
		if err := w.writeRow(sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeFinalStandings(standings []models.FinalStanding) error {
	sheet := "Final Standings"
	if _, err := w.file.NewSheet(sheet); err != nil {
		return err
	}
	if err := w.writeHeader(sheet, 1, []interface{}{"Position", "Team"}); err != nil {
		return err
	}
	for i, s := range standings {
		if err := w.writeRow(sheet, i+2, []interface{}{s.Position, s.Team}); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeRow(sheet string, row int, cells []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheet, start, &cells)
}

func (w *sheetWriter) writeHeader(sheet string, row int, cells []interface{}) error {
	if err := w.writeRow(sheet, row, cells); err != nil {
		return err
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(cells), row)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, start, end, w.headerStyle)
}

func scoreCell(s *int) interface{} {
	if s == nil {
		return ""
	}
	return *s
}
