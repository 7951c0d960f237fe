package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/stats"
)

// Sheet names in the output workbook.
const (
	sheetFacts   = "FACT_Stats"
	sheetSeason  = "SEASON_Totals"
	sheetGames   = "DIM_Games"
	sheetPlayers = "DIM_Players"
	sheetScoring = "SCORING_Plays"
)

// WorkbookSink writes the dataset to a single .xlsx file, one sheet per
// table.
type WorkbookSink struct {
	path string
	log  *zap.Logger
}

// NewWorkbookSink creates a workbook sink writing to path.
func NewWorkbookSink(path string, log *zap.Logger) *WorkbookSink {
	return &WorkbookSink{path: path, log: log}
}

// Write renders every table to its sheet and saves the file. The file is
// rewritten whole on every call.
func (s *WorkbookSink) Write(ctx context.Context, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeFactSheet(f, sheetFacts, ds.Facts); err != nil {
		return err
	}
	if err := writeFactSheet(f, sheetSeason, ds.SeasonTotals); err != nil {
		return err
	}
	if err := writeGameSheet(f, ds); err != nil {
		return err
	}
	if err := writePlayerSheet(f, ds); err != nil {
		return err
	}
	if err := writeScoringSheet(f, ds); err != nil {
		return err
	}

	// excelize names the initial sheet "Sheet1"; drop it so the workbook
	// opens on the fact table.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export: removing default sheet: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("export: saving workbook %s: %w", s.path, err)
	}
	s.log.Info("wrote workbook",
		zap.String("path", s.path),
		zap.Int("facts", len(ds.Facts)),
		zap.Int("season_totals", len(ds.SeasonTotals)),
		zap.Int("games", len(ds.Games)),
		zap.Int("players", len(ds.Players)),
		zap.Int("scoring_plays", len(ds.ScoringPlays)))
	return nil
}

func (s *WorkbookSink) Close() error { return nil }

func writeFactSheet(f *excelize.File, sheet string, rows []stats.FactRow) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: creating sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, []any{"Player_ID", "Team", "Game_ID", "Stat_ID", "Value"}); err != nil {
		return err
	}
	for i, r := range rows {
		row := []any{r.Player, r.Team, r.GameID, r.Stat, r.Value}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeGameSheet(f *excelize.File, ds *Dataset) error {
	if _, err := f.NewSheet(sheetGames); err != nil {
		return fmt.Errorf("export: creating sheet %s: %w", sheetGames, err)
	}
	header := []any{"Team_Tag", "Game_ID", "Team", "Opponent", "Date", "Time", "Stadium"}
	if err := writeRow(f, sheetGames, 1, header); err != nil {
		return err
	}
	for i, g := range ds.Games {
		row := []any{g.TeamTag, g.GameID, g.Team, g.Opponent, g.Date, g.Time, g.Stadium}
		if err := writeRow(f, sheetGames, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePlayerSheet(f *excelize.File, ds *Dataset) error {
	if _, err := f.NewSheet(sheetPlayers); err != nil {
		return fmt.Errorf("export: creating sheet %s: %w", sheetPlayers, err)
	}
	header := []any{"Player_ID", "Player", "Team", "No.", "Age", "Pos", "G", "GS",
		"Wt", "Ht", "College/Univ", "BirthDate", "Yrs", "Starter"}
	if err := writeRow(f, sheetPlayers, 1, header); err != nil {
		return err
	}
	for i, p := range ds.Players {
		row := []any{p.PlayerID, p.Name, p.Team, p.Number, p.Age, p.Position,
			p.Games, p.Starts, p.Weight, p.Height, p.College, p.BirthDate,
			p.Years, p.Starter}
		if err := writeRow(f, sheetPlayers, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeScoringSheet(f *excelize.File, ds *Dataset) error {
	if _, err := f.NewSheet(sheetScoring); err != nil {
		return fmt.Errorf("export: creating sheet %s: %w", sheetScoring, err)
	}
	header := []any{"Score_ID", "Game_ID", "Quarter", "Team", "Type", "Scorer",
		"Passer", "Method", "Yards", "Good"}
	if err := writeRow(f, sheetScoring, 1, header); err != nil {
		return err
	}
	for i, p := range ds.ScoringPlays {
		yards := any("")
		if p.HasYards {
			yards = p.Yards
		}
		row := []any{p.ScoreID, p.GameID, p.Quarter, p.Team, string(p.Type),
			p.Scorer, p.Passer, string(p.Method), yards, p.Good}
		if err := writeRow(f, sheetScoring, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("export: cell name for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: writing %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
