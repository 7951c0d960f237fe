package boxscore

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/htmltable"
	"github.com/fortuna/gridiron/internal/scoring"
)

// scoringTableID is the element id of the boxscore scoring summary.
const scoringTableID = "scoring"

// ScoringPlay is one parsed scoring play tagged with the game it came from.
type ScoringPlay struct {
	ScoreID string
	GameID  string
	scoring.Play
}

// ParseScoringPlays extracts the scoring table and decomposes each row's
// detail text into structured plays. A game with no scoring table (0-0
// games do not exist, so this means a layout change) is an error, and so is
// any unparseable detail string, surfacing data-quality regressions at
// import time.
func ParseScoringPlays(doc *goquery.Document, game *Game) ([]ScoringPlay, error) {
	table, err := htmltable.Extract(doc, scoringTableID)
	if err != nil {
		return nil, fmt.Errorf("boxscore: scoring table for game %s: %w", game.ID, err)
	}

	teamIdx := table.ColumnIndex("Tm")
	detailIdx := table.ColumnIndex("Detail")
	if teamIdx < 0 || detailIdx < 0 {
		return nil, fmt.Errorf("boxscore: scoring table for game %s missing Tm/Detail columns", game.ID)
	}

	// quarter is the leading cell; its header is sometimes blank
	parser := scoring.NewParser()

	var out []ScoringPlay
	seq := 0
	for _, row := range table.Rows {
		quarter := row[0]
		team := row[teamIdx]
		detail := row[detailIdx]
		if detail == "" {
			continue
		}

		plays, err := parser.ParseRow(quarter, team, detail)
		if err != nil {
			return nil, fmt.Errorf("boxscore: game %s: %w", game.ID, err)
		}
		for _, play := range plays {
			seq++
			out = append(out, ScoringPlay{
				ScoreID: fmt.Sprintf("%s-%d", game.ID, seq),
				GameID:  game.ID,
				Play:    play,
			})
		}
	}
	return out, nil
}
