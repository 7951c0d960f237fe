// Package boxscore parses the per-game pages: the scorebox and game-info
// metadata that become the game dimension, the links on a week summary
// page, and the scoring table feeding the play parser.
package boxscore

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/refdata"
)

// Game is the per-game context: the stable game identifier plus the
// metadata that tags every fact row and dimension row produced from the
// boxscore. Created once per game, read-only afterward.
type Game struct {
	ID       string
	Week     int
	HomeTeam string
	AwayTeam string
	Date     string
	Time     string
	Stadium  string
	Roof     string
	Surface  string
	Referee  string

	// TeamTags maps a team abbreviation to the home/away-suffixed game id
	// its fact rows carry.
	TeamTags map[string]string
}

// Row is one perspective of the game dimension; each game yields a home
// row and an away row.
type Row struct {
	TeamTag  string
	GameID   string
	Team     string
	Opponent string
	Date     string
	Time     string
	Stadium  string
}

// ParseGame reads the scorebox, meta block, game-info and officials tables
// of one boxscore page. The game id is week, game index and year
// concatenated, matching the identifiers season totals carry.
func ParseGame(doc *goquery.Document, week, index, year int, teams refdata.Teams) (*Game, error) {
	gameID := fmt.Sprintf("%d%d%d", week, index, year)

	names := doc.Find("div.scorebox strong")
	if names.Length() < 3 {
		return nil, fmt.Errorf("boxscore: scorebox teams not found")
	}
	awayName := strings.TrimSpace(names.Eq(0).Text())
	homeName := strings.TrimSpace(names.Eq(2).Text())

	awayAbbr, ok := teams.Abbr(awayName)
	if !ok {
		return nil, fmt.Errorf("boxscore: unknown away team %q", awayName)
	}
	homeAbbr, ok := teams.Abbr(homeName)
	if !ok {
		return nil, fmt.Errorf("boxscore: unknown home team %q", homeName)
	}

	g := &Game{
		ID:       gameID,
		Week:     week,
		HomeTeam: homeAbbr,
		AwayTeam: awayAbbr,
		TeamTags: map[string]string{
			homeAbbr: gameID + "H",
			awayAbbr: gameID + "A",
		},
	}

	meta := doc.Find("div.scorebox_meta div")
	if meta.Length() > 0 {
		g.Date = strings.TrimSpace(meta.Eq(0).Text())
	}
	if meta.Length() > 1 {
		g.Time = metaValue(meta.Eq(1).Text())
	}
	if meta.Length() > 2 {
		g.Stadium = metaValue(meta.Eq(2).Text())
	}

	doc.Find("table#game_info tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		switch label {
		case "Roof":
			g.Roof = value
		case "Surface":
			g.Surface = value
		}
	})

	doc.Find("table#officials tr").Each(func(_ int, row *goquery.Selection) {
		if strings.TrimSpace(row.Find("th").First().Text()) == "Referee" {
			g.Referee = strings.TrimSpace(row.Find("td").First().Text())
		}
	})

	return g, nil
}

// Rows returns the home and away perspectives of the game dimension.
func (g *Game) Rows() []Row {
	return []Row{
		{
			TeamTag:  g.ID + "H",
			GameID:   g.ID,
			Team:     g.HomeTeam,
			Opponent: g.AwayTeam,
			Date:     g.Date,
			Time:     g.Time,
			Stadium:  g.Stadium,
		},
		{
			TeamTag:  g.ID + "A",
			GameID:   g.ID,
			Team:     g.AwayTeam,
			Opponent: g.HomeTeam,
			Date:     g.Date,
			Time:     g.Time,
			Stadium:  g.Stadium,
		},
	}
}

// metaValue strips the "Start Time:"-style label from a scorebox meta line.
func metaValue(s string) string {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(s)
}
