// Package roster builds the player dimension: per-team roster tables parsed
// into player rows with stable hashed identifiers, and the (name, team) to
// id index substituted into fact rows.
package roster

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/htmltable"
	"github.com/fortuna/gridiron/internal/stats"
)

const (
	rosterTableID   = "roster"
	startersTableID = "starters"
)

// URL returns the roster page for a team slug and season year.
func URL(slug string, year int) string {
	return fmt.Sprintf("https://www.pro-football-reference.com/teams/%s/%d_roster.htm", slug, year)
}

// Player is one roster entry.
type Player struct {
	PlayerID  string
	Name      string
	Team      string
	Number    string
	Age       int
	Position  string
	Games     int
	Starts    int
	Weight    string
	Height    string
	College   string
	BirthDate string
	Years     int
	Starter   bool
}

// requiredColumns are the roster columns the parser depends on; the rest of
// the table is carried as-is or ignored.
var requiredColumns = []string{"No.", "Player", "Age", "Pos", "G", "GS", "BirthDate", "Yrs"}

// nameSuffixes are generational suffixes stripped before hashing, so the
// site writing "Odell Beckham Jr." one week and "Odell Beckham" the next
// resolves to one player.
var nameSuffixes = []string{"Jr.", "Jr", "Sr.", "Sr", "II", "III", "IV", "V"}

// PlayerID derives the stable player identifier from the normalized name
// and birthdate. Name alone is not injective across a league; name plus
// birthdate is treated as such.
func PlayerID(name, birthDate string) string {
	sum := sha1.Sum([]byte(NormalizeName(name) + "|" + birthDate))
	return hex.EncodeToString(sum[:])[:12]
}

// NormalizeName trims marks and generational suffixes from a display name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
	for _, suffix := range nameSuffixes {
		name = strings.TrimSpace(strings.TrimSuffix(name, " "+suffix))
	}
	return name
}

// ParseTeamRoster reads one team's roster table, flags starters from the
// starters table when present, and assigns player ids.
func ParseTeamRoster(doc *goquery.Document, team string, log *zap.Logger) ([]Player, error) {
	table, err := htmltable.Extract(doc, rosterTableID)
	if err != nil {
		return nil, fmt.Errorf("roster: extracting %s roster: %w", team, err)
	}

	var missing []string
	for _, col := range requiredColumns {
		if table.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("roster: %s roster table is missing columns: %s",
			team, strings.Join(missing, ", "))
	}

	starters := starterNames(doc)

	idx := func(col string) int { return table.ColumnIndex(col) }
	var players []Player
	for _, row := range table.Rows {
		name := strings.TrimSpace(row[idx("Player")])
		if name == "" || name == "Player" || row[idx("No.")] == "No." {
			continue
		}

		years := row[idx("Yrs")]
		if years == "Rook" {
			years = "0"
		}

		p := Player{
			Name:      name,
			Team:      team,
			Number:    row[idx("No.")],
			Age:       atoiOrZero(row[idx("Age")]),
			Position:  row[idx("Pos")],
			Games:     atoiOrZero(row[idx("G")]),
			Starts:    atoiOrZero(row[idx("GS")]),
			BirthDate: row[idx("BirthDate")],
			Years:     atoiOrZero(years),
			Starter:   starters[NormalizeName(name)],
		}
		if i := table.ColumnIndex("Wt"); i >= 0 {
			p.Weight = row[i]
		}
		if i := table.ColumnIndex("Ht"); i >= 0 {
			p.Height = row[i]
		}
		if i := table.ColumnIndex("College/Univ"); i >= 0 {
			// commas collide with downstream delimited exports
			p.College = strings.ReplaceAll(row[i], ",", "/")
		}
		p.PlayerID = PlayerID(p.Name, p.BirthDate)
		players = append(players, p)
	}

	log.Debug("parsed roster", zap.String("team", team), zap.Int("players", len(players)))
	return players, nil
}

// starterNames reads the starters table, if the page carries one.
func starterNames(doc *goquery.Document) map[string]bool {
	starters := make(map[string]bool)
	table, err := htmltable.Extract(doc, startersTableID)
	if err != nil {
		return starters
	}
	playerIdx := table.ColumnIndex("Player")
	posIdx := table.ColumnIndex("Pos")
	if playerIdx < 0 {
		return starters
	}
	for _, row := range table.Rows {
		if posIdx >= 0 && row[posIdx] == "" {
			continue
		}
		name := NormalizeName(row[playerIdx])
		if name != "" && name != "Player" {
			starters[name] = true
		}
	}
	return starters
}

// Index resolves fact-row display names to player ids.
type Index struct {
	byNameTeam map[string]string
	log        *zap.Logger
}

// NewIndex builds the substitution index from the season's roster rows.
func NewIndex(players []Player, log *zap.Logger) *Index {
	byNameTeam := make(map[string]string, len(players))
	for _, p := range players {
		byNameTeam[indexKey(p.Name, p.Team)] = p.PlayerID
	}
	return &Index{byNameTeam: byNameTeam, log: log}
}

// Substitute replaces each fact row's display name with the player id,
// matching on (name, team). Misses keep the display name so the row is
// never dropped, and are logged for follow-up.
func (ix *Index) Substitute(facts []stats.FactRow) []stats.FactRow {
	out := make([]stats.FactRow, len(facts))
	missed := make(map[string]bool)
	for i, f := range facts {
		if id, ok := ix.byNameTeam[indexKey(f.Player, f.Team)]; ok {
			f.Player = id
		} else if !missed[indexKey(f.Player, f.Team)] {
			missed[indexKey(f.Player, f.Team)] = true
			ix.log.Warn("no roster entry for player, keeping display name",
				zap.String("player", f.Player),
				zap.String("team", f.Team))
		}
		out[i] = f
	}
	return out
}

func indexKey(name, team string) string {
	return NormalizeName(name) + "|" + team
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
