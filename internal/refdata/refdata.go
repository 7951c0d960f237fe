// Package refdata loads the static reference tables: team names with their
// site URL slugs and abbreviations, and the per-category stat-id tables the
// registry's stat codes are cross-checked against. Loaded once at startup,
// read-only afterward.
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fortuna/gridiron/internal/stats"
)

//go:embed teams.json
var defaultTeams []byte

//go:embed statids.json
var defaultStatIDs []byte

// Team is one franchise's reference entry.
type Team struct {
	// URL is the site's team slug (historic, not always the abbreviation).
	URL string `json:"url"`
	// Abbr is the canonical three-letter abbreviation facts are keyed by.
	Abbr string `json:"abbr"`
}

// Teams maps full franchise name to its reference entry.
type Teams map[string]Team

// Abbr resolves a full team name to its abbreviation.
func (t Teams) Abbr(name string) (string, bool) {
	team, ok := t[name]
	return team.Abbr, ok
}

// StatIDs maps category id to column abbreviation to numeric stat id.
type StatIDs map[string]map[string]int

// LoadTeams reads the team table from path, or the embedded defaults when
// path is empty.
func LoadTeams(path string) (Teams, error) {
	raw, err := readOrDefault(path, defaultTeams)
	if err != nil {
		return nil, fmt.Errorf("refdata: reading team table: %w", err)
	}
	var teams Teams
	if err := json.Unmarshal(raw, &teams); err != nil {
		return nil, fmt.Errorf("refdata: parsing team table: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("refdata: team table is empty")
	}
	return teams, nil
}

// LoadStatIDs reads the stat-id tables from path, or the embedded defaults
// when path is empty.
func LoadStatIDs(path string) (StatIDs, error) {
	raw, err := readOrDefault(path, defaultStatIDs)
	if err != nil {
		return nil, fmt.Errorf("refdata: reading stat-id table: %w", err)
	}
	var ids StatIDs
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("refdata: parsing stat-id table: %w", err)
	}
	return ids, nil
}

// CheckRegistry verifies the category registry against the stat-id tables:
// every stat code a category declares must resolve to the same numeric id
// the reference table assigns its column. A mismatch means configuration
// drifted and the run should not start.
func (ids StatIDs) CheckRegistry(categories []stats.Category) error {
	for _, cat := range categories {
		table, ok := ids[cat.ID]
		if !ok {
			return fmt.Errorf("refdata: no stat-id table for category %s", cat.ID)
		}
		for column, code := range cat.StatCodes {
			id, ok := table[column]
			if !ok {
				return fmt.Errorf("refdata: category %s column %q missing from stat-id table", cat.ID, column)
			}
			if want := cat.ID + strconv.Itoa(id); want != code {
				return fmt.Errorf("refdata: category %s column %q: stat code %s does not match reference id %s",
					cat.ID, column, code, want)
			}
		}
	}
	return nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}
