package roster

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/stats"
)

const rosterPage = `<html><body>
<table id="roster">
<thead><tr>
<th>No.</th><th>Player</th><th>Age</th><th>Pos</th><th>G</th><th>GS</th>
<th>Wt</th><th>Ht</th><th>College/Univ</th><th>BirthDate</th><th>Yrs</th><th>AV</th>
<th>Drafted (tm/rnd/yr)</th>
</tr></thead>
<tbody>
<tr><td>17</td><td>Josh Allen</td><td>28</td><td>QB</td><td>17</td><td>17</td>
<td>237</td><td>6-5</td><td>Wyoming</td><td>5/21/1996</td><td>6</td><td>19</td>
<td>Buffalo Bills / 1st / 7th pick / 2018</td></tr>
<tr><td>No.</td><td>Player</td><td>Age</td><td>Pos</td><td>G</td><td>GS</td>
<td>Wt</td><td>Ht</td><td>College/Univ</td><td>BirthDate</td><td>Yrs</td><td>AV</td>
<td>Drafted (tm/rnd/yr)</td></tr>
<tr><td>4</td><td>Ray Davis</td><td>24</td><td>RB</td><td>17</td><td>2</td>
<td>211</td><td>5-8</td><td>Temple,Vanderbilt,Kentucky</td><td>11/2/1999</td><td>Rook</td><td>4</td>
<td>Buffalo Bills / 4th / 128th pick / 2024</td></tr>
<tr><td>6</td><td>Marquez Valdes-Scantling Jr.</td><td>30</td><td>WR</td><td>9</td><td>3</td>
<td>206</td><td>6-4</td><td>South Florida</td><td>10/10/1994</td><td>6</td><td>2</td>
<td></td></tr>
</tbody>
</table>
<table id="starters">
<thead><tr><th>Pos</th><th>Player</th></tr></thead>
<tbody>
<tr><td>QB</td><td>Josh Allen*</td></tr>
<tr><td>WR</td><td>Marquez Valdes-Scantling</td></tr>
</tbody>
</table>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseTeamRoster(t *testing.T) {
	doc := parseDoc(t, rosterPage)
	players, err := ParseTeamRoster(doc, "BUF", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, players, 3, "repeated header row should be dropped")

	allen := players[0]
	assert.Equal(t, "Josh Allen", allen.Name)
	assert.Equal(t, "BUF", allen.Team)
	assert.Equal(t, "QB", allen.Position)
	assert.Equal(t, 28, allen.Age)
	assert.Equal(t, 17, allen.Games)
	assert.Equal(t, 17, allen.Starts)
	assert.Equal(t, 6, allen.Years)
	assert.True(t, allen.Starter)
	assert.Equal(t, PlayerID("Josh Allen", "5/21/1996"), allen.PlayerID)

	davis := players[1]
	assert.Equal(t, 0, davis.Years, "Rook maps to zero years")
	assert.Equal(t, "Temple/Vanderbilt/Kentucky", davis.College)
	assert.False(t, davis.Starter)

	mvs := players[2]
	assert.True(t, mvs.Starter, "starter match ignores the name suffix")
}

func TestParseTeamRosterMissingColumns(t *testing.T) {
	doc := parseDoc(t, `<table id="roster">
<thead><tr><th>No.</th><th>Player</th><th>Pos</th></tr></thead>
<tbody><tr><td>17</td><td>Josh Allen</td><td>QB</td></tr></tbody>
</table>`)
	_, err := ParseTeamRoster(doc, "BUF", zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns")
	assert.Contains(t, err.Error(), "BirthDate")
}

func TestPlayerIDStableAcrossSuffixAndMarks(t *testing.T) {
	base := PlayerID("Odell Beckham", "11/5/1992")
	assert.Equal(t, base, PlayerID("Odell Beckham Jr.", "11/5/1992"))
	assert.Equal(t, base, PlayerID("Odell Beckham*", "11/5/1992"))
	assert.NotEqual(t, base, PlayerID("Odell Beckham", "11/5/1993"))
	assert.Len(t, base, 12)
}

func TestIndexSubstitute(t *testing.T) {
	players := []Player{
		{Name: "Josh Allen", Team: "BUF", PlayerID: "abc123def456"},
	}
	ix := NewIndex(players, zap.NewNop())

	facts := []stats.FactRow{
		{Player: "Josh Allen", Team: "BUF", GameID: "112024H", Stat: "P1", Value: 24},
		{Player: "Josh Allen", Team: "MIA", GameID: "112024A", Stat: "P1", Value: 20},
		{Player: "Unknown Guy", Team: "BUF", GameID: "112024H", Stat: "P1", Value: 1},
	}
	out := ix.Substitute(facts)

	assert.Equal(t, "abc123def456", out[0].Player)
	assert.Equal(t, "Josh Allen", out[1].Player, "team mismatch keeps the display name")
	assert.Equal(t, "Unknown Guy", out[2].Player)
	assert.Equal(t, "Josh Allen", facts[0].Player, "input slice is not mutated")
}
