package boxscore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/htmltable"
	"github.com/fortuna/gridiron/internal/refdata"
	"github.com/fortuna/gridiron/internal/scoring"
)

const boxscorePage = `
<html><body>
<div class="scorebox">
  <div><strong><a href="/teams/mia/2024.htm">Miami Dolphins</a></strong></div>
  <div class="score">17</div>
  <div><strong>0-1</strong></div>
  <div><strong><a href="/teams/buf/2024.htm">Buffalo Bills</a></strong></div>
  <div class="scorebox_meta">
    <div>Sunday Sep 8, 2024</div>
    <div>Start Time: 1:00pm ET</div>
    <div>Stadium: Highmark Stadium</div>
  </div>
</div>
<table id="game_info">
  <tr><th>Game Info</th></tr>
  <tr><th>Won Toss</th><td>Dolphins</td></tr>
  <tr><th>Roof</th><td>outdoors</td></tr>
  <tr><th>Surface</th><td>grass</td></tr>
</table>
<table id="officials">
  <tr><th>Officials</th></tr>
  <tr><th>Referee</th><td>Carl Cheffers</td></tr>
  <tr><th>Umpire</th><td>Some Umpire</td></tr>
</table>
<table id="scoring">
  <thead><tr><th>Quarter</th><th>Time</th><th>Tm</th><th>Detail</th><th>MIA</th><th>BUF</th></tr></thead>
  <tbody>
    <tr><th>1</th><td>10:35</td><td>BUF</td><td>T. Brown 5 yard pass from J. Allen (kick good)</td><td>0</td><td>7</td></tr>
    <tr><th>2</th><td>3:12</td><td>MIA</td><td>J. Sanders 42 yard field goal</td><td>3</td><td>7</td></tr>
  </tbody>
</table>
</body></html>`

func testTeams(t *testing.T) refdata.Teams {
	t.Helper()
	teams, err := refdata.LoadTeams("")
	require.NoError(t, err)
	return teams
}

func TestParseGame(t *testing.T) {
	doc, err := htmltable.Parse(boxscorePage)
	require.NoError(t, err)

	game, err := ParseGame(doc, 1, 1, 2024, testTeams(t))
	require.NoError(t, err)

	require.Equal(t, "112024", game.ID)
	require.Equal(t, "BUF", game.HomeTeam)
	require.Equal(t, "MIA", game.AwayTeam)
	require.Equal(t, "Sunday Sep 8, 2024", game.Date)
	require.Equal(t, "1:00pm ET", game.Time)
	require.Equal(t, "Highmark Stadium", game.Stadium)
	require.Equal(t, "outdoors", game.Roof)
	require.Equal(t, "grass", game.Surface)
	require.Equal(t, "Carl Cheffers", game.Referee)
	require.Equal(t, "112024H", game.TeamTags["BUF"])
	require.Equal(t, "112024A", game.TeamTags["MIA"])
}

func TestGameRows(t *testing.T) {
	doc, err := htmltable.Parse(boxscorePage)
	require.NoError(t, err)

	game, err := ParseGame(doc, 1, 1, 2024, testTeams(t))
	require.NoError(t, err)

	rows := game.Rows()
	require.Len(t, rows, 2)
	require.Equal(t, "112024H", rows[0].TeamTag)
	require.Equal(t, "BUF", rows[0].Team)
	require.Equal(t, "MIA", rows[0].Opponent)
	require.Equal(t, "112024A", rows[1].TeamTag)
	require.Equal(t, "BUF", rows[1].Opponent)
}

func TestParseGameUnknownTeam(t *testing.T) {
	doc, err := htmltable.Parse(`
<div class="scorebox">
  <div><strong>London Monarchs</strong></div>
  <div class="score">3</div>
  <div><strong>0-1</strong></div>
  <div><strong>Buffalo Bills</strong></div>
</div>`)
	require.NoError(t, err)

	_, err = ParseGame(doc, 1, 1, 2024, testTeams(t))
	require.ErrorContains(t, err, "unknown away team")
}

func TestParseScoringPlays(t *testing.T) {
	doc, err := htmltable.Parse(boxscorePage)
	require.NoError(t, err)

	game, err := ParseGame(doc, 1, 1, 2024, testTeams(t))
	require.NoError(t, err)

	plays, err := ParseScoringPlays(doc, game)
	require.NoError(t, err)
	// touchdown + extra point + field goal
	require.Len(t, plays, 3)

	require.Equal(t, "112024-1", plays[0].ScoreID)
	require.Equal(t, "112024", plays[0].GameID)
	require.Equal(t, scoring.Touchdown, plays[0].Type)
	require.Equal(t, "J. Allen", plays[0].Passer)
	require.Equal(t, scoring.ExtraPoint, plays[1].Type)
	require.Equal(t, scoring.FieldGoal, plays[2].Type)
	require.Equal(t, "MIA", plays[2].Team)
}

func TestGameLinks(t *testing.T) {
	doc, err := htmltable.Parse(`
<div class="game_summaries">
  <div class="game_summary"><table><tr><td class="right gamelink"><a href="/boxscores/old.htm">Final</a></td></tr></table></div>
</div>
<div class="game_summaries">
  <div class="game_summary expanded nohover"><table><tr><td class="right gamelink"><a href="/boxscores/202409080buf.htm">Final</a></td></tr></table></div>
  <div class="game_summary expanded nohover"><table><tr><td class="right gamelink"><a href="/boxscores/202409080nyj.htm">Final</a></td></tr></table></div>
</div>`)
	require.NoError(t, err)

	links := GameLinks(doc)
	require.Equal(t, []string{
		BaseURL + "/boxscores/202409080buf.htm",
		BaseURL + "/boxscores/202409080nyj.htm",
	}, links)
}

func TestWeekURL(t *testing.T) {
	require.Equal(t,
		"https://www.pro-football-reference.com/years/2024/week_3.htm",
		WeekURL(2024, 3))
}
