package htmltable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const multiHeaderTable = `
<html><body>
<table id="passing_advanced">
  <thead>
    <tr><th colspan="2"></th><th colspan="2">Passing</th></tr>
    <tr><th>Player</th><th>Tm</th><th>Cmp</th><th>Att</th></tr>
  </thead>
  <tbody>
    <tr><th>J. Allen</th><td>BUF</td><td>24</td><td>33</td></tr>
    <tr><th>T. Tagovailoa</th><td>MIA</td><td>19</td><td>28</td></tr>
  </tbody>
</table>
<table id="empty_table"><thead><tr><th>A</th></tr></thead><tbody></tbody></table>
</body></html>`

func TestExtractUsesBottomHeaderRow(t *testing.T) {
	doc, err := Parse(multiHeaderTable)
	require.NoError(t, err)

	table, err := Extract(doc, "passing_advanced")
	require.NoError(t, err)

	require.Equal(t, []string{"Player", "Tm", "Cmp", "Att"}, table.Header)
	require.Equal(t, 2, table.NumRows())
	require.Equal(t, []string{"J. Allen", "BUF", "24", "33"}, table.Rows[0])
}

func TestExtractMissingElement(t *testing.T) {
	doc, err := Parse(multiHeaderTable)
	require.NoError(t, err)

	_, err = Extract(doc, "no_such_table")
	require.True(t, errors.Is(err, ErrElementNotFound))
}

func TestExtractEmptyBody(t *testing.T) {
	doc, err := Parse(multiHeaderTable)
	require.NoError(t, err)

	_, err = Extract(doc, "empty_table")
	require.True(t, errors.Is(err, ErrEmptyTable))
}

func TestExtractPadsShortRows(t *testing.T) {
	doc, err := Parse(`
<table id="short">
  <thead><tr><th>Player</th><th>Tm</th><th>Yds</th></tr></thead>
  <tbody><tr><th>K. Murray</th><td>ARI</td></tr></tbody>
</table>`)
	require.NoError(t, err)

	table, err := Extract(doc, "short")
	require.NoError(t, err)
	require.Equal(t, []string{"K. Murray", "ARI", ""}, table.Rows[0])
}

func TestColumnIndex(t *testing.T) {
	table := &Table{Header: []string{"Player", "Tm", "Yds"}}
	require.Equal(t, 2, table.ColumnIndex("Yds"))
	require.Equal(t, -1, table.ColumnIndex("TD"))
}
