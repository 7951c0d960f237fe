// Package htmltable extracts tabular data from parsed boxscore markup.
package htmltable

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrElementNotFound is returned when no table with the requested id exists
// in the document.
var ErrElementNotFound = fmt.Errorf("htmltable: element not found")

// ErrEmptyTable is returned when the table exists but has no body rows.
var ErrEmptyTable = fmt.Errorf("htmltable: table has no body rows")

// Table is the raw result of one extraction: a header row plus string cells.
// Every row has the same number of cells as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// NumRows returns the number of body rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named header column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Parse converts raw page markup into a goquery document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("htmltable: parsing markup: %w", err)
	}
	return doc, nil
}

// Extract locates the table with the given element id and returns its header
// and body rows as string cells. Stat tables carry multi-row headers where
// only the bottom row holds the final column names, so the last thead row
// wins. Rows shorter than the header are padded with empty cells so the
// width invariant always holds.
func Extract(doc *goquery.Document, elementID string) (*Table, error) {
	sel := doc.Find(fmt.Sprintf("table#%s", elementID))
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: table#%s", ErrElementNotFound, elementID)
	}

	table := sel.First()

	var header []string
	headerRows := table.Find("thead tr")
	if headerRows.Length() > 0 {
		headerRows.Last().Find("th").Each(func(_ int, cell *goquery.Selection) {
			header = append(header, strings.TrimSpace(cell.Text()))
		})
	}

	var rows [][]string
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, cells)
	})

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table#%s", ErrEmptyTable, elementID)
	}

	if len(header) > 0 {
		for i, row := range rows {
			for len(row) < len(header) {
				row = append(row, "")
			}
			rows[i] = row[:len(header)]
		}
	}

	return &Table{Header: header, Rows: rows}, nil
}
