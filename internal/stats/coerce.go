package stats

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// cleanColumns strips the configured trailing cutsets from cell text before
// numeric coercion ("12.5%" would otherwise fail the float parse).
func cleanColumns(f *Frame, cleaning map[string][]string) {
	for cutset, cols := range cleaning {
		for _, col := range cols {
			if !f.HasColumn(col) {
				continue
			}
			for _, row := range f.Rows {
				v := row[col]
				if v.Kind == KindText {
					v.Text = strings.TrimRight(v.Text, cutset)
					row[col] = v
				}
			}
		}
	}
}

// coerceTypes converts each column of the frame to its declared kind.
// A cell that will not parse is logged and left as zero; the failure is
// isolated to the column, never fatal to the row or table. Columns without
// a declaration (retained surplus, post-merge additions) coerce as floats.
func coerceTypes(log *zap.Logger, f *Frame, cat Category) {
	for _, col := range f.Columns {
		kind, _ := cat.columnKind(col)
		if kind == KindText {
			continue
		}
		failures := 0
		for _, row := range f.Rows {
			v := row[col]
			if v.Kind != KindText {
				continue
			}
			n, err := strconv.ParseFloat(v.Text, 64)
			if err != nil {
				failures++
				n = 0
			}
			if kind == KindInt {
				n = float64(int64(n))
			}
			row[col] = Value{Kind: kind, Num: n}
		}
		if failures > 0 {
			log.Warn("column failed type coercion for some cells, defaulting to zero",
				zap.String("category", cat.Name),
				zap.String("column", col),
				zap.Int("cells", failures))
		}
	}
}
