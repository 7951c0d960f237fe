package stats

import (
	"strconv"

	"github.com/fortuna/gridiron/internal/htmltable"
)

// Kind is the declared semantic type of one table column.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// Value is one typed cell. Numeric kinds carry Num; text carries Text.
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// Text builds a text cell.
func textValue(s string) Value { return Value{Kind: KindText, Text: s} }

// Float64 returns the numeric content of the cell, zero for text cells.
func (v Value) Float64() float64 {
	if v.Kind == KindText {
		return 0
	}
	return v.Num
}

// String returns the textual content of the cell.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(int64(v.Num), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Text
	}
}

// Frame is a small in-memory column-ordered table of typed cells, the
// working representation between raw extraction and the long-format melt.
type Frame struct {
	Columns []string
	Rows    []map[string]Value
}

// frameFromTable lifts a raw string table into a text-valued frame. Empty
// cells become "0" so numeric coercion downstream treats absences as zero,
// matching how the source site leaves blank cells for stats a player never
// recorded.
func frameFromTable(t *htmltable.Table) *Frame {
	f := &Frame{Columns: append([]string(nil), t.Header...)}
	for _, row := range t.Rows {
		cells := make(map[string]Value, len(row))
		for i, col := range t.Header {
			s := row[i]
			if s == "" {
				s = "0"
			}
			cells[col] = textValue(s)
		}
		f.Rows = append(f.Rows, cells)
	}
	return f
}

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RenameColumn renames a column in place, header and cells both.
func (f *Frame) RenameColumn(from, to string) {
	for i, c := range f.Columns {
		if c == from {
			f.Columns[i] = to
		}
	}
	for _, row := range f.Rows {
		if v, ok := row[from]; ok {
			delete(row, from)
			row[to] = v
		}
	}
}

// DropColumns removes the named columns from the frame.
func (f *Frame) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := f.Columns[:0]
	for _, c := range f.Columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	f.Columns = kept
	for _, row := range f.Rows {
		for n := range drop {
			delete(row, n)
		}
	}
}

// FilterRows keeps only rows for which keep returns true.
func (f *Frame) FilterRows(keep func(map[string]Value) bool) {
	kept := f.Rows[:0]
	for _, row := range f.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	f.Rows = kept
}

// Reorder arranges the frame's columns into the given canonical order.
// Columns absent from the order (retained surplus columns) keep their
// relative position after the ordered ones.
func (f *Frame) Reorder(order []string) {
	ordered := make([]string, 0, len(f.Columns))
	seen := make(map[string]bool, len(order))
	for _, c := range order {
		if f.HasColumn(c) {
			ordered = append(ordered, c)
			seen[c] = true
		}
	}
	for _, c := range f.Columns {
		if !seen[c] {
			ordered = append(ordered, c)
		}
	}
	f.Columns = ordered
}
