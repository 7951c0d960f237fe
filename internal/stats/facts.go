package stats

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/htmltable"
)

// FactRow is one long-format observation: one player, one stat code, one
// game. Player holds the display name until the roster dimension substitutes
// the stable player id.
type FactRow struct {
	Player string
	Team   string
	GameID string
	Stat   string
	Value  float64
}

// Builder turns one category's raw boxscore table into long-format fact
// rows. It is a pure function of the document; building twice yields
// identical rows.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a fact builder.
func NewBuilder(log *zap.Logger) *Builder {
	return &Builder{log: log}
}

// BuildFacts extracts, validates, types, reshapes and stat-codes one
// category's table for one game. gameTags maps a team abbreviation to the
// game tag its rows carry (home/away side of the game id).
func (b *Builder) BuildFacts(doc *goquery.Document, cat Category, gameTags map[string]string) ([]FactRow, error) {
	b.log.Debug("building facts", zap.String("category", cat.Name))

	var frame *Frame
	var err error
	if cat.Name == Defense.Name {
		frame, err = b.defenseFrame(doc, cat)
	} else {
		frame, err = b.categoryFrame(doc, cat)
	}
	if err != nil {
		return nil, err
	}

	cleanColumns(frame, cat.Cleaning)
	coerceTypes(b.log, frame, cat)

	if err := computeDerived(frame, cat); err != nil {
		return nil, err
	}
	frame.Reorder(cat.Order)

	return meltFrame(frame, cat, gameTags)
}

// categoryFrame is the common extraction path: pull the table, drop the
// repeated-header and blank rows, validate shape against the declaration.
func (b *Builder) categoryFrame(doc *goquery.Document, cat Category) (*Frame, error) {
	raw, err := htmltable.Extract(doc, cat.TableID)
	if err != nil {
		return nil, fmt.Errorf("extracting %s table: %w", cat.Name, err)
	}

	frame := frameFromTable(raw)
	dropRepeatRows(frame)

	if err := checkShape(b.log, cat.Name, frame.Columns, cat.ExpectedNames()); err != nil {
		return nil, err
	}
	return frame, nil
}

// defenseFrame folds the two-part defense extraction into one frame. The
// basic box score repeats Yds/TD headers across column bands with different
// meanings, so the interception band is renamed before shape validation —
// the raw table can never pass the declared shape, which is why defense is
// the one category validated late. The advanced pass-defense table is then
// outer-joined in, zero-filling players present on only one side.
func (b *Builder) defenseFrame(doc *goquery.Document, cat Category) (*Frame, error) {
	raw, err := htmltable.Extract(doc, cat.TableID)
	if err != nil {
		return nil, fmt.Errorf("extracting %s table: %w", cat.Name, err)
	}

	renameBand(raw, 2, 7, map[string]string{"Yds": "int_Yds", "TD": "int_TD"})

	base := frameFromTable(raw)
	dropRepeatRows(base)

	if err := checkShape(b.log, cat.Name, base.Columns, cat.ExpectedNames()); err != nil {
		return nil, err
	}

	advanced, err := b.advancedDefenseFrame(doc)
	if err != nil {
		return nil, err
	}

	return outerJoin(base, advanced), nil
}

// advancedDefenseFrame extracts the advanced pass-defense table and strips
// it down to the columns the merge keeps: duplicates of the basic table
// (Int, Sk, Comb) are dropped and Yds/TD renamed to their yards/touchdowns
// allowed meaning.
func (b *Builder) advancedDefenseFrame(doc *goquery.Document) (*Frame, error) {
	raw, err := htmltable.Extract(doc, advancedDefenseTableID)
	if err != nil {
		return nil, fmt.Errorf("extracting advanced defense table: %w", err)
	}

	frame := frameFromTable(raw)
	dropRepeatRows(frame)

	if err := checkShape(b.log, "advanced defense", frame.Columns, advancedDefenseColumns); err != nil {
		return nil, err
	}

	frame.DropColumns("Int", "Sk", "Comb")
	frame.RenameColumn("Yds", "Yds_Allowed")
	frame.RenameColumn("TD", "TD_Allowed")
	return frame, nil
}

// renameBand renames header cells within the half-open column range
// [from, to). The defense table's middle band shares names with the outer
// bands, so renames must be positional, not by name.
func renameBand(t *htmltable.Table, from, to int, renames map[string]string) {
	if to > len(t.Header) {
		to = len(t.Header)
	}
	for i := from; i < to; i++ {
		if renamed, ok := renames[t.Header[i]]; ok {
			t.Header[i] = renamed
		}
	}
}

// dropRepeatRows removes the repeated-header filler rows the source site
// injects mid-table, plus rows with a blank player cell.
func dropRepeatRows(f *Frame) {
	f.FilterRows(func(row map[string]Value) bool {
		p := row["Player"].String()
		return p != "" && p != "0" && p != "Player"
	})
}

// outerJoin merges two frames on (Player, Tm). A player appearing in only
// one frame still appears once in the result, with zeros for the columns
// sourced from the frame they were missing from.
func outerJoin(left, right *Frame) *Frame {
	out := &Frame{Columns: append([]string(nil), left.Columns...)}
	for _, c := range right.Columns {
		if c != "Player" && c != "Tm" {
			out.Columns = append(out.Columns, c)
		}
	}

	key := func(row map[string]Value) string {
		return row["Player"].String() + "\x00" + row["Tm"].String()
	}

	rightByKey := make(map[string]map[string]Value, len(right.Rows))
	for _, row := range right.Rows {
		rightByKey[key(row)] = row
	}

	matched := make(map[string]bool, len(right.Rows))
	for _, lrow := range left.Rows {
		merged := make(map[string]Value, len(out.Columns))
		for _, c := range left.Columns {
			merged[c] = lrow[c]
		}
		if rrow, ok := rightByKey[key(lrow)]; ok {
			matched[key(lrow)] = true
			for _, c := range right.Columns {
				if c != "Player" && c != "Tm" {
					merged[c] = rrow[c]
				}
			}
		} else {
			for _, c := range right.Columns {
				if c != "Player" && c != "Tm" {
					merged[c] = textValue("0")
				}
			}
		}
		out.Rows = append(out.Rows, merged)
	}

	for _, rrow := range right.Rows {
		if matched[key(rrow)] {
			continue
		}
		merged := make(map[string]Value, len(out.Columns))
		for _, c := range out.Columns {
			merged[c] = textValue("0")
		}
		for _, c := range right.Columns {
			merged[c] = rrow[c]
		}
		out.Rows = append(out.Rows, merged)
	}
	return out
}

// computeDerived evaluates the category's derived columns, strictly after
// coercion has made the operands numeric.
func computeDerived(f *Frame, cat Category) error {
	for _, d := range cat.Derived {
		if !f.HasColumn(d.A) || !f.HasColumn(d.B) {
			return fmt.Errorf("stats: %s derived column %q needs columns %q and %q",
				cat.Name, d.Name, d.A, d.B)
		}
		for _, row := range f.Rows {
			a, bv := row[d.A].Float64(), row[d.B].Float64()
			var n float64
			switch d.Op {
			case OpAverage:
				if bv != 0 {
					n = a / bv
				}
			case OpPercentage:
				if bv != 0 {
					n = a * 100 / bv
				}
			case OpProduct:
				n = a * bv
			case OpSum:
				n = a + bv
			}
			row[d.Name] = Value{Kind: KindFloat, Num: n}
		}
		if !f.HasColumn(d.Name) {
			f.Columns = append(f.Columns, d.Name)
		}
	}
	return nil
}

// meltFrame reshapes the wide frame into long form: one fact row per player
// per value column, keyed by the stat code. A value column with no code is
// a registry/schema mismatch and stops the category.
func meltFrame(f *Frame, cat Category, gameTags map[string]string) ([]FactRow, error) {
	rows := make([]FactRow, 0, len(f.Rows)*len(cat.ValueVars))
	for _, wide := range f.Rows {
		player := wide["Player"].String()
		team := wide["Tm"].String()
		for _, col := range cat.ValueVars {
			code, ok := cat.StatCodes[col]
			if !ok {
				return nil, &UnknownStatColumnError{Category: cat.Name, Column: col}
			}
			rows = append(rows, FactRow{
				Player: player,
				Team:   team,
				GameID: gameTags[team],
				Stat:   code,
				Value:  wide[col].Float64(),
			})
		}
	}
	return rows, nil
}
