// Package stats implements the stat-category extraction pipeline and the
// season running-total accumulator: declared table shapes are validated,
// typed, reshaped into long-format fact rows, and merged week over week
// using per-stat aggregation rules.
package stats

import (
	"fmt"
	"sort"
	"strings"
)

// DerivedOp is one of the operations a derived column may declare.
type DerivedOp int

const (
	// OpAverage divides the first operand by the second.
	OpAverage DerivedOp = iota
	// OpPercentage divides the first operand by the second, times 100.
	OpPercentage
	// OpProduct multiplies the two operands.
	OpProduct
	// OpSum adds the two operands.
	OpSum
)

// DerivedColumn declares one column computed from two extracted columns,
// evaluated after the raw columns are numeric.
type DerivedColumn struct {
	Name string
	Op   DerivedOp
	A, B string
}

// AggKind selects how a stat code folds into the season running total.
type AggKind int

const (
	// AggSum adds the current week's value to the running total.
	AggSum AggKind = iota
	// AggWeightedAvg recomputes the ratio from the running sums of a
	// numerator and denominator stat pair.
	AggWeightedAvg
	// AggPercentage is AggWeightedAvg times 100.
	AggPercentage
	// AggAvgOfTwo takes the arithmetic mean of the prior and current values.
	AggAvgOfTwo
)

// AggRule is the season-accumulation rule for one stat code. Num and Den
// are stat codes, set only for the ratio kinds.
type AggRule struct {
	Kind AggKind
	Num  string
	Den  string
}

// ColumnSpec is one expected column with its declared semantic type.
type ColumnSpec struct {
	Name string
	Kind Kind
}

// Category describes one statistical domain: which table to extract, what
// shape it must have, how its columns become stat codes, and how those
// codes accumulate across a season. Categories are defined once in the
// registry and never mutated.
type Category struct {
	// Name is the human-readable domain name ("passing", "defense", ...).
	Name string
	// ID is the one-letter stat-code prefix (P, C, R, D).
	ID string
	// TableID is the HTML element id of the source table.
	TableID string
	// Columns are the expected columns in declaration order.
	Columns []ColumnSpec
	// Cleaning maps a trailing cutset (e.g. "%") to the columns it must be
	// stripped from before numeric coercion.
	Cleaning map[string][]string
	// Derived are the computed columns, evaluated after coercion.
	Derived []DerivedColumn
	// Order is the canonical column ordering of the wide frame.
	Order []string
	// ValueVars are the columns melted into fact rows.
	ValueVars []string
	// StatCodes maps a value column name to its stable stat code.
	StatCodes map[string]string
	// SummaryCodes are the stat codes participating in season accumulation,
	// in output order.
	SummaryCodes []string
	// AggRules maps each summary code to its accumulation rule.
	AggRules map[string]AggRule
}

// ExpectedNames returns the expected column names in declaration order.
func (c Category) ExpectedNames() []string {
	names := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		names[i] = col.Name
	}
	return names
}

// columnKind returns the declared kind for a column. Derived columns and
// retained surplus columns default to float.
func (c Category) columnKind(name string) (Kind, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col.Kind, true
		}
	}
	return KindFloat, false
}

// MissingColumnsError is fatal for a table: required columns are absent,
// which indicates the source layout changed underneath us.
type MissingColumnsError struct {
	Category string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("stats: %s table is missing required columns: %s",
		e.Category, strings.Join(e.Missing, ", "))
}

// UnknownStatColumnError is fatal for a category: a value column has no
// stat-code mapping, so the registry and the table disagree.
type UnknownStatColumnError struct {
	Category string
	Column   string
}

func (e *UnknownStatColumnError) Error() string {
	return fmt.Sprintf("stats: %s column %q has no stat code", e.Category, e.Column)
}

// ValidateRegistry checks the registry invariants once at startup: every
// summary code carries exactly one aggregation rule whose operands are
// themselves summary codes, every value variable resolves to a stat code,
// and every derived column references columns present after extraction.
func ValidateRegistry(categories []Category) error {
	for _, cat := range categories {
		if cat.ID == "" || cat.TableID == "" {
			return fmt.Errorf("stats: category %q must declare an id and a source table", cat.Name)
		}

		known := make(map[string]bool, len(cat.Columns))
		for _, col := range cat.Columns {
			known[col.Name] = true
		}

		for _, d := range cat.Derived {
			if !known[d.A] || !known[d.B] {
				return fmt.Errorf("stats: %s derived column %q references unknown columns (%s, %s)",
					cat.Name, d.Name, d.A, d.B)
			}
			known[d.Name] = true
		}

		codes := make(map[string]bool, len(cat.StatCodes))
		for v, code := range cat.StatCodes {
			if !strings.HasPrefix(code, cat.ID) {
				return fmt.Errorf("stats: %s stat code %s for %q does not carry prefix %s",
					cat.Name, code, v, cat.ID)
			}
			codes[code] = true
		}

		for _, v := range cat.ValueVars {
			if _, ok := cat.StatCodes[v]; !ok {
				return fmt.Errorf("stats: %s value column %q has no stat code", cat.Name, v)
			}
		}

		for _, code := range cat.SummaryCodes {
			rule, ok := cat.AggRules[code]
			if !ok {
				return fmt.Errorf("stats: %s summary code %s has no aggregation rule", cat.Name, code)
			}
			if rule.Kind == AggWeightedAvg || rule.Kind == AggPercentage {
				if !codes[rule.Num] || !codes[rule.Den] {
					return fmt.Errorf("stats: %s code %s ratio rule references unknown codes (%s/%s)",
						cat.Name, code, rule.Num, rule.Den)
				}
			}
		}

		extra := make([]string, 0)
		for code := range cat.AggRules {
			found := false
			for _, s := range cat.SummaryCodes {
				if s == code {
					found = true
					break
				}
			}
			if !found {
				extra = append(extra, code)
			}
		}
		if len(extra) > 0 {
			sort.Strings(extra)
			return fmt.Errorf("stats: %s has aggregation rules for non-summary codes: %s",
				cat.Name, strings.Join(extra, ", "))
		}
	}
	return nil
}
