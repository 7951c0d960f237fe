package stats

import (
	"sort"
	"strings"
)

// playerTotals is the wide form of one side of an accumulation: stat code
// to value per player, plus the team abbreviation the player last carried.
type playerTotals struct {
	team  string
	stats map[string]float64
}

// Accumulate merges a category's prior running season totals with one
// week's fresh fact rows, producing the new running totals tagged with the
// current week's game identifier. Neither input is mutated.
//
// Count stats add; ratio stats are recomputed from the running sums of
// their numerator/denominator pair rather than by averaging two averages,
// so a season completion percentage reflects total completions over total
// attempts. A combined denominator of zero resolves to zero, not an error.
//
// Week 1 has no prior totals: passing nil (or empty) previous totals
// returns the week's own facts re-tagged, values untouched.
func Accumulate(previous, week []FactRow, cat Category, weekTag string) []FactRow {
	summary := make(map[string]bool, len(cat.SummaryCodes))
	for _, code := range cat.SummaryCodes {
		summary[code] = true
	}

	if len(previous) == 0 {
		out := make([]FactRow, 0, len(week))
		for _, r := range week {
			if !strings.HasPrefix(r.Stat, cat.ID) || !summary[r.Stat] {
				continue
			}
			r.GameID = weekTag
			out = append(out, r)
		}
		return out
	}

	prev := pivotWide(previous, cat.ID, summary)
	cur := pivotWide(week, cat.ID, summary)

	players := make([]string, 0, len(prev)+len(cur))
	seen := make(map[string]bool, len(prev)+len(cur))
	for p := range prev {
		players = append(players, p)
		seen[p] = true
	}
	for p := range cur {
		if !seen[p] {
			players = append(players, p)
		}
	}
	sort.Strings(players)

	out := make([]FactRow, 0, len(players)*len(cat.SummaryCodes))
	for _, player := range players {
		pTot, cTot := prev[player], cur[player]

		team := ""
		if cTot != nil {
			team = cTot.team
		} else if pTot != nil {
			team = pTot.team
		}

		for _, code := range cat.SummaryCodes {
			rule := cat.AggRules[code]
			p := wideValue(pTot, code)
			c := wideValue(cTot, code)

			var v float64
			switch rule.Kind {
			case AggSum:
				v = p + c
			case AggWeightedAvg:
				v = ratio(pTot, cTot, rule.Num, rule.Den)
			case AggPercentage:
				v = 100 * ratio(pTot, cTot, rule.Num, rule.Den)
			case AggAvgOfTwo:
				v = (p + c) / 2
			}

			out = append(out, FactRow{
				Player: player,
				Team:   team,
				GameID: weekTag,
				Stat:   code,
				Value:  v,
			})
		}
	}
	return out
}

// pivotWide folds long fact rows into one wide record per player, filtered
// to the category's summary codes. A player absent from the input simply has
// no record; the merge treats that as zeros.
func pivotWide(rows []FactRow, prefix string, summary map[string]bool) map[string]*playerTotals {
	wide := make(map[string]*playerTotals)
	for _, r := range rows {
		if !strings.HasPrefix(r.Stat, prefix) || !summary[r.Stat] {
			continue
		}
		t, ok := wide[r.Player]
		if !ok {
			t = &playerTotals{team: r.Team, stats: make(map[string]float64)}
			wide[r.Player] = t
		}
		t.stats[r.Stat] = r.Value
	}
	return wide
}

func wideValue(t *playerTotals, code string) float64 {
	if t == nil {
		return 0
	}
	return t.stats[code]
}

// ratio recomputes a rate stat from the combined numerator and denominator
// running sums of both sides. Division by zero is defined as zero.
func ratio(prev, cur *playerTotals, num, den string) float64 {
	n := wideValue(prev, num) + wideValue(cur, num)
	d := wideValue(prev, den) + wideValue(cur, den)
	if d == 0 {
		return 0
	}
	return n / d
}
