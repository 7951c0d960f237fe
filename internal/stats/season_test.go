package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fact(player, team, stat string, v float64) FactRow {
	return FactRow{Player: player, Team: team, GameID: "w", Stat: stat, Value: v}
}

func TestAccumulateWeekOneBypass(t *testing.T) {
	week := []FactRow{
		fact("p1", "BUF", "P1", 24),
		fact("p1", "BUF", "P2", 33),
	}

	totals := Accumulate(nil, week, Passing, "122024")
	require.Len(t, totals, 2)
	for _, r := range totals {
		require.Equal(t, "122024", r.GameID)
	}

	cmp, ok := findFact(totals, "p1", "P1")
	require.True(t, ok)
	require.Equal(t, 24.0, cmp.Value)
}

func TestAccumulateSumAdditivity(t *testing.T) {
	prev := []FactRow{fact("p1", "BUF", "P3", 287)}
	week := []FactRow{fact("p1", "BUF", "P3", 215)}

	totals := Accumulate(prev, week, Passing, "222024")
	yds, ok := findFact(totals, "p1", "P3")
	require.True(t, ok)
	require.Equal(t, 287.0+215.0, yds.Value)
	require.Equal(t, "222024", yds.GameID)
}

func TestAccumulatePercentageFromRunningSums(t *testing.T) {
	// prior 3/10 and current 2/5 must combine to 100*5/15, not avg(30,40)
	prev := []FactRow{
		fact("p1", "BUF", "C13", 3),
		fact("p1", "BUF", "C1", 10),
	}
	week := []FactRow{
		fact("p1", "BUF", "C13", 2),
		fact("p1", "BUF", "C1", 5),
	}

	totals := Accumulate(prev, week, Receiving, "222024")
	pct, ok := findFact(totals, "p1", "C14")
	require.True(t, ok)
	require.InDelta(t, 100.0*5/15, pct.Value, 1e-9)
}

func TestAccumulateWeightedAverage(t *testing.T) {
	// YBC/R = running YBC over running Rec
	prev := []FactRow{
		fact("p1", "MIA", "C6", 60),
		fact("p1", "MIA", "C2", 6),
	}
	week := []FactRow{
		fact("p1", "MIA", "C6", 30),
		fact("p1", "MIA", "C2", 4),
	}

	totals := Accumulate(prev, week, Receiving, "222024")
	ybcr, ok := findFact(totals, "p1", "C7")
	require.True(t, ok)
	require.InDelta(t, 9.0, ybcr.Value, 1e-9)
}

func TestAccumulateZeroDenominatorGuard(t *testing.T) {
	prev := []FactRow{fact("p1", "BUF", "C6", 0)}
	week := []FactRow{fact("p1", "BUF", "C6", 0)}

	totals := Accumulate(prev, week, Receiving, "222024")
	ybcr, ok := findFact(totals, "p1", "C7")
	require.True(t, ok)
	require.Equal(t, 0.0, ybcr.Value)
}

func TestAccumulateAverageOfTwo(t *testing.T) {
	prev := []FactRow{fact("p1", "BUF", "C16", 110)}
	week := []FactRow{fact("p1", "BUF", "C16", 90)}

	totals := Accumulate(prev, week, Receiving, "222024")
	rat, ok := findFact(totals, "p1", "C16")
	require.True(t, ok)
	require.Equal(t, 100.0, rat.Value)
}

func TestAccumulateAbsentPlayerContributesZero(t *testing.T) {
	prev := []FactRow{fact("veteran", "BUF", "R2", 120)}
	week := []FactRow{fact("rookie", "MIA", "R2", 45)}

	totals := Accumulate(prev, week, Rushing, "222024")

	vet, ok := findFact(totals, "veteran", "R2")
	require.True(t, ok)
	require.Equal(t, 120.0, vet.Value)
	require.Equal(t, "BUF", vet.Team)

	rook, ok := findFact(totals, "rookie", "R2")
	require.True(t, ok)
	require.Equal(t, 45.0, rook.Value)
	require.Equal(t, "MIA", rook.Team)
}

func TestAccumulateIgnoresForeignCategoryAndNonSummaryCodes(t *testing.T) {
	week := []FactRow{
		fact("p1", "BUF", "D1", 1),
		fact("p1", "BUF", "D4", 25), // Lng, not a summary code
		fact("p1", "BUF", "P3", 300),
	}

	totals := Accumulate(nil, week, Defense, "122024")
	require.Len(t, totals, 1)
	require.Equal(t, "D1", totals[0].Stat)
}

func TestAccumulateDoesNotMutateInputs(t *testing.T) {
	prev := []FactRow{fact("p1", "BUF", "R2", 100)}
	week := []FactRow{fact("p1", "BUF", "R2", 50)}

	_ = Accumulate(prev, week, Rushing, "322024")
	require.Equal(t, 100.0, prev[0].Value)
	require.Equal(t, "w", prev[0].GameID)
	require.Equal(t, 50.0, week[0].Value)
}

func TestMeltPivotRoundTrip(t *testing.T) {
	wide := map[string]float64{"R1": 12, "R2": 88, "R3": 1}

	var long []FactRow
	for code, v := range wide {
		long = append(long, fact("p1", "BUF", code, v))
	}

	summary := map[string]bool{"R1": true, "R2": true, "R3": true}
	back := pivotWide(long, "R", summary)
	require.Len(t, back, 1)
	require.Equal(t, wide, back["p1"].stats)
}
