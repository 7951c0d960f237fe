package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegistry(t *testing.T) {
	require.NoError(t, ValidateRegistry(Categories))
}

func TestValidateRegistryMissingRule(t *testing.T) {
	cat := Category{
		Name:         "broken",
		ID:           "X",
		TableID:      "x_table",
		Columns:      []ColumnSpec{{"Player", KindText}, {"Tm", KindText}, {"A", KindInt}},
		ValueVars:    []string{"A"},
		StatCodes:    map[string]string{"A": "X1"},
		SummaryCodes: []string{"X1"},
	}
	err := ValidateRegistry([]Category{cat})
	require.ErrorContains(t, err, "no aggregation rule")
}

func TestValidateRegistryUnknownDerivedOperand(t *testing.T) {
	cat := Category{
		Name:    "broken",
		ID:      "X",
		TableID: "x_table",
		Columns: []ColumnSpec{{"Player", KindText}, {"Tm", KindText}, {"A", KindInt}},
		Derived: []DerivedColumn{{Name: "B", Op: OpSum, A: "A", B: "Missing"}},
	}
	err := ValidateRegistry([]Category{cat})
	require.ErrorContains(t, err, "unknown columns")
}

func TestValidateRegistryRatioRuleOperands(t *testing.T) {
	cat := Category{
		Name:         "broken",
		ID:           "X",
		TableID:      "x_table",
		Columns:      []ColumnSpec{{"Player", KindText}, {"Tm", KindText}, {"A", KindInt}},
		ValueVars:    []string{"A"},
		StatCodes:    map[string]string{"A": "X1"},
		SummaryCodes: []string{"X1"},
		AggRules: map[string]AggRule{
			"X1": {Kind: AggPercentage, Num: "X1", Den: "X9"},
		},
	}
	err := ValidateRegistry([]Category{cat})
	require.ErrorContains(t, err, "unknown codes")
}

func TestValidateRegistryPrefixMismatch(t *testing.T) {
	cat := Category{
		Name:      "broken",
		ID:        "X",
		TableID:   "x_table",
		Columns:   []ColumnSpec{{"Player", KindText}, {"Tm", KindText}, {"A", KindInt}},
		ValueVars: []string{"A"},
		StatCodes: map[string]string{"A": "Y1"},
	}
	err := ValidateRegistry([]Category{cat})
	require.ErrorContains(t, err, "prefix")
}
