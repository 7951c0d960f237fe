package stats

import (
	"sort"

	"go.uber.org/zap"
)

// checkShape verifies that every expected column is present. Missing columns
// mean the source layout changed and the table is unusable, so that is
// fatal. Surplus columns are forward-compatible noise: retained, reported at
// warn level only.
func checkShape(log *zap.Logger, category string, actual []string, expected []string) error {
	have := make(map[string]bool, len(actual))
	for _, c := range actual {
		have[c] = true
	}

	var missing []string
	want := make(map[string]bool, len(expected))
	for _, c := range expected {
		want[c] = true
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnsError{Category: category, Missing: missing}
	}

	var surplus []string
	for _, c := range actual {
		if !want[c] {
			surplus = append(surplus, c)
		}
	}
	if len(surplus) > 0 {
		log.Warn("table has unexpected columns, retaining them",
			zap.String("category", category),
			zap.Strings("columns", surplus))
	}
	return nil
}
