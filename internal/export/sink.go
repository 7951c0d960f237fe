// Package export delivers the assembled star schema to its destinations:
// an Excel workbook mirroring the analyst-facing layout, and PostgreSQL for
// anything downstream that prefers SQL.
package export

import (
	"context"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/roster"
	"github.com/fortuna/gridiron/internal/stats"
)

// Dataset is one season's worth of output tables.
type Dataset struct {
	Year         int
	Facts        []stats.FactRow
	SeasonTotals []stats.FactRow
	Games        []boxscore.Row
	Players      []roster.Player
	ScoringPlays []boxscore.ScoringPlay
}

// Sink writes a dataset to one destination.
type Sink interface {
	Write(ctx context.Context, ds *Dataset) error
	Close() error
}
