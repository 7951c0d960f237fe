// Package season drives a full scrape: rosters first, then week by week
// every boxscore, building the fact tables and running totals as it goes,
// and finally handing the assembled dataset to the configured sinks.
package season

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/export"
	"github.com/fortuna/gridiron/internal/htmltable"
	"github.com/fortuna/gridiron/internal/refdata"
	"github.com/fortuna/gridiron/internal/roster"
	"github.com/fortuna/gridiron/internal/stats"
)

// Fetcher retrieves page HTML. Satisfied by fetch.Provider.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// Config controls the extent of a run.
type Config struct {
	Year  int
	Weeks int
	// Categories defaults to the full registry when empty.
	Categories []stats.Category
}

// Runner executes one season scrape end to end. It owns the fetcher and
// closes it when the run finishes.
type Runner struct {
	fetcher Fetcher
	teams   refdata.Teams
	sinks   []export.Sink
	builder *stats.Builder
	log     *zap.Logger
	cfg     Config
}

// NewRunner wires a runner from its collaborators.
func NewRunner(fetcher Fetcher, teams refdata.Teams, sinks []export.Sink, cfg Config, log *zap.Logger) *Runner {
	if len(cfg.Categories) == 0 {
		cfg.Categories = stats.Categories
	}
	return &Runner{
		fetcher: fetcher,
		teams:   teams,
		sinks:   sinks,
		builder: stats.NewBuilder(log),
		log:     log,
		cfg:     cfg,
	}
}

// Run scrapes the configured weeks and writes the dataset to every sink.
// Any parse or fetch failure aborts the run; a partially scraped season is
// worse than none, since the running totals would silently undercount.
func (r *Runner) Run(ctx context.Context) error {
	defer r.fetcher.Close()

	players, index, err := r.loadRosters(ctx)
	if err != nil {
		return err
	}

	ds := &export.Dataset{Year: r.cfg.Year, Players: players}
	totals := make(map[string][]stats.FactRow, len(r.cfg.Categories))

	for week := 1; week <= r.cfg.Weeks; week++ {
		weekFacts, err := r.scrapeWeek(ctx, week, index, ds)
		if err != nil {
			return err
		}

		weekTag := fmt.Sprintf("%d%d", week, r.cfg.Year)
		for _, cat := range r.cfg.Categories {
			totals[cat.ID] = stats.Accumulate(totals[cat.ID], weekFacts[cat.ID], cat, weekTag)
			ds.SeasonTotals = append(ds.SeasonTotals, totals[cat.ID]...)
		}
		r.log.Info("accumulated week",
			zap.Int("week", week),
			zap.Int("facts", len(ds.Facts)))
	}

	for _, sink := range r.sinks {
		if err := sink.Write(ctx, ds); err != nil {
			return fmt.Errorf("season: writing dataset: %w", err)
		}
	}
	return nil
}

// loadRosters fetches every team's roster page and builds the player
// dimension plus the name-to-id substitution index.
func (r *Runner) loadRosters(ctx context.Context) ([]roster.Player, *roster.Index, error) {
	names := make([]string, 0, len(r.teams))
	for name := range r.teams {
		names = append(names, name)
	}
	sort.Strings(names)

	var players []roster.Player
	for _, name := range names {
		team := r.teams[name]
		html, err := r.fetcher.Fetch(ctx, roster.URL(team.URL, r.cfg.Year))
		if err != nil {
			return nil, nil, fmt.Errorf("season: fetching %s roster: %w", team.Abbr, err)
		}
		doc, err := htmltable.Parse(html)
		if err != nil {
			return nil, nil, fmt.Errorf("season: parsing %s roster page: %w", team.Abbr, err)
		}
		teamPlayers, err := roster.ParseTeamRoster(doc, team.Abbr, r.log)
		if err != nil {
			return nil, nil, err
		}
		players = append(players, teamPlayers...)
	}
	r.log.Info("loaded rosters",
		zap.Int("teams", len(names)),
		zap.Int("players", len(players)))
	return players, roster.NewIndex(players, r.log), nil
}

// scrapeWeek fetches the week index, then every linked boxscore, returning
// the week's fact rows grouped by category id. Game and scoring rows land
// directly on the dataset.
func (r *Runner) scrapeWeek(ctx context.Context, week int, index *roster.Index, ds *export.Dataset) (map[string][]stats.FactRow, error) {
	html, err := r.fetcher.Fetch(ctx, boxscore.WeekURL(r.cfg.Year, week))
	if err != nil {
		return nil, fmt.Errorf("season: fetching week %d index: %w", week, err)
	}
	doc, err := htmltable.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("season: parsing week %d index: %w", week, err)
	}
	links := boxscore.GameLinks(doc)
	if len(links) == 0 {
		return nil, fmt.Errorf("season: week %d index lists no games", week)
	}
	r.log.Info("scraping week", zap.Int("week", week), zap.Int("games", len(links)))

	weekFacts := make(map[string][]stats.FactRow, len(r.cfg.Categories))
	for i, link := range links {
		if err := r.scrapeGame(ctx, link, week, i+1, index, ds, weekFacts); err != nil {
			return nil, err
		}
	}
	return weekFacts, nil
}

func (r *Runner) scrapeGame(ctx context.Context, link string, week, gameIndex int, index *roster.Index, ds *export.Dataset, weekFacts map[string][]stats.FactRow) error {
	html, err := r.fetcher.Fetch(ctx, link)
	if err != nil {
		return fmt.Errorf("season: fetching boxscore %s: %w", link, err)
	}
	doc, err := htmltable.Parse(html)
	if err != nil {
		return fmt.Errorf("season: parsing boxscore %s: %w", link, err)
	}

	game, err := boxscore.ParseGame(doc, week, gameIndex, r.cfg.Year, r.teams)
	if err != nil {
		return err
	}
	ds.Games = append(ds.Games, game.Rows()...)

	plays, err := boxscore.ParseScoringPlays(doc, game)
	if err != nil {
		return err
	}
	ds.ScoringPlays = append(ds.ScoringPlays, plays...)

	for _, cat := range r.cfg.Categories {
		facts, err := r.builder.BuildFacts(doc, cat, game.TeamTags)
		if err != nil {
			return fmt.Errorf("season: game %s %s stats: %w", game.ID, cat.Name, err)
		}
		facts = index.Substitute(facts)
		ds.Facts = append(ds.Facts, facts...)
		weekFacts[cat.ID] = append(weekFacts[cat.ID], facts...)
	}

	r.log.Debug("scraped game",
		zap.String("game_id", game.ID),
		zap.String("home", game.HomeTeam),
		zap.String("away", game.AwayTeam))
	return nil
}
