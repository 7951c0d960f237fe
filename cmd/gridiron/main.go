package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/export"
	"github.com/fortuna/gridiron/internal/fetch"
	"github.com/fortuna/gridiron/internal/refdata"
	"github.com/fortuna/gridiron/internal/season"
	"github.com/fortuna/gridiron/internal/stats"
)

const (
	appName    = "gridiron"
	appVersion = "1.0.0"
)

func main() {
	var (
		year     = flag.Int("year", getEnvInt("GRIDIRON_YEAR", time.Now().Year()), "Season year to scrape")
		weeks    = flag.Int("weeks", getEnvInt("GRIDIRON_WEEKS", 18), "Number of regular-season weeks")
		output   = flag.String("out", getEnv("GRIDIRON_OUT", "season.xlsx"), "Workbook output path")
		dsn      = flag.String("dsn", getEnv("GRIDIRON_DSN", ""), "PostgreSQL DSN (empty disables the database sink)")
		redisURL = flag.String("redis-url", getEnv("GRIDIRON_REDIS_URL", ""), "Redis URL for the page cache (empty disables caching)")
		teamsRef = flag.String("teams", getEnv("GRIDIRON_TEAMS", ""), "Team reference JSON (empty uses the embedded table)")
		statsRef = flag.String("stat-ids", getEnv("GRIDIRON_STAT_IDS", ""), "Stat-id reference JSON (empty uses the embedded table)")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting", zap.String("app", appName), zap.String("version", appVersion),
		zap.Int("year", *year), zap.Int("weeks", *weeks))

	// Cross-check the stat registry before touching the network; a drifted
	// reference table would mislabel every fact row.
	if err := stats.ValidateRegistry(stats.Categories); err != nil {
		logger.Fatal("invalid stat registry", zap.Error(err))
	}
	statIDs, err := refdata.LoadStatIDs(*statsRef)
	if err != nil {
		logger.Fatal("loading stat-id reference", zap.Error(err))
	}
	if err := statIDs.CheckRegistry(stats.Categories); err != nil {
		logger.Fatal("stat-id reference does not match registry", zap.Error(err))
	}
	teams, err := refdata.LoadTeams(*teamsRef)
	if err != nil {
		logger.Fatal("loading team reference", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cache *fetch.PageCache
	if *redisURL != "" {
		cache, err = fetch.NewPageCache(*redisURL, logger)
		if err != nil {
			logger.Fatal("connecting page cache", zap.Error(err))
		}
		defer cache.Close()
	}

	provider, err := fetch.NewProvider(ctx, cache, logger)
	if err != nil {
		logger.Fatal("initializing page provider", zap.Error(err))
	}

	sinks := []export.Sink{export.NewWorkbookSink(*output, logger)}
	if *dsn != "" {
		pg, err := export.NewPostgresSink(*dsn, logger)
		if err != nil {
			logger.Fatal("connecting database sink", zap.Error(err))
		}
		defer pg.Close()
		sinks = append(sinks, pg)
	}

	runner := season.NewRunner(provider, teams, sinks, season.Config{
		Year:  *year,
		Weeks: *weeks,
	}, logger)

	if err := runner.Run(ctx); err != nil {
		logger.Fatal("season scrape failed", zap.Error(err))
	}
	logger.Info("season scrape completed", zap.Int("year", *year))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
