package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"

	"github.com/fortuna/gridiron/internal/stats"
)

// schema holds the star-schema DDL, applied idempotently on startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS dim_games (
		team_tag   VARCHAR(16) PRIMARY KEY,
		game_id    VARCHAR(16) NOT NULL,
		team       VARCHAR(64) NOT NULL,
		opponent   VARCHAR(64) NOT NULL,
		game_date  VARCHAR(32),
		game_time  VARCHAR(32),
		stadium    VARCHAR(128)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_players (
		player_id  VARCHAR(16),
		name       VARCHAR(64) NOT NULL,
		team       VARCHAR(8)  NOT NULL,
		number     VARCHAR(8),
		age        INT,
		position   VARCHAR(8),
		games      INT,
		starts     INT,
		weight     VARCHAR(8),
		height     VARCHAR(8),
		college    VARCHAR(128),
		birth_date VARCHAR(32),
		years      INT,
		starter    BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (player_id, team)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_stats (
		player   VARCHAR(64) NOT NULL,
		team     VARCHAR(8)  NOT NULL,
		game_id  VARCHAR(16) NOT NULL,
		stat_id  VARCHAR(8)  NOT NULL,
		value    DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (player, game_id, stat_id)
	)`,
	`CREATE TABLE IF NOT EXISTS season_totals (
		player   VARCHAR(64) NOT NULL,
		team     VARCHAR(8)  NOT NULL,
		game_id  VARCHAR(16) NOT NULL,
		stat_id  VARCHAR(8)  NOT NULL,
		value    DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (player, game_id, stat_id)
	)`,
	`CREATE TABLE IF NOT EXISTS scoring_plays (
		score_id  VARCHAR(24) PRIMARY KEY,
		game_id   VARCHAR(16) NOT NULL,
		quarter   INT NOT NULL,
		team      VARCHAR(8) NOT NULL,
		play_type VARCHAR(16) NOT NULL,
		scorer    VARCHAR(64),
		passer    VARCHAR(64),
		method    VARCHAR(24),
		yards     INT,
		good      BOOLEAN NOT NULL
	)`,
}

// PostgresSink persists the dataset to PostgreSQL.
type PostgresSink struct {
	conn *sql.DB
	log  *zap.Logger
}

// NewPostgresSink opens the connection, verifies it, and ensures the
// schema exists.
func NewPostgresSink(dsn string, log *zap.Logger) (*PostgresSink, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("export: opening database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: pinging database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("export: applying schema: %w", err)
		}
	}

	return &PostgresSink{conn: db, log: log}, nil
}

// Write stores the entire dataset in one transaction. Rows are upserted so
// re-running a season overwrites rather than duplicates.
func (s *PostgresSink) Write(ctx context.Context, ds *Dataset) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.writeFacts(ctx, tx, "fact_stats", ds.Facts); err != nil {
		return err
	}
	if err := s.writeFacts(ctx, tx, "season_totals", ds.SeasonTotals); err != nil {
		return err
	}
	if err := s.writeGames(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.writePlayers(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.writeScoring(ctx, tx, ds); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: committing: %w", err)
	}
	s.log.Info("wrote dataset to postgres",
		zap.Int("facts", len(ds.Facts)),
		zap.Int("season_totals", len(ds.SeasonTotals)))
	return nil
}

// Close closes the database connection.
func (s *PostgresSink) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *PostgresSink) writeFacts(ctx context.Context, tx *sql.Tx, table string, rows []stats.FactRow) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (player, team, game_id, stat_id, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player, game_id, stat_id)
		DO UPDATE SET team = EXCLUDED.team, value = EXCLUDED.value
	`, table)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("export: preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Player, r.Team, r.GameID, r.Stat, r.Value); err != nil {
			return fmt.Errorf("export: inserting into %s: %w", table, err)
		}
	}
	return nil
}

func (s *PostgresSink) writeGames(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	query := `
		INSERT INTO dim_games (team_tag, game_id, team, opponent, game_date, game_time, stadium)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (team_tag)
		DO UPDATE SET team = EXCLUDED.team, opponent = EXCLUDED.opponent,
			game_date = EXCLUDED.game_date, game_time = EXCLUDED.game_time,
			stadium = EXCLUDED.stadium
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("export: preparing dim_games insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range ds.Games {
		if _, err := stmt.ExecContext(ctx, g.TeamTag, g.GameID, g.Team, g.Opponent,
			g.Date, g.Time, g.Stadium); err != nil {
			return fmt.Errorf("export: inserting into dim_games: %w", err)
		}
	}
	return nil
}

func (s *PostgresSink) writePlayers(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	query := `
		INSERT INTO dim_players (player_id, name, team, number, age, position,
			games, starts, weight, height, college, birth_date, years, starter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (player_id, team)
		DO UPDATE SET name = EXCLUDED.name, age = EXCLUDED.age,
			games = EXCLUDED.games, starts = EXCLUDED.starts,
			years = EXCLUDED.years, starter = EXCLUDED.starter
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("export: preparing dim_players insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range ds.Players {
		if _, err := stmt.ExecContext(ctx, p.PlayerID, p.Name, p.Team, p.Number,
			p.Age, p.Position, p.Games, p.Starts, p.Weight, p.Height, p.College,
			p.BirthDate, p.Years, p.Starter); err != nil {
			return fmt.Errorf("export: inserting into dim_players: %w", err)
		}
	}
	return nil
}

func (s *PostgresSink) writeScoring(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	query := `
		INSERT INTO scoring_plays (score_id, game_id, quarter, team, play_type,
			scorer, passer, method, yards, good)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (score_id)
		DO UPDATE SET quarter = EXCLUDED.quarter, team = EXCLUDED.team,
			play_type = EXCLUDED.play_type, scorer = EXCLUDED.scorer,
			passer = EXCLUDED.passer, method = EXCLUDED.method,
			yards = EXCLUDED.yards, good = EXCLUDED.good
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("export: preparing scoring_plays insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range ds.ScoringPlays {
		var yards sql.NullInt64
		if p.HasYards {
			yards = sql.NullInt64{Int64: int64(p.Yards), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, p.ScoreID, p.GameID, p.Quarter, p.Team,
			string(p.Type), p.Scorer, p.Passer, string(p.Method), yards, p.Good); err != nil {
			return fmt.Errorf("export: inserting into scoring_plays: %w", err)
		}
	}
	return nil
}
