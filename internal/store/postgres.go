package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/courtside-labs/boxscore-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the postgres store uses. pgxmock
// satisfies it for tests.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements GameStore against a postgres database holding the
// same games/players/screenshots schema.
type PostgresStore struct {
	pool           Pool
	screenshotsDir string
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString, screenshotsDir string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, screenshotsDir: screenshotsDir}, nil
}

// NewPostgresWithPool wires an existing pool, used by tests.
func NewPostgresWithPool(pool Pool, screenshotsDir string) *PostgresStore {
	return &PostgresStore{pool: pool, screenshotsDir: screenshotsDir}
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ListGames(ctx context.Context) ([]model.Game, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT `+gameColumns+`
		FROM games g
		INNER JOIN screenshots s ON g.game_id = s.game_id
		WHERE g.status LIKE '%FINAL%'
		ORDER BY g.game_date DESC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list games")
	}
	defer rows.Close()

	var games []model.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		path, ok := resolveScreenshot(s.screenshotsDir, g.Screenshot)
		if !ok {
			continue
		}
		g.Screenshot = path
		games = append(games, *g)
	}
	return games, eris.Wrap(rows.Err(), "postgres: list games iterate")
}

func (s *PostgresStore) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+gameColumns+`
		FROM games g
		INNER JOIN screenshots s ON g.game_id = s.game_id
		WHERE g.game_id = $1
		LIMIT 1`,
		gameID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get game")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, eris.Wrap(err, "postgres: get game iterate")
		}
		return nil, eris.New("game not found")
	}
	g, err := scanGame(rows)
	if err != nil {
		return nil, err
	}
	if path, ok := resolveScreenshot(s.screenshotsDir, g.Screenshot); ok {
		g.Screenshot = path
	} else {
		g.Screenshot = ""
	}
	return g, nil
}

func (s *PostgresStore) Schema(ctx context.Context) (string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: schema")
	}
	defer rows.Close()

	var (
		parts   []string
		current string
		cols    []string
	)
	flush := func() {
		if current != "" {
			parts = append(parts, current+":\n"+strings.Join(cols, "\n"))
		}
	}
	for rows.Next() {
		var table, column, dataType string
		if err := rows.Scan(&table, &column, &dataType); err != nil {
			return "", eris.Wrap(err, "postgres: scan schema row")
		}
		if table != current {
			flush()
			current = table
			cols = nil
		}
		cols = append(cols, "  "+column+" "+dataType)
	}
	flush()
	return strings.Join(parts, "\n\n"), eris.Wrap(rows.Err(), "postgres: schema iterate")
}

func (s *PostgresStore) GameSample(ctx context.Context, gameID string) (string, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	teamRows, err := s.pool.Query(ctx,
		`SELECT DISTINCT team_name FROM players WHERE game_id = $1`, gameID,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: sample teams")
	}
	defer teamRows.Close()

	var teams []string
	for teamRows.Next() {
		var t string
		if err := teamRows.Scan(&t); err != nil {
			return "", eris.Wrap(err, "postgres: scan team")
		}
		teams = append(teams, t)
	}
	if err := teamRows.Err(); err != nil {
		return "", eris.Wrap(err, "postgres: sample teams iterate")
	}

	playerRows, err := s.pool.Query(ctx,
		`SELECT player_name, team_name, points, rebounds, assists
		 FROM players WHERE game_id = $1 LIMIT 3`, gameID,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: sample players")
	}
	defer playerRows.Close()

	var players []string
	for playerRows.Next() {
		var (
			name, team        string
			pts, reb, assists int
		)
		if err := playerRows.Scan(&name, &team, &pts, &reb, &assists); err != nil {
			return "", eris.Wrap(err, "postgres: scan player")
		}
		players = append(players, fmt.Sprintf("%s (%s) %d pts %d reb %d ast", name, team, pts, reb, assists))
	}
	if err := playerRows.Err(); err != nil {
		return "", eris.Wrap(err, "postgres: sample players iterate")
	}

	return formatSample(g, teams, players), nil
}

func (s *PostgresStore) Query(ctx context.Context, sqlText string) (*Result, error) {
	rows, err := s.pool.Query(ctx, sqlText)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query")
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := &Result{Columns: make([]string, len(fields))}
	for i, f := range fields {
		result.Columns[i] = f.Name
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, eris.Wrap(err, "postgres: row values")
		}
		result.Rows = append(result.Rows, vals)
	}
	return result, eris.Wrap(rows.Err(), "postgres: query iterate")
}
