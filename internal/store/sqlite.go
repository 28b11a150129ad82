package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/courtside-labs/boxscore-cli/internal/model"
)

// SQLiteStore implements GameStore using modernc.org/sqlite.
type SQLiteStore struct {
	db             *sql.DB
	screenshotsDir string
}

// NewSQLite opens the game database at the given path. The store never
// writes, so the connection is pinned to query-only mode.
func NewSQLite(dsn, screenshotsDir string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA query_only=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db, screenshotsDir: screenshotsDir}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const gameColumns = `g.game_id, g.away_team_name, g.away_team_abbrev, g.away_team_score,
	g.home_team_name, g.home_team_abbrev, g.home_team_score, g.status, g.game_date, s.file_path`

func (s *SQLiteStore) ListGames(ctx context.Context) ([]model.Game, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT `+gameColumns+`
		FROM games g
		INNER JOIN screenshots s ON g.game_id = s.game_id
		WHERE g.status LIKE '%FINAL%'
		ORDER BY g.game_date DESC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list games")
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
	return games, eris.Wrap(rows.Err(), "sqlite: list games iterate")
}

func (s *SQLiteStore) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+gameColumns+`
		FROM games g
		INNER JOIN screenshots s ON g.game_id = s.game_id
		WHERE g.game_id = ?
		LIMIT 1`,
		gameID,
	)
	g, err := scanGame(row)
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

func (s *SQLiteStore) Schema(ctx context.Context) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite%' ORDER BY name`,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: list tables")
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", eris.Wrap(err, "sqlite: scan table name")
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return "", eris.Wrap(err, "sqlite: list tables iterate")
	}

	var parts []string
	for _, table := range tables {
		cols, err := s.tableColumns(ctx, table)
		if err != nil {
			return "", err
		}
		parts = append(parts, table+":\n"+strings.Join(cols, "\n"))
	}
	return strings.Join(parts, "\n\n"), nil
}

func (s *SQLiteStore) tableColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: table_info %s", table)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, eris.Wrapf(err, "sqlite: scan column of %s", table)
		}
		cols = append(cols, "  "+name+" "+typ)
	}
	return cols, eris.Wrapf(rows.Err(), "sqlite: table_info %s iterate", table)
}

func (s *SQLiteStore) GameSample(ctx context.Context, gameID string) (string, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	teamRows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT team_name FROM players WHERE game_id = ?`, gameID,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: sample teams")
	}
	defer teamRows.Close()

	var teams []string
	for teamRows.Next() {
		var t string
		if err := teamRows.Scan(&t); err != nil {
			return "", eris.Wrap(err, "sqlite: scan team")
		}
		teams = append(teams, t)
	}
	if err := teamRows.Err(); err != nil {
		return "", eris.Wrap(err, "sqlite: sample teams iterate")
	}

	playerRows, err := s.db.QueryContext(ctx,
		`SELECT player_name, team_name, points, rebounds, assists
		 FROM players WHERE game_id = ? LIMIT 3`, gameID,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: sample players")
	}
	defer playerRows.Close()

	var players []string
	for playerRows.Next() {
		var (
			name, team        string
			pts, reb, assists int
		)
		if err := playerRows.Scan(&name, &team, &pts, &reb, &assists); err != nil {
			return "", eris.Wrap(err, "sqlite: scan player")
		}
		players = append(players, fmt.Sprintf("%s (%s) %d pts %d reb %d ast", name, team, pts, reb, assists))
	}
	if err := playerRows.Err(); err != nil {
		return "", eris.Wrap(err, "sqlite: sample players iterate")
	}

	return formatSample(g, teams, players), nil
}

func (s *SQLiteStore) Query(ctx context.Context, sqlText string) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: columns")
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan row")
		}
		result.Rows = append(result.Rows, vals)
	}
	return result, eris.Wrap(rows.Err(), "sqlite: query iterate")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanGame(row scannable) (*model.Game, error) {
	var (
		g                      model.Game
		awayTeam, awayAbbrev   sql.NullString
		homeTeam, homeAbbrev   sql.NullString
		awayScore, homeScore   sql.NullInt64
		status, date, filePath sql.NullString
	)
	err := row.Scan(&g.ID, &awayTeam, &awayAbbrev, &awayScore,
		&homeTeam, &homeAbbrev, &homeScore, &status, &date, &filePath)
	if err == sql.ErrNoRows {
		return nil, eris.New("game not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan game")
	}

	g.AwayTeam = orDefault(awayTeam, "Away")
	g.AwayAbbrev = orDefault(awayAbbrev, "AWY")
	g.AwayScore = int(awayScore.Int64)
	g.HomeTeam = orDefault(homeTeam, "Home")
	g.HomeAbbrev = orDefault(homeAbbrev, "HME")
	g.HomeScore = int(homeScore.Int64)
	g.Status = orDefault(status, "Final")
	g.Date = date.String
	g.Screenshot = filePath.String
	return &g, nil
}

func orDefault(s sql.NullString, fallback string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return fallback
}
