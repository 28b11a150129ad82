// Package store provides read-only access to the pre-populated game database.
// Two drivers are supported: sqlite (default, local file) and postgres.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/courtside-labs/boxscore-cli/internal/model"
)

// GameStore is the read-only query surface both answer engines share.
//
// Query executes arbitrary SQL text. Both the templated pattern path and the
// model-synthesized path build that text by direct string interpolation with
// no bind parameters. That is a deliberate trust-boundary decision: the store
// is local, read-only, and low-stakes. Do not route untrusted input here
// without revisiting that assumption.
type GameStore interface {
	// ListGames returns all finished games that have an existing screenshot
	// file, most recent first.
	ListGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, gameID string) (*model.Game, error)

	// Schema returns the literal column schema of every table, for grounding
	// model-synthesized SQL.
	Schema(ctx context.Context) (string, error)
	// GameSample returns a short textual sample of one game's rows (teams
	// present, a few player lines) for the same purpose.
	GameSample(ctx context.Context, gameID string) (string, error)

	Query(ctx context.Context, sqlText string) (*Result, error)
	Close() error
}

// Result holds a query result as an ordered column list plus raw rows.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the query returned no rows.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// RowMap returns row i as a column-name-to-value mapping view.
func (r *Result) RowMap(i int) map[string]any {
	m := make(map[string]any, len(r.Columns))
	for j, col := range r.Columns {
		if j < len(r.Rows[i]) {
			m[col] = r.Rows[i][j]
		}
	}
	return m
}

// resolveScreenshot resolves a screenshot path against baseDir and reports
// whether the file exists. Games whose screenshot is missing are not eligible
// for querying.
func resolveScreenshot(baseDir, path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// formatSample renders the game context block shared by both drivers.
func formatSample(g *model.Game, teams []string, players []string) string {
	return fmt.Sprintf("Game: %s (%s) %d vs %s (%s) %d\nTeams in data: %s\nSample players: %s",
		g.AwayTeam, g.AwayAbbrev, g.AwayScore,
		g.HomeTeam, g.HomeAbbrev, g.HomeScore,
		strings.Join(teams, ", "),
		strings.Join(players, "; "),
	)
}
