package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pgGameColumns = []string{
	"game_id", "away_team_name", "away_team_abbrev", "away_team_score",
	"home_team_name", "home_team_abbrev", "home_team_score", "status", "game_date", "file_path",
}

// newMockStore returns a pgxmock-backed store plus a screenshots dir holding
// one real file, g1.png.
func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStore, string) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g1.png"), []byte("png"), 0o644))

	return mock, NewPostgresWithPool(mock, dir), dir
}

func TestPostgresListGames(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("SELECT DISTINCT").
		WillReturnRows(pgxmock.NewRows(pgGameColumns).
			AddRow("g1", "Duke", "DUKE", int64(78), "North Carolina", "UNC", int64(70), "FINAL", "2026-02-01", "g1.png").
			AddRow("g2", "Kansas", "KU", int64(65), "Baylor", "BAY", int64(72), "FINAL", "2026-01-15", "missing.png"))

	games, err := st.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1, "game with a missing screenshot file is filtered")
	assert.Equal(t, "g1", games[0].ID)
	assert.FileExists(t, games[0].Screenshot)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetGame(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("WHERE g.game_id = \\$1").
		WithArgs("g1").
		WillReturnRows(pgxmock.NewRows(pgGameColumns).
			AddRow("g1", "Duke", "DUKE", int64(78), "North Carolina", "UNC", int64(70), "FINAL", "2026-02-01", "g1.png"))

	g, err := st.GetGame(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Duke", g.AwayTeam)
	assert.Equal(t, 70, g.HomeScore)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetGame_NotFound(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("WHERE g.game_id = \\$1").
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows(pgGameColumns))

	_, err := st.GetGame(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game not found")
}

func TestPostgresQuery(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("SELECT player_name, points").
		WillReturnRows(pgxmock.NewRows([]string{"player_name", "points"}).
			AddRow("Jalen Smith", int64(24)).
			AddRow("RJ Davis", int64(21)))

	res, err := st.Query(context.Background(), "SELECT player_name, points FROM players")
	require.NoError(t, err)
	assert.Equal(t, []string{"player_name", "points"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Jalen Smith", res.Rows[0][0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQuery_Error(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("SELECT").
		WillReturnError(errors.New(`relation "nonexistent" does not exist`))

	_, err := st.Query(context.Background(), "SELECT * FROM nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestPostgresSchema(t *testing.T) {
	mock, st, _ := newMockStore(t)

	mock.ExpectQuery("information_schema.columns").
		WillReturnRows(pgxmock.NewRows([]string{"table_name", "column_name", "data_type"}).
			AddRow("games", "game_id", "text").
			AddRow("games", "home_team_score", "integer").
			AddRow("players", "player_name", "text"))

	schema, err := st.Schema(context.Background())
	require.NoError(t, err)
	assert.Contains(t, schema, "games:\n  game_id text\n  home_team_score integer")
	assert.Contains(t, schema, "players:\n  player_name text")
}
