package semantic

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/internal/store"
)

// fakeStore returns a scripted result for Query and records the SQL it saw.
type fakeStore struct {
	result *store.Result
	err    error
	gotSQL string
}

func (f *fakeStore) ListGames(ctx context.Context) ([]model.Game, error) { return nil, nil }
func (f *fakeStore) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return &model.Game{ID: id}, nil
}
func (f *fakeStore) Schema(ctx context.Context) (string, error)             { return "", nil }
func (f *fakeStore) GameSample(ctx context.Context, id string) (string, error) { return "", nil }
func (f *fakeStore) Close() error                                           { return nil }

func (f *fakeStore) Query(ctx context.Context, sqlText string) (*store.Result, error) {
	f.gotSQL = sqlText
	return f.result, f.err
}

func TestExecutorAsk_SingleRow(t *testing.T) {
	st := &fakeStore{result: &store.Result{
		Columns: []string{"winner", "winner_score", "loser", "loser_score"},
		Rows:    [][]any{{"Duke", int64(78), "North Carolina", int64(70)}},
	}}
	exec := NewExecutor(Default(), st)

	res, ok := exec.Ask(context.Background(), "who won", "401")
	require.True(t, ok)
	assert.Equal(t, "Duke defeated North Carolina 78-70", res.Answer)
	assert.Equal(t, "winning_team", res.PatternName)
	assert.Contains(t, res.SQLQuery, "game_id = '401'")
	assert.Contains(t, st.gotSQL, "game_id = '401'")
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestExecutorAsk_NoPattern(t *testing.T) {
	exec := NewExecutor(Default(), &fakeStore{})

	_, ok := exec.Ask(context.Background(), "tell me something interesting", "401")
	assert.False(t, ok)
}

func TestExecutorExecute_NoRows(t *testing.T) {
	st := &fakeStore{result: &store.Result{Columns: []string{"winner"}}}
	exec := NewExecutor(Default(), st)

	res, ok := exec.Ask(context.Background(), "who won", "401")
	require.True(t, ok)
	assert.Equal(t, NoDataAnswer, res.Answer)
	assert.Equal(t, 0.3, res.Confidence)
	assert.NotEmpty(t, res.SQLQuery)
}

func TestExecutorExecute_QueryError(t *testing.T) {
	st := &fakeStore{err: errors.New("no such table: games")}
	exec := NewExecutor(Default(), st)

	res, ok := exec.Ask(context.Background(), "who won", "401")
	require.True(t, ok)
	assert.Contains(t, res.Answer, "Query error:")
	assert.Contains(t, res.Answer, "no such table")
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, "winning_team", res.PatternName)
}

func TestExecutorExecute_MissingParam(t *testing.T) {
	c := Default()
	p, ok := c.Lookup("top_scorer_team")
	require.True(t, ok)

	st := &fakeStore{}
	exec := NewExecutor(c, st)

	res := exec.Execute(context.Background(), &Match{Pattern: p, Confidence: 0.9}, "401")
	assert.Contains(t, res.Answer, "Query error: missing parameter for template slot {team}")
	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, st.gotSQL, "query must not run with an unfilled template")
}

func TestExecutorExecute_MultiRowCapped(t *testing.T) {
	rows := make([][]any, 7)
	for i := range rows {
		rows[i] = []any{fmt.Sprintf("Player %d", i+1), int64(20 - i), int64(10), int64(5), "Duke"}
	}
	st := &fakeStore{result: &store.Result{
		Columns: []string{"player_name", "points", "rebounds", "assists", "team_name"},
		Rows:    rows,
	}}
	c := Default()
	p, ok := c.Lookup("double_double")
	require.True(t, ok)

	exec := NewExecutor(c, st)
	res := exec.Execute(context.Background(), &Match{Pattern: p, Confidence: 0.9}, "401")

	assert.Contains(t, res.Answer, "Player 1")
	assert.Contains(t, res.Answer, "Player 5")
	assert.NotContains(t, res.Answer, "Player 6")
	assert.Contains(t, res.Answer, " (and 2 more)")
	assert.Equal(t, 0.9, res.Confidence)
}

func TestExecutorExecute_TwoRowsJoined(t *testing.T) {
	st := &fakeStore{result: &store.Result{
		Columns: []string{"player_name", "points", "rebounds", "assists", "team_name"},
		Rows: [][]any{
			{"Player 1", int64(18), int64(12), int64(3), "Duke"},
			{"Player 2", int64(14), int64(11), int64(2), "North Carolina"},
		},
	}}
	c := Default()
	p, ok := c.Lookup("double_double")
	require.True(t, ok)

	exec := NewExecutor(c, st)
	res := exec.Execute(context.Background(), &Match{Pattern: p, Confidence: 0.9}, "401")

	assert.Contains(t, res.Answer, "; ")
	assert.NotContains(t, res.Answer, "more)")
}
