package agent

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/internal/semantic"
	"github.com/courtside-labs/boxscore-cli/internal/store"
)

func newComparerFixture(t *testing.T, engine string) (*Comparer, *fakeClient, *fakeGameStore) {
	t.Helper()
	client := &fakeClient{reply: "SQL: SELECT 1\nEXPLANATION: trivial"}
	st := &fakeGameStore{
		result: &store.Result{
			Columns: []string{"winner", "winner_score", "loser", "loser_score"},
			Rows:    [][]any{{"Duke", int64(78), "North Carolina", int64(70)}},
		},
	}
	vision := NewVision(client, "m", 1024)
	analyst := NewAnalyst(client, st, "m", 1024)
	exec := semantic.NewExecutor(semantic.Default(), st)
	return NewComparer(vision, analyst, exec, engine), client, st
}

func TestComparerRun_BothSidesComplete(t *testing.T) {
	c, _, _ := newComparerFixture(t, EngineSemantic)

	// Screenshot is empty so the vision side fails up front; that must not
	// disturb the SQL side.
	game := model.Game{ID: "g1"}
	cmp := c.Run(context.Background(), "who won", game)

	assert.Equal(t, "g1", cmp.GameID)
	assert.Equal(t, "who won", cmp.Question)
	_, err := uuid.Parse(cmp.ID)
	assert.NoError(t, err)

	assert.Equal(t, "No screenshot path provided", cmp.Vision.Error)
	require.Empty(t, cmp.SQL.Error)
	assert.Equal(t, "Duke defeated North Carolina 78-70", cmp.SQL.Answer)
	assert.Equal(t, "winning_team", cmp.SQL.PatternName)

	assert.GreaterOrEqual(t, cmp.Vision.TimeMS, int64(0))
	assert.GreaterOrEqual(t, cmp.SQL.TimeMS, int64(0))
}

func TestComparerRun_SemanticFallsThroughToAnalyst(t *testing.T) {
	c, client, st := newComparerFixture(t, EngineSemantic)
	st.result = &store.Result{Columns: []string{"1"}, Rows: [][]any{{int64(1)}}}

	cmp := c.Run(context.Background(), "tell me something interesting", model.Game{ID: "g1"})

	// No catalog trigger fires, so the analyst synthesizes.
	require.Empty(t, cmp.SQL.Error)
	assert.Empty(t, cmp.SQL.PatternName)
	assert.Equal(t, "SELECT 1", cmp.SQL.SQLQuery)
	assert.Greater(t, client.calls, 0)
}

func TestComparerRun_AnalystEngineSkipsCatalog(t *testing.T) {
	c, _, st := newComparerFixture(t, EngineAnalyst)
	st.result = &store.Result{Columns: []string{"1"}, Rows: [][]any{{int64(1)}}}

	// "who won" would match the catalog, but the analyst engine is forced.
	cmp := c.Run(context.Background(), "who won", model.Game{ID: "g1"})

	require.Empty(t, cmp.SQL.Error)
	assert.Empty(t, cmp.SQL.PatternName)
	assert.Equal(t, "SELECT 1", cmp.SQL.SQLQuery)
}

func TestComparerRun_DefaultEngineIsSemantic(t *testing.T) {
	c, _, _ := newComparerFixture(t, "")
	assert.Equal(t, EngineSemantic, c.engine)
}

func TestTimed_RecoversPanic(t *testing.T) {
	res := timed(func() model.AgentResult {
		panic("boom")
	})
	assert.Equal(t, "agent panic: boom", res.Error)
	assert.GreaterOrEqual(t, res.TimeMS, int64(0))
}

func TestTimed_SetsDuration(t *testing.T) {
	res := timed(func() model.AgentResult {
		return model.AgentResult{Answer: "ok"}
	})
	assert.Equal(t, "ok", res.Answer)
	assert.GreaterOrEqual(t, res.TimeMS, int64(0))
}
