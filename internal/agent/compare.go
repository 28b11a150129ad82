package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/internal/semantic"
)

// SQL engine selection for the comparison's SQL side.
const (
	EngineSemantic = "semantic"
	EngineAnalyst  = "analyst"
)

// Comparer runs the vision engine and one SQL engine concurrently for the
// same question and collects both results. The two paths share no mutable
// state and neither's failure can block the other; the caller blocks until
// both complete.
type Comparer struct {
	vision   *Vision
	analyst  *Analyst
	semantic *semantic.Executor
	engine   string
}

// NewComparer wires the harness. engine selects the SQL side: EngineSemantic
// routes through the pattern catalog (falling through to the analyst when no
// trigger fires), EngineAnalyst always synthesizes.
func NewComparer(vision *Vision, analyst *Analyst, sem *semantic.Executor, engine string) *Comparer {
	if engine == "" {
		engine = EngineSemantic
	}
	return &Comparer{vision: vision, analyst: analyst, semantic: sem, engine: engine}
}

// Run asks both engines and returns their side-by-side results. Once
// dispatched, both paths run to completion; no cancellation or timeout is
// imposed at this layer.
func (c *Comparer) Run(ctx context.Context, question string, game model.Game) model.Comparison {
	cmp := model.Comparison{
		ID:       uuid.New().String(),
		GameID:   game.ID,
		Question: question,
	}

	g := &errgroup.Group{}
	g.SetLimit(2)

	g.Go(func() error {
		cmp.Vision = timed(func() model.AgentResult {
			return c.askVision(ctx, question, game)
		})
		return nil
	})
	g.Go(func() error {
		cmp.SQL = timed(func() model.AgentResult {
			return c.askSQL(ctx, question, game.ID)
		})
		return nil
	})
	// Both closures are total; Wait only synchronizes.
	_ = g.Wait()

	zap.L().Info("comparison complete",
		zap.String("comparison_id", cmp.ID),
		zap.String("game_id", game.ID),
		zap.Int64("vision_ms", cmp.Vision.TimeMS),
		zap.Int64("sql_ms", cmp.SQL.TimeMS),
	)
	return cmp
}

func (c *Comparer) askVision(ctx context.Context, question string, game model.Game) model.AgentResult {
	return c.vision.Ask(ctx, question, game.Screenshot)
}

func (c *Comparer) askSQL(ctx context.Context, question, gameID string) model.AgentResult {
	if c.engine == EngineSemantic {
		if res, ok := c.semantic.Ask(ctx, question, gameID); ok {
			return res
		}
		zap.L().Debug("no pattern matched, deferring to analyst",
			zap.String("game_id", gameID),
		)
	}
	return c.analyst.Ask(ctx, question, gameID)
}

// timed measures one path from dispatch to completion and converts a panic
// into an error result so the other path is never taken down.
func timed(fn func() model.AgentResult) (out model.AgentResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = model.AgentResult{Error: fmt.Sprintf("agent panic: %v", r)}
		}
		out.TimeMS = time.Since(start).Milliseconds()
	}()
	return fn()
}
