package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/courtside-labs/boxscore-cli/internal/agent"
	"github.com/courtside-labs/boxscore-cli/internal/semantic"
	"github.com/courtside-labs/boxscore-cli/internal/store"
	"github.com/courtside-labs/boxscore-cli/pkg/anthropic"
)

// appEnv holds the initialized store, catalog, and agents shared by the
// ask/match/serve commands.
type appEnv struct {
	Store    store.GameStore
	Catalog  *semantic.Catalog
	Executor *semantic.Executor
	Comparer *agent.Comparer
}

// Close releases resources held by the environment.
func (e *appEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initStore opens the configured game database backend.
func initStore(ctx context.Context) (store.GameStore, error) {
	switch cfg.Store.Driver {
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.Path, cfg.Screenshots.Dir)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, cfg.Screenshots.Dir)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initCatalog builds the pattern catalog, appending extra patterns from the
// configured YAML file when one is set.
func initCatalog() (*semantic.Catalog, error) {
	var extra []semantic.Pattern
	if cfg.Semantic.PatternsFile != "" {
		patterns, err := semantic.LoadPatternsFile(cfg.Semantic.PatternsFile)
		if err != nil {
			return nil, err
		}
		extra = patterns
		zap.L().Info("loaded extra patterns",
			zap.String("file", cfg.Semantic.PatternsFile),
			zap.Int("count", len(patterns)),
		)
	}
	return semantic.NewCatalog(extra...)
}

// initEnv wires the store, catalog, anthropic client, and both engines.
// Callers should defer env.Close().
func initEnv(ctx context.Context) (*appEnv, error) {
	if cfg.Anthropic.Key == "" {
		return nil, eris.New("BOXSCORE_ANTHROPIC_KEY is not set")
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := initCatalog()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	client := anthropic.NewClient(cfg.Anthropic.Key,
		anthropic.WithRateLimit(cfg.Anthropic.RequestsPerMinute),
	)

	executor := semantic.NewExecutor(catalog, st)
	analyst := agent.NewAnalyst(client, st, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	vision := agent.NewVision(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)

	return &appEnv{
		Store:    st,
		Catalog:  catalog,
		Executor: executor,
		Comparer: agent.NewComparer(vision, analyst, executor, cfg.Compare.SQLEngine),
	}, nil
}
