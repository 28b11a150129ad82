package semantic

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/internal/store"
)

// NoDataAnswer is returned when a matched pattern's query runs successfully
// but finds nothing.
const NoDataAnswer = "No data found matching your question"

// noDataConfidence signals "ran successfully but found nothing", distinct
// from a hard failure at 0.0.
const noDataConfidence = 0.3

// maxFormattedRows caps how many rows a multi-row answer spells out.
const maxFormattedRows = 5

// Executor substitutes a match's parameters into its SQL template, runs it
// against the game store, and formats the result rows into an answer.
type Executor struct {
	catalog *Catalog
	store   store.GameStore
}

// NewExecutor creates an Executor over the given catalog and store.
func NewExecutor(catalog *Catalog, st store.GameStore) *Executor {
	return &Executor{catalog: catalog, store: st}
}

// Catalog exposes the executor's catalog for front ends that want to inspect
// which rules exist or which one fired.
func (e *Executor) Catalog() *Catalog {
	return e.catalog
}

// Ask matches the question against the catalog and executes the winner.
// The second return is false when no trigger in the catalog fires; callers
// treat that as "defer to the SQL-synthesis engine", not as an error.
func (e *Executor) Ask(ctx context.Context, question, gameID string) (model.AgentResult, bool) {
	m, ok := e.catalog.Match(question)
	if !ok {
		return model.AgentResult{}, false
	}
	return e.Execute(ctx, m, gameID), true
}

// Execute runs a match against a game. It is total: every failure mode comes
// back as an AgentResult, never an error.
func (e *Executor) Execute(ctx context.Context, m *Match, gameID string) model.AgentResult {
	sqlText, err := m.SQL(gameID)
	if err != nil {
		return model.AgentResult{
			Answer:      "Query error: " + err.Error(),
			Confidence:  0.0,
			SQLQuery:    strings.TrimSpace(m.Pattern.SQLTemplate),
			PatternName: m.Pattern.Name,
		}
	}

	zap.L().Debug("executing pattern query",
		zap.String("pattern", m.Pattern.Name),
		zap.String("game_id", gameID),
		zap.Float64("confidence", m.Confidence),
	)

	result, err := e.store.Query(ctx, sqlText)
	if err != nil {
		return model.AgentResult{
			Answer:      "Query error: " + err.Error(),
			Confidence:  0.0,
			SQLQuery:    strings.TrimSpace(sqlText),
			PatternName: m.Pattern.Name,
		}
	}

	if result.Empty() {
		return model.AgentResult{
			Answer:      NoDataAnswer,
			Confidence:  noDataConfidence,
			SQLQuery:    strings.TrimSpace(sqlText),
			PatternName: m.Pattern.Name,
		}
	}

	var answer string
	if len(result.Rows) == 1 {
		answer = m.Pattern.FormatRow(result.RowMap(0))
	} else {
		n := len(result.Rows)
		if n > maxFormattedRows {
			n = maxFormattedRows
		}
		parts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			parts = append(parts, m.Pattern.FormatRow(result.RowMap(i)))
		}
		answer = strings.Join(parts, "; ")
		if extra := len(result.Rows) - maxFormattedRows; extra > 0 {
			answer += " (and " + strconv.Itoa(extra) + " more)"
		}
	}

	return model.AgentResult{
		Answer:      answer,
		Confidence:  m.Confidence,
		SQLQuery:    strings.TrimSpace(sqlText),
		PatternName: m.Pattern.Name,
	}
}

// buildSQL substitutes {game_id} and extracted params into the SQL template
// by plain string interpolation. There is deliberately no bind-parameter
// boundary here: the store is local and read-only, and preserving the
// template text verbatim is part of the contract. See GameStore.Query.
func buildSQL(template, gameID string, params map[string]string) (string, error) {
	vars := map[string]any{"game_id": gameID}
	for k, v := range params {
		vars[k] = v
	}
	out, ok := expandTemplate(template, vars)
	if !ok {
		return "", eris.Errorf("missing parameter for template slot %s", missingSlot(template, vars))
	}
	return out, nil
}

// missingSlot names the first template slot with no value, for the error text.
func missingSlot(template string, vars map[string]any) string {
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return template
		}
		close := strings.IndexByte(rest[open:], '}')
		if close < 0 {
			return template
		}
		name := rest[open+1 : open+close]
		if _, ok := vars[name]; !ok {
			return "{" + name + "}"
		}
		rest = rest[open+close+1:]
	}
}
