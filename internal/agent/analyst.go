// Package agent holds the two answer engines, vision and SQL, and the
// harness that runs them side by side. Every public entry point returns a
// model.AgentResult; none raise across the engine boundary.
package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/internal/store"
	"github.com/courtside-labs/boxscore-cli/pkg/anthropic"
)

// Analyst answers questions by asking the model to synthesize SQL against
// the known schema, then executing whatever comes back verbatim. This is the
// larger of the two interpolation trust boundaries: model-generated SQL runs
// unsanitized against the read-only store.
type Analyst struct {
	client    anthropic.Client
	store     store.GameStore
	model     string
	maxTokens int64
}

// NewAnalyst creates the SQL-synthesis engine.
func NewAnalyst(client anthropic.Client, st store.GameStore, modelID string, maxTokens int64) *Analyst {
	return &Analyst{client: client, store: st, model: modelID, maxTokens: maxTokens}
}

const analystPromptFormat = `You are a SQL expert analyzing NCAA basketball game data.

DATABASE SCHEMA:
%s

CURRENT GAME CONTEXT:
%s
Game ID: %s

USER QUESTION: %s

Generate a SQL query to answer this question. Important rules:
1. Always filter by game_id = '%s'
2. Team names may be partial matches - use LIKE '%%team%%' for flexibility
3. For "2nd most" or ordinal queries, use LIMIT with OFFSET or ROW_NUMBER
4. Common abbreviations: ALA=Alabama, TEX=Texas, DUKE=Duke, UNC=North Carolina, etc.

Respond in this exact format:
SQL: <your sql query here>
EXPLANATION: <brief explanation of what the query does>`

// Ask synthesizes and executes SQL for the question. Always returns a
// result; failures land in the Error field.
func (a *Analyst) Ask(ctx context.Context, question, gameID string) model.AgentResult {
	schema, err := a.store.Schema(ctx)
	if err != nil {
		return model.AgentResult{Error: "Analyst agent error: " + err.Error()}
	}
	sample, err := a.store.GameSample(ctx, gameID)
	if err != nil {
		return model.AgentResult{Error: "Analyst agent error: " + err.Error()}
	}

	prompt := fmt.Sprintf(analystPromptFormat, schema, sample, gameID, question, gameID)

	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return model.AgentResult{Error: "Analyst agent error: " + err.Error()}
	}
	resp.Usage.LogCost(a.model, "analyst")

	sqlText := extractSQL(resp.Text())
	if sqlText == "" {
		return model.AgentResult{Error: "Could not generate SQL query"}
	}

	result, err := a.store.Query(ctx, sqlText)
	if err != nil {
		return model.AgentResult{
			Error:    "SQL execution error: " + err.Error(),
			SQLQuery: sqlText,
		}
	}

	if result.Empty() {
		return model.AgentResult{
			Answer:     "No data found for this query",
			Confidence: 0.5,
			SQLQuery:   sqlText,
		}
	}

	zap.L().Debug("analyst query succeeded",
		zap.String("game_id", gameID),
		zap.Int("rows", len(result.Rows)),
	)

	// The engine asserts high confidence in its own SQL without verifying
	// answer correctness. Known weakness, preserved deliberately.
	return model.AgentResult{
		Answer:     formatGeneric(result),
		Confidence: 0.9,
		SQLQuery:   sqlText,
	}
}

// extractSQL pulls the statement out of a "SQL: ... EXPLANATION: ..." reply.
// All lines from the SQL: marker up to the EXPLANATION: marker (or end of
// text) are joined; code-fence markers are stripped. Empty means no SQL.
func extractSQL(response string) string {
	var (
		sqlLines []string
		inSQL    bool
	)
	for _, line := range strings.Split(response, "\n") {
		upper := strings.ToUpper(strings.TrimSpace(line))
		if strings.HasPrefix(upper, "SQL:") {
			inSQL = true
			if _, content, ok := strings.Cut(line, ":"); ok {
				if content = strings.TrimSpace(content); content != "" {
					sqlLines = append(sqlLines, content)
				}
			}
			continue
		}
		if inSQL {
			if strings.HasPrefix(upper, "EXPLANATION:") {
				break
			}
			sqlLines = append(sqlLines, line)
		}
	}

	sqlText := strings.TrimSpace(strings.Join(sqlLines, " "))
	sqlText = strings.ReplaceAll(sqlText, "```sql", "")
	sqlText = strings.ReplaceAll(sqlText, "```", "")
	return strings.TrimSpace(sqlText)
}

// formatGeneric renders a result without a pattern's answer template:
// column-driven, not template-driven. One row becomes "value - stat col"
// pairs; several rows become "first: second" lines capped at five.
func formatGeneric(result *store.Result) string {
	if len(result.Rows) == 1 && len(result.Columns) >= 2 {
		row := result.Rows[0]
		parts := make([]string, 0, len(result.Columns))
		for i, col := range result.Columns {
			if i == 0 {
				parts = append(parts, cellString(row[i]))
			} else {
				parts = append(parts, cellString(row[i])+" "+col)
			}
		}
		return strings.Join(parts, " - ")
	}

	n := len(result.Rows)
	if n > 5 {
		n = 5
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		row := result.Rows[i]
		second := ""
		if len(row) > 1 {
			second = cellString(row[1])
		}
		parts = append(parts, cellString(row[0])+": "+second)
	}
	return strings.Join(parts, "; ")
}

func cellString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
