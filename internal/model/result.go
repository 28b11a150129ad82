// Package model defines the shared value types exchanged between the answer
// engines, the game store, and the CLI/HTTP surfaces.
package model

// AgentResult is the common output contract for both answer engines. One is
// constructed per question per engine and is immutable after construction.
// If Error is set, Answer is not authoritative.
type AgentResult struct {
	Answer      string  `json:"answer,omitempty"`
	Confidence  float64 `json:"confidence"`
	TimeMS      int64   `json:"time_ms"`
	Error       string  `json:"error,omitempty"`
	SQLQuery    string  `json:"sql_query,omitempty"`
	PatternName string  `json:"pattern_name,omitempty"`
	Screenshot  string  `json:"screenshot,omitempty"`
}

// OK reports whether the engine produced an authoritative answer.
func (r AgentResult) OK() bool {
	return r.Error == "" && r.Answer != ""
}

// Comparison holds the side-by-side results of one question run through both
// engines. Errors from one engine never suppress the other's result.
type Comparison struct {
	ID       string      `json:"id"`
	GameID   string      `json:"game_id"`
	Question string      `json:"question"`
	Vision   AgentResult `json:"vision"`
	SQL      AgentResult `json:"sql"`
}
