package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRow(t *testing.T) {
	p := Pattern{FormatTemplate: "{player_name} led all scorers with {points} points ({team_name})"}

	got := p.FormatRow(map[string]any{
		"player_name": "Jalen Smith",
		"points":      int64(24),
		"team_name":   "Duke",
	})
	assert.Equal(t, "Jalen Smith led all scorers with 24 points (Duke)", got)
}

func TestFormatRow_MissingColumnFallsBackToRawDump(t *testing.T) {
	p := Pattern{FormatTemplate: "{player_name} scored {points}"}

	got := p.FormatRow(map[string]any{"points": int64(24)})
	assert.Equal(t, "Result: map[points:24]", got)
}

func TestFormatRow_ValueRendering(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"integral float drops decimal", float64(22.0), "22"},
		{"fractional float kept", float64(45.5), "45.5"},
		{"bytes render as text", []byte("Duke"), "Duke"},
		{"nil renders empty", nil, ""},
		{"int64 passthrough", int64(7), "7"},
		{"string passthrough", "Final", "Final"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pattern{FormatTemplate: "{v}"}
			assert.Equal(t, tt.want, p.FormatRow(map[string]any{"v": tt.val}))
		})
	}
}

func TestExpandTemplate_LiteralBracesWithoutClose(t *testing.T) {
	// An unterminated brace is literal text, not a slot.
	out, ok := expandTemplate("dangling {brace", map[string]any{})
	assert.True(t, ok)
	assert.Equal(t, "dangling {brace", out)
}
