package semantic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_BuiltinsCompile(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	assert.Len(t, c.Patterns(), 30)
}

func TestCatalog_EveryPatternIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Default().Patterns() {
		t.Run(p.Name, func(t *testing.T) {
			assert.NotEmpty(t, p.Name)
			assert.False(t, seen[p.Name], "duplicate pattern name %q", p.Name)
			seen[p.Name] = true

			assert.NotEmpty(t, p.Triggers)
			assert.Contains(t, p.SQLTemplate, "{game_id}")
			assert.NotEmpty(t, p.FormatTemplate)
			assert.True(t, p.RequiresGameContext)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	p, ok := c.Lookup("winning_team")
	require.True(t, ok)
	assert.Equal(t, "team", p.Category)

	_, ok = c.Lookup("no_such_pattern")
	assert.False(t, ok)
}

func TestNewCatalog_BadTrigger(t *testing.T) {
	_, err := NewCatalog(Pattern{
		Name:     "broken",
		Triggers: []string{`(`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestLoadPatternsFile(t *testing.T) {
	raw := `
- name: overtime_check
  description: Whether the game went to overtime
  category: team
  triggers:
    - "overtime"
    - "go to ot"
  sql_template: |
    SELECT status FROM games WHERE game_id = '{game_id}'
  format_template: "Status: {status}"
  min_confidence: 0.9
  requires_game_context: true
`
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	extra, err := LoadPatternsFile(path)
	require.NoError(t, err)
	require.Len(t, extra, 1)
	assert.Equal(t, "overtime_check", extra[0].Name)
	assert.Len(t, extra[0].Triggers, 2)

	c, err := NewCatalog(extra...)
	require.NoError(t, err)
	assert.Len(t, c.Patterns(), 31)

	p, ok := c.Lookup("overtime_check")
	require.True(t, ok)
	assert.Contains(t, p.SQLTemplate, "{game_id}")

	m, ok := c.Match("did the game go to overtime")
	require.True(t, ok)
	assert.Equal(t, "overtime_check", m.Pattern.Name)
}

func TestLoadPatternsFile_Missing(t *testing.T) {
	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadPatternsFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))
	_, err := LoadPatternsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
