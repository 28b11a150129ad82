package semantic

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog builds a catalog of only the given patterns, bypassing the
// built-ins, for isolation tests.
func testCatalog(t *testing.T, patterns ...Pattern) *Catalog {
	t.Helper()
	compiled := make([][]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		for _, trigger := range p.Triggers {
			compiled[i] = append(compiled[i], regexp.MustCompile(trigger))
		}
	}
	return &Catalog{patterns: patterns, compiled: compiled}
}

func TestMatch_RoutesQuestions(t *testing.T) {
	c := Default()

	tests := []struct {
		question string
		pattern  string
	}{
		{"Who was the top scorer?", "top_scorer_game"},
		{"Who was the lead scorer for Duke?", "top_scorer_team"},
		{"What was the final score?", "final_score"},
		{"Who won?", "winning_team"},
		{"Who had the most rebounds?", "most_rebounds_game"},
		{"Who made the most 3-pointers?", "most_3pt_made"},
		{"Did anyone have a double-double?", "double_double"},
		{"What was the margin of victory?", "point_margin"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			m, ok := c.Match(tt.question)
			require.True(t, ok, "expected a match for %q", tt.question)
			assert.Equal(t, tt.pattern, m.Pattern.Name)
			assert.GreaterOrEqual(t, m.Confidence, 0.70)
			assert.LessOrEqual(t, m.Confidence, 0.95)
		})
	}
}

func TestMatch_NoMatch(t *testing.T) {
	c := Default()

	for _, q := range []string{"", "   ", "hello there"} {
		m, ok := c.Match(q)
		assert.False(t, ok, "question %q should not match", q)
		assert.Nil(t, m)
	}
}

func TestMatch_ConfidenceIsCoverageDriven(t *testing.T) {
	c := Default()

	// "who won" covers the whole short question but a small slice of the
	// long one; same trigger, different coverage, different confidence.
	short, ok := c.Match("Who won?")
	require.True(t, ok)
	long, ok := c.Match("Who won the game last night by any chance?")
	require.True(t, ok)

	assert.Equal(t, short.Pattern.Name, long.Pattern.Name)
	assert.Greater(t, short.Confidence, long.Confidence)
	assert.InDelta(t, 0.70+0.25*(7.0/8.0), short.Confidence, 1e-9)
}

func TestMatch_ConfidenceCap(t *testing.T) {
	c := Default()

	// Trigger consumes the entire question; score caps at 0.95.
	m, ok := c.Match("most points")
	require.True(t, ok)
	assert.Equal(t, "top_scorer_game", m.Pattern.Name)
	assert.InDelta(t, 0.95, m.Confidence, 1e-9)
}

func TestMatch_FirstPatternWinsTies(t *testing.T) {
	c := testCatalog(t,
		Pattern{Name: "first", Triggers: []string{`who won`}, SQLTemplate: "SELECT 1"},
		Pattern{Name: "second", Triggers: []string{`who won`}, SQLTemplate: "SELECT 2"},
	)

	m, ok := c.Match("who won")
	require.True(t, ok)
	assert.Equal(t, "first", m.Pattern.Name)
}

func TestMatch_ExtractsParamsIndependently(t *testing.T) {
	c := Default()

	// The winning trigger here never captures the team; extraction still
	// attaches it from the alias table.
	m, ok := c.Match("Who was the top scorer for Duke?")
	require.True(t, ok)
	assert.Equal(t, "top_scorer_game", m.Pattern.Name)
	assert.Equal(t, "duke", m.Params["team"])
}

func TestMatch_LowercasesBeforeMatching(t *testing.T) {
	c := Default()

	upper, ok := c.Match("WHO WON?")
	require.True(t, ok)
	lower, ok := c.Match("who won?")
	require.True(t, ok)
	assert.Equal(t, lower.Pattern.Name, upper.Pattern.Name)
	assert.Equal(t, lower.Confidence, upper.Confidence)
}

func TestMatchSQL_SubstitutesGameID(t *testing.T) {
	c := Default()

	m, ok := c.Match("who won")
	require.True(t, ok)

	sqlText, err := m.SQL("401806085")
	require.NoError(t, err)
	assert.Contains(t, sqlText, "game_id = '401806085'")
	assert.NotContains(t, sqlText, "{game_id}")
}

func TestMatchSQL_MissingParam(t *testing.T) {
	c := Default()
	p, ok := c.Lookup("top_scorer_team")
	require.True(t, ok)

	m := &Match{Pattern: p, Params: map[string]string{}}
	_, err := m.SQL("g1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing parameter for template slot {team}")
}
