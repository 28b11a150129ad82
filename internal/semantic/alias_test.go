package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTeam(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"Did the Blue Devils win?", "duke"},
		{"How many points did Duke score?", "duke"},
		{"how did the zags shoot", "gonzaga"},
		{"What were UNC's total rebounds?", "north carolina"},
		{"Tar Heels bench points", "north carolina"},
		{"points for tamu", "texas a&m"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, ok := ResolveTeam(tt.question)
			require.True(t, ok, "expected a team in %q", tt.question)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTeam_WholeWordOnly(t *testing.T) {
	// "utahan" contains "utah" but is not a whole-word hit.
	_, ok := ResolveTeam("the utahan crowd went home")
	assert.False(t, ok)
}

func TestResolveTeam_NoTeam(t *testing.T) {
	_, ok := ResolveTeam("who scored the most points")
	assert.False(t, ok)
}

func TestResolveTeam_TableOrderBreaksNicknameTies(t *testing.T) {
	// Several schools share "tigers" and "wildcats"; the first table entry
	// carrying the alias wins, not the most famous holder.
	got, ok := ResolveTeam("how did the tigers do")
	require.True(t, ok)
	assert.Equal(t, "clemson", got)

	got, ok = ResolveTeam("wildcats top scorer")
	require.True(t, ok)
	assert.Equal(t, "arizona", got)
}

func TestResolvePlayer(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"How many points did Jalen Smith score?", "Jalen Smith"},
		{"What did Cooper have tonight?", "Cooper"},
		{"Show me Tyrese Proctor's stats", "Tyrese Proctor"},
		{"points for Malik Reneau", "Malik Reneau"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, ok := ResolvePlayer(tt.question)
			require.True(t, ok, "expected a player in %q", tt.question)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePlayer_RequiresCapitalizedName(t *testing.T) {
	// Extraction keys on capitalization; a lowercased question yields nothing.
	_, ok := ResolvePlayer("how many points did jalen smith score?")
	assert.False(t, ok)

	_, ok = ResolvePlayer("who won the game")
	assert.False(t, ok)
}
