package semantic

import "strings"

// Match is the outcome of routing one question through the catalog: the
// winning pattern, any extracted parameters, and a coverage-derived
// confidence. Computed fresh per question, never cached.
type Match struct {
	Pattern    Pattern
	Params     map[string]string
	Confidence float64
}

// Match scores every (pattern, trigger) pair against the lowercased, trimmed
// question and returns the single best hit, or false when nothing in the
// catalog fires.
//
// The per-trigger score is min(0.95, 0.70 + 0.25*coverage), where coverage is
// the fraction of the question the trigger's match consumes. Comparison is
// strictly-greater, so the first-seen hit wins ties and catalog order is the
// tie-break policy. Team and player extraction run against the raw question
// independently of the winning trigger, so any rule may pick up a team or
// player parameter even when its SQL template never references the slot.
func (c *Catalog) Match(question string) (*Match, bool) {
	lower := strings.ToLower(strings.TrimSpace(question))
	if lower == "" {
		return nil, false
	}

	var (
		best      *Pattern
		bestScore float64
	)
	for i := range c.patterns {
		for _, re := range c.compiled[i] {
			hit := re.FindString(lower)
			if hit == "" {
				continue
			}
			coverage := float64(len(hit)) / float64(len(lower))
			score := 0.70 + 0.25*coverage
			if score > 0.95 {
				score = 0.95
			}
			if score > bestScore {
				bestScore = score
				best = &c.patterns[i]
			}
		}
	}
	if best == nil {
		return nil, false
	}

	params := make(map[string]string)
	if team, ok := ResolveTeam(question); ok {
		params["team"] = team
	}
	if player, ok := ResolvePlayer(question); ok {
		params["player"] = player
	}

	return &Match{
		Pattern:    *best,
		Params:     params,
		Confidence: bestScore,
	}, true
}

// SQL builds the executable query for this match against one game.
func (m *Match) SQL(gameID string) (string, error) {
	return buildSQL(m.Pattern.SQLTemplate, gameID, m.Params)
}
