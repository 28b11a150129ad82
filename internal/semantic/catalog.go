package semantic

import (
	"os"
	"regexp"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, immutable collection of patterns with their
// triggers compiled. Order matters: the matcher's strictly-greater scoring
// means earlier patterns win ties.
type Catalog struct {
	patterns []Pattern
	compiled [][]*regexp.Regexp
}

// NewCatalog builds a catalog from the built-in patterns followed by any
// extras, compiling every trigger. A trigger that fails to compile is a
// configuration error, reported up front.
func NewCatalog(extra ...Pattern) (*Catalog, error) {
	patterns := make([]Pattern, 0, len(builtinPatterns)+len(extra))
	patterns = append(patterns, builtinPatterns...)
	patterns = append(patterns, extra...)

	compiled := make([][]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = make([]*regexp.Regexp, len(p.Triggers))
		for j, trigger := range p.Triggers {
			re, err := regexp.Compile(trigger)
			if err != nil {
				return nil, eris.Wrapf(err, "catalog: pattern %q trigger %d", p.Name, j)
			}
			compiled[i][j] = re
		}
	}
	return &Catalog{patterns: patterns, compiled: compiled}, nil
}

// Default returns the catalog of built-in patterns.
func Default() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		// Built-in triggers are compile-checked by tests.
		panic(err)
	}
	return c
}

// Patterns returns the catalog entries in order.
func (c *Catalog) Patterns() []Pattern {
	return c.patterns
}

// Lookup returns the pattern with the given name.
func (c *Catalog) Lookup(name string) (Pattern, bool) {
	for _, p := range c.patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// LoadPatternsFile reads extra patterns from a YAML file. Entries are
// appended after the built-ins, so they only fire when they out-cover every
// built-in trigger.
func LoadPatternsFile(path string) ([]Pattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}
	var patterns []Pattern
	if err := yaml.Unmarshal(raw, &patterns); err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}
	return patterns, nil
}

// builtinPatterns is the hand-authored rule table: individual player stats,
// team stats, comparative, and roster categories.
var builtinPatterns = []Pattern{
	// Individual player stats

	{
		Name:        "top_scorer_game",
		Description: "Find the top scorer in a game",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:top|leading|lead|most|highest).*scor`,
			`(?:top|leading|lead|highest).*scor`,
			`who scored (?:the )?most`,
			`leading scorer`,
			`lead scorer`,
			`most points`,
			`who (?:was|is) the (?:top|lead|best) scorer`,
		},
		SQLTemplate: `
			SELECT player_name, points, team_name, rebounds, assists
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY points DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} led all scorers with {points} points ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "top_scorer_team",
		Description: "Find the top scorer for a specific team",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:top|leading|lead|most).*scor.*(?:for|on)\s+\w+`,
			`(?:\w+)(?:'s)?\s+(?:top|leading|lead|best)\s+scorer`,
			`who led (\w+) in (?:points|scoring)`,
			`lead scorer (?:for|on) (\w+)`,
			`(?:top|lead|best) scorer (?:for|on) (\w+)`,
			`who (?:was|is) the lead scorer for (\w+)`,
		},
		SQLTemplate: `
			SELECT player_name, points, team_name, rebounds, assists
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			ORDER BY points DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} led {team_name} with {points} points",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_rebounds_game",
		Description: "Find player with most rebounds in game",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading|highest).*rebounds?`,
			`(?:most|leading).*rebounds?`,
			`rebound.*leader`,
			`who led.*rebounds`,
		},
		SQLTemplate: `
			SELECT player_name, rebounds, team_name, offensive_rebounds, defensive_rebounds
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY rebounds DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} grabbed {rebounds} rebounds ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_rebounds_team",
		Description: "Find player with most rebounds for a team",
		Category:    "individual",
		Triggers: []string{
			`who led (\w+) in rebounds`,
			`(\w+)(?:'s)? (?:top|leading) rebounder`,
			`most rebounds (?:for|on) (\w+)`,
		},
		SQLTemplate: `
			SELECT player_name, rebounds, team_name, offensive_rebounds, defensive_rebounds
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			ORDER BY rebounds DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} led {team_name} with {rebounds} rebounds",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_assists_game",
		Description: "Find player with most assists in game",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading|highest).*assists?`,
			`(?:most|leading).*assists?`,
			`assist.*leader`,
			`who (?:led|had).*assists`,
		},
		SQLTemplate: `
			SELECT player_name, assists, team_name, points
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY assists DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} dished out {assists} assists ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_assists_team",
		Description: "Find player with most assists for a team",
		Category:    "individual",
		Triggers: []string{
			`who led (\w+) in assists`,
			`(\w+)(?:'s)? assist leader`,
			`most assists (?:for|on) (\w+)`,
		},
		SQLTemplate: `
			SELECT player_name, assists, team_name, points
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			ORDER BY assists DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} led {team_name} with {assists} assists",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_steals",
		Description: "Find player with most steals",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading).*steals?`,
			`(?:most|leading).*steals?`,
			`steal.*leader`,
		},
		SQLTemplate: `
			SELECT player_name, steals, team_name
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY steals DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} had {steals} steals ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_blocks",
		Description: "Find player with most blocks",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading).*blocks?`,
			`(?:most|leading).*blocks?`,
			`block.*leader`,
			`who blocked.*most`,
		},
		SQLTemplate: `
			SELECT player_name, blocks, team_name
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY blocks DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} had {blocks} blocks ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_turnovers",
		Description: "Find player with most turnovers",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading).*turnovers?`,
			`(?:most|leading).*turnovers?`,
			`who turned.*over.*most`,
		},
		SQLTemplate: `
			SELECT player_name, turnovers, team_name
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY turnovers DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} had {turnovers} turnovers ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_3pt_made",
		Description: "Find player with most 3-pointers made",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading).*(?:3|three).*(?:pointer|pt|point)`,
			`(?:most|leading).*(?:3|three).*(?:pointer|pt|made)`,
			`(?:3|three).*point.*leader`,
			`who made.*most.*(?:3|three)`,
			`most (?:3|three)s`,
		},
		SQLTemplate: `
			SELECT player_name, fg3_made, fg3_attempted, team_name
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY fg3_made DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} made {fg3_made} three-pointers ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_3pt_team",
		Description: "Find player with most 3-pointers for a team",
		Category:    "individual",
		Triggers: []string{
			`who (?:made|hit|shot).*most.*(?:3|three).*(?:for|on) (\w+)`,
			`(\w+)(?:'s)? (?:3|three).*point.*leader`,
			`most (?:3|three).*(?:for|on) (\w+)`,
		},
		SQLTemplate: `
			SELECT player_name, fg3_made, fg3_attempted, team_name
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			ORDER BY fg3_made DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} led {team_name} with {fg3_made} three-pointers",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "best_fg_pct",
		Description: "Find player with best FG% (min 5 attempts)",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*best.*(?:fg|field goal|shooting).*(?:pct|percent|%)`,
			`best.*shooter`,
			`highest.*(?:fg|field goal).*(?:pct|percent)`,
			`most efficient.*shooter`,
		},
		SQLTemplate: `
			SELECT player_name, fg_made, fg_attempted,
			       ROUND(CAST(fg_made AS FLOAT) / fg_attempted * 100, 1) as fg_pct,
			       team_name
			FROM players
			WHERE game_id = '{game_id}'
			  AND fg_attempted >= 5
			ORDER BY fg_pct DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} shot {fg_pct}% ({fg_made}-{fg_attempted}) from the field ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_minutes",
		Description: "Find player with most minutes played",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|longest).*minutes`,
			`(?:most|longest).*minutes`,
			`who played.*(?:most|longest)`,
			`most playing time`,
		},
		SQLTemplate: `
			SELECT player_name, minutes, team_name, points
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY minutes DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} played {minutes} minutes ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "double_double",
		Description: "Find players with double-doubles",
		Category:    "individual",
		Triggers: []string{
			`(?:did anyone|who).*(?:get|have|record).*double.*double`,
			`double.*double`,
			`any double.*double`,
		},
		SQLTemplate: `
			SELECT player_name, points, rebounds, assists, team_name
			FROM players
			WHERE game_id = '{game_id}'
			  AND (
			    (points >= 10 AND rebounds >= 10) OR
			    (points >= 10 AND assists >= 10) OR
			    (rebounds >= 10 AND assists >= 10)
			  )`,
		FormatTemplate:      "{player_name} had a double-double with {points} points and {rebounds} rebounds ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "most_fouls",
		Description: "Find player with most fouls",
		Category:    "individual",
		Triggers: []string{
			`(?:who|which player).*(?:most|leading).*fouls?`,
			`(?:most|leading).*fouls?`,
			`foul.*trouble`,
		},
		SQLTemplate: `
			SELECT player_name, fouls, team_name, minutes
			FROM players
			WHERE game_id = '{game_id}'
			ORDER BY fouls DESC
			LIMIT 1`,
		FormatTemplate:      "{player_name} had {fouls} fouls ({team_name})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},

	// Team stats

	{
		Name:        "final_score",
		Description: "Get the final score of the game",
		Category:    "team",
		Triggers: []string{
			`(?:what|final).*score`,
			`(?:score|result).*(?:game|match)`,
			`how (?:did|does).*(?:end|finish)`,
			`final.*(?:score|result)`,
		},
		SQLTemplate: `
			SELECT away_team_name, away_team_score, home_team_name, home_team_score
			FROM games
			WHERE game_id = '{game_id}'`,
		FormatTemplate:      "{away_team_name} {away_team_score} - {home_team_name} {home_team_score}",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "winning_team",
		Description: "Find which team won",
		Category:    "team",
		Triggers: []string{
			`who won`,
			`which team won`,
			`winner`,
			`(?:did|does) (\w+) win`,
		},
		SQLTemplate: `
			SELECT
			    CASE WHEN home_team_score > away_team_score
			         THEN home_team_name ELSE away_team_name END as winner,
			    CASE WHEN home_team_score > away_team_score
			         THEN home_team_score ELSE away_team_score END as winner_score,
			    CASE WHEN home_team_score > away_team_score
			         THEN away_team_name ELSE home_team_name END as loser,
			    CASE WHEN home_team_score > away_team_score
			         THEN away_team_score ELSE home_team_score END as loser_score
			FROM games
			WHERE game_id = '{game_id}'`,
		FormatTemplate:      "{winner} defeated {loser} {winner_score}-{loser_score}",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "point_margin",
		Description: "Find the margin of victory",
		Category:    "team",
		Triggers: []string{
			`(?:margin|difference).*(?:victory|points|score)`,
			`(?:by how (?:many|much)|win by)`,
			`(?:how (?:close|big)).*(?:game|win|loss)`,
			`point.*(?:margin|difference|spread)`,
		},
		SQLTemplate: `
			SELECT
			    ABS(home_team_score - away_team_score) as margin,
			    CASE WHEN home_team_score > away_team_score
			         THEN home_team_name ELSE away_team_name END as winner,
			    CASE WHEN home_team_score > away_team_score
			         THEN away_team_name ELSE home_team_name END as loser,
			    home_team_score, away_team_score
			FROM games
			WHERE game_id = '{game_id}'`,
		FormatTemplate:      "{winner} won by {margin} points",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_total_points",
		Description: "Get total points for a specific team",
		Category:    "team",
		Triggers: []string{
			`how many points (?:did|does) (\w+) (?:score|have)`,
			`(\w+)(?:'s)? (?:total )?points`,
			`(?:total|final) points (?:for|of) (\w+)`,
		},
		SQLTemplate: `
			SELECT
			    CASE WHEN LOWER(home_team_name) LIKE '%{team}%'
			         THEN home_team_name ELSE away_team_name END as team_name,
			    CASE WHEN LOWER(home_team_name) LIKE '%{team}%'
			         THEN home_team_score ELSE away_team_score END as points
			FROM games
			WHERE game_id = '{game_id}'`,
		FormatTemplate:      "{team_name} scored {points} points",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_rebounds",
		Description: "Get total rebounds for a team",
		Category:    "team",
		Triggers: []string{
			`how many rebounds (?:did|does) (\w+) (?:have|get)`,
			`(\w+)(?:'s)? (?:total )?rebounds`,
			`team rebounds (?:for|of) (\w+)`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(rebounds) as total_rebounds,
			       SUM(offensive_rebounds) as offensive_reb,
			       SUM(defensive_rebounds) as defensive_reb
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			GROUP BY team_name`,
		FormatTemplate:      "{team_name} had {total_rebounds} total rebounds ({offensive_reb} offensive, {defensive_reb} defensive)",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_assists",
		Description: "Get total assists for a team",
		Category:    "team",
		Triggers: []string{
			`how many assists (?:did|does) (\w+) (?:have|get)`,
			`(\w+)(?:'s)? (?:total )?assists`,
			`team assists (?:for|of) (\w+)`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(assists) as total_assists
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			GROUP BY team_name`,
		FormatTemplate:      "{team_name} had {total_assists} assists",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_fg_pct",
		Description: "Get field goal percentage for a team",
		Category:    "team",
		Triggers: []string{
			`(?:what|how).*(\w+)(?:'s)?.*(?:field goal|fg|shooting).*(?:pct|percent|%)`,
			`(\w+).*shot.*(?:field|from the field)`,
			`team.*(?:fg|shooting).*(?:pct|percent)`,
		},
		SQLTemplate: `
			SELECT team_name,
			       SUM(fg_made) as fg_made,
			       SUM(fg_attempted) as fg_attempted,
			       ROUND(CAST(SUM(fg_made) AS FLOAT) / SUM(fg_attempted) * 100, 1) as fg_pct
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			GROUP BY team_name`,
		FormatTemplate:      "{team_name} shot {fg_pct}% from the field ({fg_made}-{fg_attempted})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_3pt_pct",
		Description: "Get 3-point percentage for a team",
		Category:    "team",
		Triggers: []string{
			`(?:what|how).*(\w+)(?:'s)?.*(?:3|three).*(?:point|pt).*(?:pct|percent|%)`,
			`(\w+).*shot.*(?:3|three)`,
			`team.*(?:3|three).*(?:pct|percent)`,
		},
		SQLTemplate: `
			SELECT team_name,
			       SUM(fg3_made) as fg3_made,
			       SUM(fg3_attempted) as fg3_attempted,
			       ROUND(CAST(SUM(fg3_made) AS FLOAT) / SUM(fg3_attempted) * 100, 1) as fg3_pct
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			GROUP BY team_name`,
		FormatTemplate:      "{team_name} shot {fg3_pct}% from three ({fg3_made}-{fg3_attempted})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "team_turnovers",
		Description: "Get total turnovers for a team",
		Category:    "team",
		Triggers: []string{
			`how many turnovers (?:did|does) (\w+) (?:have|commit)`,
			`(\w+)(?:'s)? (?:total )?turnovers`,
			`team turnovers (?:for|of) (\w+)`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(turnovers) as total_turnovers
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			GROUP BY team_name`,
		FormatTemplate:      "{team_name} committed {total_turnovers} turnovers",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "bench_points",
		Description: "Get bench scoring for a team",
		Category:    "team",
		Triggers: []string{
			`bench (?:points|scoring)`,
			`(?:non-starters?|reserves?).*(?:points|score)`,
			`how many points.*bench`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(points) as bench_points
			FROM players
			WHERE game_id = '{game_id}'
			  AND starter = 0
			GROUP BY team_name
			ORDER BY bench_points DESC`,
		FormatTemplate:      "{team_name} bench scored {bench_points} points",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},

	// Comparative

	{
		Name:        "better_shooting",
		Description: "Compare field goal percentages",
		Category:    "comparative",
		Triggers: []string{
			`(?:which|who).*(?:team)?.*(?:shot|shoot).*better`,
			`(?:better|best).*(?:shooting|shooter)`,
			`(?:compare|comparison).*shooting`,
			`(?:who|which).*(?:more|higher).*(?:fg|field goal).*(?:pct|percent)`,
		},
		SQLTemplate: `
			SELECT team_name,
			       SUM(fg_made) as fg_made,
			       SUM(fg_attempted) as fg_attempted,
			       ROUND(CAST(SUM(fg_made) AS FLOAT) / SUM(fg_attempted) * 100, 1) as fg_pct
			FROM players
			WHERE game_id = '{game_id}'
			GROUP BY team_name
			ORDER BY fg_pct DESC`,
		FormatTemplate:      "{team_name} shot better at {fg_pct}% ({fg_made}-{fg_attempted})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "more_rebounds_compare",
		Description: "Compare rebounds between teams",
		Category:    "comparative",
		Triggers: []string{
			`(?:which|who).*(?:team)?.*(?:more|most).*rebounds?`,
			`(?:out)?rebound`,
			`(?:compare|comparison).*rebounds?`,
			`(?:rebounding).*(?:edge|advantage)`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(rebounds) as total_rebounds
			FROM players
			WHERE game_id = '{game_id}'
			GROUP BY team_name
			ORDER BY total_rebounds DESC`,
		FormatTemplate:      "{team_name} won the rebounding battle with {total_rebounds} boards",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "more_turnovers_compare",
		Description: "Compare turnovers between teams",
		Category:    "comparative",
		Triggers: []string{
			`(?:which|who).*(?:team)?.*(?:more|most|fewer|less).*turnovers?`,
			`turnover.*(?:battle|comparison|diff)`,
			`(?:better|worse).*(?:at )?(?:taking care|protecting)`,
		},
		SQLTemplate: `
			SELECT team_name, SUM(turnovers) as total_turnovers
			FROM players
			WHERE game_id = '{game_id}'
			GROUP BY team_name
			ORDER BY total_turnovers ASC`,
		FormatTemplate:      "{team_name} was cleaner with the ball ({total_turnovers} turnovers)",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "close_game",
		Description: "Determine if game was close",
		Category:    "comparative",
		Triggers: []string{
			`(?:was|is).*(?:this|the|it).*(?:close|tight).*game`,
			`(?:close|tight).*(?:game|contest)`,
			`(?:how close|margin)`,
		},
		SQLTemplate: `
			SELECT
			    away_team_name, away_team_score,
			    home_team_name, home_team_score,
			    ABS(home_team_score - away_team_score) as margin
			FROM games
			WHERE game_id = '{game_id}'`,
		FormatTemplate:      "The game was decided by {margin} points ({away_team_name} {away_team_score} - {home_team_name} {home_team_score})",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
	{
		Name:        "starters_for_team",
		Description: "Get starters for a team",
		Category:    "roster",
		Triggers: []string{
			`who started (?:for|on) (\w+)`,
			`(\w+)(?:'s)? (?:starting )?(?:lineup|five|starters)`,
			`starters (?:for|on) (\w+)`,
		},
		SQLTemplate: `
			SELECT player_name, position, points, rebounds, assists
			FROM players
			WHERE game_id = '{game_id}'
			  AND LOWER(team_name) LIKE '%{team}%'
			  AND starter = 1
			ORDER BY points DESC`,
		FormatTemplate:      "{player_name} ({position}) started with {points} pts, {rebounds} reb, {assists} ast",
		MinConfidence:       0.9,
		RequiresGameContext: true,
	},
}
