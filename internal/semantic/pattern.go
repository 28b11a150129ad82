// Package semantic implements the pattern-matching layer that maps free-text
// questions about a game to parameterized SQL templates, plus the executor
// that runs a matched template and formats its result rows.
package semantic

import (
	"fmt"
	"strings"
)

// Pattern is one hand-authored rule in the catalog: a set of trigger
// expressions over lowercased question text, a SQL template with a mandatory
// {game_id} slot (plus optional {team} / {player} slots), and an answer
// template whose {slot} names refer to the SQL result's column names.
// Patterns are immutable once the catalog is built.
type Pattern struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`

	// Triggers are regular expressions matched against the lowercased,
	// trimmed question. At most one capturing group per trigger.
	Triggers []string `yaml:"triggers"`

	SQLTemplate    string `yaml:"sql_template"`
	FormatTemplate string `yaml:"format_template"`

	// MinConfidence is the rule's baseline confidence. Match scoring is
	// coverage-driven (see Matcher); the baseline travels with the rule for
	// front ends that want to display it.
	MinConfidence float64 `yaml:"min_confidence"`

	// RequiresGameContext marks rules that only make sense with a selected
	// game. Every built-in rule sets it.
	RequiresGameContext bool `yaml:"requires_game_context"`
}

// FormatRow renders a result row through the pattern's answer template.
// If any slot has no matching column, it degrades to a raw dump of the row
// mapping rather than failing the answer.
func (p Pattern) FormatRow(row map[string]any) string {
	out, ok := expandTemplate(p.FormatTemplate, row)
	if !ok {
		return fmt.Sprintf("Result: %v", row)
	}
	return out
}

// expandTemplate substitutes {name} slots from vars. Reports false if any
// slot is absent from vars. Literal text is passed through untouched.
func expandTemplate(tpl string, vars map[string]any) (string, bool) {
	var b strings.Builder
	for {
		open := strings.IndexByte(tpl, '{')
		if open < 0 {
			b.WriteString(tpl)
			return b.String(), true
		}
		close := strings.IndexByte(tpl[open:], '}')
		if close < 0 {
			b.WriteString(tpl)
			return b.String(), true
		}
		close += open

		b.WriteString(tpl[:open])
		name := tpl[open+1 : close]
		val, ok := vars[name]
		if !ok {
			return "", false
		}
		b.WriteString(formatValue(val))
		tpl = tpl[close+1:]
	}
}

// formatValue renders a SQL cell the way it reads in an answer: integral
// floats lose the trailing ".0" the driver may hand back, []byte columns
// render as text.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
