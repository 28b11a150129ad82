package semantic

import (
	"regexp"
	"strings"
)

// TeamAlias maps a canonical team key (the value substituted into SQL
// predicates) to the surface forms fans actually type.
type TeamAlias struct {
	Canonical string
	Aliases   []string
}

// teamAliases is scanned in order; the first entry with any matching alias
// wins. Overlapping nicknames ("wildcats", "tigers", "bulldogs") therefore
// resolve by table order, not specificity.
var teamAliases = []TeamAlias{
	// ACC
	{"duke", []string{"duke", "blue devils"}},
	{"wake forest", []string{"wake", "wake forest", "demon deacons"}},
	{"north carolina", []string{"unc", "carolina", "tar heels", "north carolina"}},
	{"virginia", []string{"uva", "virginia", "cavaliers", "wahoos"}},
	{"nc state", []string{"nc state", "wolfpack", "north carolina state"}},
	{"clemson", []string{"clemson", "tigers"}},
	{"louisville", []string{"louisville", "cardinals"}},
	{"syracuse", []string{"syracuse", "orange"}},
	{"pittsburgh", []string{"pitt", "pittsburgh", "panthers"}},
	{"boston college", []string{"bc", "boston college", "eagles"}},
	{"miami", []string{"miami", "hurricanes"}},
	{"georgia tech", []string{"georgia tech", "gt", "yellow jackets"}},
	{"notre dame", []string{"notre dame", "irish", "fighting irish"}},
	{"florida state", []string{"florida state", "fsu", "seminoles"}},

	// Big 12
	{"texas", []string{"texas", "longhorns", "ut"}},
	{"byu", []string{"byu", "cougars", "brigham young"}},
	{"utah", []string{"utah", "utes"}},
	{"colorado", []string{"colorado", "buffaloes", "buffs", "cu"}},
	{"arizona", []string{"arizona", "wildcats", "zona"}},
	{"arizona state", []string{"arizona state", "asu", "sun devils"}},
	{"tcu", []string{"tcu", "horned frogs"}},
	{"baylor", []string{"baylor", "bears"}},
	{"kansas", []string{"kansas", "jayhawks", "ku"}},
	{"kansas state", []string{"kansas state", "k-state", "wildcats"}},
	{"oklahoma state", []string{"oklahoma state", "okst", "cowboys"}},
	{"iowa state", []string{"iowa state", "isu", "cyclones"}},
	{"west virginia", []string{"west virginia", "wvu", "mountaineers"}},
	{"texas tech", []string{"texas tech", "ttu", "red raiders"}},
	{"cincinnati", []string{"cincinnati", "bearcats"}},
	{"houston", []string{"houston", "cougars", "uh"}},
	{"ucf", []string{"ucf", "knights", "central florida"}},

	// SEC
	{"alabama", []string{"alabama", "bama", "crimson tide"}},
	{"auburn", []string{"auburn", "tigers"}},
	{"arkansas", []string{"arkansas", "razorbacks", "hogs"}},
	{"tennessee", []string{"tennessee", "vols", "volunteers"}},
	{"kentucky", []string{"kentucky", "uk", "wildcats"}},
	{"florida", []string{"florida", "gators", "uf"}},
	{"georgia", []string{"georgia", "uga", "bulldogs"}},
	{"south carolina", []string{"south carolina", "gamecocks", "sc"}},
	{"lsu", []string{"lsu", "tigers", "louisiana state"}},
	{"mississippi state", []string{"mississippi state", "miss state", "bulldogs"}},
	{"ole miss", []string{"ole miss", "rebels", "mississippi"}},
	{"missouri", []string{"missouri", "mizzou", "tigers"}},
	{"vanderbilt", []string{"vanderbilt", "vandy", "commodores"}},
	{"texas a&m", []string{"texas a&m", "tamu", "aggies"}},

	// Big Ten
	{"purdue", []string{"purdue", "boilermakers"}},
	{"indiana", []string{"indiana", "hoosiers", "iu"}},
	{"michigan", []string{"michigan", "wolverines"}},
	{"michigan state", []string{"michigan state", "msu", "spartans"}},
	{"ohio state", []string{"ohio state", "osu", "buckeyes"}},
	{"illinois", []string{"illinois", "illini"}},
	{"iowa", []string{"iowa", "hawkeyes"}},
	{"wisconsin", []string{"wisconsin", "badgers"}},
	{"minnesota", []string{"minnesota", "gophers", "golden gophers"}},
	{"northwestern", []string{"northwestern", "wildcats"}},
	{"penn state", []string{"penn state", "psu", "nittany lions"}},
	{"maryland", []string{"maryland", "terrapins", "terps"}},
	{"nebraska", []string{"nebraska", "cornhuskers", "huskers"}},
	{"rutgers", []string{"rutgers", "scarlet knights"}},

	// Other notable
	{"gonzaga", []string{"gonzaga", "zags", "bulldogs"}},
	{"uconn", []string{"uconn", "connecticut", "huskies"}},
	{"villanova", []string{"villanova", "nova", "wildcats"}},
	{"creighton", []string{"creighton", "bluejays"}},
	{"marquette", []string{"marquette", "golden eagles"}},
	{"stanford", []string{"stanford", "cardinal"}},
	{"ucla", []string{"ucla", "bruins"}},
	{"usc", []string{"usc", "trojans", "southern cal"}},
	{"oregon", []string{"oregon", "ducks"}},
	{"smu", []string{"smu", "mustangs"}},
}

// aliasMatchers holds one whole-word matcher per alias, parallel to
// teamAliases. Word boundaries keep "utah" from firing inside "utahan".
var aliasMatchers = func() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(teamAliases))
	for i, entry := range teamAliases {
		out[i] = make([]*regexp.Regexp, len(entry.Aliases))
		for j, alias := range entry.Aliases {
			out[i][j] = regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
		}
	}
	return out
}()

// ResolveTeam scans the alias table for a whole-word, case-insensitive
// occurrence of any alias in the question and returns the first canonical
// key that hits.
func ResolveTeam(question string) (string, bool) {
	lower := strings.ToLower(question)
	for i, entry := range teamAliases {
		for _, m := range aliasMatchers[i] {
			if m.MatchString(lower) {
				return entry.Canonical, true
			}
		}
	}
	return "", false
}

// playerPatterns pull a capitalized one-or-two-word span out of a few fixed
// question shapes. No roster validation; the span is trusted as written.
var playerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:did|how many|what did)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:score|get|have)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)'s\s+(?:stats|points|rebounds|assists)`),
	regexp.MustCompile(`(?:stats|points|rebounds)\s+(?:for|of)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

// ResolvePlayer extracts a player name from the raw (not lowercased)
// question. Returns the first structural match.
func ResolvePlayer(question string) (string, bool) {
	for _, p := range playerPatterns {
		if m := p.FindStringSubmatch(question); m != nil {
			return m[1], true
		}
	}
	return "", false
}
