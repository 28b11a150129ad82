package model

// Game describes a single game eligible for questioning: a finished database
// record joined with its boxscore screenshot. Read-only to this program.
type Game struct {
	ID         string `json:"game_id"`
	AwayTeam   string `json:"away_team"`
	AwayAbbrev string `json:"away_abbrev"`
	AwayScore  int    `json:"away_score"`
	HomeTeam   string `json:"home_team"`
	HomeAbbrev string `json:"home_abbrev"`
	HomeScore  int    `json:"home_score"`
	Status     string `json:"status"`
	Date       string `json:"game_date"`
	Screenshot string `json:"screenshot"`
}

// QuickQuestions are canned questions surfaced to front ends as starting
// points. Every one of them resolves through the pattern catalog.
var QuickQuestions = []string{
	"Who was the top scorer?",
	"What was the final score?",
	"Who had the most rebounds?",
	"Who made the most 3-pointers?",
}
