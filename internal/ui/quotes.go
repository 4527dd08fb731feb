package ui

import "math/rand"

// arcQuotes themes the status/dashboard tagline by arc.
var arcQuotes = map[string][]string{
	"hero": {
		"The difference between the possible and impossible lies in determination.",
		"I'll surpass my limits, right here, right now!",
		"It's not about winning or losing, it's about giving it your all!",
	},
	"villain": {
		"Power is everything. Without it, you're nothing.",
		"In this world, only the strong survive.",
		"I'll crush anyone who stands in my way.",
	},
	"redemption": {
		"The past cannot be changed, but the future is still unwritten.",
		"Every day is a chance to become better than yesterday.",
		"Forgiveness starts with forgiving yourself.",
	},
	"inter": {
		"Winter sharpens the blade. Embrace the cold.",
		"In isolation, legends are forged.",
		"Discipline in darkness, power in silence.",
	},
}

// RandomQuote picks a themed quote for the arc. Unknown arcs fall back to
// the hero set.
func RandomQuote(arc string) string {
	quotes, ok := arcQuotes[arc]
	if !ok || len(quotes) == 0 {
		quotes = arcQuotes["hero"]
	}
	return quotes[rand.Intn(len(quotes))]
}
