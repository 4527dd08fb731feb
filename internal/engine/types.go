package engine

import "strings"

// Arc is the narrative archetype chosen at onboarding. Purely thematic:
// it drives quotes and colors, never progression math.
type Arc string

const (
	ArcHero       Arc = "hero"
	ArcVillain    Arc = "villain"
	ArcRedemption Arc = "redemption"
	ArcInter      Arc = "inter"
)

func (a Arc) IsValid() bool {
	switch a {
	case ArcHero, ArcVillain, ArcRedemption, ArcInter:
		return true
	default:
		return false
	}
}

// ParseArc parses user input to an Arc. Empty or unrecognized input is
// invalid; onboarding must not guess an arc for the user.
func ParseArc(input string) (Arc, bool) {
	a := Arc(strings.TrimSpace(strings.ToLower(input)))
	return a, a.IsValid()
}

// Category is both the user's development goal and a mission's category.
type Category string

const (
	CategoryMental   Category = "mental"
	CategoryPhysical Category = "physical"
	CategoryOverall  Category = "overall"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMental, CategoryPhysical, CategoryOverall:
		return true
	default:
		return false
	}
}

func ParseCategory(input string) (Category, bool) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	return c, c.IsValid()
}

const (
	// InitialXPToNextLevel is the level-up threshold seeded at onboarding.
	InitialXPToNextLevel = 1000

	// MissionXPReward is the fixed reward of each seeded mission.
	MissionXPReward = 50

	// ProgressIncrement is added to a mission's category meter on
	// completion. The overall meter moves by half of it on every
	// completion regardless of category.
	ProgressIncrement = 10
)

// DateFormat is the local calendar date string used for the daily
// generation marker and streak bookkeeping.
const DateFormat = "2006-01-02"
