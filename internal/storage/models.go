package storage

// Profile is the single persisted aggregate: one record per install, no
// concurrent writers. JSON field names match the record the original web
// version of the app kept in browser local storage, so an exported blob
// from there loads unchanged.
type Profile struct {
	Name string `json:"name"`
	Arc  string `json:"arc"`
	Goal string `json:"goal"`

	Avatar Avatar `json:"avatar"`

	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xpToNextLevel"`

	MentalProgress   int `json:"mentalProgress"`
	PhysicalProgress int `json:"physicalProgress"`
	OverallProgress  int `json:"overallProgress"`

	// Streak counts consecutive engaged days. It is advanced by the daily
	// check on load, never by mission completion.
	Streak int `json:"streak"`

	Missions []Mission `json:"missions"`
	Tasks    []Task    `json:"tasks"`

	TaskPreferences TaskPreferences `json:"taskPreferences"`

	// LastTaskGenerationDate is a local calendar date string (2006-01-02).
	// Empty means tasks have never been generated.
	LastTaskGenerationDate string `json:"lastTaskGenerationDate,omitempty"`
}

// Mission is a seeded, non-deletable unit of progress. The three missions
// are fixed at onboarding; completion is one-way.
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xpReward"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}

// Task is a freely mutable daily to-do, either user-authored or generated.
// The whole list may be replaced by a regeneration; ids are never reused.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
}

type Avatar struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Series   string `json:"series"`
	ImageURL string `json:"imageUrl"`
	Arc      string `json:"arc"`
}

type TaskPreferences struct {
	FocusAreas    []string `json:"focusAreas"`
	Difficulty    string   `json:"difficulty"`
	TimeAvailable string   `json:"timeAvailable"`
}

// Normalize default-fills fields that older saved records may lack and
// clamps the progress meters. Applied once, right after load, so call
// sites can rely on non-nil slices and in-range percentages.
func (p *Profile) Normalize() {
	if p.Missions == nil {
		p.Missions = []Mission{}
	}
	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	if p.TaskPreferences.FocusAreas == nil {
		p.TaskPreferences.FocusAreas = []string{}
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = 1000
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	p.MentalProgress = clampPercent(p.MentalProgress)
	p.PhysicalProgress = clampPercent(p.PhysicalProgress)
	p.OverallProgress = clampPercent(p.OverallProgress)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
