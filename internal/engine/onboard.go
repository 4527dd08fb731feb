package engine

import (
	"strings"

	"github.com/parthsharma232007/arc-ascension/internal/storage"
)

// OnboardingInput carries the questionnaire answers. NewProfile refuses to
// assemble while any of them is missing; the wizard keeps the user in the
// flow until it succeeds.
type OnboardingInput struct {
	Name        string
	Arc         Arc
	Goal        Category
	Avatar      storage.Avatar
	Preferences storage.TaskPreferences
}

// NewProfile assembles the initial profile record: level 1, zero progress,
// empty task list, and the three fixed missions.
func NewProfile(in OnboardingInput) (*storage.Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError{Field: "name", Reason: "is required"}
	}
	if !in.Arc.IsValid() {
		return nil, ValidationError{Field: "arc", Reason: "is required"}
	}
	if !in.Goal.IsValid() {
		return nil, ValidationError{Field: "goal", Reason: "is required"}
	}
	if in.Avatar.ID == "" {
		return nil, ValidationError{Field: "avatar", Reason: "is required"}
	}
	if len(in.Preferences.FocusAreas) == 0 {
		return nil, ValidationError{Field: "focus areas", Reason: "are required"}
	}
	if strings.TrimSpace(in.Preferences.Difficulty) == "" {
		return nil, ValidationError{Field: "difficulty", Reason: "is required"}
	}
	if strings.TrimSpace(in.Preferences.TimeAvailable) == "" {
		return nil, ValidationError{Field: "time available", Reason: "is required"}
	}

	return &storage.Profile{
		Name:             name,
		Arc:              string(in.Arc),
		Goal:             string(in.Goal),
		Avatar:           in.Avatar,
		Level:            1,
		XP:               0,
		XPToNextLevel:    InitialXPToNextLevel,
		MentalProgress:   0,
		PhysicalProgress: 0,
		OverallProgress:  0,
		Streak:           0,
		Missions:         seedMissions(),
		Tasks:            []storage.Task{},
		TaskPreferences:  in.Preferences,
	}, nil
}

// seedMissions returns the three fixed missions. Created once at
// onboarding, never added to or removed afterward.
func seedMissions() []storage.Mission {
	return []storage.Mission{
		{
			ID:          "1",
			Title:       "Morning Meditation",
			Description: "Start your day with 10 minutes of meditation",
			XPReward:    MissionXPReward,
			Category:    string(CategoryMental),
		},
		{
			ID:          "2",
			Title:       "Daily Exercise",
			Description: "Complete 30 minutes of physical activity",
			XPReward:    MissionXPReward,
			Category:    string(CategoryPhysical),
		},
		{
			ID:          "3",
			Title:       "Learn Something New",
			Description: "Spend 20 minutes learning a new skill",
			XPReward:    MissionXPReward,
			Category:    string(CategoryOverall),
		},
	}
}
