package engine

import "github.com/parthsharma232007/arc-ascension/internal/storage"

// MissionResult reports what a mission completion did, for the caller's
// toast/banner rendering.
type MissionResult struct {
	MissionID   string
	Title       string
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// CompleteMission applies a mission completion to the profile in place.
// It returns nil — and leaves the profile untouched — when the id does not
// resolve or the mission is already completed. Mission completion is
// one-way; a completed mission is never re-awarded XP.
//
// Level-up carryover is single-step: one completion can raise the level by
// at most one, and the remainder xp is tentative - threshold. A reward
// larger than the threshold would leave xp at or above it again; with the
// seeded 50 XP missions against a 1000 XP threshold that cannot happen,
// and the behavior of the original app is kept rather than looping.
func CompleteMission(p *storage.Profile, missionID string) *MissionResult {
	var mission *storage.Mission
	for i := range p.Missions {
		if p.Missions[i].ID == missionID {
			mission = &p.Missions[i]
			break
		}
	}
	if mission == nil || mission.Completed {
		return nil
	}

	res := &MissionResult{
		MissionID:   mission.ID,
		Title:       mission.Title,
		XPAwarded:   mission.XPReward,
		LevelBefore: p.Level,
	}

	mission.Completed = true

	tentative := p.XP + mission.XPReward
	if tentative >= p.XPToNextLevel {
		p.Level++
		p.XP = tentative - p.XPToNextLevel
		res.LevelUp = true
	} else {
		p.XP = tentative
	}
	res.LevelAfter = p.Level

	switch Category(mission.Category) {
	case CategoryMental:
		p.MentalProgress = clampProgress(p.MentalProgress + ProgressIncrement)
	case CategoryPhysical:
		p.PhysicalProgress = clampProgress(p.PhysicalProgress + ProgressIncrement)
	}
	// Overall is the slower, all-inclusive meter: every completion nudges
	// it by half the increment, whatever the category.
	p.OverallProgress = clampProgress(p.OverallProgress + ProgressIncrement/2)

	return res
}

func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
