package engine

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/parthsharma232007/arc-ascension/internal/generate"
	"github.com/parthsharma232007/arc-ascension/internal/storage"
)

func newTestProfile(t *testing.T) *storage.Profile {
	t.Helper()
	p, err := NewProfile(OnboardingInput{
		Name:   "Parth",
		Arc:    ArcHero,
		Goal:   CategoryOverall,
		Avatar: mustAvatar(t, "goku"),
		Preferences: storage.TaskPreferences{
			FocusAreas:    []string{"fitness", "learning"},
			Difficulty:    "moderate",
			TimeAvailable: "30 minutes",
		},
	})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	return p
}

func mustAvatar(t *testing.T, id string) storage.Avatar {
	t.Helper()
	a, ok := FindAvatar(id)
	if !ok {
		t.Fatalf("avatar %q not in catalog", id)
	}
	return a
}

type stubGenerator struct {
	titles []string
	err    error
	calls  int
}

func (g *stubGenerator) GenerateTasks(ctx context.Context, req generate.Request) ([]string, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.titles, nil
}

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		ts, _ := time.ParseInLocation(DateFormat, date, time.Local)
		return ts
	}
}

func newTestService(t *testing.T, gen *stubGenerator, date string) (*Service, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	svc := NewService(store, gen, nil).WithClock(fixedClock(date))
	return svc, store
}

func TestOnboardingSeedsProfile(t *testing.T) {
	p := newTestProfile(t)

	if p.Level != 1 || p.XP != 0 || p.XPToNextLevel != 1000 {
		t.Fatalf("progression seed = level %d, xp %d/%d; want 1, 0/1000", p.Level, p.XP, p.XPToNextLevel)
	}
	if p.MentalProgress != 0 || p.PhysicalProgress != 0 || p.OverallProgress != 0 {
		t.Fatalf("progress meters not zeroed: %d/%d/%d", p.MentalProgress, p.PhysicalProgress, p.OverallProgress)
	}
	if p.Streak != 0 {
		t.Fatalf("streak = %d, want 0", p.Streak)
	}
	if len(p.Tasks) != 0 {
		t.Fatalf("tasks = %d, want empty", len(p.Tasks))
	}
	if len(p.Missions) != 3 {
		t.Fatalf("missions = %d, want 3", len(p.Missions))
	}
	wantIDs := []string{"1", "2", "3"}
	wantCats := []string{"mental", "physical", "overall"}
	for i, m := range p.Missions {
		if m.ID != wantIDs[i] || m.Category != wantCats[i] {
			t.Fatalf("mission %d = id %q category %q, want %q/%q", i, m.ID, m.Category, wantIDs[i], wantCats[i])
		}
		if m.Completed {
			t.Fatalf("mission %q seeded completed", m.ID)
		}
		if m.XPReward <= 0 {
			t.Fatalf("mission %q xpReward = %d, want > 0", m.ID, m.XPReward)
		}
	}
}

func TestOnboardingRequiresAllFields(t *testing.T) {
	base := OnboardingInput{
		Name:   "Parth",
		Arc:    ArcHero,
		Goal:   CategoryMental,
		Avatar: mustAvatar(t, "goku"),
		Preferences: storage.TaskPreferences{
			FocusAreas:    []string{"fitness"},
			Difficulty:    "easy",
			TimeAvailable: "15 minutes",
		},
	}

	cases := []struct {
		name   string
		mutate func(*OnboardingInput)
	}{
		{"empty name", func(in *OnboardingInput) { in.Name = "  " }},
		{"invalid arc", func(in *OnboardingInput) { in.Arc = "chaos" }},
		{"invalid goal", func(in *OnboardingInput) { in.Goal = "" }},
		{"missing avatar", func(in *OnboardingInput) { in.Avatar = storage.Avatar{} }},
		{"no focus areas", func(in *OnboardingInput) { in.Preferences.FocusAreas = nil }},
		{"no difficulty", func(in *OnboardingInput) { in.Preferences.Difficulty = "" }},
		{"no time", func(in *OnboardingInput) { in.Preferences.TimeAvailable = "" }},
	}

	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		if _, err := NewProfile(in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		} else {
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("%s: error %v is not a ValidationError", tc.name, err)
			}
		}
	}
}

func TestCompleteMissionAwardsXPAndProgress(t *testing.T) {
	p := newTestProfile(t)

	res := CompleteMission(p, "1") // Morning Meditation, 50 XP, mental
	if res == nil {
		t.Fatalf("expected a result")
	}
	if res.XPAwarded != 50 || res.LevelUp {
		t.Fatalf("result = +%d levelUp=%v, want +50 false", res.XPAwarded, res.LevelUp)
	}
	if p.XP != 50 || p.Level != 1 {
		t.Fatalf("xp/level = %d/%d, want 50/1", p.XP, p.Level)
	}
	if p.MentalProgress != 10 {
		t.Fatalf("mentalProgress = %d, want 10", p.MentalProgress)
	}
	if p.PhysicalProgress != 0 {
		t.Fatalf("physicalProgress = %d, want 0", p.PhysicalProgress)
	}
	if p.OverallProgress != 5 {
		t.Fatalf("overallProgress = %d, want 5", p.OverallProgress)
	}
	if !p.Missions[0].Completed {
		t.Fatalf("mission 1 not marked completed")
	}
	if p.Missions[1].Completed || p.Missions[2].Completed {
		t.Fatalf("other missions were touched")
	}
}

func TestCompleteMissionIsOneWay(t *testing.T) {
	p := newTestProfile(t)
	if res := CompleteMission(p, "2"); res == nil {
		t.Fatalf("first completion failed")
	}

	before := *p
	before.Missions = slices.Clone(p.Missions)
	before.Tasks = slices.Clone(p.Tasks)

	if res := CompleteMission(p, "2"); res != nil {
		t.Fatalf("second completion returned a result: %+v", res)
	}
	if diff := cmp.Diff(before, *p); diff != "" {
		t.Fatalf("profile changed on repeat completion (-want +got):\n%s", diff)
	}
}

func TestCompleteMissionUnknownIDIsNoop(t *testing.T) {
	p := newTestProfile(t)
	before := *p
	before.Missions = slices.Clone(p.Missions)
	before.Tasks = slices.Clone(p.Tasks)

	if res := CompleteMission(p, "99"); res != nil {
		t.Fatalf("unknown mission returned a result: %+v", res)
	}
	if diff := cmp.Diff(before, *p); diff != "" {
		t.Fatalf("profile changed on unknown mission (-want +got):\n%s", diff)
	}
}

func TestLevelUpCarriesOverflow(t *testing.T) {
	p := newTestProfile(t)
	p.XP = 980

	res := CompleteMission(p, "1")
	if res == nil {
		t.Fatalf("expected a result")
	}
	if !res.LevelUp {
		t.Fatalf("expected a level-up at 980+50 vs 1000")
	}
	if p.Level != 2 {
		t.Fatalf("level = %d, want 2", p.Level)
	}
	if p.XP != 30 {
		t.Fatalf("xp = %d, want 30 (carryover)", p.XP)
	}
	if res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("result levels = %d→%d, want 1→2", res.LevelBefore, res.LevelAfter)
	}
}

func TestExactThresholdLevelsUp(t *testing.T) {
	p := newTestProfile(t)
	p.XP = 950

	res := CompleteMission(p, "1")
	if res == nil || !res.LevelUp {
		t.Fatalf("expected level-up at exactly the threshold")
	}
	if p.XP != 0 {
		t.Fatalf("xp = %d, want 0", p.XP)
	}
}

func TestProgressMetersClampAt100(t *testing.T) {
	p := newTestProfile(t)
	p.MentalProgress = 95
	p.OverallProgress = 98

	if res := CompleteMission(p, "1"); res == nil {
		t.Fatalf("completion failed")
	}
	if p.MentalProgress != 100 {
		t.Fatalf("mentalProgress = %d, want clamped 100", p.MentalProgress)
	}
	if p.OverallProgress != 100 {
		t.Fatalf("overallProgress = %d, want clamped 100", p.OverallProgress)
	}
}

func TestOverallMeterMovesOnEveryCategory(t *testing.T) {
	p := newTestProfile(t)
	CompleteMission(p, "1") // mental
	CompleteMission(p, "2") // physical
	CompleteMission(p, "3") // overall
	if p.OverallProgress != 15 {
		t.Fatalf("overallProgress = %d, want 15 (5 per completion)", p.OverallProgress)
	}
	if p.MentalProgress != 10 || p.PhysicalProgress != 10 {
		t.Fatalf("category meters = %d/%d, want 10/10", p.MentalProgress, p.PhysicalProgress)
	}
}

func TestAddTaskValidatesTitle(t *testing.T) {
	p := newTestProfile(t)
	if _, err := AddTask(p, "   ", ""); err == nil {
		t.Fatalf("expected validation error for blank title")
	}
	if len(p.Tasks) != 0 {
		t.Fatalf("task list changed on failed add")
	}

	task, err := AddTask(p, "  Stretch for 5 minutes ", "5 min")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Title != "Stretch for 5 minutes" {
		t.Fatalf("title = %q, want trimmed", task.Title)
	}
	if task.ID == "" || task.Completed {
		t.Fatalf("task = %+v, want fresh incomplete task with id", task)
	}
}

func TestTaskOpsAfterDeleteAreNoops(t *testing.T) {
	p := newTestProfile(t)
	task, err := AddTask(p, "Read 10 pages", "")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	id := task.ID

	if !DeleteTask(p, id) {
		t.Fatalf("delete failed")
	}
	if found := ToggleTask(p, id); found {
		t.Fatalf("toggle resolved a deleted id")
	}
	if found, err := EditTask(p, id, "Read 20 pages", ""); err != nil || found {
		t.Fatalf("edit after delete = (%v, %v), want (false, nil)", found, err)
	}
	if DeleteTask(p, id) {
		t.Fatalf("second delete resolved a deleted id")
	}
}

func TestEditTaskPreservesIdentityAndState(t *testing.T) {
	p := newTestProfile(t)
	a, _ := AddTask(p, "First", "")
	b, _ := AddTask(p, "Second", "")
	ToggleTask(p, b.ID)

	found, err := EditTask(p, b.ID, "Second, revised", "20 min")
	if err != nil || !found {
		t.Fatalf("EditTask = (%v, %v)", found, err)
	}
	if p.Tasks[0].ID != a.ID || p.Tasks[1].ID != b.ID {
		t.Fatalf("task order or ids changed")
	}
	if !p.Tasks[1].Completed {
		t.Fatalf("edit reset completion state")
	}
	if p.Tasks[1].Title != "Second, revised" || p.Tasks[1].Time != "20 min" {
		t.Fatalf("edit not applied: %+v", p.Tasks[1])
	}
}

func TestReplaceTasksIssuesFreshIDs(t *testing.T) {
	p := newTestProfile(t)
	old, _ := AddTask(p, "Old task", "")
	oldID := old.ID

	ReplaceTasks(p, []string{"One", "Two", "", "Three"}, "2026-08-29")

	if len(p.Tasks) != 3 {
		t.Fatalf("tasks = %d, want 3 (blank titles dropped)", len(p.Tasks))
	}
	seen := map[string]bool{}
	for _, task := range p.Tasks {
		if task.ID == oldID {
			t.Fatalf("task id reused across regeneration")
		}
		if task.Completed {
			t.Fatalf("regenerated task started completed")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate task id %q in batch", task.ID)
		}
		seen[task.ID] = true
	}
	if p.LastTaskGenerationDate != "2026-08-29" {
		t.Fatalf("lastTaskGenerationDate = %q", p.LastTaskGenerationDate)
	}
}

func TestNeedsDailyGeneration(t *testing.T) {
	p := newTestProfile(t)

	if !NeedsDailyGeneration(p, "2026-08-29") {
		t.Fatalf("absent marker should trigger generation")
	}
	p.LastTaskGenerationDate = "2026-08-28"
	if !NeedsDailyGeneration(p, "2026-08-29") {
		t.Fatalf("stale marker should trigger generation")
	}
	p.LastTaskGenerationDate = "2026-08-29"
	if NeedsDailyGeneration(p, "2026-08-29") {
		t.Fatalf("today's marker should not trigger generation")
	}
}

func TestServiceCompleteMissionPersists(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &stubGenerator{}, "2026-08-29")
	if _, err := svc.Onboard(ctx, OnboardingInput{
		Name:   "Parth",
		Arc:    ArcVillain,
		Goal:   CategoryPhysical,
		Avatar: mustAvatar(t, "eren"),
		Preferences: storage.TaskPreferences{
			FocusAreas:    []string{"discipline"},
			Difficulty:    "hard",
			TimeAvailable: "1 hour",
		},
	}); err != nil {
		t.Fatalf("Onboard: %v", err)
	}

	res, err := svc.CompleteMission(ctx, "2")
	if err != nil {
		t.Fatalf("CompleteMission: %v", err)
	}
	if res == nil || res.XPAwarded != 50 {
		t.Fatalf("result = %+v", res)
	}

	stored, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("store load: %v", err)
	}
	if stored.XP != 50 || !stored.Missions[1].Completed {
		t.Fatalf("completion not persisted: xp=%d completed=%v", stored.XP, stored.Missions[1].Completed)
	}

	// Repeat completion: no result, no write needed, state intact.
	res, err = svc.CompleteMission(ctx, "2")
	if err != nil || res != nil {
		t.Fatalf("repeat completion = (%+v, %v), want (nil, nil)", res, err)
	}
}

func TestRegenerateFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	gen := &stubGenerator{titles: []string{"One", "Two", "Three", "Four", "Five"}}
	svc, store := newTestService(t, gen, "2026-08-29")

	p := newTestProfile(t)
	p.LastTaskGenerationDate = "2026-08-27"
	AddTask(p, "Keep me", "")
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	gen.err = errors.New("boom")
	if _, err := svc.RegenerateDailyTasks(ctx); err == nil {
		t.Fatalf("expected generation failure")
	}

	stored, _ := store.Load(ctx)
	if len(stored.Tasks) != 1 || stored.Tasks[0].Title != "Keep me" {
		t.Fatalf("tasks changed on failed generation: %+v", stored.Tasks)
	}
	if stored.LastTaskGenerationDate != "2026-08-27" {
		t.Fatalf("date marker changed on failed generation: %q", stored.LastTaskGenerationDate)
	}
}

func TestRegenerateReplacesTasksAndStampsDate(t *testing.T) {
	ctx := context.Background()
	gen := &stubGenerator{titles: []string{"One", "Two", "Three", "Four", "Five"}}
	svc, store := newTestService(t, gen, "2026-08-29")

	p := newTestProfile(t)
	AddTask(p, "Old", "")
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	updated, err := svc.RegenerateDailyTasks(ctx)
	if err != nil {
		t.Fatalf("RegenerateDailyTasks: %v", err)
	}
	if len(updated.Tasks) != 5 {
		t.Fatalf("tasks = %d, want 5", len(updated.Tasks))
	}
	if updated.LastTaskGenerationDate != "2026-08-29" {
		t.Fatalf("date marker = %q", updated.LastTaskGenerationDate)
	}

	stored, _ := store.Load(ctx)
	if diff := cmp.Diff(updated.Tasks, stored.Tasks); diff != "" {
		t.Fatalf("persisted tasks differ (-want +got):\n%s", diff)
	}
}

func TestEnsureDailyTasksRunsOncePerDay(t *testing.T) {
	ctx := context.Background()
	gen := &stubGenerator{titles: []string{"A", "B", "C", "D", "E"}}
	svc, store := newTestService(t, gen, "2026-08-29")

	p := newTestProfile(t)
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	ran, err := svc.EnsureDailyTasks(ctx, p)
	if err != nil || !ran {
		t.Fatalf("first daily check = (%v, %v), want regeneration", ran, err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}

	ran, err = svc.EnsureDailyTasks(ctx, p)
	if err != nil || ran {
		t.Fatalf("same-day check = (%v, %v), want no-op", ran, err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called again on the same day")
	}
}

func TestStreakBookkeeping(t *testing.T) {
	ctx := context.Background()
	gen := &stubGenerator{titles: []string{"A", "B", "C", "D", "E"}}

	// Consecutive day extends the streak.
	svc, store := newTestService(t, gen, "2026-08-29")
	p := newTestProfile(t)
	p.Streak = 4
	p.LastTaskGenerationDate = "2026-08-28"
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	updated, err := svc.RegenerateDailyTasks(ctx)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if updated.Streak != 5 {
		t.Fatalf("streak = %d, want 5 after consecutive day", updated.Streak)
	}

	// A gap resets to 1.
	svc2, store2 := newTestService(t, gen, "2026-08-29")
	p2 := newTestProfile(t)
	p2.Streak = 9
	p2.LastTaskGenerationDate = "2026-08-25"
	if err := store2.Save(ctx, p2); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	updated2, err := svc2.RegenerateDailyTasks(ctx)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if updated2.Streak != 1 {
		t.Fatalf("streak = %d, want reset to 1 after a gap", updated2.Streak)
	}

	// Same-day manual regen leaves the streak alone.
	updated3, err := svc2.RegenerateDailyTasks(ctx)
	if err != nil {
		t.Fatalf("same-day regenerate: %v", err)
	}
	if updated3.Streak != 1 {
		t.Fatalf("streak = %d, want unchanged on same-day regen", updated3.Streak)
	}
}

func TestServiceWithoutProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &stubGenerator{}, "2026-08-29")

	if _, err := svc.Load(ctx); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("Load without profile = %v, want ErrNoProfile", err)
	}
	if _, err := svc.CompleteMission(ctx, "1"); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("CompleteMission without profile = %v, want ErrNoProfile", err)
	}
}
