package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func sampleProfile() *Profile {
	return &Profile{
		Name: "Parth",
		Arc:  "hero",
		Goal: "overall",
		Avatar: Avatar{
			ID:       "goku",
			Name:     "Son Goku",
			Series:   "Dragon Ball Z",
			ImageURL: "https://example.com/goku.png",
			Arc:      "hero",
		},
		Level:            2,
		XP:               130,
		XPToNextLevel:    1000,
		MentalProgress:   30,
		PhysicalProgress: 20,
		OverallProgress:  25,
		Streak:           6,
		Missions: []Mission{
			{ID: "1", Title: "Morning Meditation", Description: "10 minutes", XPReward: 50, Completed: true, Category: "mental"},
			{ID: "2", Title: "Daily Exercise", Description: "30 minutes", XPReward: 50, Category: "physical"},
		},
		Tasks: []Task{
			{ID: "t-1", Title: "Read 10 pages", Completed: true},
			{ID: "t-2", Title: "Go for a walk", Time: "20 min"},
		},
		TaskPreferences: TaskPreferences{
			FocusAreas:    []string{"fitness", "learning"},
			Difficulty:    "moderate",
			TimeAvailable: "30 minutes",
		},
		LastTaskGenerationDate: "2026-08-29",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	want := sampleProfile()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatalf("load returned no profile")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := sampleProfile()
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := sampleProfile()
	second.XP = 999
	second.Tasks = []Task{}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 999 {
		t.Fatalf("xp = %d, want 999", got.XP)
	}
	if len(got.Tasks) != 0 {
		t.Fatalf("tasks = %d, want full overwrite to empty", len(got.Tasks))
	}
}

func TestLoadAbsentReturnsNoProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	p, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no profile, got %+v", p)
	}
}

func TestLoadCorruptRecordIsTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO profile (key, data, updated_at) VALUES (?, ?, ?)`,
		ProfileKey, `{"name": truncated`, time.Now().UTC(),
	); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	p, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("corrupt record should read as no profile, got %+v", p)
	}
}

func TestClearRemovesRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, sampleProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	p, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("profile survived clear")
	}
	// Clearing twice is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestLoadNormalizesLegacyRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// A record saved by an older version: no tasks array, no preferences.
	legacy := `{
		"name": "Parth", "arc": "redemption", "goal": "mental",
		"avatar": {"id": "itachi", "name": "Itachi Uchiha", "series": "Naruto", "imageUrl": "", "arc": "redemption"},
		"level": 1, "xp": 40, "xpToNextLevel": 1000,
		"mentalProgress": 120, "physicalProgress": -5, "overallProgress": 10,
		"streak": 2,
		"missions": [{"id": "1", "title": "Morning Meditation", "description": "", "xpReward": 50, "completed": false, "category": "mental"}]
	}`
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO profile (key, data, updated_at) VALUES (?, ?, ?)`,
		ProfileKey, legacy, time.Now().UTC(),
	); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	p, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatalf("legacy record did not load")
	}
	if p.Tasks == nil || len(p.Tasks) != 0 {
		t.Fatalf("tasks = %#v, want defaulted empty list", p.Tasks)
	}
	if p.TaskPreferences.FocusAreas == nil {
		t.Fatalf("focusAreas not defaulted")
	}
	if p.MentalProgress != 100 || p.PhysicalProgress != 0 {
		t.Fatalf("progress not clamped: %d/%d", p.MentalProgress, p.PhysicalProgress)
	}
	if p.LastTaskGenerationDate != "" {
		t.Fatalf("lastTaskGenerationDate = %q, want absent", p.LastTaskGenerationDate)
	}
}

func TestMemStoreMatchesContract(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if p, err := store.Load(ctx); err != nil || p != nil {
		t.Fatalf("empty mem store load = (%+v, %v)", p, err)
	}
	want := sampleProfile()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}

	store.Corrupt()
	if p, err := store.Load(ctx); err != nil || p != nil {
		t.Fatalf("corrupt mem store load = (%+v, %v), want (nil, nil)", p, err)
	}
}
