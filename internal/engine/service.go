package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/generate"
	"github.com/parthsharma232007/arc-ascension/internal/storage"
)

// ErrNoProfile is returned when an operation needs a profile and none is
// stored (or the stored record was unparsable). Callers route the user to
// onboarding.
var ErrNoProfile = errors.New("no profile; run onboarding first")

// ErrGenerationInFlight rejects a regeneration triggered while another one
// is still running. One generation call per profile at a time.
var ErrGenerationInFlight = errors.New("task generation already in progress")

// Service wires the pure engine transforms to the profile store and the
// task generator. Every mutating operation rewrites the whole record
// through the store immediately after the transform.
type Service struct {
	store storage.ProfileStore
	gen   generate.Generator
	now   func() time.Time
	log   *zap.Logger

	generating atomic.Bool
}

func NewService(store storage.ProfileStore, gen generate.Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store: store,
		gen:   gen,
		now:   time.Now,
		log:   log,
	}
}

// WithClock overrides the wall clock. Tests use it to simulate date
// rollover deterministically.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load returns the stored profile or ErrNoProfile.
func (s *Service) Load(ctx context.Context) (*storage.Profile, error) {
	p, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

// Onboard assembles and persists the initial profile.
func (s *Service) Onboard(ctx context.Context, in OnboardingInput) (*storage.Profile, error) {
	p, err := NewProfile(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("profile created", zap.String("arc", p.Arc), zap.String("goal", p.Goal))
	return p, nil
}

// Logout clears the persisted profile.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// CompleteMission applies a mission completion and persists the result.
// A nil result with nil error means the id did not resolve or the mission
// was already completed; nothing was changed or written.
func (s *Service) CompleteMission(ctx context.Context, missionID string) (*MissionResult, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	res := CompleteMission(p, missionID)
	if res == nil {
		return nil, nil
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return res, nil
}

// AddTask appends a user-authored task and persists.
func (s *Service) AddTask(ctx context.Context, title, timeLabel string) (*storage.Task, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	t, err := AddTask(p, title, timeLabel)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return t, nil
}

// EditTask updates a task's title/time and persists. Unknown ids report
// found=false without writing.
func (s *Service) EditTask(ctx context.Context, taskID, title, timeLabel string) (bool, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	found, err := EditTask(p, taskID, title, timeLabel)
	if err != nil || !found {
		return found, err
	}
	return true, s.store.Save(ctx, p)
}

// ToggleTask flips a task's completion and persists.
func (s *Service) ToggleTask(ctx context.Context, taskID string) (bool, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if !ToggleTask(p, taskID) {
		return false, nil
	}
	return true, s.store.Save(ctx, p)
}

// DeleteTask removes a task and persists.
func (s *Service) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if !DeleteTask(p, taskID) {
		return false, nil
	}
	return true, s.store.Save(ctx, p)
}

// RegenerateDailyTasks calls the external generator and, on success,
// wholesale-replaces the task list and stamps today's date. On any
// failure the stored tasks and date marker stay as they were; the error
// wraps generate.ErrGeneration and a manual retry is the only recovery.
func (s *Service) RegenerateDailyTasks(ctx context.Context) (*storage.Profile, error) {
	if !s.generating.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.generating.Store(false)

	p, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	titles, err := s.gen.GenerateTasks(ctx, generate.Request{
		FocusAreas:    p.TaskPreferences.FocusAreas,
		Difficulty:    p.TaskPreferences.Difficulty,
		TimeAvailable: p.TaskPreferences.TimeAvailable,
		Arc:           p.Arc,
		AvatarName:    p.Avatar.Name,
	})
	if err != nil {
		s.log.Warn("daily task generation failed", zap.Error(err))
		return nil, err
	}

	today := Today(s.now())
	s.advanceStreak(p, today)
	ReplaceTasks(p, titles, today)
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("daily tasks regenerated", zap.Int("count", len(titles)), zap.String("date", today))
	return p, nil
}

// EnsureDailyTasks is the once-per-load daily check: when the profile's
// generation marker is not today's date it regenerates. It reports whether
// a regeneration ran. Generation failure is returned so the caller can
// show the retryable message, with the prior task list intact.
func (s *Service) EnsureDailyTasks(ctx context.Context, p *storage.Profile) (bool, error) {
	if !NeedsDailyGeneration(p, Today(s.now())) {
		return false, nil
	}
	updated, err := s.RegenerateDailyTasks(ctx)
	if err != nil {
		return false, err
	}
	*p = *updated
	return true, nil
}

// advanceStreak is the daily-check streak bookkeeping. The progression
// engine never touches the streak; it moves only here, when a new
// generation day begins: an unbroken chain (last generation was
// yesterday) extends it, a gap resets it to 1 for today.
func (s *Service) advanceStreak(p *storage.Profile, today string) {
	last := p.LastTaskGenerationDate
	if last == today {
		return
	}
	yesterday, err := time.ParseInLocation(DateFormat, today, time.Local)
	if err != nil {
		return
	}
	if last == yesterday.AddDate(0, 0, -1).Format(DateFormat) {
		p.Streak++
		return
	}
	p.Streak = 1
}

// FormatMissionToast renders the "+50 XP!" toast line for a completion.
func FormatMissionToast(res *MissionResult) string {
	return fmt.Sprintf("+%d XP! %s", res.XPAwarded, res.Title)
}
