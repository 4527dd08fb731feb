package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parthsharma232007/arc-ascension/internal/storage"
)

// ValidationError reports a user-fixable input failure. It is shown inline
// and the profile is left unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// newTaskID returns a fresh task id. Ids are never reused, including
// across daily regenerations.
func newTaskID() string {
	return uuid.NewString()
}

// AddTask appends a new incomplete task. A blank title is a
// ValidationError and nothing is applied.
func AddTask(p *storage.Profile, title, timeLabel string) (*storage.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ValidationError{Field: "title", Reason: "is required"}
	}
	t := storage.Task{
		ID:    newTaskID(),
		Title: title,
		Time:  strings.TrimSpace(timeLabel),
	}
	p.Tasks = append(p.Tasks, t)
	return &p.Tasks[len(p.Tasks)-1], nil
}

// EditTask replaces the title and time label of the matching task in
// place, keeping id, position and completion state. Unknown ids are a
// silent no-op; callers only reference ids they previously observed.
func EditTask(p *storage.Profile, taskID, title, timeLabel string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, ValidationError{Field: "title", Reason: "is required"}
	}
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Title = title
			p.Tasks[i].Time = strings.TrimSpace(timeLabel)
			return true, nil
		}
	}
	return false, nil
}

// ToggleTask flips completion of the matching task. Unlike missions the
// flip works both ways.
func ToggleTask(p *storage.Profile, taskID string) bool {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Completed = !p.Tasks[i].Completed
			return true
		}
	}
	return false
}

// DeleteTask removes the matching task, preserving order of the rest.
func DeleteTask(p *storage.Profile, taskID string) bool {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceTasks swaps the whole task list for freshly constructed tasks
// with the given titles and stamps the generation date marker.
func ReplaceTasks(p *storage.Profile, titles []string, today string) {
	tasks := make([]storage.Task, 0, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		tasks = append(tasks, storage.Task{ID: newTaskID(), Title: title})
	}
	p.Tasks = tasks
	p.LastTaskGenerationDate = today
}

// NeedsDailyGeneration is the comparison primitive behind the once-per-day
// trigger: true when tasks have never been generated or were last
// generated on a different calendar date.
func NeedsDailyGeneration(p *storage.Profile, today string) bool {
	return p.LastTaskGenerationDate != today
}

// Today formats now as the local calendar date string used by the daily
// trigger and streak bookkeeping.
func Today(now time.Time) string {
	return now.Format(DateFormat)
}
