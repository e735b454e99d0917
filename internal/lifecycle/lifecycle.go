// AngelaMos | 2026
// lifecycle.go

package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/progression"
)

const (
	HabitBonusEvery  = 7
	HabitBonusPoints = 50
	ChallengeDays    = 30
)

var priorityPoints = map[domain.Priority]int{
	domain.PriorityHigh:   20,
	domain.PriorityMedium: 10,
	domain.PriorityLow:    5,
}

// PointsFor returns the fixed reward for a priority. Unknown priorities
// are scored as low.
func PointsFor(p domain.Priority) int {
	if pts, ok := priorityPoints[p]; ok {
		return pts
	}
	return priorityPoints[domain.PriorityLow]
}

// Draft carries the caller-supplied task fields; id, points, streak and
// completion are derived.
type Draft struct {
	Title            string
	Description      string
	Category         domain.Category
	Priority         domain.Priority
	Frequency        domain.Frequency
	IsHabit          bool
	StartTime        string
	EndTime          string
	NotificationType domain.NotificationType
}

func New(d Draft, id string, now time.Time) (domain.Task, error) {
	if strings.TrimSpace(d.Title) == "" {
		return domain.Task{}, fmt.Errorf("task title: %w", core.ErrInvalidInput)
	}

	t := domain.Task{
		ID:               id,
		Title:            d.Title,
		Description:      d.Description,
		Category:         d.Category,
		Priority:         d.Priority,
		Points:           PointsFor(d.Priority),
		Frequency:        d.Frequency,
		IsHabit:          d.IsHabit,
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		NotificationType: d.NotificationType,
	}
	if d.IsHabit {
		start := now
		t.HabitStartDate = &start
	}
	return t, nil
}

// AdoptedHabit builds the draft for a coach suggestion the user accepts.
func AdoptedHabit(category domain.Category, title string) Draft {
	return Draft{
		Title:            title,
		Description:      "Suggested by your AI coach",
		Category:         category,
		Priority:         domain.PriorityMedium,
		Frequency:        domain.FrequencyDaily,
		IsHabit:          true,
		StartTime:        "08:00",
		EndTime:          "08:30",
		NotificationType: domain.NotifyVoice,
	}
}

type ToggleResult struct {
	Completed     bool                     `json:"completed"`
	PointsAwarded int                      `json:"pointsAwarded"`
	StreakBonus   bool                     `json:"streakBonus"`
	Streak        int                      `json:"streak"`
	Points        progression.PointsResult `json:"progress"`
}

// Toggle flips completion. Only the false to true transition awards points
// and advances a habit streak; uncompleting reverses neither.
func Toggle(u *domain.User, t *domain.Task, now time.Time) ToggleResult {
	t.Completed = !t.Completed
	res := ToggleResult{Completed: t.Completed, Streak: t.Streak}
	if !t.Completed {
		return res
	}

	award := t.Points
	if t.IsHabit {
		t.Streak++
		if t.Streak%HabitBonusEvery == 0 {
			award += HabitBonusPoints
			res.StreakBonus = true
		}
	}
	completedAt := now
	t.LastCompleted = &completedAt

	res.Streak = t.Streak
	res.PointsAwarded = award
	res.Points = progression.AddPoints(u, award)
	return res
}

func Find(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Remove drops the task with id, returning the original slice when absent.
func Remove(tasks []domain.Task, id string) ([]domain.Task, bool) {
	i := Find(tasks, id)
	if i < 0 {
		return tasks, false
	}
	out := make([]domain.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...), true
}

func FilterByCategory(tasks []domain.Task, c domain.Category) []domain.Task {
	if c == "" {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// ChallengeProgress counts whole days since the habit started, capped at
// ChallengeDays. Non-habits report zero.
func ChallengeProgress(t domain.Task, now time.Time) int {
	if !t.IsHabit || t.HabitStartDate == nil {
		return 0
	}
	days := int(now.Sub(*t.HabitStartDate).Hours() / 24)
	switch {
	case days < 0:
		return 0
	case days > ChallengeDays:
		return ChallengeDays
	default:
		return days
	}
}

func LongestStreak(tasks []domain.Task) int {
	best := 0
	for _, t := range tasks {
		if t.IsHabit && t.Streak > best {
			best = t.Streak
		}
	}
	return best
}
