// AngelaMos | 2026
// dashboard.go

package store

import (
	"sort"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/progression"
)

type Challenge struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
	Day    int    `json:"day"`
	Of     int    `json:"of"`
	Streak int    `json:"streak"`
}

type Dashboard struct {
	Pending           int           `json:"pending"`
	Completed         int           `json:"completed"`
	Points            int           `json:"points"`
	Level             int           `json:"level"`
	PointsToNextLevel int           `json:"pointsToNextLevel"`
	LongestStreak     int           `json:"longestStreak"`
	Agenda            []domain.Task `json:"agenda"`
	Challenges        []Challenge   `json:"challenges"`
}

func (s *Store) Dashboard() (Dashboard, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Dashboard{}, err
	}
	return buildDashboard(snap.User, snap.Tasks, s.now()), nil
}

func buildDashboard(u domain.User, tasks []domain.Task, now time.Time) Dashboard {
	d := Dashboard{
		Points:            u.Points,
		Level:             u.Level,
		PointsToNextLevel: progression.PointsToNextLevel(u.Points),
		LongestStreak:     lifecycle.LongestStreak(tasks),
		Agenda:            []domain.Task{},
		Challenges:        []Challenge{},
	}

	for _, t := range tasks {
		if t.Completed {
			d.Completed++
		} else {
			d.Pending++
		}
		if t.StartTime != "" {
			d.Agenda = append(d.Agenda, t)
		}
		if t.IsHabit {
			d.Challenges = append(d.Challenges, Challenge{
				TaskID: t.ID,
				Title:  t.Title,
				Day:    lifecycle.ChallengeProgress(t, now),
				Of:     lifecycle.ChallengeDays,
				Streak: t.Streak,
			})
		}
	}

	// HH:mm sorts lexically.
	sort.SliceStable(d.Agenda, func(i, j int) bool {
		return d.Agenda[i].StartTime < d.Agenda[j].StartTime
	})

	return d
}
