// AngelaMos | 2026
// task.go

package domain

import (
	"time"
)

type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryEducation Category = "education"
	CategorySports    Category = "sports"
	CategoryNutrition Category = "nutrition"
	CategoryFinance   Category = "finance"
	CategoryEmotional Category = "emotional"
	CategoryHome      Category = "home"
	CategoryGrowth    Category = "growth"
)

var categoryLabels = map[Category]string{
	CategoryPersonal:  "Personal",
	CategoryWork:      "Work",
	CategoryEducation: "Education",
	CategorySports:    "Sports",
	CategoryNutrition: "Nutrition",
	CategoryFinance:   "Finance",
	CategoryEmotional: "Emotional Health",
	CategoryHome:      "Home",
	CategoryGrowth:    "Personal Growth",
}

func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryWork,
		CategoryEducation,
		CategorySports,
		CategoryNutrition,
		CategoryFinance,
		CategoryEmotional,
		CategoryHome,
		CategoryGrowth,
	}
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human-readable name used in prompts and CLI output.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type NotificationType string

const (
	NotifyEmail NotificationType = "email"
	NotifyVoice NotificationType = "voice"
)

// Task points are frozen at creation; Streak only moves on completion of a habit.
type Task struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Category         Category         `json:"category"`
	Priority         Priority         `json:"priority"`
	Completed        bool             `json:"completed"`
	Points           int              `json:"points"`
	Frequency        Frequency        `json:"frequency"`
	IsHabit          bool             `json:"isHabit"`
	Streak           int              `json:"streak"`
	LastCompleted    *time.Time       `json:"lastCompleted,omitempty"`
	StartTime        string           `json:"startTime,omitempty"`
	EndTime          string           `json:"endTime,omitempty"`
	NotificationType NotificationType `json:"notificationType"`
	HabitStartDate   *time.Time       `json:"habitStartDate,omitempty"`
}

func (t Task) Clone() Task {
	c := t
	if t.LastCompleted != nil {
		lc := *t.LastCompleted
		c.LastCompleted = &lc
	}
	if t.HabitStartDate != nil {
		hs := *t.HabitStartDate
		c.HabitStartDate = &hs
	}
	return c
}

func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
