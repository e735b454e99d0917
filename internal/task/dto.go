// AngelaMos | 2026
// dto.go

package task

import (
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
)

type CreateTaskRequest struct {
	Title            string `json:"title"            validate:"required,max=200"`
	Description      string `json:"description"      validate:"max=2000"`
	Category         string `json:"category"         validate:"required,oneof=personal work education sports nutrition finance emotional home growth"`
	Priority         string `json:"priority"         validate:"required,oneof=low medium high"`
	Frequency        string `json:"frequency"        validate:"omitempty,oneof=once daily weekly monthly"`
	IsHabit          bool   `json:"isHabit"`
	StartTime        string `json:"startTime"        validate:"omitempty,datetime=15:04"`
	EndTime          string `json:"endTime"          validate:"omitempty,datetime=15:04"`
	NotificationType string `json:"notificationType" validate:"omitempty,oneof=email voice"`
}

func (req CreateTaskRequest) ToDraft() lifecycle.Draft {
	freq := domain.Frequency(req.Frequency)
	if freq == "" {
		freq = domain.FrequencyOnce
	}
	notify := domain.NotificationType(req.NotificationType)
	if notify == "" {
		notify = domain.NotifyEmail
	}

	return lifecycle.Draft{
		Title:            req.Title,
		Description:      req.Description,
		Category:         domain.Category(req.Category),
		Priority:         domain.Priority(req.Priority),
		Frequency:        freq,
		IsHabit:          req.IsHabit,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		NotificationType: notify,
	}
}

type TaskResponse struct {
	domain.Task
	ChallengeDay int `json:"challengeDay,omitempty"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
