// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/carterperez-dev/taskhabit/internal/domain"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SessionResponse struct {
	User    domain.User     `json:"user"`
	Tasks   []domain.Task   `json:"tasks"`
	Rewards []domain.Reward `json:"rewards"`
	Token   IssuedToken     `json:"token"`
}
