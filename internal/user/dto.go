// AngelaMos | 2026
// dto.go

package user

import (
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

type SettingsRequest struct {
	ThemeColor    string `json:"themeColor"    validate:"required,max=32"`
	DarkMode      bool   `json:"darkMode"`
	Notifications bool   `json:"notifications"`
}

type ProfileRequest struct {
	FullName   string `json:"fullName"   validate:"max=120"`
	BirthDate  string `json:"birthDate"  validate:"omitempty,datetime=2006-01-02"`
	Occupation string `json:"occupation" validate:"max=120"`
	Timezone   string `json:"timezone"   validate:"omitempty,timezone"`
	Bio        string `json:"bio"        validate:"max=1000"`
}

type UpdateMeRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=100"`
	Avatar      *string          `json:"avatar"      validate:"omitempty,min=1,max=64"`
	Settings    *SettingsRequest `json:"settings"    validate:"omitempty"`
	ProfileData *ProfileRequest  `json:"profileData" validate:"omitempty"`
}

func (req UpdateMeRequest) ToPatch() store.UserPatch {
	p := store.UserPatch{
		Name:   req.Name,
		Avatar: req.Avatar,
	}
	if req.Settings != nil {
		p.Settings = &domain.Settings{
			ThemeColor:    req.Settings.ThemeColor,
			DarkMode:      req.Settings.DarkMode,
			Notifications: req.Settings.Notifications,
		}
	}
	if req.ProfileData != nil {
		p.ProfileData = &domain.ProfileData{
			FullName:   req.ProfileData.FullName,
			BirthDate:  req.ProfileData.BirthDate,
			Occupation: req.ProfileData.Occupation,
			Timezone:   req.ProfileData.Timezone,
			Bio:        req.ProfileData.Bio,
		}
	}
	return p
}

type AddPointsRequest struct {
	Amount int `json:"amount" validate:"required,min=1,max=10000"`
}

type SubscriptionRequest struct {
	Tier domain.Tier `json:"tier" validate:"required,oneof=pro_monthly pro_annual"`
}

type SubscriptionResponse struct {
	Requested bool        `json:"requested"`
	Tier      domain.Tier `json:"tier"`
}

type StateResponse struct {
	User    domain.User     `json:"user"`
	Tasks   []domain.Task   `json:"tasks"`
	Rewards []domain.Reward `json:"rewards"`
	Loading bool            `json:"loading"`
}
