// AngelaMos | 2026
// user.go

package domain

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Tier string

const (
	TierFree       Tier = "free"
	TierProMonthly Tier = "pro_monthly"
	TierProAnnual  Tier = "pro_annual"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierProMonthly, TierProAnnual:
		return true
	default:
		return false
	}
}

type Settings struct {
	ThemeColor    string `json:"themeColor"`
	DarkMode      bool   `json:"darkMode"`
	Notifications bool   `json:"notifications"`
}

type ProfileData struct {
	FullName   string `json:"fullName"`
	BirthDate  string `json:"birthDate"`
	Occupation string `json:"occupation"`
	Timezone   string `json:"timezone"`
	Bio        string `json:"bio"`
}

// User is keyed by email; Level is always derived from Points.
type User struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Role            Role         `json:"role"`
	Points          int          `json:"points"`
	Level           int          `json:"level"`
	Membership      Tier         `json:"membership"`
	Avatar          string       `json:"avatar"`
	UnlockedRewards []string     `json:"unlockedRewards"`
	ProfileData     *ProfileData `json:"profileData,omitempty"`
	Settings        Settings     `json:"settings"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasUnlocked(rewardID string) bool {
	for _, id := range u.UnlockedRewards {
		if id == rewardID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable memory with u.
func (u User) Clone() User {
	c := u
	c.UnlockedRewards = append([]string{}, u.UnlockedRewards...)
	if u.ProfileData != nil {
		pd := *u.ProfileData
		c.ProfileData = &pd
	}
	return c
}
