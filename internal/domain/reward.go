// AngelaMos | 2026
// reward.go

package domain

type RewardType string

const (
	RewardIcon      RewardType = "icon"
	RewardWallpaper RewardType = "wallpaper"
	RewardFeature   RewardType = "feature"
)

type Reward struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Cost        int        `json:"cost"`
	Icon        string     `json:"icon"`
	Type        RewardType `json:"type"`
	Description string     `json:"description"`
}

// DefaultRewards returns a fresh copy of the built-in catalog.
func DefaultRewards() []Reward {
	return []Reward{
		{
			ID:          "r1",
			Name:        "Dark Theme",
			Cost:        50,
			Icon:        "Moon",
			Type:        RewardFeature,
			Description: "Night mode to rest your eyes.",
		},
		{
			ID:          "r2",
			Name:        "Ninja Avatar",
			Cost:        150,
			Icon:        "User",
			Type:        RewardIcon,
			Description: "An exclusive ninja avatar.",
		},
		{
			ID:          "r3",
			Name:        "Galaxy Wallpaper",
			Cost:        300,
			Icon:        "Image",
			Type:        RewardWallpaper,
			Description: "A starry background.",
		},
		{
			ID:          "r4",
			Name:        "Pro Stats",
			Cost:        500,
			Icon:        "BarChart",
			Type:        RewardFeature,
			Description: "Temporary access to advanced charts.",
		},
	}
}

func FindReward(catalog []Reward, id string) (Reward, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
