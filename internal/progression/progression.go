// AngelaMos | 2026
// progression.go

package progression

import (
	"github.com/carterperez-dev/taskhabit/internal/domain"
)

// LevelThresholds holds the minimum points for level i+1.
var LevelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2500, 5000}

func MaxLevel() int {
	return len(LevelThresholds)
}

// LevelFor returns the largest i+1 with LevelThresholds[i] <= points.
func LevelFor(points int) int {
	level := 1
	for i, th := range LevelThresholds {
		if points >= th {
			level = i + 1
		}
	}
	return level
}

// NextThreshold reports the points required for the level after the one
// points currently sits in. ok is false at the top level.
func NextThreshold(points int) (threshold int, ok bool) {
	level := LevelFor(points)
	if level >= len(LevelThresholds) {
		return 0, false
	}
	return LevelThresholds[level], true
}

// PointsToNextLevel is zero at the top level.
func PointsToNextLevel(points int) int {
	next, ok := NextThreshold(points)
	if !ok {
		return 0
	}
	return next - points
}

type PointsResult struct {
	Before      int  `json:"before"`
	After       int  `json:"after"`
	Level       int  `json:"level"`
	LeveledUp   bool `json:"leveledUp"`
	LevelBefore int  `json:"levelBefore"`
}

func AddPoints(u *domain.User, amount int) PointsResult {
	res := PointsResult{
		Before:      u.Points,
		LevelBefore: u.Level,
	}

	u.Points += amount
	u.Level = LevelFor(u.Points)

	res.After = u.Points
	res.Level = u.Level
	res.LeveledUp = res.Level > res.LevelBefore
	return res
}

// UnlockReward deducts the reward cost and records it. It is a no-op
// returning false when the reward is unknown, unaffordable or already owned.
func UnlockReward(u *domain.User, catalog []domain.Reward, rewardID string) bool {
	reward, ok := domain.FindReward(catalog, rewardID)
	if !ok {
		return false
	}
	if u.Points < reward.Cost || u.HasUnlocked(rewardID) {
		return false
	}

	AddPoints(u, -reward.Cost)
	u.UnlockedRewards = append(u.UnlockedRewards, rewardID)
	return true
}
