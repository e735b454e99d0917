// AngelaMos | 2026
// progression_test.go

package progression

import (
	"testing"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{-10, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{1500, 6},
		{2500, 7},
		{4999, 7},
		{5000, 8},
		{100000, 8},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.points); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelForIsMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for p := 1; p <= 6000; p++ {
		got := LevelFor(p)
		if got < prev {
			t.Fatalf("level dropped from %d to %d at %d points", prev, got, p)
		}
		prev = got
	}
}

func TestPointsToNextLevel(t *testing.T) {
	if got := PointsToNextLevel(40); got != 60 {
		t.Errorf("PointsToNextLevel(40) = %d, want 60", got)
	}
	if got := PointsToNextLevel(5000); got != 0 {
		t.Errorf("PointsToNextLevel(5000) = %d, want 0", got)
	}
	if _, ok := NextThreshold(9000); ok {
		t.Error("NextThreshold at max level should report !ok")
	}
}

func TestAddPoints(t *testing.T) {
	u := &domain.User{Points: 90, Level: 1}

	res := AddPoints(u, 20)

	if u.Points != 110 || u.Level != 2 {
		t.Fatalf("user = %d pts level %d, want 110 pts level 2", u.Points, u.Level)
	}
	if !res.LeveledUp || res.Before != 90 || res.After != 110 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestUnlockReward(t *testing.T) {
	catalog := domain.DefaultRewards()

	t.Run("unaffordable is a stable no-op", func(t *testing.T) {
		u := &domain.User{Points: 40, Level: 1}
		for range 2 {
			if UnlockReward(u, catalog, "r1") {
				t.Fatal("unlock should fail with 40 points")
			}
			if u.Points != 40 || len(u.UnlockedRewards) != 0 {
				t.Fatalf("state changed: %+v", u)
			}
		}
	})

	t.Run("success deducts cost once", func(t *testing.T) {
		u := &domain.User{Points: 120, Level: 2}

		if !UnlockReward(u, catalog, "r1") {
			t.Fatal("unlock should succeed")
		}
		if u.Points != 70 || u.Level != 1 {
			t.Errorf("user = %d pts level %d, want 70 pts level 1", u.Points, u.Level)
		}
		if len(u.UnlockedRewards) != 1 || u.UnlockedRewards[0] != "r1" {
			t.Errorf("unlocked = %v", u.UnlockedRewards)
		}

		if UnlockReward(u, catalog, "r1") {
			t.Error("second unlock should be a no-op")
		}
		if u.Points != 70 || len(u.UnlockedRewards) != 1 {
			t.Errorf("state changed on repeat unlock: %+v", u)
		}
	})

	t.Run("unknown reward", func(t *testing.T) {
		u := &domain.User{Points: 1000}
		if UnlockReward(u, catalog, "r99") {
			t.Error("unknown reward should not unlock")
		}
	})

	t.Run("exact balance reaches zero", func(t *testing.T) {
		u := &domain.User{Points: 500}
		if !UnlockReward(u, catalog, "r4") {
			t.Fatal("unlock should succeed at exact cost")
		}
		if u.Points != 0 {
			t.Errorf("points = %d, want 0", u.Points)
		}
	})
}
