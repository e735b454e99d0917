// AngelaMos | 2026
// operations.go

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/progression"
)

func (s *Store) AddTask(ctx context.Context, d lifecycle.Draft) (domain.Task, error) {
	var created domain.Task

	err := s.mutate(ctx, "add_task", func(st *persist.Snapshot) (bool, error) {
		t, err := lifecycle.New(d, s.newID(), s.now())
		if err != nil {
			return false, err
		}
		st.Tasks = append(st.Tasks, t)
		created = t.Clone()
		return true, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

func (s *Store) ToggleTask(ctx context.Context, id string) (lifecycle.ToggleResult, error) {
	var res lifecycle.ToggleResult

	err := s.mutate(ctx, "toggle_task", func(st *persist.Snapshot) (bool, error) {
		i := lifecycle.Find(st.Tasks, id)
		if i < 0 {
			return false, fmt.Errorf("task %s: %w", id, core.ErrNotFound)
		}
		res = lifecycle.Toggle(&st.User, &st.Tasks[i], s.now())
		return true, nil
	})
	if err != nil {
		return lifecycle.ToggleResult{}, err
	}

	if res.Points.LeveledUp {
		s.logger.InfoContext(ctx, "level up", "level", res.Points.Level)
	}
	return res, nil
}

// DeleteTask reports whether a task was removed. Unknown ids are not an error.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	var removed bool

	err := s.mutate(ctx, "delete_task", func(st *persist.Snapshot) (bool, error) {
		st.Tasks, removed = lifecycle.Remove(st.Tasks, id)
		return removed, nil
	})
	return removed, err
}

// UnlockReward reports false without error when the guard rejects the unlock.
func (s *Store) UnlockReward(ctx context.Context, rewardID string) (bool, error) {
	var unlocked bool

	err := s.mutate(ctx, "unlock_reward", func(st *persist.Snapshot) (bool, error) {
		unlocked = progression.UnlockReward(&st.User, st.Rewards, rewardID)
		return unlocked, nil
	})
	return unlocked, err
}

func (s *Store) AddPoints(ctx context.Context, amount int) (progression.PointsResult, error) {
	var res progression.PointsResult

	err := s.mutate(ctx, "add_points", func(st *persist.Snapshot) (bool, error) {
		res = progression.AddPoints(&st.User, amount)
		return amount != 0, nil
	})
	return res, err
}

// UserPatch lists the profile fields a user may edit directly. Nil fields
// are left as they are.
type UserPatch struct {
	Name        *string
	Avatar      *string
	Settings    *domain.Settings
	ProfileData *domain.ProfileData
}

func (p UserPatch) empty() bool {
	return p.Name == nil && p.Avatar == nil && p.Settings == nil && p.ProfileData == nil
}

func (s *Store) UpdateUser(ctx context.Context, p UserPatch) (domain.User, error) {
	var updated domain.User

	err := s.mutate(ctx, "update_user", func(st *persist.Snapshot) (bool, error) {
		if p.Name != nil {
			st.User.Name = *p.Name
		}
		if p.Avatar != nil {
			st.User.Avatar = *p.Avatar
		}
		if p.Settings != nil {
			st.User.Settings = *p.Settings
		}
		if p.ProfileData != nil {
			pd := *p.ProfileData
			st.User.ProfileData = &pd
		}
		updated = st.User.Clone()
		return !p.empty(), nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// AdminUpdateUserMembership only reaches the signed-in profile; applied is
// false for any other user id.
func (s *Store) AdminUpdateUserMembership(
	ctx context.Context,
	userID string,
	tier domain.Tier,
) (bool, error) {
	if !tier.IsValid() {
		return false, fmt.Errorf("membership %q: %w", tier, core.ErrInvalidInput)
	}

	var applied bool

	err := s.mutate(ctx, "admin_update_membership", func(st *persist.Snapshot) (bool, error) {
		if st.User.ID != userID {
			return false, nil
		}
		applied = true
		st.User.Membership = tier
		return true, nil
	})
	return applied, err
}

// RequestSubscription waits out the simulated request time, then sends
// payment instructions to the user and an alert to the administrator.
// No payment is taken and the tier is not changed.
func (s *Store) RequestSubscription(ctx context.Context, tier domain.Tier) (bool, error) {
	if !tier.IsValid() || tier == domain.TierFree {
		return false, fmt.Errorf("subscription tier %q: %w", tier, core.ErrInvalidInput)
	}

	u, err := s.User()
	if err != nil {
		return false, err
	}

	ctx, span := core.StartSpan(ctx, "store.request_subscription")
	defer span.End()

	if s.subscriptionDelay > 0 {
		timer := time.NewTimer(s.subscriptionDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	now := s.now()
	for _, msg := range []notify.Message{
		notify.PaymentInstructions(u, tier, now),
		notify.AdminAlert(s.adminEmail, u, tier, now),
	} {
		if err := s.notifier.Notify(ctx, msg); err != nil {
			core.SetSpanError(ctx, err)
			return false, fmt.Errorf("request subscription: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "subscription requested", "email", u.Email, "tier", tier)
	return true, nil
}

type ProfileSummary struct {
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       domain.Role `json:"role"`
	Membership domain.Tier `json:"membership"`
	Points     int         `json:"points"`
	Level      int         `json:"level"`
	Tasks      int         `json:"tasks"`
}

// Profiles summarizes every stored identity. Unreadable blobs are skipped
// and logged.
func (s *Store) Profiles(ctx context.Context) ([]ProfileSummary, error) {
	ctx, span := core.StartSpan(ctx, "store.profiles")
	defer span.End()

	emails, err := s.adapter.Identities(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProfileSummary, 0, len(emails))
	for _, email := range emails {
		snap, err := s.adapter.Load(ctx, email)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable profile", "email", email, "error", err)
			continue
		}
		if snap == nil {
			continue
		}
		out = append(out, ProfileSummary{
			Email:      snap.User.Email,
			Name:       snap.User.Name,
			Role:       snap.User.Role,
			Membership: snap.User.Membership,
			Points:     snap.User.Points,
			Level:      snap.User.Level,
			Tasks:      len(snap.Tasks),
		})
	}
	return out, nil
}
