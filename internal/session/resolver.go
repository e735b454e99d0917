// AngelaMos | 2026
// resolver.go

package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/progression"
)

type Config struct {
	Adapter    *persist.Adapter
	AdminEmail string
	// Delay models the round trip of a remote login. Zero disables it.
	Delay    time.Duration
	Timezone string
	Logger   *slog.Logger
}

type Resolver struct {
	adapter    *persist.Adapter
	adminEmail string
	delay      time.Duration
	timezone   string
	logger     *slog.Logger
}

func NewResolver(cfg Config) *Resolver {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tz := cfg.Timezone
	if tz == "" {
		tz = time.Local.String()
	}
	return &Resolver{
		adapter:    cfg.Adapter,
		adminEmail: cfg.AdminEmail,
		delay:      cfg.Delay,
		timezone:   tz,
		logger:     logger,
	}
}

// Login adopts the stored profile for email, or creates one from the
// new-user template, then persists it and marks email as active. A stored
// blob that cannot be read fails the login without touching storage.
func (r *Resolver) Login(ctx context.Context, email string) (persist.Snapshot, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return persist.Snapshot{}, fmt.Errorf("login email: %w", core.ErrInvalidInput)
	}

	if err := r.wait(ctx); err != nil {
		return persist.Snapshot{}, err
	}

	stored, err := r.adapter.Load(ctx, email)
	if err != nil {
		return persist.Snapshot{}, err
	}

	var s persist.Snapshot
	if stored != nil {
		s = *stored
		r.logger.Info("session restored", "email", email, "tasks", len(s.Tasks))
	} else {
		s = persist.Snapshot{
			Version: persist.CurrentVersion,
			User:    NewUser(email, r.adminEmail, r.timezone),
			Tasks:   []domain.Task{},
			Rewards: domain.DefaultRewards(),
		}
		r.logger.Info("profile created", "email", email, "role", s.User.Role)
	}

	if err := r.adapter.Save(ctx, email, s); err != nil {
		return persist.Snapshot{}, err
	}
	if err := r.adapter.SetActiveIdentity(ctx, email); err != nil {
		return persist.Snapshot{}, err
	}

	return s, nil
}

// Resume logs the active identity back in. ok is false when no pointer is set.
func (r *Resolver) Resume(ctx context.Context) (persist.Snapshot, bool, error) {
	email, ok, err := r.adapter.ActiveIdentity(ctx)
	if err != nil || !ok {
		return persist.Snapshot{}, false, err
	}

	s, err := r.Login(ctx, email)
	if err != nil {
		return persist.Snapshot{}, false, err
	}
	return s, true, nil
}

// Logout clears only the active pointer; stored profiles are kept.
func (r *Resolver) Logout(ctx context.Context) error {
	return r.adapter.ClearActiveIdentity(ctx)
}

func (r *Resolver) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewUser builds the profile for an identity seen for the first time.
// Only an exact match of adminEmail is made an admin.
func NewUser(email, adminEmail, timezone string) domain.User {
	role := domain.RoleUser
	if email == adminEmail {
		role = domain.RoleAdmin
	}

	name, _, _ := strings.Cut(email, "@")

	return domain.User{
		ID:              email,
		Name:            name,
		Email:           email,
		Role:            role,
		Points:          0,
		Level:           progression.LevelFor(0),
		Membership:      domain.TierFree,
		Avatar:          "default",
		UnlockedRewards: []string{},
		ProfileData:     &domain.ProfileData{Timezone: timezone},
		Settings: domain.Settings{
			ThemeColor:    "indigo",
			DarkMode:      false,
			Notifications: true,
		},
	}
}
