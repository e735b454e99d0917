// AngelaMos | 2026
// store.go

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/session"
)

var ErrNoSession = fmt.Errorf("%w: no active session", core.ErrUnauthorized)

type Config struct {
	Resolver          *session.Resolver
	Adapter           *persist.Adapter
	Notifier          notify.Notifier
	AdminEmail        string
	SubscriptionDelay time.Duration
	Clock             func() time.Time
	NewID             func() string
	Logger            *slog.Logger
}

// Store owns the live state of the signed-in identity. Operations are
// serialized by mu; each mutation is persisted before it returns.
type Store struct {
	mu    sync.Mutex
	state *persist.Snapshot

	loading atomic.Bool

	resolver          *session.Resolver
	adapter           *persist.Adapter
	notifier          notify.Notifier
	adminEmail        string
	subscriptionDelay time.Duration
	now               func() time.Time
	newID             func() string
	logger            *slog.Logger
}

func New(cfg Config) *Store {
	s := &Store{
		resolver:          cfg.Resolver,
		adapter:           cfg.Adapter,
		notifier:          cfg.Notifier,
		adminEmail:        cfg.AdminEmail,
		subscriptionDelay: cfg.SubscriptionDelay,
		now:               cfg.Clock,
		newID:             cfg.NewID,
		logger:            cfg.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier(s.logger)
	}
	return s
}

func (s *Store) Loading() bool {
	return s.loading.Load()
}

func (s *Store) Login(ctx context.Context, email string) (persist.Snapshot, error) {
	ctx, span := core.StartSpan(ctx, "store.login", attribute.String("email", email))
	defer span.End()

	s.loading.Store(true)
	defer s.loading.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.resolver.Login(ctx, email)
	if err != nil {
		core.SetSpanError(ctx, err)
		return persist.Snapshot{}, fmt.Errorf("login: %w", err)
	}

	s.state = &snap
	return snap.Clone(), nil
}

// Resume restores the active identity if one was recorded.
func (s *Store) Resume(ctx context.Context) (bool, error) {
	ctx, span := core.StartSpan(ctx, "store.resume")
	defer span.End()

	s.loading.Store(true)
	defer s.loading.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok, err := s.resolver.Resume(ctx)
	if err != nil {
		core.SetSpanError(ctx, err)
		return false, fmt.Errorf("resume: %w", err)
	}
	if ok {
		s.state = &snap
	}
	return ok, nil
}

func (s *Store) Logout(ctx context.Context) error {
	ctx, span := core.StartSpan(ctx, "store.logout")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resolver.Logout(ctx); err != nil {
		core.SetSpanError(ctx, err)
		return fmt.Errorf("logout: %w", err)
	}
	s.state = nil
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() (persist.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return persist.Snapshot{}, ErrNoSession
	}
	return s.state.Clone(), nil
}

func (s *Store) User() (domain.User, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return domain.User{}, err
	}
	return snap.User, nil
}

func (s *Store) Tasks() ([]domain.Task, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Tasks, nil
}

func (s *Store) Rewards() ([]domain.Reward, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Rewards, nil
}

// ActiveEmail is empty when nobody is signed in.
func (s *Store) ActiveEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ""
	}
	return s.state.User.Email
}

// mutate applies fn to the live state and persists the result. fn reports
// whether it changed anything; unchanged state is not written. On any
// error the in-memory state is restored to what it was before fn ran.
func (s *Store) mutate(
	ctx context.Context,
	op string,
	fn func(st *persist.Snapshot) (bool, error),
) error {
	ctx, span := core.StartSpan(ctx, "store."+op)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoSession
	}

	prev := s.state.Clone()

	changed, err := fn(s.state)
	if err != nil {
		*s.state = prev
		return err
	}
	if !changed {
		return nil
	}

	if err := s.adapter.Save(ctx, s.state.User.Email, *s.state); err != nil {
		*s.state = prev
		core.SetSpanError(ctx, err)
		s.logger.ErrorContext(ctx, "persist failed, state rolled back",
			"op", op,
			"email", prev.User.Email,
			"error", err,
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	core.AddSpanEvent(ctx, "persisted", attribute.Int("tasks", len(s.state.Tasks)))
	return nil
}
