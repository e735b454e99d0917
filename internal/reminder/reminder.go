// AngelaMos | 2026
// reminder.go

package reminder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
)

const DefaultLead = 10 * time.Minute

// Occurrence is the next start of a task after some instant.
type Occurrence struct {
	Task domain.Task
	At   time.Time
}

// Due returns the uncompleted tasks whose next start falls within
// (now, now+lead]. now is truncated to the minute and its location decides
// the wall clock, so a window ending after midnight reaches tomorrow's starts.
func Due(tasks []domain.Task, now time.Time, lead time.Duration) []Occurrence {
	now = now.Truncate(time.Minute)

	var due []Occurrence
	for _, t := range tasks {
		if t.Completed || t.StartTime == "" {
			continue
		}
		start, ok := nextStart(t.StartTime, now)
		if !ok {
			continue
		}
		if !start.After(now.Add(lead)) {
			due = append(due, Occurrence{Task: t, At: start})
		}
	}
	return due
}

// nextStart is the first hh:mm strictly after now, today or tomorrow.
func nextStart(hhmm string, now time.Time) (time.Time, bool) {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := now.Date()
	start := time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if !start.After(now) {
		start = time.Date(y, m, d+1, clock.Hour(), clock.Minute(), 0, 0, now.Location())
	}
	return start, true
}

type Source interface {
	Snapshot() (persist.Snapshot, error)
}

type Config struct {
	Source   Source
	Notifier notify.Notifier
	Interval time.Duration
	Lead     time.Duration
	Clock    func() time.Time
	Logger   *slog.Logger
}

// Scheduler sends at most one reminder per task occurrence. Start times are
// read in the user's profile timezone when it names a known location.
type Scheduler struct {
	source   Source
	notifier notify.Notifier
	interval time.Duration
	lead     time.Duration
	now      func() time.Time
	logger   *slog.Logger

	mu       sync.Mutex
	reminded map[string]time.Time
}

func NewScheduler(cfg Config) *Scheduler {
	s := &Scheduler{
		source:   cfg.Source,
		notifier: cfg.Notifier,
		interval: cfg.Interval,
		lead:     cfg.Lead,
		now:      cfg.Clock,
		logger:   cfg.Logger,
		reminded: make(map[string]time.Time),
	}
	if s.interval <= 0 {
		s.interval = time.Minute
	}
	if s.lead <= 0 {
		s.lead = DefaultLead
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		"interval", s.interval,
		"lead", s.lead,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick checks once and returns how many reminders were sent.
func (s *Scheduler) Tick(ctx context.Context) int {
	snap, err := s.source.Snapshot()
	if err != nil {
		if !errors.Is(err, core.ErrUnauthorized) {
			s.logger.WarnContext(ctx, "reminder check failed", "error", err)
		}
		return 0
	}
	if !snap.User.Settings.Notifications {
		return 0
	}

	now := s.now().In(s.location(ctx, snap.User))

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, at := range s.reminded {
		if !at.After(now) {
			delete(s.reminded, key)
		}
	}

	sent := 0
	for _, o := range Due(snap.Tasks, now, s.lead) {
		key := snap.User.Email + "/" + o.Task.ID + "/" + o.At.Format(time.DateOnly)
		if _, ok := s.reminded[key]; ok {
			continue
		}
		if err := s.notifier.Notify(ctx, notify.Reminder(snap.User, o.Task, now)); err != nil {
			s.logger.WarnContext(ctx, "reminder not sent", "task", o.Task.ID, "error", err)
			continue
		}
		s.reminded[key] = o.At
		sent++
	}
	return sent
}

// location falls back to the clock's own zone when the profile has no
// timezone or names one the system does not know.
func (s *Scheduler) location(ctx context.Context, u domain.User) *time.Location {
	if u.ProfileData == nil || u.ProfileData.Timezone == "" {
		return s.now().Location()
	}
	loc, err := time.LoadLocation(u.ProfileData.Timezone)
	if err != nil {
		s.logger.DebugContext(ctx, "unknown profile timezone",
			"timezone", u.ProfileData.Timezone,
			"error", err,
		)
		return s.now().Location()
	}
	return loc
}
