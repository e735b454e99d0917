// AngelaMos | 2026
// reminder_test.go

package reminder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
)

func TestDue(t *testing.T) {
	now := time.Date(2026, 6, 1, 7, 52, 30, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "soon", StartTime: "08:00"},
		{ID: "edge", StartTime: "08:02"},
		{ID: "later", StartTime: "08:03"},
		{ID: "started", StartTime: "07:52"},
		{ID: "done", StartTime: "07:55", Completed: true},
		{ID: "untimed"},
		{ID: "garbage", StartTime: "8 am"},
	}

	due := Due(tasks, now, DefaultLead)

	got := make(map[string]bool)
	for _, d := range due {
		got[d.Task.ID] = true
	}
	if len(due) != 2 || !got["soon"] || !got["edge"] {
		t.Errorf("due = %v, want soon and edge", got)
	}
}

func TestDueCrossesMidnight(t *testing.T) {
	tasks := []domain.Task{
		{ID: "midnight", StartTime: "00:00"},
		{ID: "early", StartTime: "00:05"},
		{ID: "late", StartTime: "00:11"},
	}

	tests := []struct {
		name string
		now  time.Time
		want map[string]time.Time
	}{
		{
			name: "before midnight",
			now:  time.Date(2026, 6, 1, 23, 50, 0, 0, time.UTC),
			want: map[string]time.Time{
				"midnight": time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
				"early":    time.Date(2026, 6, 2, 0, 5, 0, 0, time.UTC),
			},
		},
		{
			name: "at midnight",
			now:  time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
			want: map[string]time.Time{
				"early": time.Date(2026, 6, 2, 0, 5, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := Due(tasks, tt.now, DefaultLead)
			if len(due) != len(tt.want) {
				t.Fatalf("due = %+v, want %d tasks", due, len(tt.want))
			}
			for _, d := range due {
				want, ok := tt.want[d.Task.ID]
				if !ok || !d.At.Equal(want) {
					t.Errorf("%s at %v, want %v", d.Task.ID, d.At, want)
				}
			}
		})
	}
}

type fixedSource struct {
	snap persist.Snapshot
}

func (f fixedSource) Snapshot() (persist.Snapshot, error) {
	return f.snap, nil
}

type countingNotifier struct {
	msgs []notify.Message
}

func (c *countingNotifier) Notify(_ context.Context, msg notify.Message) error {
	c.msgs = append(c.msgs, msg)
	return nil
}

func TestSchedulerRemindsOncePerDay(t *testing.T) {
	now := time.Date(2026, 6, 1, 17, 50, 0, 0, time.UTC)
	notifier := &countingNotifier{}

	s := NewScheduler(Config{
		Source: fixedSource{snap: persist.Snapshot{
			User: domain.User{
				Email:    "ana@example.com",
				Settings: domain.Settings{Notifications: true},
			},
			Tasks: []domain.Task{
				{ID: "yoga", Title: "Yoga", StartTime: "18:00", NotificationType: domain.NotifyVoice},
			},
		}},
		Notifier: notifier,
		Clock:    func() time.Time { return now },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if n := s.Tick(context.Background()); n != 1 {
		t.Fatalf("first tick sent %d, want 1", n)
	}
	now = now.Add(time.Minute)
	if n := s.Tick(context.Background()); n != 0 {
		t.Fatalf("second tick sent %d, want 0", n)
	}

	now = now.Add(24 * time.Hour)
	if n := s.Tick(context.Background()); n != 1 {
		t.Fatalf("next day sent %d, want 1", n)
	}

	if notifier.msgs[0].Channel != domain.NotifyVoice {
		t.Errorf("channel = %q, want voice", notifier.msgs[0].Channel)
	}
}

func TestSchedulerRespectsNotificationSetting(t *testing.T) {
	now := time.Date(2026, 6, 1, 17, 55, 0, 0, time.UTC)
	notifier := &countingNotifier{}

	s := NewScheduler(Config{
		Source: fixedSource{snap: persist.Snapshot{
			User:  domain.User{Email: "ana@example.com"},
			Tasks: []domain.Task{{ID: "yoga", StartTime: "18:00"}},
		}},
		Notifier: notifier,
		Clock:    func() time.Time { return now },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if n := s.Tick(context.Background()); n != 0 {
		t.Errorf("sent %d with notifications off", n)
	}
}

func TestSchedulerRemindsOnceAcrossMidnight(t *testing.T) {
	now := time.Date(2026, 6, 1, 23, 55, 0, 0, time.UTC)
	notifier := &countingNotifier{}

	s := NewScheduler(Config{
		Source: fixedSource{snap: persist.Snapshot{
			User: domain.User{
				Email:    "ana@example.com",
				Settings: domain.Settings{Notifications: true},
			},
			Tasks: []domain.Task{{ID: "run", Title: "Run", StartTime: "00:05"}},
		}},
		Notifier: notifier,
		Clock:    func() time.Time { return now },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if n := s.Tick(context.Background()); n != 1 {
		t.Fatalf("23:55 sent %d, want 1", n)
	}
	now = time.Date(2026, 6, 2, 0, 1, 0, 0, time.UTC)
	if n := s.Tick(context.Background()); n != 0 {
		t.Errorf("00:01 sent %d, want 0", n)
	}
}

func TestSchedulerUsesProfileTimezone(t *testing.T) {
	// 16:55 UTC is 18:55 in Madrid during summer time.
	now := time.Date(2026, 6, 1, 16, 55, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		start    string
		want     int
	}{
		{"profile zone", "Europe/Madrid", "19:00", 1},
		{"profile zone ignores utc start", "Europe/Madrid", "17:00", 0},
		{"no zone uses clock", "", "17:00", 1},
		{"unknown zone uses clock", "Mars/Olympus", "17:00", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(Config{
				Source: fixedSource{snap: persist.Snapshot{
					User: domain.User{
						Email:       "ana@example.com",
						Settings:    domain.Settings{Notifications: true},
						ProfileData: &domain.ProfileData{Timezone: tt.timezone},
					},
					Tasks: []domain.Task{{ID: "call", StartTime: tt.start}},
				}},
				Notifier: &countingNotifier{},
				Clock:    func() time.Time { return now },
				Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			if n := s.Tick(context.Background()); n != tt.want {
				t.Errorf("sent %d, want %d", n, tt.want)
			}
		})
	}
}
