// AngelaMos | 2026
// resolver_test.go

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/persist"
)

const adminEmail = "admin@example.com"

func newResolver(t *testing.T) (*Resolver, *persist.MemoryKV) {
	t.Helper()
	kv := persist.NewMemoryKV()
	r := NewResolver(Config{
		Adapter:    persist.NewAdapter(kv),
		AdminEmail: adminEmail,
		Timezone:   "Europe/Madrid",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r, kv
}

func TestLoginNewUser(t *testing.T) {
	r, _ := newResolver(t)

	s, err := r.Login(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	u := s.User
	if u.Role != domain.RoleUser || u.Points != 0 || u.Level != 1 {
		t.Errorf("unexpected user %+v", u)
	}
	if u.ID != "new@example.com" || u.Name != "new" {
		t.Errorf("id/name = %q/%q", u.ID, u.Name)
	}
	if len(s.Tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(s.Tasks))
	}
	if len(s.Rewards) != 4 {
		t.Errorf("rewards = %d, want 4", len(s.Rewards))
	}
	if u.ProfileData == nil || u.ProfileData.Timezone != "Europe/Madrid" {
		t.Errorf("profile = %+v", u.ProfileData)
	}
}

func TestLoginAdmin(t *testing.T) {
	r, _ := newResolver(t)

	s, err := r.Login(context.Background(), adminEmail)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.User.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want ADMIN", s.User.Role)
	}
}

func TestLoginAdminMatchIsExact(t *testing.T) {
	r, _ := newResolver(t)

	s, err := r.Login(context.Background(), "Admin@Example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.User.Role != domain.RoleUser {
		t.Errorf("role = %q, want USER", s.User.Role)
	}
}

func TestLoginPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	r, kv := newResolver(t)
	adapter := persist.NewAdapter(kv)

	s, err := r.Login(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	active, ok, _ := adapter.ActiveIdentity(ctx)
	if !ok || active != "ana@example.com" {
		t.Fatalf("active = %q, %v", active, ok)
	}

	s.User.Points = 300
	s.User.Level = 3
	s.Tasks = append(s.Tasks, domain.Task{ID: "t1", Title: "Stretch"})
	if err := adapter.Save(ctx, "ana@example.com", s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := r.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok, _ := r.Resume(ctx); ok {
		t.Fatal("Resume after logout should find no session")
	}

	again, err := r.Login(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("relogin: %v", err)
	}
	if again.User.Points != 300 || len(again.Tasks) != 1 {
		t.Errorf("restored %d pts %d tasks, want 300 pts 1 task", again.User.Points, len(again.Tasks))
	}
}

func TestResume(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	if _, ok, err := r.Resume(ctx); ok || err != nil {
		t.Fatalf("Resume on empty store = %v, %v", ok, err)
	}

	if _, err := r.Login(ctx, "ana@example.com"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s, ok, err := r.Resume(ctx)
	if err != nil || !ok || s.User.Email != "ana@example.com" {
		t.Fatalf("Resume = %v, %v, %v", s.User.Email, ok, err)
	}
}

func TestLoginCorruptBlob(t *testing.T) {
	ctx := context.Background()
	r, kv := newResolver(t)

	_ = kv.Set(ctx, persist.SnapshotKey("bad@example.com"), "{not json")

	_, err := r.Login(ctx, "bad@example.com")
	if !errors.Is(err, persist.ErrCorruptSnapshot) {
		t.Fatalf("err = %v, want ErrCorruptSnapshot", err)
	}

	raw, _, _ := kv.Get(ctx, persist.SnapshotKey("bad@example.com"))
	if raw != "{not json" {
		t.Error("corrupt blob was overwritten")
	}
	if _, ok, _ := kv.Get(ctx, persist.ActiveKey); ok {
		t.Error("active pointer set after failed login")
	}
}

func TestLoginDelayHonorsContext(t *testing.T) {
	r, _ := newResolver(t)
	r.delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Login(ctx, "ana@example.com"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
