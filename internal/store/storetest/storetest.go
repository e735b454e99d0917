// AngelaMos | 2026
// storetest.go

// Package storetest builds stores over an in-memory backend for handler tests.
package storetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/session"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

const AdminEmail = "admin@example.com"

// New returns a store with no active session.
func New(t testing.TB) *store.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := persist.NewAdapter(persist.NewMemoryKV())

	return store.New(store.Config{
		Resolver: session.NewResolver(session.Config{
			Adapter:    adapter,
			AdminEmail: AdminEmail,
			Timezone:   "UTC",
			Logger:     logger,
		}),
		Adapter:    adapter,
		AdminEmail: AdminEmail,
		Logger:     logger,
	})
}

// LoggedIn returns a store signed in as email.
func LoggedIn(t testing.TB, email string) *store.Store {
	t.Helper()

	s := New(t)
	if _, err := s.Login(context.Background(), email); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return s
}
