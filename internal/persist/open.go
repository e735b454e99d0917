// AngelaMos | 2026
// open.go

package persist

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/taskhabit/internal/config"
	"github.com/carterperez-dev/taskhabit/internal/core"
)

// Backend is the KV chosen by store.backend plus the connections behind it.
// Redis is also set for the postgres and memory backends when a Redis URL
// is configured, because the notifier and rate limiter use it.
type Backend struct {
	Name     string
	KV       KV
	Redis    *core.Redis
	Database *core.Database
}

func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b := &Backend{Name: cfg.Store.Backend}

	if cfg.Redis.URL != "" {
		r, err := core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.Redis = r
	}

	switch cfg.Store.Backend {
	case config.BackendRedis:
		b.KV = NewRedisKV(b.Redis.Client)

	case config.BackendPostgres:
		db, err := core.NewDatabase(ctx, cfg.Database)
		if err != nil {
			_ = b.Close() //nolint:errcheck // cleanup on open failure
			return nil, err
		}
		b.Database = db

		pg := NewPostgresKV(db.DB)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = b.Close() //nolint:errcheck // cleanup on open failure
			return nil, err
		}
		b.KV = pg

	case config.BackendMemory:
		b.KV = NewMemoryKV()

	default:
		_ = b.Close() //nolint:errcheck // cleanup on open failure
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return b, nil
}

// Ping checks whichever connection holds the snapshots.
func (b *Backend) Ping(ctx context.Context) error {
	switch {
	case b.Database != nil:
		return b.Database.Ping(ctx)
	case b.Name == config.BackendRedis && b.Redis != nil:
		return b.Redis.Ping(ctx)
	default:
		return nil
	}
}

func (b *Backend) Close() error {
	var firstErr error
	if b.Database != nil {
		if err := b.Database.Close(); err != nil {
			firstErr = err
		}
	}
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
