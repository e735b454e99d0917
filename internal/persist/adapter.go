// AngelaMos | 2026
// adapter.go

package persist

import (
	"context"
	"fmt"
	"strings"
)

const (
	snapshotPrefix = "data:"
	ActiveKey      = "session:active"
)

// KV is the string key-value surface every backend provides.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type Adapter struct {
	kv KV
}

func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

func SnapshotKey(email string) string {
	return snapshotPrefix + email
}

func (a *Adapter) Save(ctx context.Context, email string, s Snapshot) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := a.kv.Set(ctx, SnapshotKey(email), string(data)); err != nil {
		return fmt.Errorf("save snapshot %s: %w", email, err)
	}
	return nil
}

// Load returns nil without error when nothing is stored for email.
func (a *Adapter) Load(ctx context.Context, email string) (*Snapshot, error) {
	raw, ok, err := a.kv.Get(ctx, SnapshotKey(email))
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", email, err)
	}
	if !ok {
		return nil, nil
	}

	s, err := decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", email, err)
	}
	return &s, nil
}

func (a *Adapter) SetActiveIdentity(ctx context.Context, email string) error {
	if err := a.kv.Set(ctx, ActiveKey, email); err != nil {
		return fmt.Errorf("set active identity: %w", err)
	}
	return nil
}

func (a *Adapter) ActiveIdentity(ctx context.Context) (string, bool, error) {
	email, ok, err := a.kv.Get(ctx, ActiveKey)
	if err != nil {
		return "", false, fmt.Errorf("get active identity: %w", err)
	}
	if !ok || email == "" {
		return "", false, nil
	}
	return email, true, nil
}

func (a *Adapter) ClearActiveIdentity(ctx context.Context) error {
	if err := a.kv.Delete(ctx, ActiveKey); err != nil {
		return fmt.Errorf("clear active identity: %w", err)
	}
	return nil
}

// Identities lists every email with a stored snapshot.
func (a *Adapter) Identities(ctx context.Context) ([]string, error) {
	keys, err := a.kv.Keys(ctx, snapshotPrefix)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, snapshotPrefix))
	}
	return out, nil
}
