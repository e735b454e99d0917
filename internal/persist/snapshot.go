// AngelaMos | 2026
// snapshot.go

package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

// CurrentVersion is written on every save. Blobs without a version field
// predate versioning and are read as version 0.
const CurrentVersion = 1

var (
	ErrCorruptSnapshot   = errors.New("corrupt snapshot")
	ErrUnsupportedSchema = errors.New("unsupported snapshot schema version")
)

type Snapshot struct {
	Version int             `json:"version"`
	User    domain.User     `json:"user"`
	Tasks   []domain.Task   `json:"tasks"`
	Rewards []domain.Reward `json:"rewards"`
}

// Clone deep-copies s so callers can hold it across mutations.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Version: s.Version,
		User:    s.User.Clone(),
		Tasks:   domain.CloneTasks(s.Tasks),
		Rewards: append([]domain.Reward{}, s.Rewards...),
	}
}

type wireSnapshot struct {
	Version int             `json:"version"`
	User    *domain.User    `json:"user"`
	Tasks   []domain.Task   `json:"tasks"`
	Rewards []domain.Reward `json:"rewards"`
}

func encode(s Snapshot) ([]byte, error) {
	s.Version = CurrentVersion
	if s.Tasks == nil {
		s.Tasks = []domain.Task{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) (Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if w.User == nil {
		return Snapshot{}, fmt.Errorf("%w: missing user", ErrCorruptSnapshot)
	}
	return migrate(w)
}

type migration func(*wireSnapshot)

// migrations[v] upgrades a snapshot from version v to v+1.
var migrations = []migration{
	migrateV0,
}

func migrate(w wireSnapshot) (Snapshot, error) {
	if w.Version < 0 || w.Version > CurrentVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedSchema, w.Version)
	}

	for w.Version < CurrentVersion {
		migrations[w.Version](&w)
		w.Version++
	}

	// An absent catalog tolerates catalog upgrades; an explicit empty list is kept.
	if w.Rewards == nil {
		w.Rewards = domain.DefaultRewards()
	}

	return Snapshot{
		Version: w.Version,
		User:    *w.User,
		Tasks:   w.Tasks,
		Rewards: w.Rewards,
	}, nil
}

func migrateV0(w *wireSnapshot) {
	if w.Tasks == nil {
		w.Tasks = []domain.Task{}
	}
	if w.User.UnlockedRewards == nil {
		w.User.UnlockedRewards = []string{}
	}
	if w.User.Membership == "" {
		w.User.Membership = domain.TierFree
	}
}
