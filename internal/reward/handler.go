// AngelaMos | 2026
// handler.go

package reward

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/rewards", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/{rewardID}/unlock", h.Unlock)
	})
}

type RewardResponse struct {
	domain.Reward
	Unlocked   bool `json:"unlocked"`
	Affordable bool `json:"affordable"`
}

type UnlockResponse struct {
	Unlocked bool        `json:"unlocked"`
	Points   int         `json:"points"`
	User     domain.User `json:"user"`
}

func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.store.Snapshot()
	if err != nil {
		core.Fail(w, err, "rewards")
		return
	}

	out := make([]RewardResponse, 0, len(snap.Rewards))
	for _, rw := range snap.Rewards {
		out = append(out, RewardResponse{
			Reward:     rw,
			Unlocked:   snap.User.HasUnlocked(rw.ID),
			Affordable: snap.User.Points >= rw.Cost,
		})
	}

	core.OK(w, out)
}

// Unlock answers 200 with unlocked=false when the guard rejects it, and
// 404 only for ids missing from the catalog.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "rewardID")

	rewards, err := h.store.Rewards()
	if err != nil {
		core.Fail(w, err, "reward")
		return
	}
	if _, ok := domain.FindReward(rewards, id); !ok {
		core.NotFound(w, "reward")
		return
	}

	unlocked, err := h.store.UnlockReward(r.Context(), id)
	if err != nil {
		core.Fail(w, err, "reward")
		return
	}

	u, err := h.store.User()
	if err != nil {
		core.Fail(w, err, "user")
		return
	}

	core.OK(w, UnlockResponse{Unlocked: unlocked, Points: u.Points, User: u})
}
