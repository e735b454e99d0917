// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

type Handler struct {
	store     *store.Store
	validator *validator.Validate
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{
		store:     s,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes expects r to already enforce an authenticated session.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/state", h.GetState)
	r.Get("/dashboard", h.GetDashboard)

	r.Route("/me", func(r chi.Router) {
		r.Get("/", h.GetMe)
		r.Patch("/", h.UpdateMe)
		r.Post("/points", h.AddPoints)
		r.Post("/subscription", h.RequestSubscription)
	})
}

func (h *Handler) GetState(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.store.Snapshot()
	if err != nil {
		core.Fail(w, err, "session")
		return
	}

	core.OK(w, StateResponse{
		User:    snap.User,
		Tasks:   snap.Tasks,
		Rewards: snap.Rewards,
		Loading: h.store.Loading(),
	})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, _ *http.Request) {
	d, err := h.store.Dashboard()
	if err != nil {
		core.Fail(w, err, "session")
		return
	}

	core.OK(w, d)
}

func (h *Handler) GetMe(w http.ResponseWriter, _ *http.Request) {
	u, err := h.store.User()
	if err != nil {
		core.Fail(w, err, "user")
		return
	}

	core.OK(w, u)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.store.UpdateUser(r.Context(), req.ToPatch())
	if err != nil {
		core.Fail(w, err, "user")
		return
	}

	core.OK(w, u)
}

func (h *Handler) AddPoints(w http.ResponseWriter, r *http.Request) {
	var req AddPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	res, err := h.store.AddPoints(r.Context(), req.Amount)
	if err != nil {
		core.Fail(w, err, "user")
		return
	}

	core.OK(w, res)
}

func (h *Handler) RequestSubscription(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ok, err := h.store.RequestSubscription(r.Context(), req.Tier)
	if err != nil {
		core.Fail(w, err, "subscription")
		return
	}

	core.JSON(w, http.StatusAccepted, SubscriptionResponse{Requested: ok, Tier: req.Tier})
}
