// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

type Handler struct {
	store        *store.Store
	backend      string
	backendPing  func(ctx context.Context) error
	coachEnabled bool
	validator    *validator.Validate
}

type HandlerConfig struct {
	Store        *store.Store
	Backend      string
	BackendPing  func(ctx context.Context) error
	CoachEnabled bool
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		store:        cfg.Store,
		backend:      cfg.Backend,
		backendPing:  cfg.BackendPing,
		coachEnabled: cfg.CoachEnabled,
		validator:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes expects r to already enforce a session and the admin role.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", h.GetStats)
		r.Get("/users", h.ListUsers)
		r.Put("/users/{userID}/membership", h.UpdateMembership)
	})
}

type MembershipRequest struct {
	Tier domain.Tier `json:"tier" validate:"required,oneof=free pro_monthly pro_annual"`
}

type MembershipResponse struct {
	Applied bool        `json:"applied"`
	User    domain.User `json:"user"`
}

type StoreStatus struct {
	Backend string `json:"backend"`
	Healthy bool   `json:"healthy"`
	Users   int    `json:"users"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	NumGC        uint32 `json:"num_gc"`
}

type StatsResponse struct {
	Store        StoreStatus         `json:"store"`
	CoachEnabled bool                `json:"coach_enabled"`
	Memberships  map[domain.Tier]int `json:"memberships"`
	Runtime      RuntimeStats        `json:"runtime"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	healthy := true
	if h.backendPing != nil {
		if err := h.backendPing(ctx); err != nil {
			healthy = false
		}
	}

	profiles, err := h.store.Profiles(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	memberships := map[domain.Tier]int{}
	for _, p := range profiles {
		memberships[p.Membership]++
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	core.OK(w, StatsResponse{
		Store: StoreStatus{
			Backend: h.backend,
			Healthy: healthy,
			Users:   len(profiles),
		},
		CoachEnabled: h.coachEnabled,
		Memberships:  memberships,
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     mem.Alloc,
			NumGC:        mem.NumGC,
		},
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, profiles)
}

// UpdateMembership only applies to the caller's own profile; other user
// ids answer 501 because cross-user administration is not implemented.
func (h *Handler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	applied, err := h.store.AdminUpdateUserMembership(r.Context(), userID, req.Tier)
	if err != nil {
		core.Fail(w, err, "user")
		return
	}
	if !applied {
		core.JSONError(w, core.NotImplementedError(
			"membership changes for other users are not supported",
		))
		return
	}

	u, err := h.store.User()
	if err != nil {
		core.Fail(w, err, "user")
		return
	}

	core.OK(w, MembershipResponse{Applied: true, User: u})
}
