// AngelaMos | 2026
// handler.go

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/persist"
)

type SessionStore interface {
	Login(ctx context.Context, email string) (persist.Snapshot, error)
	Logout(ctx context.Context) error
}

type Handler struct {
	store     SessionStore
	tokens    *JWTManager
	validator *validator.Validate
}

func NewHandler(store SessionStore, tokens *JWTManager) *Handler {
	return &Handler{
		store:     store,
		tokens:    tokens,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Delete("/", h.Logout)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	snap, err := h.store.Login(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "a valid email is required")
		case errors.Is(err, persist.ErrCorruptSnapshot),
			errors.Is(err, persist.ErrUnsupportedSchema):
			core.JSONError(w, core.NewAppError(
				err,
				"stored profile could not be read",
				http.StatusConflict,
				"PROFILE_UNREADABLE",
			))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	token, err := h.tokens.CreateAccessToken(
		snap.User.Email,
		string(snap.User.Role),
		string(snap.User.Membership),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SessionResponse{
		User:    snap.User,
		Tasks:   snap.Tasks,
		Rewards: snap.Rewards,
		Token:   token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(r.Context()); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
