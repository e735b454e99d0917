// AngelaMos | 2026
// handler.go

package coach

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/store"
)

type Handler struct {
	coach     *Coach
	store     *store.Store
	validator *validator.Validate
}

func NewHandler(c *Coach, s *store.Store) *Handler {
	return &Handler{
		coach:     c,
		store:     s,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the coach under r. limiter guards only the calls
// that reach the text generator.
func (h *Handler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.Route("/coach", func(r chi.Router) {
		r.Post("/habits/adopt", h.AdoptHabit)
		r.Get("/resources", h.Resources)

		r.Group(func(r chi.Router) {
			r.Use(limiter)
			r.Post("/habits", h.SuggestHabits)
			r.Get("/motivation", h.Motivation)
			r.Get("/wisdom", h.Wisdom)
		})
	})
}

type SuggestRequest struct {
	Category string `json:"category" validate:"required,oneof=personal work education sports nutrition finance emotional home growth"`
	Goal     string `json:"goal"     validate:"required,max=500"`
}

type SuggestResponse struct {
	Habits []string `json:"habits"`
}

type AdoptRequest struct {
	Category string `json:"category" validate:"required,oneof=personal work education sports nutrition finance emotional home growth"`
	Title    string `json:"title"    validate:"required,max=200"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) SuggestHabits(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	habits, _ := h.coach.SuggestHabits(r.Context(), domain.Category(req.Category), req.Goal)
	core.OK(w, SuggestResponse{Habits: habits})
}

func (h *Handler) AdoptHabit(w http.ResponseWriter, r *http.Request) {
	var req AdoptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.store.AddTask(
		r.Context(),
		lifecycle.AdoptedHabit(domain.Category(req.Category), req.Title),
	)
	if err != nil {
		core.Fail(w, err, "task")
		return
	}

	core.Created(w, t)
}

// Motivation uses the longest running habit streak.
func (h *Handler) Motivation(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Snapshot()
	if err != nil {
		core.Fail(w, err, "session")
		return
	}

	msg := h.coach.Motivate(
		r.Context(),
		snap.User.Points,
		lifecycle.LongestStreak(snap.Tasks),
	)
	core.OK(w, MessageResponse{Message: msg})
}

func (h *Handler) Wisdom(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if !category.IsValid() {
		core.BadRequest(w, "category must be one of the task categories")
		return
	}

	core.OK(w, MessageResponse{Message: h.coach.CategoryWisdom(r.Context(), category)})
}

// Resources lists companion links for a category. No generator call.
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	res, ok := domain.Resources(domain.Category(r.URL.Query().Get("category")))
	if !ok {
		core.BadRequest(w, "category must be one of the task categories")
		return
	}

	core.OK(w, res)
}
