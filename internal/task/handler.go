// AngelaMos | 2026
// handler.go

package task

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/{taskID}/toggle", h.Toggle)
		r.Delete("/{taskID}", h.Delete)
	})
}

// List accepts an optional ?category= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !category.IsValid() {
		core.BadRequest(w, "unknown category "+string(category))
		return
	}

	tasks, err := h.store.Tasks()
	if err != nil {
		core.Fail(w, err, "tasks")
		return
	}

	now := time.Now()
	filtered := lifecycle.FilterByCategory(tasks, category)
	out := make([]TaskResponse, 0, len(filtered))
	for _, t := range filtered {
		out = append(out, TaskResponse{
			Task:         t,
			ChallengeDay: lifecycle.ChallengeProgress(t, now),
		})
	}

	core.OK(w, out)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.store.AddTask(r.Context(), req.ToDraft())
	if err != nil {
		core.Fail(w, err, "task")
		return
	}

	core.Created(w, t)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.ToggleTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		core.Fail(w, err, "task")
		return
	}

	core.OK(w, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.DeleteTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		core.Fail(w, err, "task")
		return
	}

	core.OK(w, DeleteResponse{Deleted: removed})
}
