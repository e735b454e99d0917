// AngelaMos | 2026
// handler_test.go

package task

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/store"
	"github.com/carterperez-dev/taskhabit/internal/store/storetest"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(s *store.Store) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(s).RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")
	r := newRouter(s)

	rec, env := do(t, r, http.MethodPost, "/tasks",
		`{"title":"Run 5k","category":"sports","priority":"high"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created domain.Task
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if created.ID == "" {
		t.Error("task id is empty")
	}
	if created.Points != 20 {
		t.Errorf("points = %d, want 20", created.Points)
	}
	if created.Frequency != domain.FrequencyOnce {
		t.Errorf("frequency = %q, want once", created.Frequency)
	}
	if created.NotificationType != domain.NotifyEmail {
		t.Errorf("notification = %q, want email", created.NotificationType)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"missing title", `{"category":"work","priority":"low"}`},
		{"unknown category", `{"title":"x","category":"hobby","priority":"low"}`},
		{"unknown priority", `{"title":"x","category":"work","priority":"urgent"}`},
		{"bad start time", `{"title":"x","category":"work","priority":"low","startTime":"8am"}`},
	}

	s := storetest.LoggedIn(t, "ana@example.com")
	r := newRouter(s)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := do(t, r, http.MethodPost, "/tasks", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	tasks, err := s.Tasks()
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after rejected creates", len(tasks))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")
	r := newRouter(s)

	for _, body := range []string{
		`{"title":"Budget","category":"finance","priority":"low"}`,
		`{"title":"Swim","category":"sports","priority":"medium"}`,
		`{"title":"Save","category":"finance","priority":"high"}`,
	} {
		if rec, _ := do(t, r, http.MethodPost, "/tasks", body); rec.Code != http.StatusCreated {
			t.Fatalf("create: status %d", rec.Code)
		}
	}

	rec, env := do(t, r, http.MethodGet, "/tasks?category=finance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []TaskResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d finance tasks, want 2", len(got))
	}
	for _, tr := range got {
		if tr.Category != domain.CategoryFinance {
			t.Errorf("task %q has category %q", tr.Title, tr.Category)
		}
	}

	if rec, _ := do(t, r, http.MethodGet, "/tasks?category=hobby", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category filter: status = %d, want 400", rec.Code)
	}
}

func TestToggleAndDelete(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")
	r := newRouter(s)

	_, env := do(t, r, http.MethodPost, "/tasks",
		`{"title":"Stretch","category":"sports","priority":"medium","isHabit":true,"frequency":"daily"}`)
	var created domain.Task
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode task: %v", err)
	}

	rec, env := do(t, r, http.MethodPost, "/tasks/"+created.ID+"/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}
	var res lifecycle.ToggleResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode toggle: %v", err)
	}
	if !res.Completed || res.PointsAwarded != 10 || res.Streak != 1 {
		t.Errorf("toggle = %+v, want completed with 10 points and streak 1", res)
	}

	u, err := s.User()
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if u.Points != 10 {
		t.Errorf("user points = %d, want 10", u.Points)
	}

	rec, env = do(t, r, http.MethodPost, "/tasks/missing/toggle", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown toggle: status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("unknown toggle: error = %+v", env.Error)
	}

	rec, env = do(t, r, http.MethodDelete, "/tasks/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	var del DeleteResponse
	if err := json.Unmarshal(env.Data, &del); err != nil {
		t.Fatalf("decode delete: %v", err)
	}
	if !del.Deleted {
		t.Error("delete reported nothing removed")
	}

	_, env = do(t, r, http.MethodDelete, "/tasks/"+created.ID, "")
	if err := json.Unmarshal(env.Data, &del); err != nil {
		t.Fatalf("decode delete: %v", err)
	}
	if del.Deleted {
		t.Error("second delete reported a removal")
	}
}

func TestRoutesWithoutSession(t *testing.T) {
	r := newRouter(storetest.New(t))

	rec, _ := do(t, r, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
