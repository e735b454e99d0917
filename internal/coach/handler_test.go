// AngelaMos | 2026
// handler_test.go

package coach

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/store/storetest"
)

func passThrough(next http.Handler) http.Handler { return next }

func TestHandlerRoutes(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")
	gen := &stubGenerator{text: "Journal|Breathe"}

	r := chi.NewRouter()
	NewHandler(quietCoach(gen), s).RegisterRoutes(r, passThrough)

	serve := func(method, path, body string) (*httptest.ResponseRecorder, json.RawMessage) {
		t.Helper()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %q: %v", rec.Body.String(), err)
		}
		return rec, env.Data
	}

	rec, data := serve(http.MethodPost, "/coach/habits", `{"category":"emotional","goal":"less stress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("suggest status = %d", rec.Code)
	}
	var suggested SuggestResponse
	if err := json.Unmarshal(data, &suggested); err != nil {
		t.Fatalf("decode suggest: %v", err)
	}
	if len(suggested.Habits) != 2 || suggested.Habits[0] != "Journal" {
		t.Errorf("habits = %q", suggested.Habits)
	}

	rec, data = serve(http.MethodPost, "/coach/habits/adopt", `{"category":"emotional","title":"Journal"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("adopt status = %d", rec.Code)
	}
	var adopted domain.Task
	if err := json.Unmarshal(data, &adopted); err != nil {
		t.Fatalf("decode adopt: %v", err)
	}
	if !adopted.IsHabit || adopted.Frequency != domain.FrequencyDaily || adopted.StartTime != "08:00" {
		t.Errorf("adopted = %+v", adopted)
	}

	if rec, _ := serve(http.MethodGet, "/coach/wisdom?category=hobby", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("wisdom with unknown category: status = %d", rec.Code)
	}

	rec, data = serve(http.MethodGet, "/coach/motivation", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("motivation status = %d", rec.Code)
	}
	var msg MessageResponse
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode motivation: %v", err)
	}
	if msg.Message != "Journal|Breathe" {
		t.Errorf("motivation = %q", msg.Message)
	}

	rec, data = serve(http.MethodGet, "/coach/resources?category=work", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("resources status = %d", rec.Code)
	}
	var res domain.CategoryResources
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("decode resources: %v", err)
	}
	if res.Category != domain.CategoryWork || len(res.Links) == 0 {
		t.Errorf("resources = %+v", res)
	}

	if rec, _ := serve(http.MethodGet, "/coach/resources?category=hobby", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("resources with unknown category: status = %d", rec.Code)
	}
}
