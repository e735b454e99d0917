// AngelaMos | 2026
// handler_test.go

package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/progression"
	"github.com/carterperez-dev/taskhabit/internal/store"
	"github.com/carterperez-dev/taskhabit/internal/store/storetest"
)

func serve(t *testing.T, s *store.Store, method, path, body string) (*httptest.ResponseRecorder, json.RawMessage) {
	t.Helper()

	r := chi.NewRouter()
	NewHandler(s).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env.Data
}

func TestUpdateMePatchesOnlyGivenFields(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")

	rec, data := serve(t, s, http.MethodPatch, "/me",
		`{"name":"Ana","settings":{"themeColor":"emerald","darkMode":true,"notifications":false}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Name != "Ana" {
		t.Errorf("name = %q", u.Name)
	}
	if u.Avatar != "default" {
		t.Errorf("avatar changed to %q", u.Avatar)
	}
	if u.Settings.ThemeColor != "emerald" || !u.Settings.DarkMode || u.Settings.Notifications {
		t.Errorf("settings = %+v", u.Settings)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("email = %q", u.Email)
	}
}

func TestUpdateMeValidation(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")

	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":""}`},
		{"bad birth date", `{"profileData":{"birthDate":"12/31/1990"}}`},
		{"unknown timezone", `{"profileData":{"timezone":"Mars/Olympus"}}`},
		{"settings without theme", `{"settings":{"darkMode":true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := serve(t, s, http.MethodPatch, "/me", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAddPointsLevelsUp(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")

	rec, data := serve(t, s, http.MethodPost, "/me/points", `{"amount":150}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res progression.PointsResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.After != 150 || !res.LeveledUp || res.Level != 2 {
		t.Errorf("result = %+v, want 150 points at level 2", res)
	}

	if rec, _ := serve(t, s, http.MethodPost, "/me/points", `{"amount":-5}`); rec.Code != http.StatusBadRequest {
		t.Errorf("negative amount: status = %d, want 400", rec.Code)
	}
}

func TestRequestSubscription(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")

	rec, data := serve(t, s, http.MethodPost, "/me/subscription", `{"tier":"pro_annual"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res SubscriptionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Requested || res.Tier != domain.TierProAnnual {
		t.Errorf("response = %+v", res)
	}

	u, err := s.User()
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if u.Membership != domain.TierFree {
		t.Errorf("membership changed to %q before payment", u.Membership)
	}

	if rec, _ := serve(t, s, http.MethodPost, "/me/subscription", `{"tier":"free"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("free tier: status = %d, want 400", rec.Code)
	}
}

func TestStateAndDashboard(t *testing.T) {
	s := storetest.LoggedIn(t, "ana@example.com")

	rec, data := serve(t, s, http.MethodGet, "/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d", rec.Code)
	}
	var state StateResponse
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.User.Email != "ana@example.com" || state.Loading {
		t.Errorf("state = %+v", state)
	}
	if len(state.Rewards) != len(domain.DefaultRewards()) {
		t.Errorf("got %d rewards", len(state.Rewards))
	}

	rec, data = serve(t, s, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	var dash store.Dashboard
	if err := json.Unmarshal(data, &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.Level != 1 || dash.PointsToNextLevel != 100 {
		t.Errorf("dashboard = %+v", dash)
	}
}

func TestRoutesWithoutSession(t *testing.T) {
	s := storetest.New(t)

	for _, path := range []string{"/state", "/dashboard", "/me"} {
		if rec, _ := serve(t, s, http.MethodGet, path, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, rec.Code)
		}
	}
}
