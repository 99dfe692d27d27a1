package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	rl "github.com/rogerio-castellano/electronics-store/internal/http/rate_limiter"
)

func TestLogin(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := login(r, adminUser, password)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[handler.LoginResult](t, w)
	if !strings.HasPrefix(resp.Token, "Bearer ") {
		t.Fatalf("expected a bearer token, got %q", resp.Token)
	}

	claims, err := authSvc.Tokens().Parse(strings.TrimPrefix(resp.Token, "Bearer "))
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims.Subject != adminUser || !claims.Administrador {
		t.Errorf("unexpected claims %+v", claims)
	}

	clerk, err := authSvc.Tokens().Parse(strings.TrimPrefix(clerkToken, "Bearer "))
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if clerk.Administrador {
		t.Errorf("clerk should not carry the admin claim")
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	wrongPassword := login(r, adminUser, "nope")
	unknownUser := login(r, "ghost", "nope")

	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownUser} {
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Errorf("responses differ: %q vs %q", wrongPassword.Body.String(), unknownUser.Body.String())
	}

	w := login(r, "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without credentials, got %d", w.Code)
	}
	if msg := decode[handler.Message](t, w); msg.Mensaje != "Falta el nombre de usuario o la contraseña" {
		t.Errorf("unexpected message %q", msg.Mensaje)
	}
}

func TestLoginBansAfterRepeatedFailures(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for i := 0; i < 5; i++ {
		if code := login(r, adminUser, "nope").Code; code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, code)
		}
	}

	if code := login(r, adminUser, password).Code; code != http.StatusTooManyRequests {
		t.Errorf("expected 429 while banned, got %d", code)
	}
}

func TestLoginRateLimit(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouterWithLimiter(rl.New(0.001, 1))

	if code := login(r, "ghost", "nope").Code; code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if code := login(r, "ghost", "nope").Code; code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", code)
	}
}

func TestCreateUser(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name     string
		token    string
		body     any
		expected int
		message  string
	}{
		{"non-admin", clerkToken, map[string]string{"usuario": "bob", "contrasenia": "pass1234"}, http.StatusForbidden, "Ud no está habilitado para crear un usuario."},
		{"admin", adminToken, map[string]string{"usuario": "bob", "contrasenia": "pass1234"}, http.StatusCreated, ""},
		{"duplicate", adminToken, map[string]string{"usuario": "bob", "contrasenia": "other123"}, http.StatusBadRequest, "El usuario ya existe"},
		{"short password", adminToken, map[string]string{"usuario": "eve", "contrasenia": "abc"}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := sendJSON(r, http.MethodPost, "/users", tt.token, tt.body)
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d (%s)", tt.expected, w.Code, w.Body.String())
			}
			if tt.message != "" {
				if msg := decode[handler.Message](t, w); msg.Mensaje != tt.message {
					t.Errorf("expected message %q, got %q", tt.message, msg.Mensaje)
				}
			}
		})
	}

	users := decode[[]handler.UserResponse](t, sendJSON(r, http.MethodGet, "/users", adminToken, nil))
	count := 0
	for _, u := range users {
		if u.Username == "bob" {
			count++
			if u.IsAdmin {
				t.Errorf("created user must not be an administrator")
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one bob, got %d", count)
	}

	if code := login(r, "bob", "pass1234").Code; code != http.StatusOK {
		t.Errorf("expected the new user to log in, got %d", code)
	}
}

func TestListUsersProjection(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	if code := get(r, "/users").Code; code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", code)
	}

	admin := decode[[]map[string]any](t, sendJSON(r, http.MethodGet, "/users", adminToken, nil))
	clerk := decode[[]map[string]any](t, sendJSON(r, http.MethodGet, "/users", clerkToken, nil))

	if len(admin) != 2 || len(clerk) != 2 {
		t.Fatalf("expected 2 users in both projections, got %d and %d", len(admin), len(clerk))
	}
	if _, ok := admin[0]["is_admin"]; !ok {
		t.Errorf("admin projection lacks is_admin: %+v", admin[0])
	}
	if len(clerk[0]) != 1 || clerk[0]["username"] == nil {
		t.Errorf("clerk projection should carry only the username: %+v", clerk[0])
	}
}

func TestBanLog(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for i := 0; i < 5; i++ {
		login(r, "ghost", "nope")
	}

	if code := get(r, "/bans").Code; code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", code)
	}

	w := sendJSON(r, http.MethodGet, "/bans", clerkToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", w.Code)
	}

	w = sendJSON(r, http.MethodGet, "/bans", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	entries := decode[[]struct {
		Target  string `json:"target"`
		Route   string `json:"route"`
		Strikes int    `json:"strikes"`
	}](t, w)
	if len(entries) != 1 {
		t.Fatalf("expected one ban, got %+v", entries)
	}
	if entries[0].Route != "/login" || entries[0].Strikes != 5 || entries[0].Target == "" {
		t.Errorf("unexpected ban entry %+v", entries[0])
	}
}
