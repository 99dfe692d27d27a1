package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/electronics-store/internal/auth"
	"github.com/rogerio-castellano/electronics-store/internal/http/ban"
	handler "github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	rl "github.com/rogerio-castellano/electronics-store/internal/http/rate_limiter"
	"github.com/rogerio-castellano/electronics-store/internal/http/router"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"go.uber.org/zap"
)

const (
	adminUser = "admin"
	clerkUser = "clerk"
	password  = "secret"
)

var (
	stores     *repo.Stores
	bans       *ban.MemoryStore
	authSvc    *auth.Service
	h          *handler.Handlers
	adminToken string
	clerkToken string
)

func init() {
	stores = repo.NewMemoryStores()
	bans = ban.NewMemoryStore(5, 15*time.Minute)
	authSvc = auth.NewService(stores.Users, auth.NewTokenIssuer("test-secret", 30*time.Minute))
	h = handler.New(stores, authSvc, bans, nil, zap.NewNop())
	seedUsers()

	r := newRouter()
	var err error
	adminToken, err = generateToken(r, adminUser, password)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	clerkToken, err = generateToken(r, clerkUser, password)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func seedUsers() {
	ctx := context.Background()
	if _, err := authSvc.EnsureAdmin(ctx, adminUser, password); err != nil {
		panic(err)
	}
	if _, err := authSvc.CreateUser(ctx, &auth.Claims{Administrador: true}, clerkUser, password); err != nil {
		panic(err)
	}
}

// newRouter builds a router whose login limiter never throttles.
func newRouter() http.Handler {
	return newRouterWithLimiter(rl.New(1000, 1000))
}

func newRouterWithLimiter(l *rl.Limiter) http.Handler {
	return router.NewRouter(router.Config{
		Handlers: h,
		Tokens:   authSvc.Tokens(),
		Limiter:  l,
	})
}

func clearAll() {
	stores.Clear()
	bans.Clear()
	seedUsers()
}

func login(r http.Handler, username, pass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if username != "" || pass != "" {
		req.SetBasicAuth(username, pass)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, pass string) (string, error) {
	w := login(r, username, pass)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sendJSON sends body as JSON; authorization is the full header value.
func sendJSON(r http.Handler, method, path, authorization string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
	return out
}

func getList[T any](t *testing.T, r http.Handler, path string) []T {
	t.Helper()
	w := get(r, path)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d (%s)", path, w.Code, w.Body.String())
	}
	return decode[[]T](t, w)
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 See Other, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("expected redirect to %s, got %s", location, got)
	}
}

func createManufacturer(t *testing.T, r http.Handler, name, origin string) {
	t.Helper()
	expectRedirect(t, postForm(r, "/list_fabricantes", url.Values{"nombre": {name}, "origen": {origin}}), "/list_fabricantes")
}

func createAccessory(t *testing.T, r http.Handler, name, price string) {
	t.Helper()
	w := postForm(r, "/list_accesorios", url.Values{"nombre": {name}, "descripcion": {"-"}, "precio": {price}})
	expectRedirect(t, w, "/list_accesorios")
}

func createEquipment(t *testing.T, r http.Handler, price string) {
	t.Helper()
	w := postForm(r, "/list_equipos", url.Values{
		"modelo": {"1"}, "marca": {"1"}, "categoria": {"1"},
		"precio": {price}, "caracteristicas": {"1"}, "proveedor": {"1"},
	})
	expectRedirect(t, w, "/list_equipos")
}

func createCustomer(t *testing.T, r http.Handler, name string) {
	t.Helper()
	w := postForm(r, "/list_clientes", url.Values{
		"nombre": {name}, "direccion": {"Calle 1"}, "telefono": {"555"},
		"email": {strings.ToLower(name) + "@example.com"}, "fechaRegistro": {"2024-03-01"},
	})
	expectRedirect(t, w, "/list_clientes")
}
