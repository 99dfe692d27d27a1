//go:build integration

package handlers_integrated_test_suite

import (
	"net/http"
	"net/url"
	"testing"

	handler "github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/shopspring/decimal"
)

func TestSoftDeleteLifecycle(t *testing.T) {
	t.Cleanup(truncateAll)
	r := newRouter()

	mustRedirect(t, postForm(r, "/list_fabricantes", url.Values{"nombre": {"Acme"}, "origen": {"US"}}))
	mustRedirect(t, postForm(r, "/list_marca", url.Values{"nombre": {"AcmePhone"}, "fabricante": {"1"}}))
	mustRedirect(t, postForm(r, "/eliminar_marca/1", nil))

	if n := len(getList[models.Brand](t, r, "/list_marca")); n != 0 {
		t.Errorf("expected no active brands, got %d", n)
	}
	if n := len(getList[models.Brand](t, r, "/list_marcas_inactivas")); n != 1 {
		t.Errorf("expected one inactive brand, got %d", n)
	}

	mustRedirect(t, postForm(r, "/restaurar_marca/1", nil))
	brands := getList[models.Brand](t, r, "/marcas/fabricante/1")
	if len(brands) != 1 || brands[0].Name != "AcmePhone" {
		t.Errorf("expected restored AcmePhone, got %+v", brands)
	}
}

func TestUniqueNameIsRejected(t *testing.T) {
	t.Cleanup(truncateAll)
	r := newRouter()

	mustRedirect(t, postForm(r, "/list_categorias", url.Values{"nombre": {"Phones"}}))
	w := postForm(r, "/list_categorias", url.Values{"nombre": {"Phones"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate name, got %d", w.Code)
	}
	if n := len(getList[models.Category](t, r, "/list_categorias")); n != 1 {
		t.Errorf("expected one category, got %d", n)
	}
}

func TestSaleTotalsArePersistedExactly(t *testing.T) {
	t.Cleanup(truncateAll)
	r := newRouter()

	mustRedirect(t, postForm(r, "/list_clientes", url.Values{
		"nombre": {"Ana"}, "direccion": {"Calle 1"}, "telefono": {"555"},
		"email": {"ana@example.com"}, "fechaRegistro": {"2024-03-01"},
	}))
	mustRedirect(t, postForm(r, "/list_accesorios", url.Values{"nombre": {"Cable"}, "precio": {"0.10"}}))

	sale := url.Values{"cliente": {"1"}, "producto": {"1"}, "tipo": {"accesorio"}, "fecha": {"2024-05-10"}, "cantidad": {"3"}}
	mustRedirect(t, postForm(r, "/list_ventas", sale))

	sales := getList[models.Sale](t, r, "/ventas/fecha/2024-05-10")
	if len(sales) != 1 {
		t.Fatalf("expected one sale, got %d", len(sales))
	}
	if !sales[0].Total.Equal(decimal.RequireFromString("0.30")) {
		t.Errorf("expected total 0.30, got %s", sales[0].Total)
	}

	sale.Set("producto", "77")
	mustRedirect(t, postForm(r, "/list_ventas", sale))
	if n := len(getList[models.Sale](t, r, "/list_ventas")); n != 1 {
		t.Errorf("unresolvable sale was stored, got %d sales", n)
	}
}

func TestEquipmentAPI(t *testing.T) {
	t.Cleanup(truncateAll)
	r := newRouter()

	body := map[string]any{
		"precio": 250.5, "modelo_id": 1, "marca_id": 1,
		"caracteristicas_id": 1, "categoria_id": 1, "proveedor_id": 1,
	}
	if code := sendJSON(r, http.MethodPost, "/equipos", clerkToken, body).Code; code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
	if code := sendJSON(r, http.MethodPost, "/equipos", adminToken, body).Code; code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}

	w := sendJSON(r, http.MethodPut, "/equipos", adminToken, map[string]any{"id": 1, "precio": 199})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	if code := sendJSON(r, http.MethodDelete, "/equipos", adminToken, map[string]int{"id": 1}).Code; code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	inactive := getList[models.Equipment](t, r, "/list_equipos_inactivos")
	if len(inactive) != 1 || !inactive[0].Price.Equal(decimal.NewFromInt(199)) {
		t.Errorf("expected the updated equipment to be kept inactive, got %+v", inactive)
	}
}

func TestCreateUserAgainstDatabase(t *testing.T) {
	t.Cleanup(truncateAll)
	r := newRouter()

	req := map[string]string{"usuario": "bob", "contrasenia": "pass1234"}
	if code := sendJSON(r, http.MethodPost, "/users", adminToken, req).Code; code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if code := sendJSON(r, http.MethodPost, "/users", adminToken, req).Code; code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate user, got %d", code)
	}

	users := sendJSON(r, http.MethodGet, "/users", adminToken, nil)
	var list []handler.UserResponse
	if err := decodeBody(users, &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Errorf("expected admin, clerk and bob, got %+v", list)
	}
}
