package handlers_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/shopspring/decimal"
)

func equipmentBody(price float64) map[string]any {
	return map[string]any{
		"nombre": "Galaxy", "precio": price, "modelo_id": 1, "marca_id": 1,
		"caracteristicas_id": 1, "categoria_id": 1, "proveedor_id": 1,
	}
}

func TestCreateEquipment(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name     string
		token    string
		body     any
		expected int
	}{
		{"no token", "", equipmentBody(10), http.StatusUnauthorized},
		{"bad token", "Bearer garbage", equipmentBody(10), http.StatusUnauthorized},
		{"non-admin", clerkToken, equipmentBody(10), http.StatusForbidden},
		{"zero price", adminToken, equipmentBody(0), http.StatusBadRequest},
		{"negative price", adminToken, equipmentBody(-1), http.StatusBadRequest},
		{"valid", adminToken, equipmentBody(499.9), http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := sendJSON(r, http.MethodPost, "/equipos", tt.token, tt.body)
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d (%s)", tt.expected, w.Code, w.Body.String())
			}
		})
	}

	w := sendJSON(r, http.MethodPost, "/equipos", adminToken, equipmentBody(0))
	errs := decode[[]handler.ValidationError](t, w)
	if len(errs) != 1 || errs[0].Field != "precio" || errs[0].Description != "El precio no puede ser menor o igual a cero." {
		t.Errorf("unexpected errors %+v", errs)
	}

	all := getList[models.Equipment](t, r, "/list_equipos")
	if len(all) != 1 || !all[0].Price.Equal(decimal.RequireFromString("499.9")) {
		t.Errorf("expected one stored equipment, got %+v", all)
	}
}

func TestGetEquipmentProjection(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	createEquipment(t, r, "100")

	admin := decode[[]map[string]any](t, sendJSON(r, http.MethodGet, "/equipos", adminToken, nil))
	clerk := decode[[]map[string]any](t, sendJSON(r, http.MethodGet, "/equipos", clerkToken, nil))
	if len(admin) != 1 || len(clerk) != 1 {
		t.Fatalf("expected one equipment in both projections")
	}
	if _, ok := admin[0]["proveedor_id"]; !ok {
		t.Errorf("admin projection lacks proveedor_id: %+v", admin[0])
	}
	if _, ok := clerk[0]["proveedor_id"]; ok {
		t.Errorf("minimal projection leaks proveedor_id: %+v", clerk[0])
	}
}

func TestUpdateEquipment(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	createEquipment(t, r, "100")

	w := sendJSON(r, http.MethodPut, "/equipos", clerkToken, map[string]any{"id": 1, "precio": 80})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}

	w = sendJSON(r, http.MethodPut, "/equipos", adminToken, map[string]any{"id": 1, "precio": 80})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	updated := decode[handler.EquipmentResponse](t, w)
	if !updated.Price.Equal(decimal.NewFromInt(80)) || updated.ModelID != 1 || updated.SupplierID != 1 {
		t.Errorf("partial update touched other fields: %+v", updated)
	}

	w = sendJSON(r, http.MethodPut, "/equipos", adminToken, map[string]any{"id": 1, "precio": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero price, got %d", w.Code)
	}

	w = sendJSON(r, http.MethodPut, "/equipos", adminToken, map[string]any{"id": 42, "precio": 80})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if msg := decode[handler.Message](t, w); msg.Mensaje != "Equipo no encontrado" {
		t.Errorf("unexpected message %q", msg.Mensaje)
	}
}

func TestDeleteEquipmentIsSoft(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	createEquipment(t, r, "100")

	if code := sendJSON(r, http.MethodDelete, "/equipos", clerkToken, map[string]int{"id": 1}).Code; code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}

	w := sendJSON(r, http.MethodDelete, "/equipos", adminToken, map[string]int{"id": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if msg := decode[handler.Message](t, w); msg.Mensaje != "Producto eliminado con éxito" {
		t.Errorf("unexpected message %q", msg.Mensaje)
	}

	if n := len(decode[[]handler.EquipmentResponse](t, sendJSON(r, http.MethodGet, "/equipos", adminToken, nil))); n != 0 {
		t.Errorf("deleted equipment still listed: %d", n)
	}
	inactive := getList[models.Equipment](t, r, "/list_equipos_inactivos")
	if len(inactive) != 1 || inactive[0].ID != 1 {
		t.Errorf("expected equipment 1 to be kept inactive, got %+v", inactive)
	}

	w = sendJSON(r, http.MethodDelete, "/equipos", adminToken, map[string]int{"id": 9})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
