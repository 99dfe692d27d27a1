package handlers_test_suite

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/rogerio-castellano/electronics-store/internal/models"
)

func TestManufacturerAndBrandLifecycle(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createManufacturer(t, r, "Acme", "US")
	expectRedirect(t, postForm(r, "/list_marca", url.Values{"nombre": {"AcmePhone"}, "fabricante": {"1"}}), "/list_marca")

	expectRedirect(t, postForm(r, "/eliminar_marca/1", nil), "/list_marca")

	if active := getList[models.Brand](t, r, "/list_marca"); len(active) != 0 {
		t.Errorf("expected no active brands, got %d", len(active))
	}
	inactive := getList[models.Brand](t, r, "/list_marcas_inactivas")
	if len(inactive) != 1 || inactive[0].Name != "AcmePhone" {
		t.Fatalf("expected AcmePhone among inactive brands, got %+v", inactive)
	}

	expectRedirect(t, postForm(r, "/restaurar_marca/1", nil), "/list_marca")

	active := getList[models.Brand](t, r, "/list_marca")
	if len(active) != 1 || !active[0].Active || active[0].ManufacturerID != 1 {
		t.Errorf("expected restored active brand, got %+v", active)
	}
}

func TestDeactivateIsIdempotentAndPartitions(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for _, name := range []string{"Phones", "Tablets", "Laptops"} {
		expectRedirect(t, postForm(r, "/list_categorias", url.Values{"nombre": {name}}), "/list_categorias")
	}

	expectRedirect(t, postForm(r, "/eliminar_categoria/2", nil), "/list_categorias")
	expectRedirect(t, postForm(r, "/eliminar_categoria/2", nil), "/list_categorias")

	active := getList[models.Category](t, r, "/list_categorias")
	inactive := getList[models.Category](t, r, "/list_categorias_inactivas")
	if len(active)+len(inactive) != 3 {
		t.Fatalf("active and inactive listings should cover all records, got %d + %d", len(active), len(inactive))
	}
	if len(inactive) != 1 || inactive[0].ID != 2 {
		t.Errorf("expected category 2 inactive, got %+v", inactive)
	}
	for _, c := range active {
		if c.ID == 2 {
			t.Errorf("category 2 listed as active")
		}
	}
}

func TestShowAndEditRecord(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createManufacturer(t, r, "Acme", "US")

	w := get(r, "/fabricante/1/editar")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if m := decode[models.Manufacturer](t, w); m.Name != "Acme" || m.Origin != "US" {
		t.Errorf("unexpected manufacturer %+v", m)
	}

	w = postForm(r, "/fabricante/1/editar", url.Values{"nombre": {"Acme Corp"}, "origen": {"MX"}})
	expectRedirect(t, w, "/list_fabricantes")

	m := decode[models.Manufacturer](t, get(r, "/fabricante/1/editar"))
	if m.Name != "Acme Corp" || m.Origin != "MX" || !m.Active {
		t.Errorf("edit not applied: %+v", m)
	}
}

func TestRecordRoutesRejectBadIDs(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{"show missing", http.MethodGet, "/marca/999/editar", http.StatusNotFound},
		{"edit missing", http.MethodPost, "/equipo/999/editar", http.StatusNotFound},
		{"deactivate missing", http.MethodPost, "/eliminar_cliente/999", http.StatusNotFound},
		{"restore missing", http.MethodPost, "/restaurar_sucursal/999", http.StatusNotFound},
		{"show non-numeric", http.MethodGet, "/marca/abc/editar", http.StatusBadRequest},
		{"deactivate non-numeric", http.MethodPost, "/eliminar_venta/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code int
			if tt.method == http.MethodGet {
				code = get(r, tt.path).Code
			} else {
				code = postForm(r, tt.path, url.Values{}).Code
			}
			if code != tt.expected {
				t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.expected, code)
			}
		})
	}
}

func TestCreateRejectsInvalidForms(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createManufacturer(t, r, "Acme", "US")

	tests := []struct {
		name  string
		path  string
		form  url.Values
		field string
	}{
		{"manufacturer without origin", "/list_fabricantes", url.Values{"nombre": {"Zeta"}}, "origen"},
		{"brand of unknown manufacturer", "/list_marca", url.Values{"nombre": {"Nova"}, "fabricante": {"42"}}, "fabricante"},
		{"accessory with zero price", "/list_accesorios", url.Values{"nombre": {"Case"}, "precio": {"0"}}, "precio"},
		{"customer with bad email", "/list_clientes", url.Values{
			"nombre": {"Ana"}, "direccion": {"Calle 1"}, "telefono": {"555"},
			"email": {"not-an-email"}, "fechaRegistro": {"2024-03-01"},
		}, "email"},
		{"inventory of unknown product", "/list_inventario", url.Values{
			"tipo": {"accesorio"}, "producto": {"7"}, "cantidadDisponible": {"3"}, "ubicacionAlmacen": {"A1"},
		}, "producto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(r, tt.path, tt.form)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
			errs := decode[[]struct {
				Field       string `json:"field"`
				Description string `json:"description"`
			}](t, w)
			found := false
			for _, e := range errs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on %q, got %+v", tt.field, errs)
			}
		})
	}
}

func TestAccessoryPriceMessage(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := postForm(r, "/list_accesorios", url.Values{"nombre": {"Case"}, "precio": {"-5"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	errs := decode[[]map[string]string](t, w)
	if len(errs) != 1 || errs[0]["description"] != "El precio no puede ser menor o igual a cero." {
		t.Errorf("unexpected errors %+v", errs)
	}
	if n := len(getList[models.Accessory](t, r, "/list_accesorios")); n != 0 {
		t.Errorf("expected no accessories, got %d", n)
	}
}
