package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/electronics-store/internal/models"
)

// GetModelsHandler godoc
// @Summary List active models
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /modelos [get]
func (h *Handlers) GetModelsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Stores.Models.List(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch models", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(m models.Model) NamedResponse {
		return NamedResponse{ID: m.ID, Modelo: m.Name}
	}))
}

// GetBrandsHandler godoc
// @Summary List active brands
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /marcas [get]
func (h *Handlers) GetBrandsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Catalog.ListBrands(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch brands", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(b models.Brand) NamedResponse {
		return NamedResponse{ID: b.ID, Nombre: b.Name}
	}))
}

// GetFeaturesHandler godoc
// @Summary List active features
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /caracteristicas [get]
func (h *Handlers) GetFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Stores.Features.List(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch features", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(f models.Feature) NamedResponse {
		return NamedResponse{ID: f.ID, Nombre: f.Name}
	}))
}

// GetCategoriesHandler godoc
// @Summary List active categories
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /categorias [get]
func (h *Handlers) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Stores.Categories.List(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch categories", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(c models.Category) NamedResponse {
		return NamedResponse{ID: c.ID, Nombre: c.Name}
	}))
}

// GetSuppliersHandler godoc
// @Summary List active suppliers
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /proveedores [get]
func (h *Handlers) GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Stores.Suppliers.List(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch suppliers", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(s models.Supplier) NamedResponse {
		return NamedResponse{ID: s.ID, Nombre: s.Name}
	}))
}

// GetManufacturersHandler godoc
// @Summary List active manufacturers
// @Tags catalogo
// @Produce json
// @Success 200 {array} NamedResponse
// @Router /fabricantes [get]
func (h *Handlers) GetManufacturersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Catalog.ListManufacturers(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch manufacturers", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, project(list, func(m models.Manufacturer) NamedResponse {
		return NamedResponse{ID: m.ID, Nombre: m.Name}
	}))
}

func project[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
