package handlers

import "github.com/go-chi/chi/v5"

type mounter interface {
	Mount(r chi.Router)
}

// MountForms registers the form-driven route family of every entity.
func (h *Handlers) MountForms(r chi.Router) {
	for _, res := range []mounter{
		h.brands(),
		h.categories(),
		h.manufacturers(),
		h.productModels(),
		h.accessories(),
		h.suppliers(),
		h.inventory(),
		h.features(),
		h.equipment(),
		h.orders(),
		h.customers(),
		h.employees(),
		h.branches(),
		h.saleLines(),
	} {
		res.Mount(r)
	}
	r.Get("/marcas/fabricante/{id}", h.BrandsByManufacturerHandler)
	r.Get("/ventas/producto/{tipo}/{id}", h.SalesByProductHandler)
}
