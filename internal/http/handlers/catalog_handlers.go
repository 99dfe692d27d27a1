package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
)

func (h *Handlers) manufacturers() *resource[models.Manufacturer, *models.Manufacturer, manufacturerInput] {
	return &resource[models.Manufacturer, *models.Manufacturer, manufacturerInput]{
		h:      h,
		entity: "fabricante",
		store:  h.Stores.Manufacturers,
		paths: paths{
			list:       "/list_fabricantes",
			inactive:   "/list_fabricantes_inactivos",
			edit:       "/fabricante/{id}/editar",
			deactivate: "/eliminar_fabricante/{id}",
			restore:    "/restaurar_fabricante/{id}",
		},
		filters: []filterRoute{
			{path: "/fabricantes/origen/{origen}", field: repo.ByOrigin, param: "origen", parse: parseString},
		},
		apply: func(_ context.Context, in *manufacturerInput, m *models.Manufacturer) error {
			m.Name = in.Name
			m.Origin = in.Origin
			return nil
		},
		create: func(ctx context.Context, m models.Manufacturer) (models.Manufacturer, error) {
			return h.Catalog.CreateManufacturer(ctx, m.Name, m.Origin)
		},
	}
}

func (h *Handlers) brands() *resource[models.Brand, *models.Brand, brandInput] {
	return &resource[models.Brand, *models.Brand, brandInput]{
		h:      h,
		entity: "marca",
		store:  h.Stores.Brands,
		paths: paths{
			list:       "/list_marca",
			inactive:   "/list_marcas_inactivas",
			edit:       "/marca/{id}/editar",
			deactivate: "/eliminar_marca/{id}",
			restore:    "/restaurar_marca/{id}",
		},
		apply: func(ctx context.Context, in *brandInput, b *models.Brand) error {
			if err := exists[models.Manufacturer](ctx, h.Stores.Manufacturers, in.ManufacturerID, "fabricante"); err != nil {
				return err
			}
			b.Name = in.Name
			b.ManufacturerID = in.ManufacturerID
			return nil
		},
		create: func(ctx context.Context, b models.Brand) (models.Brand, error) {
			return h.Catalog.CreateBrand(ctx, b.Name, b.ManufacturerID)
		},
	}
}

func (h *Handlers) categories() *resource[models.Category, *models.Category, categoryInput] {
	return &resource[models.Category, *models.Category, categoryInput]{
		h:      h,
		entity: "categoria",
		store:  h.Stores.Categories,
		paths: paths{
			list:       "/list_categorias",
			inactive:   "/list_categorias_inactivas",
			edit:       "/categoria/{id}/editar",
			deactivate: "/eliminar_categoria/{id}",
			restore:    "/restaurar_categoria/{id}",
		},
		apply: func(_ context.Context, in *categoryInput, c *models.Category) error {
			c.Name = in.Name
			return nil
		},
	}
}

func (h *Handlers) productModels() *resource[models.Model, *models.Model, modelInput] {
	return &resource[models.Model, *models.Model, modelInput]{
		h:      h,
		entity: "modelo",
		store:  h.Stores.Models,
		paths: paths{
			list:       "/list_modelos",
			inactive:   "/list_modelos_inactivos",
			edit:       "/modelo/{id}/editar",
			deactivate: "/eliminar_modelo/{id}",
			restore:    "/restaurar_modelo/{id}",
		},
		filters: []filterRoute{
			{path: "/modelos/anio/{anio}", field: repo.ByReleaseYear, param: "anio", parse: parseInt},
			{path: "/modelos/sistema_operativo/{so}", field: repo.ByOperatingSystem, param: "so", parse: parseString},
			{path: "/modelos/fabricante/{id}", field: repo.ByManufacturer, param: "id", parse: parseInt},
			{path: "/modelos/marca/{id}", field: repo.ByBrand, param: "id", parse: parseInt},
		},
		apply: func(_ context.Context, in *modelInput, m *models.Model) error {
			m.Name = in.Name
			m.ReleaseYear = in.ReleaseYear
			m.OperatingSystem = in.OperatingSystem
			m.ManufacturerID = in.ManufacturerID
			m.BrandID = in.BrandID
			return nil
		},
	}
}

func (h *Handlers) features() *resource[models.Feature, *models.Feature, featureInput] {
	return &resource[models.Feature, *models.Feature, featureInput]{
		h:      h,
		entity: "caracteristica",
		store:  h.Stores.Features,
		paths: paths{
			list:       "/list_caracteristicas",
			inactive:   "/list_caracteristicas_inactivas",
			edit:       "/caracteristica/{id}/editar",
			deactivate: "/eliminar_caracteristica/{id}",
			restore:    "/restaurar_caracteristica/{id}",
		},
		apply: func(_ context.Context, in *featureInput, f *models.Feature) error {
			f.Name = in.Name
			f.Description = in.Description
			return nil
		},
	}
}

func (h *Handlers) suppliers() *resource[models.Supplier, *models.Supplier, supplierInput] {
	return &resource[models.Supplier, *models.Supplier, supplierInput]{
		h:      h,
		entity: "proveedor",
		store:  h.Stores.Suppliers,
		paths: paths{
			list:       "/list_proveedores",
			inactive:   "/list_proveedores_inactivos",
			edit:       "/proveedor/{id}/editar",
			deactivate: "/eliminar_proveedor/{id}",
			restore:    "/restaurar_proveedor/{id}",
		},
		apply: func(_ context.Context, in *supplierInput, s *models.Supplier) error {
			s.Name = in.Name
			s.Contact = in.Contact
			return nil
		},
	}
}

type getter[T any] interface {
	GetByID(ctx context.Context, id int) (T, error)
}

// exists rejects field when id names no record in store.
func exists[T any](ctx context.Context, store getter[T], id int, field string) error {
	_, err := store.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return &fieldError{ValidationError{Field: field, Description: "El registro referenciado no existe."}}
	}
	return err
}

// BrandsByManufacturerHandler lists the active brands of one manufacturer.
func (h *Handlers) BrandsByManufacturerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	brands, err := h.Catalog.BrandsByManufacturer(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "could not fetch marca records", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, brands)
}
