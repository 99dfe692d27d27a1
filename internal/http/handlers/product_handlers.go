package handlers

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"github.com/rogerio-castellano/electronics-store/internal/sales"
)

func (h *Handlers) equipment() *resource[models.Equipment, *models.Equipment, equipmentInput] {
	return &resource[models.Equipment, *models.Equipment, equipmentInput]{
		h:      h,
		entity: "equipo",
		store:  h.Stores.Equipment,
		paths: paths{
			list:       "/list_equipos",
			inactive:   "/list_equipos_inactivos",
			edit:       "/equipo/{id}/editar",
			deactivate: "/eliminar_equipo/{id}",
			restore:    "/restaurar_equipo/{id}",
		},
		filters: []filterRoute{
			{path: "/equipos/marca/{id}", field: repo.ByBrand, param: "id", parse: parseInt},
			{path: "/equipos/categoria/{id}", field: repo.ByCategory, param: "id", parse: parseInt},
			{path: "/equipos/proveedor/{id}", field: repo.BySupplier, param: "id", parse: parseInt},
			{path: "/equipos/modelo/{id}", field: repo.ByModel, param: "id", parse: parseInt},
		},
		apply: func(_ context.Context, in *equipmentInput, e *models.Equipment) error {
			e.Name = in.Name
			e.ModelID = in.ModelID
			e.BrandID = in.BrandID
			e.CategoryID = in.CategoryID
			e.Price = in.Price
			e.FeatureID = in.FeatureID
			e.SupplierID = in.SupplierID
			return nil
		},
	}
}

func (h *Handlers) accessories() *resource[models.Accessory, *models.Accessory, accessoryInput] {
	return &resource[models.Accessory, *models.Accessory, accessoryInput]{
		h:      h,
		entity: "accesorio",
		store:  h.Stores.Accessories,
		paths: paths{
			list:       "/list_accesorios",
			inactive:   "/list_accesorios_inactivos",
			edit:       "/accesorio/{id}/editar",
			deactivate: "/eliminar_accesorio/{id}",
			restore:    "/restaurar_accesorio/{id}",
		},
		apply: func(_ context.Context, in *accessoryInput, a *models.Accessory) error {
			a.Name = in.Name
			a.Description = in.Description
			a.Price = in.Price
			return nil
		},
	}
}

func (h *Handlers) inventory() *resource[models.Inventory, *models.Inventory, inventoryInput] {
	return &resource[models.Inventory, *models.Inventory, inventoryInput]{
		h:      h,
		entity: "inventario",
		store:  h.Stores.Inventory,
		paths: paths{
			list:       "/list_inventario",
			inactive:   "/list_inventarios_inactivos",
			edit:       "/inventario/{id}/editar",
			deactivate: "/eliminar_inventario/{id}",
			restore:    "/restaurar_inventario/{id}",
		},
		filters: []filterRoute{
			{path: "/inventarios/tipo/{tipo}", field: repo.ByKind, param: "tipo", parse: parseKind},
			{path: "/inventarios/ubicacion/{ubicacion}", field: repo.ByLocation, param: "ubicacion", parse: parseString},
		},
		apply: func(ctx context.Context, in *inventoryInput, i *models.Inventory) error {
			kind, _ := models.ParseProductKind(in.Kind)
			ref := models.ProductRef{Kind: kind, ProductID: in.ProductID}
			if _, err := h.Sales.Resolve(ctx, ref); err != nil {
				if errors.Is(err, sales.ErrProductNotFound) {
					return &fieldError{ValidationError{Field: "producto", Description: "El producto no existe o no está activo."}}
				}
				return err
			}
			i.ProductRef = ref
			i.Quantity = in.Quantity
			i.Location = in.Location
			return nil
		},
	}
}
