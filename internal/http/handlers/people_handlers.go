package handlers

import (
	"context"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
)

func (h *Handlers) orders() *resource[models.Order, *models.Order, orderInput] {
	return &resource[models.Order, *models.Order, orderInput]{
		h:      h,
		entity: "pedido",
		store:  h.Stores.Orders,
		paths: paths{
			list:       "/list_pedidos",
			inactive:   "/list_pedidos_inactivos",
			edit:       "/pedido/{id}/editar",
			deactivate: "/eliminar_pedido/{id}",
			restore:    "/restaurar_pedido/{id}",
		},
		filters: []filterRoute{
			{path: "/pedidos/proveedor/{id}", field: repo.BySupplier, param: "id", parse: parseInt},
			{path: "/pedidos/fecha/{fecha}", field: repo.ByDate, param: "fecha", parse: parseDateParam},
		},
		apply: func(_ context.Context, in *orderInput, o *models.Order) error {
			o.SupplierID = in.SupplierID
			o.Date = in.Date
			o.Total = in.Total
			return nil
		},
	}
}

func (h *Handlers) customers() *resource[models.Customer, *models.Customer, customerInput] {
	return &resource[models.Customer, *models.Customer, customerInput]{
		h:      h,
		entity: "cliente",
		store:  h.Stores.Customers,
		paths: paths{
			list:       "/list_clientes",
			inactive:   "/list_clientes_inactivos",
			edit:       "/cliente/{id}/editar",
			deactivate: "/eliminar_cliente/{id}",
			restore:    "/restaurar_cliente/{id}",
		},
		filters: []filterRoute{
			{path: "/clientes/fecha_registro/{fecha}", field: repo.ByRegisteredOn, param: "fecha", parse: parseDateParam},
		},
		apply: func(_ context.Context, in *customerInput, c *models.Customer) error {
			c.Name = in.Name
			c.Address = in.Address
			c.Phone = in.Phone
			c.Email = in.Email
			c.RegisteredOn = in.RegisteredOn
			return nil
		},
	}
}

func (h *Handlers) employees() *resource[models.Employee, *models.Employee, employeeInput] {
	return &resource[models.Employee, *models.Employee, employeeInput]{
		h:      h,
		entity: "empleado",
		store:  h.Stores.Employees,
		paths: paths{
			list:       "/list_empleados",
			inactive:   "/list_empleados_inactivos",
			edit:       "/empleado/{id}/editar",
			deactivate: "/eliminar_empleado/{id}",
			restore:    "/restaurar_empleado/{id}",
		},
		filters: []filterRoute{
			{path: "/empleados/puesto/{puesto}", field: repo.ByPosition, param: "puesto", parse: parseString},
			{path: "/empleados/sucursal/{id}", field: repo.ByBranch, param: "id", parse: parseInt},
		},
		apply: func(_ context.Context, in *employeeInput, e *models.Employee) error {
			e.Name = in.Name
			e.Position = in.Position
			e.BranchID = in.BranchID
			return nil
		},
	}
}

func (h *Handlers) branches() *resource[models.Branch, *models.Branch, branchInput] {
	return &resource[models.Branch, *models.Branch, branchInput]{
		h:      h,
		entity: "sucursal",
		store:  h.Stores.Branches,
		paths: paths{
			list:       "/list_sucursales",
			inactive:   "/list_sucursales_inactivas",
			edit:       "/sucursal/{id}/editar",
			deactivate: "/eliminar_sucursal/{id}",
			restore:    "/restaurar_sucursal/{id}",
		},
		apply: func(_ context.Context, in *branchInput, b *models.Branch) error {
			b.Name = in.Name
			b.Address = in.Address
			b.Phone = in.Phone
			return nil
		},
	}
}
