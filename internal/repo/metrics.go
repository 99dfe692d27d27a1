package repo

import "context"

// EntityCount is the number of active and inactive records of one entity.
type EntityCount struct {
	Active   int `json:"activos"`
	Inactive int `json:"inactivos"`
}

type Metrics struct {
	Entities map[string]EntityCount `json:"entidades"`
}

type counter interface {
	Count(ctx context.Context, active bool) (int, error)
}

// DashboardMetrics counts every entity in both partitions.
func (s *Stores) DashboardMetrics(ctx context.Context) (Metrics, error) {
	entities := map[string]counter{
		"marcas":          s.Brands,
		"categorias":      s.Categories,
		"fabricantes":     s.Manufacturers,
		"modelos":         s.Models,
		"accesorios":      s.Accessories,
		"proveedores":     s.Suppliers,
		"inventarios":     s.Inventory,
		"caracteristicas": s.Features,
		"equipos":         s.Equipment,
		"pedidos":         s.Orders,
		"clientes":        s.Customers,
		"empleados":       s.Employees,
		"sucursales":      s.Branches,
		"ventas":          s.Sales,
	}

	m := Metrics{Entities: make(map[string]EntityCount, len(entities))}
	for name, c := range entities {
		active, err := c.Count(ctx, true)
		if err != nil {
			return m, err
		}
		inactive, err := c.Count(ctx, false)
		if err != nil {
			return m, err
		}
		m.Entities[name] = EntityCount{Active: active, Inactive: inactive}
	}
	return m, nil
}
