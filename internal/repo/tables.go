package repo

import "github.com/rogerio-castellano/electronics-store/internal/models"

// Filter names are the public names used by the listing routes.
const (
	ByManufacturer    = "manufacturer"
	ByBrand           = "brand"
	ByOrigin          = "origin"
	ByReleaseYear     = "release_year"
	ByOperatingSystem = "operating_system"
	ByModel           = "model"
	ByCategory        = "category"
	BySupplier        = "supplier"
	ByKind            = "kind"
	ByProduct         = "product"
	ByLocation        = "location"
	ByDate            = "date"
	ByRegisteredOn    = "registered_on"
	ByPosition        = "position"
	ByBranch          = "branch"
	ByCustomer        = "customer"
)

var ManufacturerTable = Table[models.Manufacturer]{
	Name:    "manufacturers",
	Columns: []string{"name", "origin"},
	Fields: func(m *models.Manufacturer) []any {
		return []any{&m.Name, &m.Origin}
	},
	Filters: map[string]Filter[models.Manufacturer]{
		ByOrigin: {Column: "origin", Value: func(m *models.Manufacturer) any { return m.Origin }},
	},
}

var BrandTable = Table[models.Brand]{
	Name:    "brands",
	Columns: []string{"name", "manufacturer_id"},
	Fields: func(b *models.Brand) []any {
		return []any{&b.Name, &b.ManufacturerID}
	},
	Filters: map[string]Filter[models.Brand]{
		ByManufacturer: {Column: "manufacturer_id", Value: func(b *models.Brand) any { return b.ManufacturerID }},
	},
}

var CategoryTable = Table[models.Category]{
	Name:    "categories",
	Columns: []string{"name"},
	Fields: func(c *models.Category) []any {
		return []any{&c.Name}
	},
}

var ModelTable = Table[models.Model]{
	Name:    "models",
	Columns: []string{"name", "release_year", "operating_system", "manufacturer_id", "brand_id"},
	Fields: func(m *models.Model) []any {
		return []any{&m.Name, &m.ReleaseYear, &m.OperatingSystem, &m.ManufacturerID, &m.BrandID}
	},
	Filters: map[string]Filter[models.Model]{
		ByReleaseYear:     {Column: "release_year", Value: func(m *models.Model) any { return m.ReleaseYear }},
		ByOperatingSystem: {Column: "operating_system", Value: func(m *models.Model) any { return m.OperatingSystem }},
		ByManufacturer:    {Column: "manufacturer_id", Value: func(m *models.Model) any { return m.ManufacturerID }},
		ByBrand:           {Column: "brand_id", Value: func(m *models.Model) any { return m.BrandID }},
	},
}

var FeatureTable = Table[models.Feature]{
	Name:    "features",
	Columns: []string{"name", "description"},
	Fields: func(f *models.Feature) []any {
		return []any{&f.Name, &f.Description}
	},
}

var SupplierTable = Table[models.Supplier]{
	Name:    "suppliers",
	Columns: []string{"name", "contact"},
	Fields: func(s *models.Supplier) []any {
		return []any{&s.Name, &s.Contact}
	},
}

var EquipmentTable = Table[models.Equipment]{
	Name:    "equipment",
	Columns: []string{"name", "price", "model_id", "brand_id", "category_id", "feature_id", "supplier_id"},
	Fields: func(e *models.Equipment) []any {
		return []any{&e.Name, &e.Price, &e.ModelID, &e.BrandID, &e.CategoryID, &e.FeatureID, &e.SupplierID}
	},
	Filters: map[string]Filter[models.Equipment]{
		ByBrand:    {Column: "brand_id", Value: func(e *models.Equipment) any { return e.BrandID }},
		ByCategory: {Column: "category_id", Value: func(e *models.Equipment) any { return e.CategoryID }},
		BySupplier: {Column: "supplier_id", Value: func(e *models.Equipment) any { return e.SupplierID }},
		ByModel:    {Column: "model_id", Value: func(e *models.Equipment) any { return e.ModelID }},
	},
}

var AccessoryTable = Table[models.Accessory]{
	Name:    "accessories",
	Columns: []string{"name", "description", "price"},
	Fields: func(a *models.Accessory) []any {
		return []any{&a.Name, &a.Description, &a.Price}
	},
}

var InventoryTable = Table[models.Inventory]{
	Name:    "inventory_items",
	Columns: []string{"product_kind", "product_id", "quantity", "location"},
	Fields: func(i *models.Inventory) []any {
		return []any{&i.Kind, &i.ProductID, &i.Quantity, &i.Location}
	},
	Filters: map[string]Filter[models.Inventory]{
		ByKind:     {Column: "product_kind", Value: func(i *models.Inventory) any { return i.Kind }},
		ByLocation: {Column: "location", Value: func(i *models.Inventory) any { return i.Location }},
	},
}

var OrderTable = Table[models.Order]{
	Name:    "orders",
	Columns: []string{"supplier_id", "date", "total"},
	Fields: func(o *models.Order) []any {
		return []any{&o.SupplierID, &o.Date, &o.Total}
	},
	Filters: map[string]Filter[models.Order]{
		BySupplier: {Column: "supplier_id", Value: func(o *models.Order) any { return o.SupplierID }},
		ByDate:     {Column: "date", Value: func(o *models.Order) any { return o.Date }},
	},
}

var CustomerTable = Table[models.Customer]{
	Name:    "customers",
	Columns: []string{"name", "address", "phone", "email", "registered_on"},
	Fields: func(c *models.Customer) []any {
		return []any{&c.Name, &c.Address, &c.Phone, &c.Email, &c.RegisteredOn}
	},
	Filters: map[string]Filter[models.Customer]{
		ByRegisteredOn: {Column: "registered_on", Value: func(c *models.Customer) any { return c.RegisteredOn }},
	},
}

var BranchTable = Table[models.Branch]{
	Name:    "branches",
	Columns: []string{"name", "address", "phone"},
	Fields: func(b *models.Branch) []any {
		return []any{&b.Name, &b.Address, &b.Phone}
	},
}

var EmployeeTable = Table[models.Employee]{
	Name:    "employees",
	Columns: []string{"name", "position", "branch_id"},
	Fields: func(e *models.Employee) []any {
		return []any{&e.Name, &e.Position, &e.BranchID}
	},
	Filters: map[string]Filter[models.Employee]{
		ByPosition: {Column: "position", Value: func(e *models.Employee) any { return e.Position }},
		ByBranch:   {Column: "branch_id", Value: func(e *models.Employee) any { return e.BranchID }},
	},
}

var SaleTable = Table[models.Sale]{
	Name:    "sales",
	Columns: []string{"customer_id", "product_kind", "product_id", "quantity", "date", "total"},
	Fields: func(s *models.Sale) []any {
		return []any{&s.CustomerID, &s.Kind, &s.ProductID, &s.Quantity, &s.Date, &s.Total}
	},
	Filters: map[string]Filter[models.Sale]{
		ByCustomer: {Column: "customer_id", Value: func(s *models.Sale) any { return s.CustomerID }},
		ByKind:     {Column: "product_kind", Value: func(s *models.Sale) any { return s.Kind }},
		ByProduct:  {Column: "product_id", Value: func(s *models.Sale) any { return s.ProductID }},
		ByDate:     {Column: "date", Value: func(s *models.Sale) any { return s.Date }},
	},
}
