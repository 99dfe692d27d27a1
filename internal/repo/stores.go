package repo

import (
	"database/sql"

	"github.com/rogerio-castellano/electronics-store/internal/models"
)

// Stores groups one store per entity plus the user repository.
type Stores struct {
	Manufacturers Store[models.Manufacturer]
	Brands        Store[models.Brand]
	Categories    Store[models.Category]
	Models        Store[models.Model]
	Features      Store[models.Feature]
	Suppliers     Store[models.Supplier]
	Equipment     Store[models.Equipment]
	Accessories   Store[models.Accessory]
	Inventory     Store[models.Inventory]
	Orders        Store[models.Order]
	Customers     Store[models.Customer]
	Branches      Store[models.Branch]
	Employees     Store[models.Employee]
	Sales         Store[models.Sale]
	Users         UserRepository
}

func NewPostgresStores(db *sql.DB) *Stores {
	return &Stores{
		Manufacturers: NewPostgresStore[models.Manufacturer](db, ManufacturerTable),
		Brands:        NewPostgresStore[models.Brand](db, BrandTable),
		Categories:    NewPostgresStore[models.Category](db, CategoryTable),
		Models:        NewPostgresStore[models.Model](db, ModelTable),
		Features:      NewPostgresStore[models.Feature](db, FeatureTable),
		Suppliers:     NewPostgresStore[models.Supplier](db, SupplierTable),
		Equipment:     NewPostgresStore[models.Equipment](db, EquipmentTable),
		Accessories:   NewPostgresStore[models.Accessory](db, AccessoryTable),
		Inventory:     NewPostgresStore[models.Inventory](db, InventoryTable),
		Orders:        NewPostgresStore[models.Order](db, OrderTable),
		Customers:     NewPostgresStore[models.Customer](db, CustomerTable),
		Branches:      NewPostgresStore[models.Branch](db, BranchTable),
		Employees:     NewPostgresStore[models.Employee](db, EmployeeTable),
		Sales:         NewPostgresStore[models.Sale](db, SaleTable),
		Users:         NewPostgresUserRepository(db),
	}
}

func NewMemoryStores() *Stores {
	return &Stores{
		Manufacturers: NewMemoryStore[models.Manufacturer](ManufacturerTable),
		Brands:        NewMemoryStore[models.Brand](BrandTable),
		Categories:    NewMemoryStore[models.Category](CategoryTable),
		Models:        NewMemoryStore[models.Model](ModelTable),
		Features:      NewMemoryStore[models.Feature](FeatureTable),
		Suppliers:     NewMemoryStore[models.Supplier](SupplierTable),
		Equipment:     NewMemoryStore[models.Equipment](EquipmentTable),
		Accessories:   NewMemoryStore[models.Accessory](AccessoryTable),
		Inventory:     NewMemoryStore[models.Inventory](InventoryTable),
		Orders:        NewMemoryStore[models.Order](OrderTable),
		Customers:     NewMemoryStore[models.Customer](CustomerTable),
		Branches:      NewMemoryStore[models.Branch](BranchTable),
		Employees:     NewMemoryStore[models.Employee](EmployeeTable),
		Sales:         NewMemoryStore[models.Sale](SaleTable),
		Users:         NewInMemoryUserRepository(),
	}
}

// Clear empties every in-memory store; stores of other kinds are left alone.
func (s *Stores) Clear() {
	for _, st := range []any{
		s.Manufacturers, s.Brands, s.Categories, s.Models, s.Features, s.Suppliers,
		s.Equipment, s.Accessories, s.Inventory, s.Orders, s.Customers,
		s.Branches, s.Employees, s.Sales, s.Users,
	} {
		if c, ok := st.(interface{ Clear() }); ok {
			c.Clear()
		}
	}
}
