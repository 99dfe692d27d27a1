package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductKind discriminates the two sellable collections.
type ProductKind string

const (
	KindEquipment ProductKind = "equipo"
	KindAccessory ProductKind = "accesorio"
)

// ParseProductKind returns false for anything other than a known kind.
func ParseProductKind(s string) (ProductKind, bool) {
	switch ProductKind(s) {
	case KindEquipment, KindAccessory:
		return ProductKind(s), true
	}
	return "", false
}

func (k ProductKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *ProductKind) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*k = ProductKind(v)
	case []byte:
		*k = ProductKind(v)
	case nil:
		*k = ""
	default:
		return fmt.Errorf("cannot scan %T into ProductKind", src)
	}
	return nil
}

// ProductRef points at either an Equipment or an Accessory.
type ProductRef struct {
	Kind      ProductKind `json:"tipo" gorm:"column:kind;size:20;not null;index"`
	ProductID int         `json:"producto_id" gorm:"column:id;not null"`
}

// Equipment is a sellable device.
type Equipment struct {
	SoftDelete
	Name       string          `json:"nombre,omitempty" gorm:"column:name;size:100"`
	Price      decimal.Decimal `json:"precio" gorm:"column:price;type:numeric(12,2);not null"`
	ModelID    int             `json:"modelo_id" gorm:"column:model_id;not null;index"`
	BrandID    int             `json:"marca_id" gorm:"column:brand_id;not null;index"`
	CategoryID int             `json:"categoria_id" gorm:"column:category_id;not null;index"`
	FeatureID  int             `json:"caracteristicas_id" gorm:"column:feature_id;not null"`
	SupplierID int             `json:"proveedor_id" gorm:"column:supplier_id;not null;index"`
}

func (Equipment) TableName() string { return "equipment" }

// Label names the equipment in listings; unnamed equipment falls back to its id.
func (e Equipment) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("equipo #%d", e.ID)
}

// Accessory is a sellable add-on such as a case or a charger.
type Accessory struct {
	SoftDelete
	Name        string          `json:"nombre" gorm:"column:name;size:100;not null"`
	Description string          `json:"descripcion" gorm:"column:description;size:200"`
	Price       decimal.Decimal `json:"precio" gorm:"column:price;type:numeric(12,2);not null"`
}

func (Accessory) TableName() string { return "accessories" }
