package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase placed with a supplier.
type Order struct {
	SoftDelete
	SupplierID int             `json:"proveedor_id" gorm:"column:supplier_id;not null;index"`
	Date       time.Time       `json:"fecha" gorm:"column:date;type:date;not null"`
	Total      decimal.Decimal `json:"total" gorm:"column:total;type:numeric(12,2);not null"`
}

func (Order) TableName() string { return "orders" }
