package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a single sale line. Total is always the unit price of the
// referenced product times Quantity, computed when the line is written.
type Sale struct {
	SoftDelete
	CustomerID int `json:"cliente_id" gorm:"column:customer_id;not null;index"`
	ProductRef `gorm:"embedded;embeddedPrefix:product_"`
	Quantity   int             `json:"cantidad" gorm:"column:quantity;not null"`
	Date       time.Time       `json:"fecha" gorm:"column:date;type:date;not null;index"`
	Total      decimal.Decimal `json:"total" gorm:"column:total;type:numeric(14,2);not null"`
}

func (Sale) TableName() string { return "sales" }
