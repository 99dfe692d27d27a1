package models

// Inventory records how many units of a product sit in a warehouse location.
type Inventory struct {
	SoftDelete
	ProductRef `gorm:"embedded;embeddedPrefix:product_"`
	Quantity   int    `json:"cantidadDisponible" gorm:"column:quantity;not null"`
	Location   string `json:"ubicacionAlmacen" gorm:"column:location;size:100;not null;index"`
}

func (Inventory) TableName() string { return "inventory_items" }
