package models

// Manufacturer is the company that builds a model.
type Manufacturer struct {
	SoftDelete
	Name   string `json:"nombre" gorm:"column:name;size:100;not null;unique"`
	Origin string `json:"origen" gorm:"column:origin;size:50;not null"`
}

func (Manufacturer) TableName() string { return "manufacturers" }

// Brand is the commercial name equipment is sold under.
type Brand struct {
	SoftDelete
	Name           string `json:"nombre" gorm:"column:name;size:50;not null;unique"`
	ManufacturerID int    `json:"fabricante_id" gorm:"column:manufacturer_id;not null;index"`
}

func (Brand) TableName() string { return "brands" }

type Category struct {
	SoftDelete
	Name string `json:"nombre" gorm:"column:name;size:50;not null;unique"`
}

func (Category) TableName() string { return "categories" }

// Model is a product line, e.g. a phone generation, optionally tied to its
// manufacturer and brand.
type Model struct {
	SoftDelete
	Name            string `json:"modelo" gorm:"column:name;size:100;not null;unique"`
	ReleaseYear     int    `json:"anioLanzamiento" gorm:"column:release_year;not null"`
	OperatingSystem string `json:"sistemaOperativo" gorm:"column:operating_system;size:50;not null"`
	ManufacturerID  *int   `json:"fabricante_id,omitempty" gorm:"column:manufacturer_id;index"`
	BrandID         *int   `json:"marca_id,omitempty" gorm:"column:brand_id;index"`
}

func (Model) TableName() string { return "models" }

// Feature is a named technical characteristic attached to equipment.
type Feature struct {
	SoftDelete
	Name        string `json:"nombre" gorm:"column:name;size:50;not null"`
	Description string `json:"descripcion" gorm:"column:description;size:200;not null"`
}

func (Feature) TableName() string { return "features" }

type Supplier struct {
	SoftDelete
	Name    string `json:"nombre" gorm:"column:name;size:100;not null"`
	Contact string `json:"contacto" gorm:"column:contact;size:100;not null"`
}

func (Supplier) TableName() string { return "suppliers" }
