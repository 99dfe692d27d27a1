package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Form inputs. Field keys are the form field names; JSON bodies sent to the
// same routes use the same keys.

type manufacturerInput struct {
	Name   string `mapstructure:"nombre" validate:"required,max=100"`
	Origin string `mapstructure:"origen" validate:"required,max=50"`
}

type brandInput struct {
	Name           string `mapstructure:"nombre" validate:"required,max=50"`
	ManufacturerID int    `mapstructure:"fabricante" validate:"required,gt=0"`
}

type categoryInput struct {
	Name string `mapstructure:"nombre" validate:"required,max=50"`
}

type modelInput struct {
	Name            string `mapstructure:"modelo" validate:"required,max=100"`
	ReleaseYear     int    `mapstructure:"anioLanzamiento" validate:"required,gte=1970,lte=2100"`
	OperatingSystem string `mapstructure:"sistemaOperativo" validate:"required,max=50"`
	ManufacturerID  *int   `mapstructure:"fabricante" validate:"omitempty,gt=0"`
	BrandID         *int   `mapstructure:"marca" validate:"omitempty,gt=0"`
}

type featureInput struct {
	Name        string `mapstructure:"nombre" validate:"required,max=50"`
	Description string `mapstructure:"descripcion" validate:"required,max=200"`
}

type supplierInput struct {
	Name    string `mapstructure:"nombre" validate:"required,max=100"`
	Contact string `mapstructure:"contacto" validate:"required,max=100"`
}

type accessoryInput struct {
	Name        string          `mapstructure:"nombre" validate:"required,max=100"`
	Description string          `mapstructure:"descripcion" validate:"max=200"`
	Price       decimal.Decimal `mapstructure:"precio" validate:"gt=0,lte=9999999999.99"`
}

type equipmentInput struct {
	Name       string          `mapstructure:"nombre" validate:"max=100"`
	ModelID    int             `mapstructure:"modelo" validate:"required,gt=0"`
	BrandID    int             `mapstructure:"marca" validate:"required,gt=0"`
	CategoryID int             `mapstructure:"categoria" validate:"required,gt=0"`
	Price      decimal.Decimal `mapstructure:"precio" validate:"gt=0,lte=9999999999.99"`
	FeatureID  int             `mapstructure:"caracteristicas" validate:"required,gt=0"`
	SupplierID int             `mapstructure:"proveedor" validate:"required,gt=0"`
}

type inventoryInput struct {
	Kind      string `mapstructure:"tipo" validate:"required,oneof=equipo accesorio"`
	ProductID int    `mapstructure:"producto" validate:"required,gt=0"`
	Quantity  int    `mapstructure:"cantidadDisponible" validate:"gte=0"`
	Location  string `mapstructure:"ubicacionAlmacen" validate:"required,max=100"`
}

type orderInput struct {
	SupplierID int             `mapstructure:"proveedor" validate:"required,gt=0"`
	Date       time.Time       `mapstructure:"fecha" validate:"required"`
	Total      decimal.Decimal `mapstructure:"total" validate:"gte=0,lte=9999999999.99"`
}

type customerInput struct {
	Name         string    `mapstructure:"nombre" validate:"required,max=50"`
	Address      string    `mapstructure:"direccion" validate:"required,max=50"`
	Phone        string    `mapstructure:"telefono" validate:"required,max=50"`
	Email        string    `mapstructure:"email" validate:"required,email,max=120"`
	RegisteredOn time.Time `mapstructure:"fechaRegistro" validate:"required"`
}

type branchInput struct {
	Name    string `mapstructure:"nombre" validate:"required,max=100"`
	Address string `mapstructure:"direccion" validate:"required,max=100"`
	Phone   string `mapstructure:"telefono" validate:"required,max=50"`
}

type employeeInput struct {
	Name     string `mapstructure:"nombre" validate:"required,max=100"`
	Position string `mapstructure:"puesto" validate:"required,max=50"`
	BranchID int    `mapstructure:"sucursal" validate:"required,gt=0"`
}

// saleInput leaves tipo unconstrained: an unknown kind resolves to no
// product and the write is skipped.
type saleInput struct {
	CustomerID int       `mapstructure:"cliente" validate:"required,gt=0"`
	ProductID  int       `mapstructure:"producto" validate:"required,gt=0"`
	Kind       string    `mapstructure:"tipo" validate:"required"`
	Date       time.Time `mapstructure:"fecha" validate:"required"`
	Quantity   int       `mapstructure:"cantidad" validate:"required,gt=0"`
}

// JSON API bodies.

type EquipmentCreateRequest struct {
	Name       string          `json:"nombre" validate:"max=100"`
	Price      decimal.Decimal `json:"precio" validate:"gt=0,lte=9999999999.99"`
	ModelID    int             `json:"modelo_id" validate:"required,gt=0"`
	BrandID    int             `json:"marca_id" validate:"required,gt=0"`
	FeatureID  int             `json:"caracteristicas_id" validate:"required,gt=0"`
	CategoryID int             `json:"categoria_id" validate:"required,gt=0"`
	SupplierID int             `json:"proveedor_id" validate:"required,gt=0"`
}

// EquipmentUpdateRequest changes only the fields present in the body.
type EquipmentUpdateRequest struct {
	ID         int              `json:"id" validate:"required"`
	Name       *string          `json:"nombre" validate:"omitnil,max=100"`
	Price      *decimal.Decimal `json:"precio" validate:"omitnil,gt=0,lte=9999999999.99"`
	ModelID    *int             `json:"modelo_id" validate:"omitnil,gt=0"`
	BrandID    *int             `json:"marca_id" validate:"omitnil,gt=0"`
	FeatureID  *int             `json:"caracteristicas_id" validate:"omitnil,gt=0"`
	CategoryID *int             `json:"categoria_id" validate:"omitnil,gt=0"`
	SupplierID *int             `json:"proveedor_id" validate:"omitnil,gt=0"`
	Active     *bool            `json:"activo"`
}

type EquipmentDeleteRequest struct {
	ID int `json:"id" validate:"required"`
}

type EquipmentResponse struct {
	ID         int             `json:"id"`
	Price      decimal.Decimal `json:"precio"`
	Active     bool            `json:"activo"`
	ModelID    int             `json:"modelo_id"`
	BrandID    int             `json:"marca_id"`
	CategoryID int             `json:"categoria_id"`
	FeatureID  int             `json:"caracteristicas_id"`
	SupplierID int             `json:"proveedor_id"`
}

type MinimalEquipmentResponse struct {
	ID      int             `json:"id"`
	ModelID int             `json:"modelo_id"`
	BrandID int             `json:"marca_id"`
	Price   decimal.Decimal `json:"precio"`
	Active  bool            `json:"activo"`
}

// NamedResponse is the public projection of the catalog collections.
type NamedResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre,omitempty"`
	Modelo string `json:"modelo,omitempty"`
}

type CreateUserRequest struct {
	Username string `json:"usuario" validate:"required,max=50"`
	Password string `json:"contrasenia" validate:"required,min=4"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type MinimalUserResponse struct {
	Username string `json:"username"`
}

type LoginResult struct {
	Token string `json:"Token"`
}
