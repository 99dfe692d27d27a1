package models

import "time"

type Customer struct {
	SoftDelete
	Name         string    `json:"nombre" gorm:"column:name;size:50;not null"`
	Address      string    `json:"direccion" gorm:"column:address;size:50;not null"`
	Phone        string    `json:"telefono" gorm:"column:phone;size:50;not null"`
	Email        string    `json:"email" gorm:"column:email;size:120;not null"`
	RegisteredOn time.Time `json:"fechaRegistro" gorm:"column:registered_on;type:date;not null"`
}

func (Customer) TableName() string { return "customers" }

type Branch struct {
	SoftDelete
	Name    string `json:"nombre" gorm:"column:name;size:100;not null"`
	Address string `json:"direccion" gorm:"column:address;size:100;not null"`
	Phone   string `json:"telefono" gorm:"column:phone;size:50;not null"`
}

func (Branch) TableName() string { return "branches" }

type Employee struct {
	SoftDelete
	Name     string `json:"nombre" gorm:"column:name;size:100;not null"`
	Position string `json:"puesto" gorm:"column:position;size:50;not null;index"`
	BranchID int    `json:"sucursal_id" gorm:"column:branch_id;not null;index"`
}

func (Employee) TableName() string { return "employees" }
