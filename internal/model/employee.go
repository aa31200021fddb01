package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee roles. An account's role mirrors the linked employee's role.
const (
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// Employee is a store worker. The 10-char id is generated server-side.
type Employee struct {
	ID          string          `gorm:"column:id_employee;primaryKey;size:10"`
	Surname     string          `gorm:"column:empl_surname;size:50;not null;index"`
	Name        string          `gorm:"column:empl_name;size:50;not null"`
	Patronymic  *string         `gorm:"column:empl_patronymic;size:50"`
	Role        string          `gorm:"column:empl_role;type:varchar(10);not null"`
	Salary      decimal.Decimal `gorm:"type:decimal(13,4);not null"`
	DateOfBirth time.Time       `gorm:"type:date;not null"`
	DateOfStart time.Time       `gorm:"type:date;not null"`
	Phone       string          `gorm:"column:phone_number;size:13;not null"`
	City        string          `gorm:"size:50;not null"`
	Street      string          `gorm:"size:50;not null"`
	ZipCode     string          `gorm:"column:zip_code;size:9;not null"`
}

func (Employee) TableName() string { return "employee" }
