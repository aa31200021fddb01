package model

import "time"

// Account is a login credential, optionally linked to an Employee.
// Deleting the employee cascades to the account.
type Account struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string  `gorm:"not null"`
	Role         string  `gorm:"type:varchar(10);not null"`
	EmployeeID   *string `gorm:"column:employee_id;size:10"`
	CreatedAt    time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Account) TableName() string { return "account" }
