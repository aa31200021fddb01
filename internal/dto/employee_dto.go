package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	Surname     string          `json:"surname"       validate:"required,max=50"`
	Name        string          `json:"name"          validate:"required,max=50"`
	Patronymic  *string         `json:"patronymic"    validate:"omitempty,max=50"`
	Role        string          `json:"role"          validate:"required,oneof=manager cashier"`
	Salary      decimal.Decimal `json:"salary"        validate:"required,gt=0"`
	DateOfBirth string          `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	DateOfStart string          `json:"date_of_start" validate:"required,datetime=2006-01-02"`
	Phone       string          `json:"phone"         validate:"required,max=13"`
	City        string          `json:"city"          validate:"required,max=50"`
	Street      string          `json:"street"        validate:"required,max=50"`
	ZipCode     string          `json:"zip_code"      validate:"required,max=9"`
}

// UpdateEmployeeRequest is a full-row replace keyed by employee id.
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeFilter carries list query parameters.
type EmployeeFilter struct {
	SortBy string `form:"sort_by"` // allow-listed sort key
	Order  string `form:"order"`   // asc | desc
	Role   string `form:"role"`    // manager | cashier | ""
	Search string `form:"search"`  // substring match on surname, case-insensitive
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EmployeeResponse struct {
	ID          string          `json:"id"`
	Surname     string          `json:"surname"`
	Name        string          `json:"name"`
	Patronymic  *string         `json:"patronymic,omitempty"`
	Role        string          `json:"role"`
	Salary      decimal.Decimal `json:"salary"`
	DateOfBirth string          `json:"date_of_birth"`
	DateOfStart string          `json:"date_of_start"`
	Phone       string          `json:"phone"`
	City        string          `json:"city"`
	Street      string          `json:"street"`
	ZipCode     string          `json:"zip_code"`
}
