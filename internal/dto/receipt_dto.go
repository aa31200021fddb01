package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CheckoutItem is one requested line: a shelf item and a quantity. Duplicate
// UPCs are aggregated before validation.
type CheckoutItem struct {
	UPC      string `json:"upc" validate:"required,len=12,numeric"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CheckoutRequest creates a receipt. ReceiptNumber is generated when empty;
// the issuing employee comes from the authenticated session.
type CheckoutRequest struct {
	ReceiptNumber string         `json:"receipt_number" validate:"omitempty,max=10"`
	CardNumber    *string        `json:"card_number"    validate:"omitempty,len=13"`
	Items         []CheckoutItem `json:"items"          validate:"required,min=1,dive"`
}

// ReceiptFilter carries list query parameters for receipts.
type ReceiptFilter struct {
	SortBy     string `form:"sort_by"` // number | date | total
	Order      string `form:"order"`
	EmployeeID string `form:"employee_id"` // manager may filter by cashier; cashiers are pinned to self
	DateFrom   string `form:"date_from"`   // inclusive, 2006-01-02
	DateTo     string `form:"date_to"`     // inclusive
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type SaleLineResponse struct {
	UPC      string          `json:"upc"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

type ReceiptResponse struct {
	Number      string          `json:"number"`
	EmployeeID  string          `json:"employee_id"`
	CashierName string          `json:"cashier_name,omitempty"`
	CardNumber  *string         `json:"card_number,omitempty"`
	PrintDate   string          `json:"print_date"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Percent     int             `json:"percent"`
	VAT         decimal.Decimal `json:"vat"`
	Total       decimal.Decimal `json:"total"`
	Items       []SaleLineResponse `json:"items,omitempty"`
}

type ReceiptListItem struct {
	Number      string          `json:"number"`
	PrintDate   string          `json:"print_date"`
	EmployeeID  string          `json:"employee_id"`
	CashierName string          `json:"cashier_name,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// PeriodTotalResponse is the payable sum over a date range.
type PeriodTotalResponse struct {
	EmployeeID string          `json:"employee_id,omitempty"`
	DateFrom   string          `json:"date_from,omitempty"`
	DateTo     string          `json:"date_to,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// UnitsSoldResponse is the unit count of one UPC sold over a date range.
type UnitsSoldResponse struct {
	UPC      string `json:"upc"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Units    int    `json:"units"`
}
