package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a completed sale header ("check"). Immutable once created except
// for deletion, which cascades to its Sale lines.
//
// Total stores the payable amount: post-discount, post-VAT.
type Receipt struct {
	Number     string          `gorm:"column:check_number;primaryKey;size:10"`
	EmployeeID string          `gorm:"column:id_employee;size:10;not null;index"`
	CardNumber *string         `gorm:"column:card_number;size:13"`
	PrintDate  time.Time       `gorm:"column:print_date;not null;index"`
	Total      decimal.Decimal `gorm:"column:sum_total;type:decimal(13,2);not null"`

	Employee *Employee     `gorm:"foreignKey:EmployeeID"`
	Card     *CustomerCard `gorm:"foreignKey:CardNumber"`
	Items    []Sale        `gorm:"foreignKey:ReceiptNumber;constraint:OnDelete:CASCADE"`
}

func (Receipt) TableName() string { return "receipt" }

// Sale is one receipt line: quantity of a shelf item at the price it had at
// the moment of sale. Composite key (upc, check_number).
type Sale struct {
	UPC           string          `gorm:"column:upc;primaryKey;size:12"`
	ReceiptNumber string          `gorm:"column:check_number;primaryKey;size:10"`
	Quantity      int             `gorm:"column:product_number;not null;check:product_number > 0"`
	Price         decimal.Decimal `gorm:"column:selling_price;type:decimal(13,4);not null"`

	StoreProduct *StoreProduct `gorm:"foreignKey:UPC"`
}

func (Sale) TableName() string { return "sale" }
