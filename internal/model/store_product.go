package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreProduct is one shelf item: a priced, stocked instance of a Product,
// keyed by its 12-digit UPC.
//
// PromoAppliedAt records the one markdown a row may ever receive. The sweep
// never restores the pre-discount price and never discounts the same row
// twice, so activate/deactivate cycles cannot compound the markdown.
type StoreProduct struct {
	UPC            string          `gorm:"column:upc;primaryKey;size:12"`
	PromoUPC       *string         `gorm:"column:upc_prom;size:12"`
	ProductID      int             `gorm:"column:id_product;not null;index"`
	Price          decimal.Decimal `gorm:"column:selling_price;type:decimal(13,4);not null"`
	Quantity       int             `gorm:"column:products_number;not null;check:products_number >= 0"`
	Promotional    bool            `gorm:"column:promotional_product;not null;default:false"`
	ExpiryDate     time.Time       `gorm:"column:expiry_date;type:date;not null"`
	PromoThreshold int             `gorm:"column:promo_threshold;not null;default:0"`
	PromoAppliedAt *time.Time      `gorm:"column:promo_applied_at"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (StoreProduct) TableName() string { return "store_product" }
