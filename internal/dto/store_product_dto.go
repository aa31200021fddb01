package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CreateStoreProductRequest adds a shelf item. UPC is generated server-side
// when omitted.
type CreateStoreProductRequest struct {
	UPC            string          `json:"upc"             validate:"omitempty,len=12,numeric"`
	PromoUPC       *string         `json:"upc_prom"        validate:"omitempty,len=12,numeric"`
	ProductID      int             `json:"product_id"      validate:"required,gt=0"`
	Price          decimal.Decimal `json:"price"           validate:"required,gt=0"`
	Quantity       int             `json:"quantity"        validate:"min=0"`
	Promotional    bool            `json:"promotional"`
	ExpiryDate     string          `json:"expiry_date"     validate:"required,datetime=2006-01-02"`
	PromoThreshold int             `json:"promo_threshold" validate:"min=0"`
}

type UpdateStoreProductRequest struct {
	PromoUPC       *string         `json:"upc_prom"        validate:"omitempty,len=12,numeric"`
	ProductID      int             `json:"product_id"      validate:"required,gt=0"`
	Price          decimal.Decimal `json:"price"           validate:"required,gt=0"`
	Quantity       int             `json:"quantity"        validate:"min=0"`
	Promotional    bool            `json:"promotional"`
	ExpiryDate     string          `json:"expiry_date"     validate:"required,datetime=2006-01-02"`
	PromoThreshold int             `json:"promo_threshold" validate:"min=0"`
}

// StoreProductFilter carries list query parameters for shelf items.
type StoreProductFilter struct {
	SortBy      string `form:"sort_by"` // upc | name | category | price | quantity | promotional
	Order       string `form:"order"`
	Category    string `form:"category"` // equality on category name
	Promotional *bool  `form:"promotional"`
	Search      string `form:"search"`       // per SearchField
	SearchField string `form:"search_field"` // name | upc | category | characteristics
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StoreProductResponse struct {
	UPC            string          `json:"upc"`
	PromoUPC       *string         `json:"upc_prom,omitempty"`
	ProductID      int             `json:"product_id"`
	Name           string          `json:"name"`
	Characteristics string         `json:"characteristics"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Promotional    bool            `json:"promotional"`
	ExpiryDate     string          `json:"expiry_date"`
	PromoThreshold int             `json:"promo_threshold"`
}

// PriceCheckResponse is the public, cache-friendly price lookup payload.
type PriceCheckResponse struct {
	UPC         string          `json:"upc"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Promotional bool            `json:"promotional"`
}
