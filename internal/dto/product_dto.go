package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	CategoryNumber  int     `json:"category_number" validate:"required,gt=0"`
	Name            string  `json:"name"            validate:"required,max=50"`
	Characteristics string  `json:"characteristics" validate:"required,max=100"`
	Manufacturer    *string `json:"manufacturer"    validate:"omitempty,max=50"`
}

type UpdateProductRequest = CreateProductRequest

// ProductFilter carries list query parameters for the catalog.
type ProductFilter struct {
	SortBy   string `form:"sort_by"` // id | name | characteristics | manufacturer | category
	Order    string `form:"order"`
	Category string `form:"category"` // equality on category name
	Search   string `form:"search"`   // substring match on product name
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProductResponse struct {
	ID              int     `json:"id"`
	CategoryNumber  int     `json:"category_number"`
	CategoryName    string  `json:"category_name"`
	Name            string  `json:"name"`
	Characteristics string  `json:"characteristics"`
	Manufacturer    *string `json:"manufacturer,omitempty"`
}
