package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateCategoryRequest = CreateCategoryRequest

type CategoryFilter struct {
	SortBy string `form:"sort_by"` // id | name
	Order  string `form:"order"`   // asc | desc
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}
