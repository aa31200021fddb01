package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCardRequest struct {
	Surname    string  `json:"surname"    validate:"required,max=50"`
	Name       string  `json:"name"       validate:"required,max=50"`
	Patronymic *string `json:"patronymic" validate:"omitempty,max=50"`
	Phone      string  `json:"phone"      validate:"required,max=13"`
	City       *string `json:"city"       validate:"omitempty,max=50"`
	Street     *string `json:"street"     validate:"omitempty,max=50"`
	ZipCode    *string `json:"zip_code"   validate:"omitempty,max=9"`
	Percent    int     `json:"percent"    validate:"min=0,max=100"`
}

type UpdateCardRequest = CreateCardRequest

// CardFilter carries list query parameters for loyalty cards.
type CardFilter struct {
	SortBy     string `form:"sort_by"` // number | surname | name | phone | city | percent
	Order      string `form:"order"`
	Search     string `form:"search"`      // substring match on surname
	MinPercent *int   `form:"min_percent"` // manager-only discount range filter
	MaxPercent *int   `form:"max_percent"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CardResponse struct {
	Number     string  `json:"number"`
	Surname    string  `json:"surname"`
	Name       string  `json:"name"`
	Patronymic *string `json:"patronymic,omitempty"`
	Phone      string  `json:"phone"`
	City       *string `json:"city,omitempty"`
	Street     *string `json:"street,omitempty"`
	ZipCode    *string `json:"zip_code,omitempty"`
	Percent    int     `json:"percent"`
}
