package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterRequest creates an account for an existing employee. The account
// role mirrors the employee's role.
type RegisterRequest struct {
	Username   string `json:"username"    validate:"required,min=3,max=64"`
	Password   string `json:"password"    validate:"required,min=6"`
	EmployeeID string `json:"employee_id" validate:"required,len=10"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type AccountResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         AccountResponse `json:"user"`
}

// MeResponse tells an authenticated client who it is and where its
// role's dashboard lives.
type MeResponse struct {
	Account   AccountResponse `json:"account"`
	Dashboard string          `json:"dashboard"`
}
