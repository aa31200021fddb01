// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// CheckoutError carries every business-rule violation found while building a
// receipt, so the cashier sees all of them at once instead of one per attempt.
type CheckoutError struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors"`
}

func NewCheckout(errs []string) *CheckoutError {
	return &CheckoutError{Detail: "receipt rejected", Errors: errs}
}
