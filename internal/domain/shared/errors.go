package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrSignInRequired  = NewDomainError("SIGN_IN_REQUIRED", "You must be signed in to perform this action")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidQuantity = NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	ErrEmptyCart       = NewDomainError("EMPTY_CART", "Cart is empty")
	ErrInvalidRating   = NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
)
