package dto

import "net/http"

// Error codes the gateway emits
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeSignInRequired = "SIGN_IN_REQUIRED"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeUpstream       = "UPSTREAM_ERROR"
	ErrCodeUnavailable    = "BACKEND_UNAVAILABLE"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// HTTPStatus maps an error code to its HTTP status
func HTTPStatus(code string) int {
	switch code {
	case ErrCodeBadRequest, "INVALID_INPUT", "INVALID_QUANTITY", "EMPTY_CART", "INVALID_RATING", "INVALID_STATUS":
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeSignInRequired:
		return http.StatusUnauthorized
	case ErrCodeUnauthorized:
		return http.StatusForbidden
	case ErrCodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
