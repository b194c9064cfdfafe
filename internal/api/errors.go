package api

import (
	"errors"
	"net/http"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/service/auth"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

// MapErrorToStatusCode translates domain and store errors into HTTP
// status codes. Duplicates map to 400, not 409, matching the service's
// established wire contract.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrEmptyPatch),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err. Internal
// detail never crosses the wire; callers that want a resource-specific
// message (drug id, drug name) format it at the call site instead.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "User already exists. Please login."
	case errors.Is(err, store.ErrEmptyPatch):
		return "No fields to update."
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return "Invalid role"
	default:
		return "Internal Server Error"
	}
}
