package api

import (
	"errors"
	"net/http"

	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/service/auth"
	"github.com/devconnect/api/internal/store"
)

// ErrNotResourceOwner indicates an authenticated user attempted to mutate a
// resource owned by someone else.
var ErrNotResourceOwner = errors.New("requester does not own this resource")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, ErrNotResourceOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrEducationNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyHandle),
		errors.Is(err, domain.ErrEmptyStatus),
		errors.Is(err, domain.ErrEmptyText):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, ErrNotResourceOwner):
		return "You do not own this resource"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, domain.ErrExperienceNotFound):
		return "Experience entry not found"

	case errors.Is(err, domain.ErrEducationNotFound):
		return "Education entry not found"

	case errors.Is(err, domain.ErrCommentNotFound):
		return "Comment not found"

	case errors.Is(err, store.ErrEmailExists):
		return "A user with this email is already registered"

	case errors.Is(err, store.ErrHandleExists):
		return "Handle already exists"

	default:
		return "An unexpected error occurred"
	}
}
