// Package errors defines client-facing API errors. Each error carries the HTTP
// status it maps to and a short message that is safe to return to callers.
package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError is a domain error that is surfaced to API clients verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, format string, args ...any) *APIError {
	return &APIError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func NewErrValidation(msg string) *APIError {
	return newAPIError(http.StatusBadRequest, "%s", msg)
}

func NewErrEmailIsTaken(email string) *APIError {
	return newAPIError(http.StatusConflict, "user with email %s already exists", email)
}

// NewErrInvalidCredentials does not say which of email or password was wrong.
func NewErrInvalidCredentials() *APIError {
	return newAPIError(http.StatusUnauthorized, "invalid email or password")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, "authorization token is missing")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, "authorization token is invalid")
}

func NewErrInvalidRefreshToken() *APIError {
	return newAPIError(http.StatusUnauthorized, "refresh token is invalid")
}

func NewErrUserNotFound(id string) *APIError {
	return newAPIError(http.StatusNotFound, "user %s not found", id)
}

// NewErrPlantNotFound is used for both missing plants and plants owned by
// someone else.
func NewErrPlantNotFound(id string) *APIError {
	return newAPIError(http.StatusNotFound, "plant %s not found", id)
}

func NewErrPhotoNotFound(id uuid.UUID) *APIError {
	return newAPIError(http.StatusNotFound, "plant %s has no photo", id)
}

func NewErrQuotaExceeded(maxPlants int) *APIError {
	return newAPIError(http.StatusBadRequest, "plant limit reached: your subscription allows %d active plants", maxPlants)
}

func NewErrInvalidSubscriptionTier(tier string) *APIError {
	return newAPIError(http.StatusBadRequest, "unknown subscription tier %q", tier)
}

func NewErrUnsupportedMediaType(contentType string) *APIError {
	return newAPIError(http.StatusUnsupportedMediaType, "unsupported photo content type %q", contentType)
}

func NewErrTooManyRequests() *APIError {
	return newAPIError(http.StatusTooManyRequests, "rate limit exceeded")
}
