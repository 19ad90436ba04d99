package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/domain/srs"
	"github.com/mnemoapp/mnemo-api/internal/service/auth"
	"github.com/mnemoapp/mnemo-api/internal/service/catalog"
	"github.com/mnemoapp/mnemo-api/internal/service/review"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Unknown
// errors map to 500 so internal error types never leak through the status.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, review.ErrMnemonicNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, review.ErrMnemonicNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrMnemonicNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, srs.ErrNoCardTypesSelected),
		errors.Is(err, srs.ErrNoMatchingCards),
		errors.Is(err, catalog.ErrInvalidMnemonic),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Store outages
	case errors.Is(err, review.ErrStoreUnavailable),
		errors.Is(err, catalog.ErrStoreUnavailable),
		errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized operation"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, review.ErrMnemonicNotOwned):
		return "You do not own this mnemonic"

	case errors.Is(err, review.ErrMnemonicNotFound),
		errors.Is(err, store.ErrMnemonicNotFound):
		return "Mnemonic not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, srs.ErrNoCardTypesSelected):
		return "At least one card type must be selected"

	case errors.Is(err, srs.ErrNoMatchingCards):
		return "No cards match the selected filters"

	case errors.Is(err, catalog.ErrInvalidMnemonic):
		return "Invalid mnemonic data"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, review.ErrStoreUnavailable),
		errors.Is(err, catalog.ErrStoreUnavailable),
		errors.Is(err, store.ErrUnavailable):
		return "Service temporarily unavailable, please retry"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a user-facing
// message without echoing submitted values back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()
	if !strings.Contains(errMsg, "Field validation") {
		return "Validation error"
	}

	// Format: "Key: 'SessionRequest.NumberOfCards' Error:Field validation
	// for 'NumberOfCards' failed on the 'gt' tag"
	parts := strings.Split(errMsg, "Error:")
	if len(parts) < 2 {
		return "Validation error"
	}
	fieldParts := strings.Split(parts[1], "'")
	if len(fieldParts) < 3 {
		return "Validation error"
	}

	field := fieldParts[1]
	if len(fieldParts) >= 5 {
		return "Invalid " + field + ": " + validationTagMessage(fieldParts[3])
	}
	return "Invalid " + field
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be greater than zero"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
