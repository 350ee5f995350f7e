package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the intake and assistant domains.

// ErrNotFound converts a repository not-found error into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict builds a domain-specific 409 error.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrUpstream wraps an external-service failure. Never shown raw by the
// assistant; the intake API surfaces it as a generic 503.
func ErrUpstream(err error, domain string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, "Upstream service unavailable", http.StatusServiceUnavailable)
}

// --- Intake ---

// ErrDuplicateEmail is returned when another user already holds the email.
var ErrDuplicateEmail = New(
	CodeAlreadyExists,
	"intake",
	"User with this email already exists",
	http.StatusConflict,
)

// ErrDuplicateMobile is returned when another user already holds the mobile number.
var ErrDuplicateMobile = New(
	CodeAlreadyExists,
	"intake",
	"User with this mobile number already exists",
	http.StatusConflict,
)

// ErrRequirementsExist is returned on a second create for the same user.
// Callers must use the update path instead.
var ErrRequirementsExist = New(
	CodeConflict,
	"intake",
	"Requirements already exist for this user. Use PATCH to update.",
	http.StatusConflict,
)

// ErrRequirementsSubmitted guards submitted records against further edits.
var ErrRequirementsSubmitted = New(
	CodeInvalidStatus,
	"intake",
	"Requirements have been submitted and can no longer be edited",
	http.StatusConflict,
)

// ErrTermsNotAccepted is returned when a registration arrives without consent.
var ErrTermsNotAccepted = New(
	CodeValidationFailed,
	"intake",
	"Terms and conditions must be accepted",
	http.StatusBadRequest,
)
