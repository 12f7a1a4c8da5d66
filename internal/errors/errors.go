// Package errors provides the structured error type shared by the debenture
// core, the host services and the HTTP layer. Every failure that reaches a
// caller is an *AppError so responses carry a stable code and never leak
// backend details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Contract registry errors.
var (
	ErrContractNotFound = &AppError{Code: "CONTRACT_NOT_FOUND", Message: "Contract not found", StatusCode: http.StatusNotFound}
	ErrIssuerDisabled   = &AppError{Code: "ISSUER_NOT_CONFIGURED", Message: "Issuing is not configured", StatusCode: http.StatusServiceUnavailable}
)

// Instrument errors.
var (
	ErrInvalidFrequencyCode = &AppError{Code: "INVALID_FREQUENCY_CODE", Message: "Unknown coupon payment frequency code", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidHolder        = &AppError{Code: "INVALID_HOLDER", Message: "Debenture holder must be exactly 32 bytes", StatusCode: http.StatusBadRequest}
	ErrNegativeAmount       = &AppError{Code: "INVALID_INPUT", Message: "Coupon rate and par value must not be negative", StatusCode: http.StatusBadRequest}
)

// State store errors.
var (
	ErrStoreFailure = &AppError{Code: "STORE_FAILURE", Message: "Instrument state store is unavailable", StatusCode: http.StatusServiceUnavailable}
	ErrCorruptState = &AppError{Code: "CORRUPT_STATE", Message: "Stored instrument state could not be decoded", StatusCode: http.StatusInternalServerError}
)
