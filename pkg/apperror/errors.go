package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes, grouped by concern.
const (
	CodeDecode               = "ENC_001"
	CodeUnsupportedOperation = "ENC_002"
	CodeNonFiniteValue       = "ENC_003"

	CodeValidation = "VAL_001"

	CodeNotFound  = "CRD_001"
	CodeForbidden = "CRD_002"

	CodeAuthorizationDenied = "AUTH_001"
	CodeInvalidToken        = "AUTH_002"
	CodeNonceUsed           = "AUTH_003"
	CodeTimestampExpired    = "AUTH_004"
	CodeInvalidSignature    = "AUTH_005"

	CodeRateLimitExceeded = "RATE_001"

	CodeInternal           = "SYS_001"
	CodeBackendUnavailable = "SYS_002"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is, or wraps, an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// ---- Encrypted values (ENC) ----

func ErrDecode(err error) *AppError {
	return Wrap(CodeDecode, "Encrypted value could not be decoded", http.StatusUnprocessableEntity, err)
}

func ErrUnsupportedOperation(op string) *AppError {
	return New(CodeUnsupportedOperation, fmt.Sprintf("Unsupported operation %q", op), http.StatusBadRequest)
}

func ErrNonFiniteValue() *AppError {
	return New(CodeNonFiniteValue, "Value must be a finite number", http.StatusUnprocessableEntity)
}

// ---- Input validation (VAL) ----

// Validation returns a VAL_001 error carrying message.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Credits (CRD) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrForbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// ---- Authorization (AUTH) ----

func ErrAuthorizationDenied(err error) *AppError {
	return Wrap(CodeAuthorizationDenied, "Decryption authorization denied", http.StatusUnauthorized, err)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New(CodeNonceUsed, "Nonce has already been used", http.StatusForbidden)
}

func ErrTimestampExpired() *AppError {
	return New(CodeTimestampExpired, "Request timestamp expired", http.StatusForbidden)
}

func ErrInvalidSignature(err error) *AppError {
	return Wrap(CodeInvalidSignature, "Signature does not match address", http.StatusUnauthorized, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

func ErrBackendUnavailable(err error) *AppError {
	return Wrap(CodeBackendUnavailable, "Registry backend unavailable", http.StatusServiceUnavailable, err)
}
