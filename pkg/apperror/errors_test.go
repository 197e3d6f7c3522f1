package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("CRD_002", "Not the owner", http.StatusForbidden),
			expected: "[CRD_002] Not the owner",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("CRD_001", "test", http.StatusNotFound)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("verify credit: %w", ErrForbidden("credit is not pending"))

	assert.True(t, HasCode(wrapped, CodeForbidden))
	assert.False(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeForbidden))
	assert.False(t, HasCode(nil, CodeForbidden))
}

func TestEncodingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Decode", ErrDecode(errors.New("bad base64")), "ENC_001", 422},
		{"UnsupportedOperation", ErrUnsupportedOperation("triple"), "ENC_002", 400},
		{"NonFiniteValue", ErrNonFiniteValue(), "ENC_003", 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestCreditErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("location is required"), "VAL_001", 400},
		{"NotFound", ErrNotFound("Credit"), "CRD_001", 404},
		{"Forbidden", ErrForbidden("not the owner"), "CRD_002", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AuthorizationDenied", ErrAuthorizationDenied(errors.New("user rejected")), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
		{"NonceUsed", ErrNonceUsed(), "AUTH_003", 403},
		{"TimestampExpired", ErrTimestampExpired(), "AUTH_004", 403},
		{"InvalidSignature", ErrInvalidSignature(errors.New("mismatch")), "AUTH_005", 401},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("dial tcp: refused")

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.HTTPStatus)
	assert.True(t, errors.Is(internal, inner))

	unavailable := ErrBackendUnavailable(inner)
	assert.Equal(t, "SYS_002", unavailable.Code)
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.HTTPStatus)
	assert.True(t, errors.Is(unavailable, inner))
}

func TestErrNotFound_Message(t *testing.T) {
	err := ErrNotFound("Credit")
	assert.Equal(t, "Credit not found", err.Message)
}
