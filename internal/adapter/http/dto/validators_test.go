package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateCreditRequest{Location: "  Amazon Basin  ", AreaSize: 25, SpeciesCount: 12}
	SanitizeStruct(&req)

	assert.Equal(t, "Amazon Basin", req.Location)
	assert.Equal(t, 25.0, req.AreaSize)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CreateCreditRequest{Location: "Borneo <script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Location, "&lt;script&gt;")
	assert.NotContains(t, req.Location, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	type withPointer struct {
		Note *string
		Nil  *string
	}
	note := "  field notes  "
	req := withPointer{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "field notes", *req.Note)
	assert.Nil(t, req.Nil)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID(t *testing.T) {
	for _, tc := range []string{"nonce-001", "N_002", "a.b.c", "1709294400000"} {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
	for _, tc := range []string{"nonce 001", "n<1>", "n;DROP", "", "n\n1"} {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestLoginRequest_Binding(t *testing.T) {
	valid := LoginRequest{
		Address:   "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23",
		Timestamp: 1709294400,
		Nonce:     "n-1",
		Signature: "0x" + strings.Repeat("ab", 65),
	}
	require.NoError(t, binding.Validator.ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(*LoginRequest)
	}{
		{"bad address", func(r *LoginRequest) { r.Address = "0x1234" }},
		{"missing timestamp", func(r *LoginRequest) { r.Timestamp = 0 }},
		{"unsafe nonce", func(r *LoginRequest) { r.Nonce = "a b" }},
		{"short signature", func(r *LoginRequest) { r.Signature = "0xabcd" }},
		{"non-hex signature", func(r *LoginRequest) { r.Signature = strings.Repeat("zz", 65) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, binding.Validator.ValidateStruct(&req))
		})
	}
}

func TestCreateCreditRequest_Binding(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&CreateCreditRequest{Location: "Amazon", AreaSize: 25, SpeciesCount: 12}))
	assert.Error(t, binding.Validator.ValidateStruct(&CreateCreditRequest{Location: "", AreaSize: 25, SpeciesCount: 12}))
	assert.Error(t, binding.Validator.ValidateStruct(&CreateCreditRequest{Location: "Amazon", AreaSize: -1, SpeciesCount: 12}))
	assert.Error(t, binding.Validator.ValidateStruct(&CreateCreditRequest{Location: "Amazon", AreaSize: 25}))
}
